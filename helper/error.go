package helper

import "fmt"

// NewError wraps an error with the action that failed, keeping the original
// error available for errors.Is/As.
func NewError(action string, err error) error {
	return fmt.Errorf("error in %v: %w", action, err)
}

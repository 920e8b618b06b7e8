package ocr

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hterhoeven/cardlens/model"
)

// ErrUnavailable means text recognition is not supported in the current
// runtime (engine or language data missing). Callers should offer manual text
// entry instead of failing.
var ErrUnavailable = errors.New("text recognition not available in this runtime")

// ErrNoText means recognition ran but found no readable text. A valid empty
// result, not a recognition failure.
var ErrNoText = errors.New("no text detected in image")

// Recognizer converts an image reference into recognized text blocks.
// Implementations must return ErrUnavailable when the engine cannot run at
// all and ErrNoText when it ran and found nothing; any other error is a
// recognition failure.
type Recognizer interface {
	Recognize(ctx context.Context, imageRef string) (*model.OCRResult, error)
}

// DefaultMinConfidence is the cut-off below which recognized blocks are
// usually discarded.
const DefaultMinConfidence = 0.7

var supportedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// ValidateImageRef rejects malformed or unsupported image references before
// recognition is attempted.
func ValidateImageRef(imageRef string) error {
	if strings.TrimSpace(imageRef) == "" {
		return fmt.Errorf("image reference is required")
	}

	ext := strings.ToLower(filepath.Ext(imageRef))
	if !supportedExtensions[ext] {
		return fmt.Errorf("unsupported image format %q, supported: jpg, jpeg, png, webp", ext)
	}
	return nil
}

// SortBlocks orders blocks top to bottom, treating blocks within 10 pixels
// vertically as the same line and ordering those left to right.
func SortBlocks(blocks []model.TextBlock) []model.TextBlock {
	sorted := append([]model.TextBlock(nil), blocks...)
	sort.SliceStable(sorted, func(i, j int) bool {
		yDiff := sorted[i].BoundingBox.Y - sorted[j].BoundingBox.Y
		if yDiff < -10 || yDiff > 10 {
			return yDiff < 0
		}
		return sorted[i].BoundingBox.X < sorted[j].BoundingBox.X
	})
	return sorted
}

// FilterByConfidence keeps blocks with confidence at or above min.
func FilterByConfidence(blocks []model.TextBlock, min float64) []model.TextBlock {
	filtered := make([]model.TextBlock, 0, len(blocks))
	for _, block := range blocks {
		if block.Confidence >= min {
			filtered = append(filtered, block)
		}
	}
	return filtered
}

// AverageConfidence returns the mean block confidence, 0 for no blocks.
func AverageConfidence(blocks []model.TextBlock) float64 {
	if len(blocks) == 0 {
		return 0
	}
	var sum float64
	for _, block := range blocks {
		sum += block.Confidence
	}
	return sum / float64(len(blocks))
}

// JoinBlocks concatenates block texts line by line, skipping blank blocks.
func JoinBlocks(blocks []model.TextBlock) string {
	lines := make([]string, 0, len(blocks))
	for _, block := range blocks {
		if text := strings.TrimSpace(block.Text); text != "" {
			lines = append(lines, text)
		}
	}
	return strings.Join(lines, "\n")
}

package scanflow

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hterhoeven/cardlens/core/classify"
	"github.com/hterhoeven/cardlens/model"
	"github.com/hterhoeven/cardlens/ocr"
)

// State names one step of the capture flow.
type State string

const (
	StateIdle                State = "idle"
	StateAwaitingFront       State = "awaiting_front_capture"
	StateValidatingFrontOCR  State = "validating_front_ocr"
	StateAwaitingBackCapture State = "awaiting_back_capture"
	StateManualEntry         State = "manual_entry"
	StateSaved               State = "saved"
)

// Flow drives one card capture as an explicit state machine:
//
//	Idle -> AwaitingFrontCapture -> ValidatingFrontOCR
//	     -> {AwaitingBackCapture | ManualEntry} -> Saved
//
// Every transition is a method call; calls in the wrong state return an
// error. The flow never persists anything itself; Finish returns the
// assembled card for the caller to save.
type Flow struct {
	recognizer ocr.Recognizer
	now        func() time.Time

	state          State
	frontImage     string
	backImage      string
	frontText      string
	backText       string
	manualResolved bool
}

// NewFlow creates an idle capture flow using the given recognizer.
func NewFlow(recognizer ocr.Recognizer) *Flow {
	return &Flow{
		recognizer: recognizer,
		now:        time.Now,
		state:      StateIdle,
	}
}

// State returns the current flow state.
func (f *Flow) State() State { return f.state }

// Start begins a capture.
func (f *Flow) Start() error {
	if f.state != StateIdle {
		return f.wrongState("Start")
	}
	f.state = StateAwaitingFront
	return nil
}

// ProvideFront validates text extraction on the front image immediately. On
// success the flow moves to AwaitingBackCapture. On any recognition problem
// the flow moves to ManualEntry and the error is returned so the caller can
// distinguish an unavailable engine (ocr.ErrUnavailable), an image without
// text (ocr.ErrNoText) and a recognition failure.
func (f *Flow) ProvideFront(ctx context.Context, imageRef string) error {
	if f.state != StateAwaitingFront {
		return f.wrongState("ProvideFront")
	}

	f.frontImage = imageRef
	f.state = StateValidatingFrontOCR

	if f.recognizer == nil {
		f.state = StateManualEntry
		return ocr.ErrUnavailable
	}

	result, err := f.recognizer.Recognize(ctx, imageRef)
	if err != nil {
		f.state = StateManualEntry
		return err
	}

	f.frontText = result.Text
	f.state = StateAwaitingBackCapture
	return nil
}

// RetakeFront restarts the front capture after a failed validation.
func (f *Flow) RetakeFront() error {
	if f.state != StateManualEntry {
		return f.wrongState("RetakeFront")
	}
	f.frontImage = ""
	f.manualResolved = false
	f.state = StateAwaitingFront
	return nil
}

// ProvideBack runs OCR on the back image. A failing back side degrades to
// front text only instead of failing the flow; the back image is kept either
// way.
func (f *Flow) ProvideBack(ctx context.Context, imageRef string) error {
	if f.state != StateAwaitingBackCapture {
		return f.wrongState("ProvideBack")
	}

	f.backImage = imageRef

	result, err := f.recognizer.Recognize(ctx, imageRef)
	if err == nil {
		f.backText = result.Text
	}
	return nil
}

// EnterManualText resolves the manual-entry state with user-provided text.
// The text is classified exactly like OCR output, in the front slot. Blank
// input behaves like SkipManualText.
func (f *Flow) EnterManualText(text string) error {
	if f.state != StateManualEntry {
		return f.wrongState("EnterManualText")
	}

	trimmed := strings.TrimSpace(text)
	if trimmed != "" {
		f.frontText = fmt.Sprintf("%s\n\n[Manually entered on %s]", trimmed, f.now().Format("Jan 2, 2006 15:04"))
	}
	f.manualResolved = true
	return nil
}

// SkipManualText resolves the manual-entry state without text; the card is
// saved with a placeholder so the image itself is kept for reference.
func (f *Flow) SkipManualText() error {
	if f.state != StateManualEntry {
		return f.wrongState("SkipManualText")
	}
	f.manualResolved = true
	return nil
}

// Finish classifies the collected text and returns the assembled card. Valid
// from AwaitingBackCapture (with or without a back side) and from a resolved
// ManualEntry state.
func (f *Flow) Finish() (*model.Card, error) {
	switch f.state {
	case StateAwaitingBackCapture:
	case StateManualEntry:
		if !f.manualResolved {
			return nil, fmt.Errorf("manual entry not resolved, call EnterManualText or SkipManualText first")
		}
	default:
		return nil, f.wrongState("Finish")
	}

	card := &model.Card{
		ID:         model.NewRecordID(),
		FrontImage: f.frontImage,
		BackImage:  f.backImage,
		CreatedAt:  f.now(),
	}

	if f.frontText == "" && f.backText == "" {
		// Nothing to classify; keep the image with a placeholder text.
		card.RawText = f.fallbackText()
		card.Contact = model.Contact{
			Emails:    []string{},
			Phones:    []string{},
			URLs:      []string{},
			Addresses: []string{},
		}
	} else {
		result := classify.Classify(f.frontText, f.backText)
		card.RawText = result.RawText
		card.Personal = result.Personal
		card.Organization = result.Organization
		card.Contact = result.Contact
		card.Metadata = result.Metadata
	}

	f.state = StateSaved
	return card, nil
}

func (f *Flow) fallbackText() string {
	return fmt.Sprintf(
		"Business Card Image\nCaptured: %s\n\nAutomatic text extraction failed - image saved for reference.",
		f.now().Format("Jan 2, 2006 15:04"),
	)
}

func (f *Flow) wrongState(operation string) error {
	return fmt.Errorf("%s not allowed in state %q", operation, f.state)
}

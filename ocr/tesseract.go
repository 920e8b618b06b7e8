package ocr

import (
	"context"
	"fmt"
	"strings"

	"github.com/hterhoeven/cardlens/model"
	"github.com/otiai10/gosseract/v2"
)

// TesseractRecognizer implements Recognizer on top of the gosseract client.
// A fresh client is created per recognition; the factory is replaceable for
// tests.
type TesseractRecognizer struct {
	clientFactory func() *gosseract.Client
	languages     []string
}

// NewTesseractRecognizer constructs a Tesseract-backed recognizer for the
// given languages, defaulting to English.
func NewTesseractRecognizer(languages ...string) *TesseractRecognizer {
	if len(languages) == 0 {
		languages = []string{"eng"}
	}
	return &TesseractRecognizer{
		clientFactory: gosseract.NewClient,
		languages:     languages,
	}
}

// Available reports whether the Tesseract engine can run in this process.
func (r *TesseractRecognizer) Available() (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	client := r.clientFactory()
	defer client.Close()
	return client.Version() != ""
}

// Recognize runs OCR on the referenced image and returns positioned text
// blocks with confidences. The image is enhanced before recognition.
func (r *TesseractRecognizer) Recognize(ctx context.Context, imageRef string) (*model.OCRResult, error) {
	if err := ValidateImageRef(imageRef); err != nil {
		return nil, err
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if !r.Available() {
		return nil, ErrUnavailable
	}

	imageData, err := EnhanceForOCR(imageRef)
	if err != nil {
		return nil, err
	}

	client := r.clientFactory()
	defer client.Close()

	if err := client.SetImageFromBytes(imageData); err != nil {
		return nil, fmt.Errorf("set image: %w", err)
	}
	if err := client.SetLanguage(r.languages...); err != nil {
		return nil, fmt.Errorf("set languages: %w", err)
	}

	blocks, err := extractBlocks(client)
	if err != nil {
		return nil, err
	}

	text, err := client.Text()
	if err != nil {
		return nil, fmt.Errorf("recognize text: %w", err)
	}

	plain := strings.TrimSpace(text)
	if plain == "" && len(blocks) == 0 {
		return nil, ErrNoText
	}

	sorted := SortBlocks(blocks)
	if plain == "" {
		plain = JoinBlocks(sorted)
	}

	return &model.OCRResult{
		Text:       plain,
		Confidence: AverageConfidence(sorted),
		Blocks:     sorted,
	}, nil
}

func extractBlocks(client *gosseract.Client) ([]model.TextBlock, error) {
	boxes, err := client.GetBoundingBoxes(gosseract.RIL_TEXTLINE)
	if err != nil {
		return nil, fmt.Errorf("bounding boxes: %w", err)
	}

	blocks := make([]model.TextBlock, 0, len(boxes))
	for _, box := range boxes {
		text := strings.TrimSpace(box.Word)
		if text == "" {
			continue
		}
		blocks = append(blocks, model.TextBlock{
			Text: text,
			BoundingBox: model.BoundingBox{
				X:      float64(box.Box.Min.X),
				Y:      float64(box.Box.Min.Y),
				Width:  float64(box.Box.Dx()),
				Height: float64(box.Box.Dy()),
			},
			Confidence: box.Confidence / 100.0,
		})
	}
	return blocks, nil
}

package ocr

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
)

// EnhanceForOCR loads an image and applies a processing chain that makes
// printed text easier to recognize: grayscale for contrast, aggressive
// contrast boost, sharpening, a small brightness lift and gamma correction.
// Returns the processed image as PNG bytes.
func EnhanceForOCR(imageRef string) ([]byte, error) {
	src, err := imaging.Open(imageRef)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}

	img := imaging.Grayscale(src)
	img = imaging.AdjustContrast(img, 30)
	img = imaging.Sharpen(img, 1.5)
	img = imaging.AdjustBrightness(img, 10)
	img = imaging.AdjustGamma(img, 1.2)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode processed image: %w", err)
	}
	return buf.Bytes(), nil
}

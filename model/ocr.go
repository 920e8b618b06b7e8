package model

// BoundingBox describes the rectangular area of a recognized text block in
// pixel coordinates with the origin in the upper-left corner of the image.
type BoundingBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// TextBlock is one recognized block of text with its position and confidence.
// TextBlocks are produced only by the OCR adapter and are never persisted.
type TextBlock struct {
	Text        string      `json:"text"`
	BoundingBox BoundingBox `json:"bounding_box"`
	Confidence  float64     `json:"confidence"`
}

// OCRResult is the full output of one recognition run.
type OCRResult struct {
	Text       string      `json:"text"`
	Confidence float64     `json:"confidence"`
	Blocks     []TextBlock `json:"blocks"`
}

// Package ocr defines the OCR engine contract used by the extraction
// pipeline and a Tesseract-backed default implementation.
package ocr

import (
	"context"
	"errors"
)

// ErrEngineUnavailable reports that the OCR engine is not installed or its
// trained data cannot be found. It is a configuration problem the operator
// must fix, not a data error.
var ErrEngineUnavailable = errors.New("ocr engine unavailable")

// Input encapsulates a single image submitted for OCR.
type Input struct {
	// Image is the encoded image payload (PNG or JPEG).
	Image []byte
	// Languages is a list of trained-data hints (e.g., "por", "eng").
	Languages []string
	// Threshold is the binarization cutoff applied during preprocessing.
	// Zero disables preprocessing.
	Threshold uint8
}

// Result captures OCR output for a single input image.
type Result struct {
	// PlainText contains the linearized text extracted from the image.
	PlainText string
}

// Engine is the OCR provider contract: one image in, one result out.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, input Input) (Result, error)
}

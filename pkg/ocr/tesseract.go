package ocr

import (
	"context"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// TesseractEngine implements Engine using the gosseract client.
type TesseractEngine struct {
	clientFactory func() *gosseract.Client
}

// NewTesseractEngine constructs a Tesseract-backed OCR engine.
func NewTesseractEngine() *TesseractEngine {
	return &TesseractEngine{clientFactory: gosseract.NewClient}
}

func (e *TesseractEngine) Name() string { return "tesseract" }

// Check verifies that the Tesseract installation is usable. A failure is
// reported as ErrEngineUnavailable so callers can tell the operator to fix
// their installation before uploading anything.
func (e *TesseractEngine) Check() error {
	langs, err := gosseract.GetAvailableLanguages()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEngineUnavailable, err)
	}
	if len(langs) == 0 {
		return fmt.Errorf("%w: no trained data installed", ErrEngineUnavailable)
	}
	return nil
}

// Recognize performs OCR on a single image input.
func (e *TesseractEngine) Recognize(ctx context.Context, in Input) (Result, error) {
	select {
	case <-ctx.Done():
		return Result{}, ctx.Err()
	default:
	}

	imgData := in.Image
	if in.Threshold > 0 {
		prepared, err := Preprocess(in.Image, in.Threshold)
		if err != nil {
			return Result{}, err
		}
		imgData = prepared
	}

	c := e.clientFactory()
	defer c.Close()

	if err := c.SetImageFromBytes(imgData); err != nil {
		return Result{}, fmt.Errorf("set image: %w", err)
	}
	if len(in.Languages) > 0 {
		if err := c.SetLanguage(in.Languages...); err != nil {
			return Result{}, fmt.Errorf("%w: %v", ErrEngineUnavailable, err)
		}
	}
	text, err := c.Text()
	if err != nil {
		return Result{}, fmt.Errorf("recognize text: %w", err)
	}
	return Result{PlainText: strings.TrimSpace(text)}, nil
}

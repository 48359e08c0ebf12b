package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"sort"

	_ "image/jpeg"
)

// Preprocess prepares a photographed table for recognition: grayscale, a
// 3x3 median filter to knock out speckle noise, then binarization at the
// given threshold. Returns the result PNG-encoded.
func Preprocess(data []byte, threshold uint8) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	gray := toGray(src)
	smoothed := medianFilter(gray)
	binarize(smoothed, threshold)

	var buf bytes.Buffer
	if err := png.Encode(&buf, smoothed); err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}
	return buf.Bytes(), nil
}

func toGray(src image.Image) *image.Gray {
	b := src.Bounds()
	gray := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			gray.Set(x, y, src.At(x, y))
		}
	}
	return gray
}

// medianFilter applies a 3x3 median over the grayscale image. Border pixels
// use the truncated neighborhood.
func medianFilter(src *image.Gray) *image.Gray {
	b := src.Bounds()
	dst := image.NewGray(b)
	window := make([]uint8, 0, 9)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			window = window[:0]
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					nx, ny := x+dx, y+dy
					if nx < b.Min.X || nx >= b.Max.X || ny < b.Min.Y || ny >= b.Max.Y {
						continue
					}
					window = append(window, src.GrayAt(nx, ny).Y)
				}
			}
			sort.Slice(window, func(i, j int) bool { return window[i] < window[j] })
			dst.SetGray(x, y, color.Gray{Y: window[len(window)/2]})
		}
	}
	return dst
}

func binarize(img *image.Gray, threshold uint8) {
	for i, v := range img.Pix {
		if v < threshold {
			img.Pix[i] = 0
		} else {
			img.Pix[i] = 255
		}
	}
}

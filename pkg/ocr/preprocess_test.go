package ocr

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestPreprocessBinarizes(t *testing.T) {
	// Left half dark, right half light, well clear of the threshold so the
	// median filter cannot flip anything.
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			c := color.RGBA{40, 40, 40, 255}
			if x >= 4 {
				c = color.RGBA{220, 220, 220, 255}
			}
			src.Set(x, y, c)
		}
	}

	out, err := Preprocess(encodePNG(t, src), 160)
	require.NoError(t, err)

	decoded, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)

	gray, ok := decoded.(*image.Gray)
	require.True(t, ok)
	assert.Equal(t, uint8(0), gray.GrayAt(1, 4).Y)
	assert.Equal(t, uint8(255), gray.GrayAt(6, 4).Y)
	for _, v := range gray.Pix {
		assert.Contains(t, []uint8{0, 255}, v)
	}
}

func TestPreprocessRemovesSpeckle(t *testing.T) {
	// A single bright pixel on a dark page is scanner noise; the median
	// filter should erase it before binarization.
	src := image.NewGray(image.Rect(0, 0, 9, 9))
	src.SetGray(4, 4, color.Gray{Y: 255})

	out, err := Preprocess(encodePNG(t, src), 160)
	require.NoError(t, err)

	decoded, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	gray := decoded.(*image.Gray)
	assert.Equal(t, uint8(0), gray.GrayAt(4, 4).Y)
}

func TestPreprocessRejectsGarbage(t *testing.T) {
	_, err := Preprocess([]byte("not an image"), 160)
	assert.Error(t, err)
}

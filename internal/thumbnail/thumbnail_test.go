package thumbnail_test

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/captray/internal/thumbnail"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestGenerate_AlwaysSquare(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{name: "tall", w: 10, h: 100},
		{name: "wide", w: 100, h: 10},
		{name: "square", w: 50, h: 50},
		{name: "already small", w: 32, h: 32},
		{name: "tiny", w: 1, h: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := encodePNG(t, solid(tt.w, tt.h, color.RGBA{R: 200, G: 10, B: 10, A: 255}))

			thumb, err := thumbnail.Generate(data, thumbnail.DefaultSize)
			require.NoError(t, err)
			assert.Equal(t, thumbnail.DefaultSize, thumb.Width)
			assert.Equal(t, thumbnail.DefaultSize, thumb.Height)
			assert.Len(t, thumb.Pix, thumbnail.DefaultSize*thumbnail.DefaultSize*4)

			// Cover-fit leaves no transparent gaps.
			for i := 3; i < len(thumb.Pix); i += 4 {
				require.Equal(t, uint8(255), thumb.Pix[i], "alpha at byte %d", i)
			}
		})
	}
}

func TestGenerate_Idempotent(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 64, 40))
	for y := 0; y < 40; y++ {
		for x := 0; x < 64; x++ {
			src.SetRGBA(x, y, color.RGBA{R: uint8(x * 4), G: uint8(y * 6), B: 90, A: 255})
		}
	}
	data := encodePNG(t, src)

	first, err := thumbnail.Generate(data, 32)
	require.NoError(t, err)
	second, err := thumbnail.Generate(data, 32)
	require.NoError(t, err)

	assert.True(t, bytes.Equal(first.Pix, second.Pix), "outputs differ between runs")
}

func TestGenerate_CentersTheCrop(t *testing.T) {
	// Left half red, right half blue; the crop window straddles the boundary.
	src := image.NewRGBA(image.Rect(0, 0, 100, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 100; x++ {
			c := color.RGBA{R: 255, A: 255}
			if x >= 50 {
				c = color.RGBA{B: 255, A: 255}
			}
			src.SetRGBA(x, y, c)
		}
	}

	thumb, err := thumbnail.Generate(encodePNG(t, src), 32)
	require.NoError(t, err)
	img := thumb.Image()

	left := img.RGBAAt(2, 16)
	right := img.RGBAAt(29, 16)
	assert.Greater(t, left.R, uint8(200), "left edge should be red: %v", left)
	assert.Less(t, left.B, uint8(55), "left edge should be red: %v", left)
	assert.Greater(t, right.B, uint8(200), "right edge should be blue: %v", right)
	assert.Less(t, right.R, uint8(55), "right edge should be blue: %v", right)
}

func TestGenerate_JPEGSource(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, solid(120, 80, color.RGBA{G: 255, A: 255}), &jpeg.Options{Quality: 90}))

	thumb, err := thumbnail.Generate(buf.Bytes(), 32)
	require.NoError(t, err)

	c := thumb.Image().RGBAAt(16, 16)
	assert.Greater(t, c.G, uint8(200))
}

func TestGenerate_Errors(t *testing.T) {
	valid := encodePNG(t, solid(4, 4, color.RGBA{A: 255}))

	_, err := thumbnail.Generate(nil, 32)
	require.ErrorIs(t, err, thumbnail.ErrEmptyInput)

	_, err = thumbnail.Generate(valid, 0)
	require.ErrorContains(t, err, thumbnail.ErrInvalidSize.Error())

	_, err = thumbnail.Generate([]byte("definitely not an image"), 32)
	require.ErrorContains(t, err, thumbnail.ErrDecode.Error())
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "display.png")
	require.NoError(t, os.WriteFile(path, encodePNG(t, solid(40, 20, color.RGBA{R: 9, A: 255})), 0o644))

	thumb, err := thumbnail.FromFile(path, 16)
	require.NoError(t, err)
	assert.Equal(t, 16, thumb.Width)

	_, err = thumbnail.FromFile(filepath.Join(dir, "missing.png"), 16)
	require.ErrorContains(t, err, thumbnail.ErrRead.Error())
}

func TestEncodePNG(t *testing.T) {
	thumb, err := thumbnail.Generate(encodePNG(t, solid(50, 50, color.RGBA{B: 255, A: 255})), 32)
	require.NoError(t, err)

	data, err := thumbnail.EncodePNG(thumb)
	require.NoError(t, err)

	decoded, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 32, 32), decoded.Bounds())

	_, err = thumbnail.EncodePNG(nil)
	require.ErrorIs(t, err, thumbnail.ErrEmptyInput)
}

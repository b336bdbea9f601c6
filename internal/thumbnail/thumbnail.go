// Package thumbnail turns image bytes into small square RGBA previews used as
// menu icons. Scaling is cover-fit followed by a center crop, so the output is
// always exactly size×size regardless of the source aspect ratio.
package thumbnail

import (
	"bytes"
	"image"
	"image/draw"
	_ "image/gif" // decoders register themselves with image.Decode
	_ "image/jpeg"
	"image/png"
	"math"
	"os"

	"github.com/nfnt/resize"
	"go.trai.ch/zerr"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/ytget/captray/internal/model"
)

// DefaultSize is the edge length of tray menu thumbnails
const DefaultSize = 32

var (
	// ErrEmptyInput is returned for zero-length image data.
	ErrEmptyInput = zerr.New("thumbnail: empty input")

	// ErrInvalidSize is returned when the requested edge length is not positive.
	ErrInvalidSize = zerr.New("thumbnail: invalid target size")

	// ErrDecode is returned when the bytes are not a supported raster image.
	ErrDecode = zerr.New("thumbnail: decode failed")

	// ErrRead is returned when the source file cannot be read.
	ErrRead = zerr.New("thumbnail: read failed")
)

// Generate decodes data and produces a size×size RGBA thumbnail.
func Generate(data []byte, size int) (*model.Thumbnail, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	if size <= 0 {
		return nil, zerr.With(ErrInvalidSize, "size", size)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, zerr.Wrap(err, ErrDecode.Error())
	}

	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, zerr.With(ErrDecode, "format", format)
	}

	scaledW, scaledH := coverSize(b.Dx(), b.Dy(), size)
	scaled := toRGBA(resize.Resize(uint(scaledW), uint(scaledH), img, resize.Bilinear))

	return centerCrop(scaled, size), nil
}

// FromFile reads path and generates a thumbnail from its contents.
func FromFile(path string, size int) (*model.Thumbnail, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, ErrRead.Error()), "path", path)
	}
	return Generate(data, size)
}

// EncodePNG serializes a thumbnail so it can be handed to platform icon APIs.
func EncodePNG(t *model.Thumbnail) ([]byte, error) {
	if t == nil || len(t.Pix) == 0 {
		return nil, ErrEmptyInput
	}
	var out bytes.Buffer
	if err := png.Encode(&out, t.Image()); err != nil {
		return nil, zerr.Wrap(err, "thumbnail: encode png")
	}
	return out.Bytes(), nil
}

// coverSize returns the dimensions after scaling w×h so that the shorter side
// meets size. Both results are at least size.
func coverSize(w, h, size int) (int, int) {
	scale := math.Max(float64(size)/float64(w), float64(size)/float64(h))
	scaledW := int(math.Round(float64(w) * scale))
	scaledH := int(math.Round(float64(h) * scale))
	return max(scaledW, 1), max(scaledH, 1)
}

// centerCrop copies the middle size×size window of src into a new buffer.
// Pixels that fall outside src are left transparent.
func centerCrop(src *image.RGBA, size int) *model.Thumbnail {
	sw, sh := src.Rect.Dx(), src.Rect.Dy()
	xOff := max(sw-size, 0) / 2
	yOff := max(sh-size, 0) / 2

	pix := make([]uint8, size*size*4)
	for y := 0; y < size; y++ {
		sy := y + yOff
		if sy >= sh {
			continue
		}
		for x := 0; x < size; x++ {
			sx := x + xOff
			if sx >= sw {
				continue
			}
			si := sy*src.Stride + sx*4
			di := (y*size + x) * 4
			copy(pix[di:di+4], src.Pix[si:si+4])
		}
	}

	return &model.Thumbnail{Pix: pix, Width: size, Height: size}
}

// toRGBA normalizes any decoded image into a zero-origin *image.RGBA.
func toRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok && b.Min == (image.Point{}) {
		return rgba
	}
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

package model

import (
	"image"
	"time"
)

// ItemKind classifies a previously produced artifact
type ItemKind int

const (
	// KindStudioRecording is a studio-mode project
	KindStudioRecording ItemKind = iota

	// KindInstantRecording is an instant-mode project
	KindInstantRecording

	// KindScreenshot is a screenshot project
	KindScreenshot
)

// String returns the string representation of ItemKind
func (k ItemKind) String() string {
	switch k {
	case KindStudioRecording:
		return "studio"
	case KindInstantRecording:
		return "instant"
	case KindScreenshot:
		return "screenshot"
	default:
		return "unknown"
	}
}

// IsRecording returns true for both recording kinds
func (k ItemKind) IsRecording() bool {
	return k == KindStudioRecording || k == KindInstantRecording
}

// Thumbnail is a small RGBA pixel buffer. Pix is row-major, 4 bytes per pixel.
type Thumbnail struct {
	Pix    []uint8
	Width  int
	Height int
}

// Image wraps the pixel buffer without copying it
func (t *Thumbnail) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    t.Pix,
		Stride: 4 * t.Width,
		Rect:   image.Rect(0, 0, t.Width, t.Height),
	}
}

// Item represents a single recording or screenshot shown in the recent list
type Item struct {
	Path        string     // project directory; identity key
	DisplayName string     // pretty name from project metadata
	Kind        ItemKind   // fixed at load time
	Thumbnail   *Thumbnail // nil until computed
	CreatedAt   time.Time  // filesystem creation time, or load time if unavailable
}

// HasThumbnail reports whether a preview has been computed
func (it Item) HasThumbnail() bool {
	return it.Thumbnail != nil && len(it.Thumbnail.Pix) > 0
}

package tray

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"sync"

	"github.com/ytget/captray/internal/model"
)

const iconSize = 44

var (
	colorStudio     = color.RGBA{R: 0x4f, G: 0x8c, B: 0xff, A: 0xff}
	colorInstant    = color.RGBA{R: 0xff, G: 0xb0, B: 0x20, A: 0xff}
	colorScreenshot = color.RGBA{R: 0x3c, G: 0xc8, B: 0x78, A: 0xff}
	colorRecording  = color.RGBA{R: 0xe5, G: 0x2b, B: 0x2b, A: 0xff}
	colorDefault    = color.RGBA{R: 0xd0, G: 0xd0, B: 0xd0, A: 0xff}
)

var (
	defaultIcon    = sync.OnceValue(func() []byte { return renderDot(colorDefault) })
	studioIcon     = sync.OnceValue(func() []byte { return renderDot(colorStudio) })
	instantIcon    = sync.OnceValue(func() []byte { return renderDot(colorInstant) })
	screenshotIcon = sync.OnceValue(func() []byte { return renderDot(colorScreenshot) })
	recordingIcon  = sync.OnceValue(func() []byte { return renderStop(colorRecording) })
)

// DefaultIcon is the neutral tray icon.
func DefaultIcon() []byte {
	return defaultIcon()
}

// IconForMode returns the tray icon indicating mode.
func IconForMode(mode model.Mode) []byte {
	switch mode {
	case model.ModeInstant:
		return instantIcon()
	case model.ModeScreenshot:
		return screenshotIcon()
	case model.ModeStudio:
		return studioIcon()
	default:
		return defaultIcon()
	}
}

// RecordingIndicatorIcon is shown while a capture is running.
func RecordingIndicatorIcon() []byte {
	return recordingIcon()
}

// renderDot draws a filled circle with a one pixel darker rim.
func renderDot(c color.RGBA) []byte {
	img := image.NewNRGBA(image.Rect(0, 0, iconSize, iconSize))
	center := float64(iconSize-1) / 2
	radius := float64(iconSize)/2 - 2
	rim := color.NRGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: 0xff}

	for y := 0; y < iconSize; y++ {
		for x := 0; x < iconSize; x++ {
			dx, dy := float64(x)-center, float64(y)-center
			d := dx*dx + dy*dy
			switch {
			case d <= (radius-1)*(radius-1):
				img.SetNRGBA(x, y, color.NRGBA(c))
			case d <= radius*radius:
				img.SetNRGBA(x, y, rim)
			}
		}
	}
	return encode(img)
}

// renderStop draws a rounded-off stop square.
func renderStop(c color.RGBA) []byte {
	img := image.NewNRGBA(image.Rect(0, 0, iconSize, iconSize))
	inset := iconSize / 5
	for y := inset; y < iconSize-inset; y++ {
		for x := inset; x < iconSize-inset; x++ {
			corner := (x == inset || x == iconSize-inset-1) && (y == inset || y == iconSize-inset-1)
			if !corner {
				img.SetNRGBA(x, y, color.NRGBA(c))
			}
		}
	}
	return encode(img)
}

func encode(img image.Image) []byte {
	var buf bytes.Buffer
	// Encoding an in-memory NRGBA into a buffer cannot fail.
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

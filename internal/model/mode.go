package model

import (
	"strings"

	"go.trai.ch/zerr"
)

// ErrInvalidMode is returned when a string does not name a recording mode.
var ErrInvalidMode = zerr.New("invalid recording mode")

// Mode represents the capture mode selected in the tray
type Mode string

const (
	// ModeStudio records an editable multi-track project
	ModeStudio Mode = "studio"

	// ModeInstant records a single shareable video
	ModeInstant Mode = "instant"

	// ModeScreenshot captures still images instead of video
	ModeScreenshot Mode = "screenshot"
)

// DefaultMode is used when nothing valid is stored in settings
const DefaultMode = ModeStudio

// AllModes returns the modes in menu display order
func AllModes() []Mode {
	return []Mode{ModeStudio, ModeInstant, ModeScreenshot}
}

// ParseMode converts a stored or user-provided value into a Mode
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if !m.IsValid() {
		return "", zerr.With(ErrInvalidMode, "mode", s)
	}
	return m, nil
}

// String returns the string representation of Mode
func (m Mode) String() string {
	return string(m)
}

// IsValid returns true if m is one of the known modes
func (m Mode) IsValid() bool {
	return m == ModeStudio || m == ModeInstant || m == ModeScreenshot
}

// IsScreenshot returns true if capture actions should take still images
func (m Mode) IsScreenshot() bool {
	return m == ModeScreenshot
}

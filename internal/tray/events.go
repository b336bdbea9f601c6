package tray

import (
	"path/filepath"
	"strings"

	"github.com/ytget/captray/internal/model"
)

// Event is a lifecycle notification consumed by Bridge.Dispatch. The set of
// implementations is closed.
type Event interface {
	isEvent()
}

// RecordingStarted is delivered when a capture begins.
type RecordingStarted struct{}

// RecordingStopped is delivered when a capture ends.
type RecordingStopped struct{}

// NewItemAdded is delivered when a recording or screenshot has been written.
// Path may be the project directory or, for screenshots, the image inside it.
type NewItemAdded struct {
	Path string
}

// ModeChanged is delivered when the user picks a recording mode.
type ModeChanged struct {
	Mode model.Mode
}

// LocaleChanged is delivered when the UI language changes.
type LocaleChanged struct{}

func (RecordingStarted) isEvent() {}
func (RecordingStopped) isEvent() {}
func (NewItemAdded) isEvent()     {}
func (ModeChanged) isEvent()      {}
func (LocaleChanged) isEvent()    {}

var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
}

// ProjectPath maps the path carried by NewItemAdded to the project directory.
func (e NewItemAdded) ProjectPath() string {
	path := filepath.Clean(e.Path)
	if imageExts[strings.ToLower(filepath.Ext(path))] {
		return filepath.Dir(path)
	}
	return path
}

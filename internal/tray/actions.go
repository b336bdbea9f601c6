package tray

import (
	"os"
	"path/filepath"

	"go.trai.ch/zerr"

	"github.com/ytget/captray/internal/menu"
	"github.com/ytget/captray/internal/model"
	"github.com/ytget/captray/internal/recents"
)

// CaptureTarget selects what a capture action records.
type CaptureTarget string

// Capture targets offered by the menu.
const (
	TargetDisplay CaptureTarget = "display"
	TargetWindow  CaptureTarget = "window"
	TargetArea    CaptureTarget = "area"
)

// instantOutput is the playable file inside an instant recording project.
var instantOutput = filepath.Join("content", "output.mp4")

// Host performs the window and OS actions the menu can request. The
// recording engine, editors and importer live behind it.
type Host interface {
	ShowMain()
	OpenTargetPicker(target CaptureTarget, mode model.Mode)
	TakeScreenshot()
	ImportVideo()
	ShowLibrary(root string)
	ShowSettings()
	ShowSetup()
	StopRecording()
	OpenEditor(projectPath string)
	OpenScreenshotEditor(projectPath string)
	OpenPath(path string) error
	Quit()
}

// HandleAction dispatches a clicked menu id.
func (b *Bridge) HandleAction(id string) error {
	action, err := menu.ParseAction(id)
	if err != nil {
		return err
	}

	switch action.ID {
	case menu.ActionOpenMain:
		if b.OnTrayClick() {
			return nil
		}
		b.host.ShowMain()
	case menu.ActionRecordDisplay:
		b.host.OpenTargetPicker(TargetDisplay, b.Mode())
	case menu.ActionRecordWindow:
		b.host.OpenTargetPicker(TargetWindow, b.Mode())
	case menu.ActionRecordArea:
		b.host.OpenTargetPicker(TargetArea, b.Mode())
	case menu.ActionTakeScreenshot:
		b.host.TakeScreenshot()
	case menu.ActionImportVideo:
		b.host.ImportVideo()
	case menu.ActionViewAllRecordings:
		b.host.ShowLibrary(b.settings.RecordingsRoot())
	case menu.ActionViewAllScreenshots:
		b.host.ShowLibrary(b.settings.ScreenshotsRoot())
	case menu.ActionOpenSettings:
		b.host.ShowSettings()
	case menu.ActionRequestPermissions:
		b.host.ShowSetup()
	case menu.ActionQuit:
		b.host.Quit()
	case menu.ActionModeStudio:
		return b.Dispatch(ModeChanged{Mode: model.ModeStudio})
	case menu.ActionModeInstant:
		return b.Dispatch(ModeChanged{Mode: model.ModeInstant})
	case menu.ActionModeScreenshot:
		return b.Dispatch(ModeChanged{Mode: model.ModeScreenshot})
	case menu.ActionPreviousItem:
		return b.openPreviousItem(action.Path)
	default:
		return zerr.With(menu.ErrUnknownAction, "id", id)
	}
	return nil
}

// openPreviousItem opens screenshots and studio projects in their editors and
// plays the output of instant recordings.
func (b *Bridge) openPreviousItem(path string) error {
	if recents.IsScreenshot(path, b.settings.ScreenshotsRoot()) {
		b.host.OpenScreenshotEditor(path)
		return nil
	}

	meta, err := recents.ReadMeta(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "open previous item"), "path", path)
	}

	if meta.Kind == model.KindStudioRecording {
		b.host.OpenEditor(path)
		return nil
	}

	output := filepath.Join(path, instantOutput)
	if _, err := os.Stat(output); err != nil {
		b.logger.Debug().Str("path", output).Msg("instant recording has no output yet")
		return nil
	}
	return b.host.OpenPath(output)
}

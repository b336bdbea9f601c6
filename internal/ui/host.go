package ui

import (
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"github.com/rs/zerolog"

	"github.com/ytget/captray/internal/config"
	"github.com/ytget/captray/internal/localization"
	"github.com/ytget/captray/internal/menu"
	"github.com/ytget/captray/internal/model"
	"github.com/ytget/captray/internal/platform"
	"github.com/ytget/captray/internal/tray"
)

// Bridge is the part of tray.Bridge the desktop surfaces call back into.
type Bridge interface {
	HandleAction(id string) error
	Dispatch(ev tray.Event) error
	SetSetupOpen(open bool)
	Items() []model.Item
}

// Opener performs the OS level open and reveal operations.
type Opener struct {
	OpenDirectory   func(dir string) error
	OpenFile        func(path string) error
	RevealInManager func(path string) error
}

// DefaultOpener uses the platform helpers.
func DefaultOpener() Opener {
	return Opener{
		OpenDirectory:   platform.OpenDirectory,
		OpenFile:        platform.OpenFileWithDefaultApp,
		RevealInManager: platform.OpenFileInManager,
	}
}

// Desktop implements tray.Host with Fyne windows and system notifications.
// The capture engine, the editors and the importer are external; requests for
// them are surfaced as notifications.
type Desktop struct {
	app      fyne.App
	settings *config.Settings
	loc      *localization.Localization
	opener   Opener
	logger   zerolog.Logger

	main        *MainWindow
	setup       *SetupWindow
	settingsDlg *SettingsDialog
	bridge      Bridge

	// OnRootsChanged runs after the recordings directory was changed in the
	// settings dialog.
	OnRootsChanged func()
}

var _ tray.Host = (*Desktop)(nil)

// NewDesktop creates the host windows. They stay hidden until requested.
func NewDesktop(app fyne.App, settings *config.Settings, loc *localization.Localization, opener Opener) *Desktop {
	d := &Desktop{
		app:      app,
		settings: settings,
		loc:      loc,
		opener:   opener,
		logger:   zerolog.Nop(),
	}

	d.main = NewMainWindow(app, loc)
	d.main.OnOpen = d.openItem
	d.main.OnReveal = d.revealItem
	d.main.OnSettings = d.ShowSettings

	d.setup = NewSetupWindow(app, loc)
	d.setup.OnVisibilityChanged = func(open bool) {
		if d.bridge != nil {
			d.bridge.SetSetupOpen(open)
		}
	}

	d.settingsDlg = NewSettingsDialog(settings, loc, d.main.Window())
	d.settingsDlg.OnSaved = func(dirChanged bool) {
		if dirChanged && d.OnRootsChanged != nil {
			d.OnRootsChanged()
		}
	}
	return d
}

// SetLogger sets the logger for failed OS operations.
func (d *Desktop) SetLogger(logger zerolog.Logger) {
	d.logger = logger
}

// Attach connects the bridge once it exists; the bridge needs the host first.
func (d *Desktop) Attach(b Bridge) {
	d.bridge = b
}

// MainWindow exposes the main window.
func (d *Desktop) MainWindow() *MainWindow {
	return d.main
}

// RefreshTexts reapplies translations to every open surface.
func (d *Desktop) RefreshTexts() {
	d.main.RefreshTexts()
}

// ShowMain shows the main window with the current recent items.
func (d *Desktop) ShowMain() {
	if d.bridge != nil {
		d.main.SetItems(d.bridge.Items())
	}
	d.main.Show()
}

// OpenTargetPicker hands a capture request to the capture engine.
func (d *Desktop) OpenTargetPicker(target tray.CaptureTarget, mode model.Mode) {
	d.logger.Info().Str("target", string(target)).Str("mode", mode.String()).Msg("capture requested")
	d.notify(localization.KeyCaptureRequested, d.targetLabel(target, mode)+MiddleDotSeparator+d.modeLabel(mode))
}

// TakeScreenshot hands a display screenshot request to the capture engine.
func (d *Desktop) TakeScreenshot() {
	d.logger.Info().Msg("screenshot requested")
	d.notify(localization.KeyCaptureRequested, d.loc.GetText(localization.KeyTakeScreenshot))
}

// ImportVideo lets the user pick a video file for the importer.
func (d *Desktop) ImportVideo() {
	d.main.Show()
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			d.logger.Error().Err(err).Msg("import dialog failed")
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		_ = reader.Close()

		d.logger.Info().Str("path", path).Msg("import requested")
		d.notify(localization.KeyImportRequested, filepath.Base(path))
	}, d.main.Window())
	fd.SetFilter(storage.NewExtensionFileFilter(ImportExtensions))
	fd.Show()
}

// ShowLibrary opens root in the file manager, creating it first.
func (d *Desktop) ShowLibrary(root string) {
	if err := platform.CreateDirectoryIfNotExists(root); err != nil {
		d.logger.Error().Err(err).Str("dir", root).Msg("failed to create library directory")
		return
	}
	if err := d.opener.OpenDirectory(root); err != nil {
		d.logger.Error().Err(err).Str("dir", root).Msg("failed to open library")
	}
}

// ShowSettings opens the settings dialog over the main window.
func (d *Desktop) ShowSettings() {
	d.main.Show()
	d.settingsDlg.Show()
}

// ShowSetup opens the permissions window.
func (d *Desktop) ShowSetup() {
	d.setup.Show()
}

// StopRecording asks the capture engine to stop. Without an engine attached
// the stop is reported back immediately.
func (d *Desktop) StopRecording() {
	if d.bridge == nil {
		return
	}
	if err := d.bridge.Dispatch(tray.RecordingStopped{}); err != nil {
		d.logger.Error().Err(err).Msg("failed to dispatch recording stop")
	}
}

// OpenEditor reveals a studio project for editing.
func (d *Desktop) OpenEditor(projectPath string) {
	d.logger.Info().Str("path", projectPath).Msg("editor requested")
	d.revealItem(projectPath)
}

// OpenScreenshotEditor reveals a screenshot project for editing.
func (d *Desktop) OpenScreenshotEditor(projectPath string) {
	d.logger.Info().Str("path", projectPath).Msg("screenshot editor requested")
	d.revealItem(projectPath)
}

// OpenPath opens path with the default application.
func (d *Desktop) OpenPath(path string) error {
	return d.opener.OpenFile(path)
}

// Quit exits the application.
func (d *Desktop) Quit() {
	d.app.Quit()
}

func (d *Desktop) openItem(path string) {
	if d.bridge == nil {
		return
	}
	if err := d.bridge.HandleAction(string(menu.PreviousItemID(path))); err != nil {
		d.logger.Error().Err(err).Str("path", path).Msg("failed to open recent item")
	}
}

func (d *Desktop) revealItem(path string) {
	if err := d.opener.RevealInManager(path); err != nil {
		d.logger.Error().Err(err).Str("path", path).Msg("failed to reveal item")
	}
}

// notify sends a system notification and mirrors it in the main window.
func (d *Desktop) notify(titleKey, content string) {
	title := d.loc.GetText(titleKey)
	d.app.SendNotification(fyne.NewNotification(title, content))
	d.main.ShowNotice(title + MiddleDotSeparator + content)
}

func (d *Desktop) targetLabel(target tray.CaptureTarget, mode model.Mode) string {
	var key string
	switch target {
	case tray.TargetWindow:
		key = localization.KeyRecordWindow
	case tray.TargetArea:
		key = localization.KeyRecordArea
	default:
		key = localization.KeyRecordDisplay
	}
	if mode.IsScreenshot() {
		switch target {
		case tray.TargetWindow:
			key = localization.KeyScreenshotWindow
		case tray.TargetArea:
			key = localization.KeyScreenshotArea
		default:
			key = localization.KeyScreenshotDisplay
		}
	}
	return d.loc.GetText(key)
}

func (d *Desktop) modeLabel(mode model.Mode) string {
	switch mode {
	case model.ModeInstant:
		return d.loc.GetText(localization.KeyModeInstant)
	case model.ModeScreenshot:
		return d.loc.GetText(localization.KeyModeScreenshot)
	default:
		return d.loc.GetText(localization.KeyModeStudio)
	}
}

package config

import (
	"os"
	"path/filepath"
	"sync"

	"fyne.io/fyne/v2"
	"go.trai.ch/zerr"

	"github.com/ytget/captray/internal/localization"
	"github.com/ytget/captray/internal/model"
	"github.com/ytget/captray/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage      = "app_language"
	KeyRecordingMode = "recording_mode"
	KeyRecordingsDir = "recordings_directory"
)

// Default values
const (
	DefaultLanguage       = localization.DefaultLanguage
	DefaultRecordingsName = "Cap Recordings"
)

// Layout below the recordings base directory
const (
	recordingsSubdir  = "recordings"
	screenshotsSubdir = "exports/screenshot"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App

	listenMu     sync.Mutex
	lastLanguage string
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetMode returns the persisted recording mode. Unknown values read as the default.
func (s *Settings) GetMode() model.Mode {
	mode, err := model.ParseMode(s.app.Preferences().String(KeyRecordingMode))
	if err != nil {
		return model.DefaultMode
	}
	return mode
}

// SetMode persists the recording mode
func (s *Settings) SetMode(mode model.Mode) error {
	if !mode.IsValid() {
		return zerr.With(model.ErrInvalidMode, "mode", string(mode))
	}
	s.app.Preferences().SetString(KeyRecordingMode, mode.String())
	return nil
}

// GetRecordingsSavePath returns the custom recordings location, or "" when unset
func (s *Settings) GetRecordingsSavePath() string {
	return s.app.Preferences().String(KeyRecordingsDir)
}

// SetRecordingsSavePath sets a custom recordings location; "" restores the default
func (s *Settings) SetRecordingsSavePath(dir string) {
	s.app.Preferences().SetString(KeyRecordingsDir, dir)
}

// RecordingsBasePath resolves the directory holding recordings and exports:
// the custom path, then the default location.
func (s *Settings) RecordingsBasePath() string {
	if dir := s.GetRecordingsSavePath(); dir != "" {
		return dir
	}
	return DefaultRecordingsBasePath()
}

// RecordingsRoot is the directory scanned for recording projects
func (s *Settings) RecordingsRoot() string {
	return RecordingsRootIn(s.RecordingsBasePath())
}

// ScreenshotsRoot is the directory scanned for screenshot projects
func (s *Settings) ScreenshotsRoot() string {
	return ScreenshotsRootIn(s.RecordingsBasePath())
}

// DefaultRecordingsBasePath is ~/Videos/Cap Recordings, or a directory of the
// same name under the temp directory when there is no home.
func DefaultRecordingsBasePath() string {
	if videos, err := platform.GetHomeVideosDir(); err == nil {
		return filepath.Join(videos, DefaultRecordingsName)
	}
	return filepath.Join(os.TempDir(), DefaultRecordingsName)
}

// RecordingsRootIn returns the recordings root below base.
func RecordingsRootIn(base string) string {
	return filepath.Join(base, recordingsSubdir)
}

// ScreenshotsRootIn returns the screenshots root below base.
func ScreenshotsRootIn(base string) string {
	return filepath.Join(base, filepath.FromSlash(screenshotsSubdir))
}

// OnLanguageChanged registers fn to run whenever the stored language changes.
// Other preference writes do not trigger it.
func (s *Settings) OnLanguageChanged(fn func()) {
	s.listenMu.Lock()
	s.lastLanguage = s.GetLanguage()
	s.listenMu.Unlock()

	s.app.Preferences().AddChangeListener(func() {
		lang := s.GetLanguage()

		s.listenMu.Lock()
		changed := lang != s.lastLanguage
		s.lastLanguage = lang
		s.listenMu.Unlock()

		if changed {
			fn()
		}
	})
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return localization.GetAvailableLanguages()
}

// GetModeOptions returns the selectable recording modes in display order
func (s *Settings) GetModeOptions() []model.Mode {
	return model.AllModes()
}

package config

import (
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/captray/internal/model"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("zh-CN")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "zh-CN" {
		t.Errorf("Expected language 'zh-CN', got %s", retrievedLang)
	}
}

func TestMode(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if mode := settings.GetMode(); mode != model.DefaultMode {
		t.Errorf("Expected default mode %s, got %s", model.DefaultMode, mode)
	}

	if err := settings.SetMode(model.ModeScreenshot); err != nil {
		t.Fatalf("SetMode returned error: %v", err)
	}
	if mode := settings.GetMode(); mode != model.ModeScreenshot {
		t.Errorf("Expected mode %s, got %s", model.ModeScreenshot, mode)
	}

	// Invalid modes are rejected and leave the stored value alone
	if err := settings.SetMode(model.Mode("video")); err == nil {
		t.Error("Expected error for invalid mode")
	}
	if mode := settings.GetMode(); mode != model.ModeScreenshot {
		t.Errorf("Invalid SetMode changed mode to %s", mode)
	}

	// Corrupt stored values fall back to the default
	app.Preferences().SetString(KeyRecordingMode, "garbage")
	if mode := settings.GetMode(); mode != model.DefaultMode {
		t.Errorf("Expected fallback mode %s, got %s", model.DefaultMode, mode)
	}
}

func TestRecordingsRoots(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	base := settings.RecordingsBasePath()
	if base == "" {
		t.Fatal("Recordings base path should not be empty")
	}
	if filepath.Base(base) != DefaultRecordingsName {
		t.Errorf("Expected default base to end in %q, got %s", DefaultRecordingsName, base)
	}

	// Test setting custom value
	custom := filepath.Join(t.TempDir(), "Cap")
	settings.SetRecordingsSavePath(custom)

	if got := settings.RecordingsRoot(); got != filepath.Join(custom, "recordings") {
		t.Errorf("Unexpected recordings root %s", got)
	}
	if got := settings.ScreenshotsRoot(); got != filepath.Join(custom, "exports", "screenshot") {
		t.Errorf("Unexpected screenshots root %s", got)
	}

	// Empty path restores the default
	settings.SetRecordingsSavePath("")
	if got := settings.RecordingsBasePath(); got != base {
		t.Errorf("Expected default base %s, got %s", base, got)
	}
}

func TestRootsIn(t *testing.T) {
	base := filepath.Join("srv", "cap")

	if got := RecordingsRootIn(base); got != filepath.Join(base, "recordings") {
		t.Errorf("Unexpected recordings root %s", got)
	}
	if got := ScreenshotsRootIn(base); got != filepath.Join(base, "exports", "screenshot") {
		t.Errorf("Unexpected screenshots root %s", got)
	}
	if got := NewSettings(test.NewApp()).RecordingsBasePath(); got != DefaultRecordingsBasePath() {
		t.Errorf("Expected unset base to be the default, got %s", got)
	}
}

func TestOnLanguageChanged(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	var calls atomic.Int32
	settings.OnLanguageChanged(func() { calls.Add(1) })

	settings.SetLanguage("ja")
	waitFor(t, func() bool { return calls.Load() == 1 })

	// Unrelated preference writes are ignored
	if err := settings.SetMode(model.ModeInstant); err != nil {
		t.Fatalf("SetMode returned error: %v", err)
	}
	settings.SetLanguage("ja")
	time.Sleep(50 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Errorf("Expected callback count to stay 1, got %d", got)
	}
}

// waitFor polls cond because preference listeners may run off the calling goroutine.
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met before deadline")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"en", "zh-CN", "ja", "ko"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}

func TestGetModeOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetModeOptions()
	expected := []model.Mode{model.ModeStudio, model.ModeInstant, model.ModeScreenshot}

	if len(options) != len(expected) {
		t.Fatalf("Expected %d mode options, got %d", len(expected), len(options))
	}
	for i, mode := range expected {
		if options[i] != mode {
			t.Errorf("Mode option %d: expected %s, got %s", i, mode, options[i])
		}
	}
}

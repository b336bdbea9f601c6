package main

import (
	"context"
	"os"
	"runtime"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/rs/zerolog"

	"github.com/ytget/captray/internal/config"
	"github.com/ytget/captray/internal/localization"
	"github.com/ytget/captray/internal/menu"
	"github.com/ytget/captray/internal/model"
	"github.com/ytget/captray/internal/platform"
	"github.com/ytget/captray/internal/recents"
	"github.com/ytget/captray/internal/tray"
	"github.com/ytget/captray/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "so.cap.tray"
	AppName = "Cap"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	logger.Info().Str("version", version).Msg("Cap tray starting")

	myApp := app.NewWithID(AppID)
	settings := config.NewSettings(myApp)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme(settings.GetMode()))

	desk, ok := myApp.(desktop.App)
	if !ok {
		logger.Fatal().Msg("system tray is not supported by this driver")
	}

	loc, err := localization.NewLocalization()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load translations")
	}
	loc.SetLanguage(settings.GetLanguage())

	presenter := ui.NewTrayPresenter(desk, AppName)
	presenter.SetLogger(logger.With().Str("component", "presenter").Logger())
	presenter.OnModeChanged = func(mode model.Mode) {
		myApp.Settings().SetTheme(ui.NewCompactTheme(mode))
	}

	host := ui.NewDesktop(myApp, settings, loc, ui.DefaultOpener())
	host.SetLogger(logger.With().Str("component", "host").Logger())

	loader := recents.NewLoader()
	loader.SetLogger(logger.With().Str("component", "recents").Logger())

	bridge := tray.New(settings, presenter, host, loader,
		menu.Projector{Translator: loc, AppName: AppName, Version: version},
		tray.Options{
			RunOnMain:  fyne.Do,
			StaticIcon: runtime.GOOS == platform.OSWindows,
			Logger:     logger.With().Str("component", "tray").Logger(),
		})
	host.Attach(bridge)
	presenter.SetHandler(bridge.HandleAction)

	ctx, cancel := context.WithCancel(context.Background())
	watch := &rootWatcher{bridge: bridge, logger: logger.With().Str("component", "watcher").Logger()}

	settings.OnLanguageChanged(func() {
		loc.SetLanguage(settings.GetLanguage())
		fyne.Do(host.RefreshTexts)
		_ = bridge.Dispatch(tray.LocaleChanged{})
	})

	host.OnRootsChanged = func() {
		watch.start(ctx, settings.RecordingsRoot(), settings.ScreenshotsRoot())
		bridge.Start(ctx)
	}

	myApp.Lifecycle().SetOnStarted(func() {
		watch.start(ctx, settings.RecordingsRoot(), settings.ScreenshotsRoot())
		bridge.Start(ctx)
	})

	myApp.Run()

	cancel()
	watch.stop()
	bridge.Wait()
	logger.Info().Msg("Cap tray stopped")
}

// rootWatcher reports finished projects under the current roots to the bridge
// and can be restarted when the roots move.
type rootWatcher struct {
	bridge *tray.Bridge
	logger zerolog.Logger

	mu      sync.Mutex
	current *platform.Watcher
}

func (rw *rootWatcher) start(ctx context.Context, roots ...string) {
	rw.stop()

	w, err := platform.NewWatcher(platform.WatcherConfig{
		Roots:  roots,
		Marker: recents.MetaFileName,
		OnProject: func(dir string) {
			if err := rw.bridge.Dispatch(tray.NewItemAdded{Path: dir}); err != nil {
				rw.logger.Error().Err(err).Str("dir", dir).Msg("failed to dispatch new item")
			}
		},
	})
	if err != nil {
		rw.logger.Error().Err(err).Strs("roots", roots).Msg("failed to watch roots")
		return
	}
	w.SetLogger(rw.logger)

	rw.mu.Lock()
	rw.current = w
	rw.mu.Unlock()

	go w.Run(ctx)
}

func (rw *rootWatcher) stop() {
	rw.mu.Lock()
	defer rw.mu.Unlock()
	if rw.current == nil {
		return
	}
	if err := rw.current.Close(); err != nil {
		rw.logger.Warn().Err(err).Msg("failed to close watcher")
	}
	rw.current = nil
}

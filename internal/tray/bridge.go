// Package tray connects lifecycle events, the recent-items cache and the menu
// projector to a platform tray. All menu and icon updates go through a single
// designated context supplied by the caller.
package tray

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
	"go.trai.ch/zerr"

	"github.com/ytget/captray/internal/menu"
	"github.com/ytget/captray/internal/model"
	"github.com/ytget/captray/internal/recents"
)

// ErrUnknownEvent is returned by Dispatch for a nil event.
var ErrUnknownEvent = zerr.New("tray: unknown event")

// Settings is the persisted configuration the bridge reads and writes.
type Settings interface {
	GetLanguage() string
	GetMode() model.Mode
	SetMode(mode model.Mode) error
	RecordingsRoot() string
	ScreenshotsRoot() string
}

// Presenter attaches menus and icons to the platform tray. Its methods are
// only called from the designated context.
type Presenter interface {
	SetMenu(tree menu.Tree)
	SetIcon(png []byte)
}

// ModeIndicator is implemented by presenters that restyle more than the icon
// when the recording mode changes. ShowMode runs in the designated context,
// also while the icon is static or shows the recording indicator.
type ModeIndicator interface {
	ShowMode(mode model.Mode)
}

// ItemLoader discovers and loads recent items.
type ItemLoader interface {
	Scan(ctx context.Context, recordingsRoot, screenshotsRoot string, includeThumbnails bool) []model.Item
	Load(path, screenshotsRoot string, includeThumbnail bool) (model.Item, bool)
	Thumbnail(path, screenshotsRoot string) (*model.Thumbnail, bool)
}

// Options tunes a Bridge.
type Options struct {
	// RunOnMain runs fn in the designated context. The default runs fn
	// synchronously under a mutex.
	RunOnMain func(fn func())

	// StaticIcon keeps the initial icon forever (Windows).
	StaticIcon bool

	Logger zerolog.Logger
}

// Bridge owns the recent-items cache and keeps the tray in sync with it.
type Bridge struct {
	settings  Settings
	presenter Presenter
	host      Host
	loader    ItemLoader
	projector menu.Projector
	cache     *recents.Cache

	runOnMain  func(func())
	staticIcon bool
	logger     zerolog.Logger

	recording atomic.Bool
	setupOpen atomic.Bool

	modeMu sync.RWMutex
	mode   model.Mode

	mainMu  sync.Mutex
	workers sync.WaitGroup
}

// New creates a bridge. Nothing is scanned until Start.
func New(settings Settings, presenter Presenter, host Host, loader ItemLoader, projector menu.Projector, opts Options) *Bridge {
	b := &Bridge{
		settings:   settings,
		presenter:  presenter,
		host:       host,
		loader:     loader,
		projector:  projector,
		cache:      recents.NewCache(recents.Capacity),
		runOnMain:  opts.RunOnMain,
		staticIcon: opts.StaticIcon,
		logger:     opts.Logger,
		mode:       settings.GetMode(),
	}
	if b.runOnMain == nil {
		b.runOnMain = b.serialized
	}
	return b
}

func (b *Bridge) serialized(fn func()) {
	b.mainMu.Lock()
	defer b.mainMu.Unlock()
	fn()
}

// Start scans the roots without thumbnails, attaches the first menu and then
// backfills thumbnails in one pass followed by a single rebuild.
func (b *Bridge) Start(ctx context.Context) {
	b.spawn(func() {
		recordings, screenshots := b.settings.RecordingsRoot(), b.settings.ScreenshotsRoot()

		items := b.loader.Scan(ctx, recordings, screenshots, false)
		b.cache.Replace(items)
		b.logger.Info().Int("items", len(items)).Str("recordings", recordings).Msg("recent items loaded")

		b.runOnMain(func() {
			b.presenter.SetIcon(b.currentIcon())
			b.showMode(b.Mode())
			b.rebuildNow()
		})

		b.backfill(ctx, screenshots)
	})
}

// backfill computes thumbnails for the entries that lacked one when the pass
// started. Entries added later are not serviced.
func (b *Bridge) backfill(ctx context.Context, screenshotsRoot string) {
	missing := b.cache.MissingThumbnails()
	filled := 0
	for _, path := range missing {
		if ctx.Err() != nil {
			break
		}
		thumb, ok := b.loader.Thumbnail(path, screenshotsRoot)
		if !ok {
			continue
		}
		if b.cache.UpdateThumbnail(path, thumb) {
			filled++
		}
	}
	b.logger.Debug().Int("missing", len(missing)).Int("filled", filled).Msg("thumbnail backfill done")
	b.Rebuild()
}

// Dispatch applies a lifecycle event. Only a failed mode write is reported;
// the icon and menu are updated either way.
func (b *Bridge) Dispatch(ev Event) error {
	switch e := ev.(type) {
	case RecordingStarted:
		b.recording.Store(true)
		b.swapIcon(RecordingIndicatorIcon())
		return nil

	case RecordingStopped:
		b.recording.Store(false)
		b.swapIcon(IconForMode(b.Mode()))
		return nil

	case NewItemAdded:
		b.addItem(e.ProjectPath())
		return nil

	case ModeChanged:
		return b.changeMode(e.Mode)

	case LocaleChanged:
		b.Rebuild()
		return nil

	default:
		return zerr.With(ErrUnknownEvent, "event", ev)
	}
}

func (b *Bridge) addItem(path string) {
	b.spawn(func() {
		item, ok := b.loader.Load(path, b.settings.ScreenshotsRoot(), true)
		if !ok {
			b.logger.Debug().Str("path", path).Msg("new item not loadable")
			return
		}
		b.runOnMain(func() {
			b.cache.UpsertFront(item)
			b.rebuildNow()
		})
	})
}

func (b *Bridge) changeMode(mode model.Mode) error {
	if !mode.IsValid() {
		return zerr.With(model.ErrInvalidMode, "mode", string(mode))
	}

	err := b.settings.SetMode(mode)
	if err != nil {
		b.logger.Error().Err(err).Str("mode", mode.String()).Msg("failed to persist recording mode")
		err = zerr.With(zerr.Wrap(err, "persist mode"), "mode", mode.String())
	}

	b.modeMu.Lock()
	b.mode = mode
	b.modeMu.Unlock()

	b.runOnMain(func() {
		if !b.staticIcon && !b.recording.Load() {
			b.presenter.SetIcon(IconForMode(mode))
		}
		b.showMode(mode)
		b.rebuildNow()
	})
	return err
}

// currentIcon is the icon the tray should show right now.
func (b *Bridge) currentIcon() []byte {
	switch {
	case b.staticIcon:
		return DefaultIcon()
	case b.recording.Load():
		return RecordingIndicatorIcon()
	default:
		return IconForMode(b.Mode())
	}
}

// showMode must run in the designated context.
func (b *Bridge) showMode(mode model.Mode) {
	if mi, ok := b.presenter.(ModeIndicator); ok {
		mi.ShowMode(mode)
	}
}

// Mode returns the mode the menu is currently projected for.
func (b *Bridge) Mode() model.Mode {
	b.modeMu.RLock()
	defer b.modeMu.RUnlock()
	return b.mode
}

// IsRecording reports whether a capture is in progress.
func (b *Bridge) IsRecording() bool {
	return b.recording.Load()
}

// SetSetupOpen records whether the permissions setup window is showing and
// rebuilds the menu accordingly.
func (b *Bridge) SetSetupOpen(open bool) {
	b.setupOpen.Store(open)
	b.Rebuild()
}

// OnTrayClick handles a click on the tray entry itself. While recording it
// requests a stop and reports true, meaning the default surface must not open.
// The open_main action goes through it, since that is the entry a tray click
// lands on when the driver offers no click hook of its own.
func (b *Bridge) OnTrayClick() bool {
	if !b.recording.Load() {
		return false
	}
	b.host.StopRecording()
	return true
}

// Items returns the cached items in menu order.
func (b *Bridge) Items() []model.Item {
	return b.cache.Snapshot()
}

// Rebuild projects the current state and attaches it in the designated context.
func (b *Bridge) Rebuild() {
	b.runOnMain(b.rebuildNow)
}

// rebuildNow must run in the designated context.
func (b *Bridge) rebuildNow() {
	tree := b.projector.Project(b.settings.GetLanguage(), b.Mode(), b.setupOpen.Load(), b.cache.Snapshot())
	b.presenter.SetMenu(tree)
}

func (b *Bridge) swapIcon(icon []byte) {
	if b.staticIcon {
		return
	}
	b.runOnMain(func() {
		b.presenter.SetIcon(icon)
	})
}

func (b *Bridge) spawn(fn func()) {
	b.workers.Add(1)
	go func() {
		defer b.workers.Done()
		fn()
	}()
}

// Wait blocks until every worker started so far has finished.
func (b *Bridge) Wait() {
	b.workers.Wait()
}

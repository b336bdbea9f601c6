package tray_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ytget/captray/internal/localization"
	"github.com/ytget/captray/internal/menu"
	"github.com/ytget/captray/internal/model"
	"github.com/ytget/captray/internal/tray"
)

type fakeSettings struct {
	mu          sync.Mutex
	lang        string
	mode        model.Mode
	setErr      error
	recordings  string
	screenshots string
}

func (s *fakeSettings) GetLanguage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lang
}

func (s *fakeSettings) setLanguage(lang string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lang = lang
}

func (s *fakeSettings) GetMode() model.Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

func (s *fakeSettings) SetMode(mode model.Mode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.setErr != nil {
		return s.setErr
	}
	s.mode = mode
	return nil
}

func (s *fakeSettings) RecordingsRoot() string  { return s.recordings }
func (s *fakeSettings) ScreenshotsRoot() string { return s.screenshots }

// mainContext stands in for the UI thread: it serializes work and lets the
// presenter assert that it is only touched from inside it.
type mainContext struct {
	mu     sync.Mutex
	inside atomic.Bool
}

func (m *mainContext) run(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inside.Store(true)
	defer m.inside.Store(false)
	fn()
}

type fakePresenter struct {
	t    *testing.T
	main *mainContext

	mu    sync.Mutex
	menus []menu.Tree
	icons [][]byte
}

func (p *fakePresenter) SetMenu(tree menu.Tree) {
	if !p.main.inside.Load() {
		p.t.Error("SetMenu called outside the designated context")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.menus = append(p.menus, tree)
}

func (p *fakePresenter) SetIcon(icon []byte) {
	if !p.main.inside.Load() {
		p.t.Error("SetIcon called outside the designated context")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.icons = append(p.icons, icon)
}

func (p *fakePresenter) menuCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.menus)
}

func (p *fakePresenter) lastMenu() menu.Tree {
	p.mu.Lock()
	defer p.mu.Unlock()
	require.NotEmpty(p.t, p.menus)
	return p.menus[len(p.menus)-1]
}

func (p *fakePresenter) iconHistory() [][]byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([][]byte(nil), p.icons...)
}

// modePresenter also restyles on mode changes.
type modePresenter struct {
	*fakePresenter
	modes []model.Mode
}

func (p *modePresenter) ShowMode(mode model.Mode) {
	if !p.main.inside.Load() {
		p.t.Error("ShowMode called outside the designated context")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.modes = append(p.modes, mode)
}

func (p *modePresenter) modeHistory() []model.Mode {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]model.Mode(nil), p.modes...)
}

type hostCall struct {
	name string
	arg  string
	mode model.Mode
}

type fakeHost struct {
	mu      sync.Mutex
	calls   []hostCall
	openErr error
}

func (h *fakeHost) record(c hostCall) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls = append(h.calls, c)
}

func (h *fakeHost) history() []hostCall {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]hostCall(nil), h.calls...)
}

func (h *fakeHost) ShowMain() { h.record(hostCall{name: "main"}) }
func (h *fakeHost) OpenTargetPicker(target tray.CaptureTarget, mode model.Mode) {
	h.record(hostCall{name: "picker", arg: string(target), mode: mode})
}
func (h *fakeHost) TakeScreenshot()          { h.record(hostCall{name: "screenshot"}) }
func (h *fakeHost) ImportVideo()             { h.record(hostCall{name: "import"}) }
func (h *fakeHost) ShowLibrary(root string)  { h.record(hostCall{name: "library", arg: root}) }
func (h *fakeHost) ShowSettings()            { h.record(hostCall{name: "settings"}) }
func (h *fakeHost) ShowSetup()               { h.record(hostCall{name: "setup"}) }
func (h *fakeHost) StopRecording()           { h.record(hostCall{name: "stop"}) }
func (h *fakeHost) OpenEditor(path string)   { h.record(hostCall{name: "editor", arg: path}) }
func (h *fakeHost) Quit()                    { h.record(hostCall{name: "quit"}) }
func (h *fakeHost) OpenScreenshotEditor(path string) {
	h.record(hostCall{name: "screenshot-editor", arg: path})
}
func (h *fakeHost) OpenPath(path string) error {
	h.record(hostCall{name: "open", arg: path})
	return h.openErr
}

// fakeLoader serves items from memory.
type fakeLoader struct {
	mu         sync.Mutex
	scan       []model.Item
	items      map[string]model.Item
	thumbs     map[string]*model.Thumbnail
	thumbCalls []string

	// thumbGate, when set, blocks every Thumbnail call until closed.
	thumbGate chan struct{}
}

func newFakeLoader() *fakeLoader {
	return &fakeLoader{
		items:  make(map[string]model.Item),
		thumbs: make(map[string]*model.Thumbnail),
	}
}

func (l *fakeLoader) Scan(_ context.Context, _, _ string, includeThumbnails bool) []model.Item {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]model.Item, len(l.scan))
	copy(out, l.scan)
	if includeThumbnails {
		for i := range out {
			out[i].Thumbnail = l.thumbs[out[i].Path]
		}
	}
	return out
}

func (l *fakeLoader) Load(path, _ string, includeThumbnail bool) (model.Item, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	it, ok := l.items[path]
	if ok && includeThumbnail {
		it.Thumbnail = l.thumbs[path]
	}
	return it, ok
}

func (l *fakeLoader) Thumbnail(path, _ string) (*model.Thumbnail, bool) {
	l.mu.Lock()
	l.thumbCalls = append(l.thumbCalls, path)
	gate := l.thumbGate
	l.mu.Unlock()

	if gate != nil {
		<-gate
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	t, ok := l.thumbs[path]
	return t, ok
}

func (l *fakeLoader) thumbnailCalls() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.thumbCalls...)
}

type harness struct {
	settings  *fakeSettings
	presenter *fakePresenter
	host      *fakeHost
	loader    *fakeLoader
	bridge    *tray.Bridge
}

func newHarness(t *testing.T, opts tray.Options) *harness {
	t.Helper()
	loc, err := localization.NewLocalization()
	require.NoError(t, err)

	main := &mainContext{}
	h := &harness{
		settings: &fakeSettings{
			lang:        "en",
			mode:        model.ModeStudio,
			recordings:  "/data/recordings",
			screenshots: "/data/exports/screenshot",
		},
		presenter: &fakePresenter{t: t, main: main},
		host:      &fakeHost{},
		loader:    newFakeLoader(),
	}
	opts.RunOnMain = main.run
	h.bridge = tray.New(h.settings, h.presenter, h.host, h.loader,
		menu.Projector{Translator: loc, AppName: "Cap", Version: "0.1.0"}, opts)
	return h
}

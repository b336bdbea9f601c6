package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"github.com/cespare/xxhash/v2"
	"github.com/rs/zerolog"

	"github.com/ytget/captray/internal/menu"
	"github.com/ytget/captray/internal/model"
	"github.com/ytget/captray/internal/thumbnail"
	"github.com/ytget/captray/internal/tray"
)

// SystemTray is the part of desktop.App the presenter drives.
type SystemTray interface {
	SetSystemTrayMenu(menu *fyne.Menu)
	SetSystemTrayIcon(icon fyne.Resource)
}

// ActionHandler receives the id of a clicked menu entry.
type ActionHandler func(id string) error

// TrayPresenter converts projected menu trees into Fyne menus and attaches
// them to the system tray. Its methods must run on the Fyne main goroutine.
type TrayPresenter struct {
	tray    SystemTray
	title   string
	handler ActionHandler
	logger  zerolog.Logger

	current *fyne.Menu

	// OnModeChanged runs whenever the bridge applies a recording mode.
	OnModeChanged func(mode model.Mode)
}

var _ tray.ModeIndicator = (*TrayPresenter)(nil)

// NewTrayPresenter creates a presenter for tray. title labels the root menu.
func NewTrayPresenter(tray SystemTray, title string) *TrayPresenter {
	return &TrayPresenter{tray: tray, title: title, logger: zerolog.Nop()}
}

// SetLogger sets the logger used for failed actions.
func (p *TrayPresenter) SetLogger(logger zerolog.Logger) {
	p.logger = logger
}

// SetHandler sets the callback for clicked entries.
func (p *TrayPresenter) SetHandler(handler ActionHandler) {
	p.handler = handler
}

// SetMenu replaces the tray menu.
func (p *TrayPresenter) SetMenu(tree menu.Tree) {
	p.current = BuildMenu(p.title, tree, p.onAction)
	p.tray.SetSystemTrayMenu(p.current)
}

// SetIcon replaces the tray icon with PNG data.
func (p *TrayPresenter) SetIcon(png []byte) {
	if len(png) == 0 {
		return
	}
	p.tray.SetSystemTrayIcon(fyne.NewStaticResource(TrayIconName, png))
}

// ShowMode forwards the applied recording mode to OnModeChanged.
func (p *TrayPresenter) ShowMode(mode model.Mode) {
	if p.OnModeChanged != nil {
		p.OnModeChanged(mode)
	}
}

// Menu returns the last attached menu.
func (p *TrayPresenter) Menu() *fyne.Menu {
	return p.current
}

func (p *TrayPresenter) onAction(id string) {
	if p.handler == nil {
		p.logger.Warn().Str("id", id).Msg("menu action without handler")
		return
	}
	if err := p.handler(id); err != nil {
		p.logger.Error().Err(err).Str("id", id).Msg("menu action failed")
	}
}

// BuildMenu converts tree into a Fyne menu. Clicking an entry calls onAction
// with the entry id. The quit entry is flagged so the driver does not append
// its own.
func BuildMenu(title string, tree menu.Tree, onAction func(id string)) *fyne.Menu {
	return fyne.NewMenu(title, buildItems(tree.Entries, onAction)...)
}

func buildItems(entries []menu.Entry, onAction func(id string)) []*fyne.MenuItem {
	items := make([]*fyne.MenuItem, 0, len(entries))
	for _, e := range entries {
		if e.Separator {
			items = append(items, fyne.NewMenuItemSeparator())
			continue
		}

		id := string(e.ID)
		mi := fyne.NewMenuItem(e.Label, func() { onAction(id) })
		mi.Disabled = !e.Enabled
		mi.IsQuit = e.ID == menu.ActionQuit

		if e.IsSubmenu() {
			mi.Action = nil
			mi.ChildMenu = fyne.NewMenu(e.Label, buildItems(e.Children, onAction)...)
		}

		if e.Icon != nil {
			if data, err := thumbnail.EncodePNG(e.Icon); err == nil {
				mi.Icon = fyne.NewStaticResource(iconName(id), data)
			}
		}

		items = append(items, mi)
	}
	return items
}

// iconName derives a stable resource name from the entry id; the driver may
// cache icons by name.
func iconName(id string) string {
	return fmt.Sprintf("%s%016x.png", MenuIconPrefix, xxhash.Sum64String(id))
}

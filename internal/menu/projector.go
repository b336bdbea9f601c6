// Package menu projects cache contents, mode and locale into a tray menu tree.
// Projection is pure: the same inputs always produce the same tree.
package menu

import (
	"github.com/ytget/captray/internal/localization"
	"github.com/ytget/captray/internal/model"
)

const (
	selectedMarker   = "✓ "
	unselectedMarker = "   "
)

// Translator resolves a label key for a locale.
type Translator interface {
	Text(locale, key string) string
}

// Projector builds menu trees.
type Projector struct {
	Translator Translator
	AppName    string
	Version    string
}

// Project builds the tray menu. While the setup window is open only the
// permission request, the version label and quit are shown.
func (p Projector) Project(locale string, mode model.Mode, setupOpen bool, items []model.Item) Tree {
	t := func(key string) string { return p.Translator.Text(locale, key) }

	if setupOpen {
		return Tree{Entries: []Entry{
			item(ActionRequestPermissions, t(localization.KeyRequestPermissions)),
			separator(),
			p.versionEntry(),
			item(ActionQuit, t(localization.KeyQuit)),
		}}
	}

	entries := []Entry{item(ActionOpenMain, t(localization.KeyOpenMain))}

	if mode.IsScreenshot() {
		entries = append(entries,
			item(ActionRecordDisplay, t(localization.KeyScreenshotDisplay)),
			item(ActionRecordWindow, t(localization.KeyScreenshotWindow)),
			item(ActionRecordArea, t(localization.KeyScreenshotArea)),
		)
	} else {
		entries = append(entries,
			item(ActionRecordDisplay, t(localization.KeyRecordDisplay)),
			item(ActionRecordWindow, t(localization.KeyRecordWindow)),
			item(ActionRecordArea, t(localization.KeyRecordArea)),
			item(ActionTakeScreenshot, t(localization.KeyTakeScreenshot)),
		)
	}

	entries = append(entries,
		item(ActionImportVideo, t(localization.KeyImportVideo)),
		separator(),
		p.modeSubmenu(t, mode),
		p.previousSubmenu(t, items),
		separator(),
		item(ActionViewAllRecordings, t(localization.KeyViewAllRecordings)),
		item(ActionViewAllScreenshots, t(localization.KeyViewAllScreenshots)),
		item(ActionOpenSettings, t(localization.KeySettings)),
		separator(),
		p.versionEntry(),
		item(ActionQuit, t(localization.KeyQuit)),
	)

	return Tree{Entries: entries}
}

func (p Projector) modeSubmenu(t func(string) string, current model.Mode) Entry {
	modes := []struct {
		id   ActionID
		mode model.Mode
		key  string
	}{
		{ActionModeStudio, model.ModeStudio, localization.KeyModeStudio},
		{ActionModeInstant, model.ModeInstant, localization.KeyModeInstant},
		{ActionModeScreenshot, model.ModeScreenshot, localization.KeyModeScreenshot},
	}

	sub := Entry{ID: IDSelectMode, Label: t(localization.KeySelectMode), Enabled: true}
	for _, m := range modes {
		marker := unselectedMarker
		if m.mode == current {
			marker = selectedMarker
		}
		sub.Children = append(sub.Children, item(m.id, marker+t(m.key)))
	}
	return sub
}

func (p Projector) previousSubmenu(t func(string) string, items []model.Item) Entry {
	if len(items) == 0 {
		return Entry{
			ID:    IDPrevious,
			Label: t(localization.KeyPrevious),
			Children: []Entry{
				{ID: IDPreviousEmpty, Label: t(localization.KeyNoRecent)},
			},
		}
	}

	sub := Entry{ID: IDPrevious, Label: t(localization.KeyPrevious), Enabled: true}
	for _, it := range items {
		row := item(PreviousItemID(it.Path), kindGlyph(it.Kind)+TruncateTitle(it.DisplayName))
		if it.HasThumbnail() {
			row.Icon = it.Thumbnail
		}
		sub.Children = append(sub.Children, row)
	}
	return sub
}

func (p Projector) versionEntry() Entry {
	name := p.AppName
	if name == "" {
		name = "Cap"
	}
	return Entry{ID: IDVersion, Label: name + " v" + p.Version}
}

func kindGlyph(k model.ItemKind) string {
	switch k {
	case model.KindInstantRecording:
		return "⚡ "
	case model.KindScreenshot:
		return "📷 "
	default:
		return "🎬 "
	}
}

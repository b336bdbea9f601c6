package menu

import "github.com/ytget/captray/internal/model"

// Entry is one node of a projected menu. An entry with Children is a submenu;
// Enabled then applies to the submenu itself.
type Entry struct {
	ID        ActionID
	Label     string
	Enabled   bool
	Separator bool
	Icon      *model.Thumbnail
	Children  []Entry
}

// IsSubmenu reports whether the entry opens a nested menu.
func (e Entry) IsSubmenu() bool {
	return len(e.Children) > 0
}

// Tree is an immutable menu projection. It is handed to the presenter and
// discarded.
type Tree struct {
	Entries []Entry
}

// Find returns the first entry with id, searching submenus depth-first.
func (t Tree) Find(id ActionID) (Entry, bool) {
	return find(t.Entries, id)
}

func find(entries []Entry, id ActionID) (Entry, bool) {
	for _, e := range entries {
		if !e.Separator && e.ID == id {
			return e, true
		}
		if found, ok := find(e.Children, id); ok {
			return found, true
		}
	}
	return Entry{}, false
}

// Labels lists top-level labels in order; separators appear as "-".
func (t Tree) Labels() []string {
	out := make([]string, len(t.Entries))
	for i, e := range t.Entries {
		if e.Separator {
			out[i] = "-"
			continue
		}
		out[i] = e.Label
	}
	return out
}

func separator() Entry {
	return Entry{Separator: true}
}

func item(id ActionID, label string) Entry {
	return Entry{ID: id, Label: label, Enabled: true}
}

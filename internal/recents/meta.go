package recents

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"

	"github.com/ytget/captray/internal/model"
)

// MetaFileName is the project metadata file every artifact directory carries.
const MetaFileName = "recording-meta.json"

var (
	// ErrMetaRead is returned when the metadata file is missing or unreadable.
	ErrMetaRead = zerr.New("recents: read metadata")

	// ErrMetaParse is returned for malformed metadata.
	ErrMetaParse = zerr.New("recents: parse metadata")

	// ErrMetaKind is returned when metadata has neither studio nor instant markers.
	ErrMetaKind = zerr.New("recents: unknown recording kind")
)

// Meta is the subset of project metadata the tray needs.
type Meta struct {
	PrettyName string
	Kind       model.ItemKind // studio or instant; screenshots are classified by location
}

type rawMeta struct {
	PrettyName *string         `json:"pretty_name"`
	Display    json.RawMessage `json:"display"`
	Segments   json.RawMessage `json:"segments"`
	FPS        json.RawMessage `json:"fps"`
}

// ReadMeta loads the metadata file of the project directory at dir.
func ReadMeta(dir string) (Meta, error) {
	path := filepath.Join(dir, MetaFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return Meta{}, zerr.With(zerr.Wrap(err, ErrMetaRead.Error()), "path", path)
	}
	return ParseMeta(data)
}

// ParseMeta decodes metadata bytes. Studio markers take precedence over
// instant markers.
func ParseMeta(data []byte) (Meta, error) {
	var raw rawMeta
	if err := json.Unmarshal(data, &raw); err != nil {
		return Meta{}, zerr.Wrap(err, ErrMetaParse.Error())
	}
	if raw.PrettyName == nil {
		return Meta{}, zerr.With(ErrMetaParse, "field", "pretty_name")
	}

	meta := Meta{PrettyName: *raw.PrettyName}
	switch {
	case present(raw.Display) || present(raw.Segments):
		meta.Kind = model.KindStudioRecording
	case present(raw.FPS):
		meta.Kind = model.KindInstantRecording
	default:
		return Meta{}, ErrMetaKind
	}
	return meta, nil
}

func present(v json.RawMessage) bool {
	return len(v) > 0 && !bytes.Equal(v, []byte("null"))
}

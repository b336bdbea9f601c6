package recents

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ytget/captray/internal/model"
	"github.com/ytget/captray/internal/platform"
	"github.com/ytget/captray/internal/thumbnail"
)

// ScreenshotExt marks a screenshot project directory.
const ScreenshotExt = ".cap"

// recordingThumbnail is relative to a recording project directory.
var recordingThumbnail = filepath.Join("screenshots", "display.jpg")

var screenshotImageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
}

// Loader turns a project directory into a model.Item.
type Loader struct {
	// ThumbnailSize is the edge length of generated thumbnails.
	ThumbnailSize int

	// CreatedAt reports the creation time of path. The second result is
	// false when the platform cannot provide one.
	CreatedAt func(path string) (time.Time, bool)

	// Now is used when CreatedAt is unavailable.
	Now func() time.Time

	logger zerolog.Logger
}

// NewLoader creates a loader backed by the platform creation-time lookup.
func NewLoader() *Loader {
	return &Loader{
		ThumbnailSize: thumbnail.DefaultSize,
		CreatedAt:     platform.CreationTime,
		Now:           time.Now,
		logger:        zerolog.Nop(),
	}
}

// SetLogger sets the logger used for skipped directories.
func (l *Loader) SetLogger(logger zerolog.Logger) {
	l.logger = logger
}

// IsScreenshot reports whether path is a screenshot project: a .cap directory
// directly inside screenshotsRoot.
func IsScreenshot(path, screenshotsRoot string) bool {
	if filepath.Ext(path) != ScreenshotExt {
		return false
	}
	return filepath.Clean(filepath.Dir(path)) == filepath.Clean(screenshotsRoot)
}

// Load classifies path and builds an item. It returns false for anything
// that is not a readable project directory.
func (l *Loader) Load(path, screenshotsRoot string, includeThumbnail bool) (model.Item, bool) {
	log := l.logger.With().Str("path", path).Logger()

	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		log.Debug().Err(err).Msg("skipping non-directory")
		return model.Item{}, false
	}

	meta, err := ReadMeta(path)
	if err != nil {
		log.Debug().Err(err).Msg("skipping directory without usable metadata")
		return model.Item{}, false
	}

	item := model.Item{
		Path:        path,
		DisplayName: meta.PrettyName,
		Kind:        meta.Kind,
		CreatedAt:   l.createdAt(path),
	}
	if IsScreenshot(path, screenshotsRoot) {
		item.Kind = model.KindScreenshot
	}

	if includeThumbnail {
		item.Thumbnail, _ = l.thumbnailFor(path, item.Kind)
	}
	return item, true
}

// Thumbnail computes only the preview of path. It is used to backfill items
// that were loaded without one.
func (l *Loader) Thumbnail(path, screenshotsRoot string) (*model.Thumbnail, bool) {
	kind := model.KindStudioRecording
	if IsScreenshot(path, screenshotsRoot) {
		kind = model.KindScreenshot
	}
	return l.thumbnailFor(path, kind)
}

func (l *Loader) thumbnailFor(path string, kind model.ItemKind) (*model.Thumbnail, bool) {
	src, ok := thumbnailSource(path, kind)
	if !ok {
		return nil, false
	}

	size := l.ThumbnailSize
	if size <= 0 {
		size = thumbnail.DefaultSize
	}
	thumb, err := thumbnail.FromFile(src, size)
	if err != nil {
		l.logger.Debug().Err(err).Str("source", src).Msg("thumbnail unavailable")
		return nil, false
	}
	return thumb, true
}

// thumbnailSource locates the image a preview is generated from.
func thumbnailSource(path string, kind model.ItemKind) (string, bool) {
	if kind != model.KindScreenshot {
		src := filepath.Join(path, recordingThumbnail)
		if info, err := os.Stat(src); err == nil && info.Mode().IsRegular() {
			return src, true
		}
		return "", false
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return "", false
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if screenshotImageExts[strings.ToLower(filepath.Ext(e.Name()))] {
			return filepath.Join(path, e.Name()), true
		}
	}
	return "", false
}

func (l *Loader) createdAt(path string) time.Time {
	if l.CreatedAt != nil {
		if t, ok := l.CreatedAt(path); ok {
			return t
		}
	}
	if l.Now != nil {
		return l.Now()
	}
	return time.Now()
}

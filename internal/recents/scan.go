package recents

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/ytget/captray/internal/model"
)

// Scan loads every candidate under the two roots and returns at most
// Capacity items, newest first. Missing roots contribute nothing.
func (l *Loader) Scan(ctx context.Context, recordingsRoot, screenshotsRoot string, includeThumbnails bool) []model.Item {
	candidates := l.candidates(recordingsRoot, screenshotsRoot)
	if len(candidates) == 0 {
		return nil
	}

	loaded := make([]*model.Item, len(candidates))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, path := range candidates {
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			if item, ok := l.Load(path, screenshotsRoot, includeThumbnails); ok {
				loaded[i] = &item
			}
			return nil
		})
	}
	_ = g.Wait()

	items := make([]model.Item, 0, len(candidates))
	for _, it := range loaded {
		if it != nil {
			items = append(items, *it)
		}
	}

	sortNewestFirst(items)
	if len(items) > Capacity {
		items = items[:Capacity]
	}

	l.logger.Debug().
		Int("candidates", len(candidates)).
		Int("loaded", len(items)).
		Msg("scanned recent items")
	return items
}

// candidates lists every recordings-root entry plus the .cap entries of the
// screenshots root. Duplicate paths are dropped.
func (l *Loader) candidates(recordingsRoot, screenshotsRoot string) []string {
	seen := make(map[string]bool)
	var out []string

	add := func(root string, filter func(name string) bool) {
		if root == "" {
			return
		}
		entries, err := os.ReadDir(root)
		if err != nil {
			l.logger.Debug().Err(err).Str("root", root).Msg("root not readable")
			return
		}
		for _, e := range entries {
			if !filter(e.Name()) {
				continue
			}
			p := filepath.Join(root, e.Name())
			if seen[p] {
				continue
			}
			seen[p] = true
			out = append(out, p)
		}
	}

	add(recordingsRoot, func(string) bool { return true })
	add(screenshotsRoot, func(name string) bool { return filepath.Ext(name) == ScreenshotExt })
	return out
}

func sortNewestFirst(items []model.Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
}

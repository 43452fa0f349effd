// Package store persists the three bot collections (registered users,
// exam records, submitted files) as independent JSON documents. Each
// collection is loaded wholesale at startup and rewritten wholesale on
// every mutation; last full save wins.
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/m3rciful/classbot/core/logger"
	"log/slog"
)

// loadJSON reads a whole collection from path. A missing file or malformed
// content yields an empty collection, never an error: the bot must start
// with whatever state survives.
func loadJSON[T any](path string) []T {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Warn(logger.Background(), "store", "load.skip",
				slog.String("status", "skip"),
				slog.String("path", path),
				slog.String("err", err.Error()),
			)
		}
		return nil
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		logger.Warn(logger.Background(), "store", "load.malformed",
			slog.String("status", "skip"),
			slog.String("path", path),
			slog.String("err", err.Error()),
		)
		return nil
	}
	return items
}

// saveJSON rewrites the whole collection atomically: write to a temp file
// in the same directory, then rename over the target.
func saveJSON[T any](path string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

func logSaveErr(path string, err error) {
	if err == nil {
		return
	}
	logger.Error(logger.Background(), "store", "save.fail",
		slog.String("status", "fail"),
		slog.String("path", path),
		slog.String("err", err.Error()),
	)
}

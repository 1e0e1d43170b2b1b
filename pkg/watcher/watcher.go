package watcher

import (
	"context"
	"path/filepath"
	"time"

	"level_tracker_backend/pkg/logger"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// WatchFile calls onChange once writes to path have been quiet for debounce.
// The parent directory is watched so editors that replace the file are seen.
// It blocks until ctx is done.
func WatchFile(ctx context.Context, path string, debounce time.Duration, onChange func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(absPath)); err != nil {
		return err
	}

	// 防抖处理
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != absPath {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(debounce)
		case <-timer.C:
			logger.Log.Info("Catalog source changed", zap.String("path", absPath))
			onChange()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Log.Error("Catalog watcher error", zap.Error(err))
		}
	}
}

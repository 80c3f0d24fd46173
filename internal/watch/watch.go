// Package watch re-runs a callback when source files under a directory
// change. Events are debounced: the callback fires once per quiet period, not
// per write, and never concurrently with itself, since merge and split are
// not re-entrant against the same paths.
package watch

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is the quiet period before the callback fires.
const DefaultDebounce = 500 * time.Millisecond

// Options configures Run.
type Options struct {
	// Ext restricts which file changes trigger the callback (with dot).
	Ext string
	// Debounce overrides DefaultDebounce when positive.
	Debounce time.Duration
	// Logger receives watch lifecycle events. Nil means zap.NewNop().
	Logger *zap.Logger
}

// Run watches dir (recursively) until ctx is canceled, invoking onChange
// after each debounced burst of relevant events. Directories created during
// the watch are added on the fly. The callback runs on the watch goroutine,
// so invocations are serialized by construction.
func Run(ctx context.Context, dir string, onChange func(), opts Options) error {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	ext := strings.ToLower(opts.Ext)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := addRecursive(w, dir); err != nil {
		return err
	}
	log.Info("watching", zap.String("dir", dir), zap.String("ext", ext))

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op.Has(fsnotify.Create) {
				// New subdirectory: start watching it too.
				if st, err := os.Stat(ev.Name); err == nil && st.IsDir() {
					_ = addRecursive(w, ev.Name)
				}
			}
			if !relevant(ev, ext) {
				continue
			}
			log.Debug("change", zap.String("path", ev.Name), zap.String("op", ev.Op.String()))
			timer.Reset(debounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error", zap.Error(err))
		case <-timer.C:
			onChange()
		}
	}
}

// relevant reports whether the event concerns a file with the watched
// extension and an op that changes content or presence.
func relevant(ev fsnotify.Event, ext string) bool {
	if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) &&
		!ev.Op.Has(fsnotify.Remove) && !ev.Op.Has(fsnotify.Rename) {
		return false
	}
	return ext == "" || strings.ToLower(filepath.Ext(ev.Name)) == ext
}

// addRecursive registers dir and every subdirectory with the watcher.
// Non-directory paths are ignored.
func addRecursive(w *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			// Unreadable entries are skipped; the rest keeps being watched.
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		return w.Add(path)
	})
}

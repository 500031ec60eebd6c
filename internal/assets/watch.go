package assets

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports writes to a fixed set of files. Directories are watched
// rather than the files so editors that save by rename are still seen.
type Watcher struct {
	fs      *fsnotify.Watcher
	files   map[string]bool
	changes chan string
}

// Watch starts watching files. Changes delivers the path of each changed
// file; bursts are coalesced while the reader is behind.
func Watch(files ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("could not create file watcher: %w", err)
	}

	w := &Watcher{
		fs:      fw,
		files:   make(map[string]bool, len(files)),
		changes: make(chan string, 1),
	}
	dirs := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			fw.Close()
			return nil, fmt.Errorf("watch %s: %w", f, err)
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	go w.run()
	return w, nil
}

// Changes is closed after Close.
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

func (w *Watcher) Close() error {
	return w.fs.Close()
}

func (w *Watcher) run() {
	defer close(w.changes)
	events, errs := w.fs.Events, w.fs.Errors
	for events != nil {
		select {
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			name, err := filepath.Abs(ev.Name)
			if err != nil || !w.files[name] {
				continue
			}
			select {
			case w.changes <- name:
			default:
			}
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			log.Printf("file watcher: %v", err)
		}
	}
}

package scanner

import (
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/fleetlog/go-hos-timeline/internal/util"
)

// FileEvent is a change notification for a day-log file.
type FileEvent struct {
	Path      string
	Operation string
}

// FileWatcher watches day-log paths and reports changes so a live
// timeline view can re-render.
type FileWatcher struct {
	watcher *fsnotify.Watcher
	events  chan FileEvent
}

// NewFileWatcher creates a watcher over the given files or directories.
func NewFileWatcher(paths []string) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	fw := &FileWatcher{
		watcher: watcher,
		events:  make(chan FileEvent, 100),
	}

	for _, path := range paths {
		if err := fw.addPath(path); err != nil {
			watcher.Close()
			return nil, err
		}
	}

	go fw.processEvents()

	return fw, nil
}

func (fw *FileWatcher) addPath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fw.watcher.Add(path)
	}
	return filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			return fw.watcher.Add(p)
		}
		return nil
	})
}

func (fw *FileWatcher) processEvents() {
	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Ext(event.Name) == ".jsonl" {
				fw.events <- FileEvent{
					Path:      event.Name,
					Operation: event.Op.String(),
				}
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			util.LogError("Day-log monitoring error: " + err.Error())
		}
	}
}

// Events returns the change notification channel.
func (fw *FileWatcher) Events() <-chan FileEvent {
	return fw.events
}

// Close stops the watcher.
func (fw *FileWatcher) Close() error {
	return fw.watcher.Close()
}

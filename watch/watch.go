// Package watch reports changes to catalog, pointer and texture files made
// outside the editor.
package watch

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 100 * time.Millisecond

type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// New watches the given directories. Events carries the path of every
// relevant file that was written, created, renamed or removed.
func New(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Events)
	defer close(w.Errors)

	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !Relevant(event.Name) {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < debounce {
				continue
			}
			last[event.Name] = now
			select {
			case w.Events <- event.Name:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

// Relevant reports whether path is a catalog, pointer, texture or script
// file.
func Relevant(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".anim", ".txt", ".png", ".tengo":
		return true
	}
	return false
}

// Suppressor drops the events caused by the editor's own writes.
type Suppressor struct {
	mu    sync.Mutex
	until map[string]time.Time
	now   func() time.Time
}

func NewSuppressor() *Suppressor {
	return &Suppressor{until: make(map[string]time.Time), now: time.Now}
}

// Ignore hides events for path for the next window.
func (s *Suppressor) Ignore(path string, window time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.until[filepath.Clean(path)] = s.now().Add(window)
}

// Allow reports whether an event for path should be handled.
func (s *Suppressor) Allow(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := filepath.Clean(path)
	t, ok := s.until[key]
	if !ok {
		return true
	}
	if s.now().After(t) {
		delete(s.until, key)
		return true
	}
	return false
}

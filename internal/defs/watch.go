// internal/defs/watch.go
package defs

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 100 * time.Millisecond

// Watcher перечитывает файл каталога при изменении и отдаёт новый каталог в Catalogs.
// Каналы читаются из игрового цикла, поэтому симуляция остаётся однопоточной.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	Catalogs chan *Catalog
	Errors   chan error
	closeCh  chan struct{}
	done     chan struct{}
	once     sync.Once
}

// NewWatcher следит за директорией файла: редакторы часто сохраняют через rename.
func NewWatcher(path string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", path, err)
	}

	watcher := &Watcher{
		path:     filepath.Clean(path),
		watcher:  w,
		Catalogs: make(chan *Catalog, 1),
		Errors:   make(chan error, 1),
		closeCh:  make(chan struct{}),
		done:     make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Catalogs)
		close(w.Errors)
	})
	return err
}

// Poll забирает перезагруженный каталог без блокировки, если он есть.
func (w *Watcher) Poll() (*Catalog, error) {
	select {
	case c := <-w.Catalogs:
		return c, nil
	case err := <-w.Errors:
		return nil, err
	default:
		return nil, nil
	}
}

// run перечитывает файл, когда после последнего события прошло reloadDebounce:
// редакторы пишут файл в несколько приёмов.
func (w *Watcher) run() {
	defer close(w.done)
	timer := time.NewTimer(reloadDebounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			timer.Reset(reloadDebounce)
		case <-timer.C:
			c, err := LoadCatalog(w.path)
			if err != nil {
				w.send(nil, err)
				continue
			}
			w.send(c, nil)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.send(nil, err)
		case <-w.closeCh:
			return
		}
	}
}

// send заменяет непрочитанное значение свежим.
func (w *Watcher) send(c *Catalog, err error) {
	if err != nil {
		select {
		case <-w.Errors:
		default:
		}
		select {
		case w.Errors <- err:
		case <-w.closeCh:
		}
		return
	}
	select {
	case <-w.Catalogs:
	default:
	}
	select {
	case w.Catalogs <- c:
	case <-w.closeCh:
	}
}

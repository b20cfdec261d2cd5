package watcher

import (
	"context"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// Watcher reports external on-disk changes to individual files. It is used to
// detect edits made outside the daemon to files with open sessions.
type Watcher interface {
	// Watch registers a callback for changes to path. The callback runs on the
	// watcher goroutine and must not block.
	Watch(path string, fn func(path string)) error
	// Unwatch removes the registration for path.
	Unwatch(path string) error
}

// Params define values to be used by the Watcher.
type Params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Logger    *zap.SugaredLogger
}

type watcher struct {
	fsw       *fsnotify.Watcher
	logger    *zap.SugaredLogger
	callbacks map[string]func(string)
	mu        sync.Mutex
	done      chan struct{}
}

// New creates a Watcher whose event loop runs for the lifetime of the application.
func New(p Params) (Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &watcher{
		fsw:       fsw,
		logger:    p.Logger.With("component", "watcher"),
		callbacks: make(map[string]func(string)),
		done:      make(chan struct{}),
	}

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go w.run()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			err := fsw.Close()
			<-w.done
			return err
		},
	})

	return w, nil
}

func (w *watcher) Watch(path string, fn func(path string)) error {
	w.mu.Lock()
	w.callbacks[path] = fn
	w.mu.Unlock()

	return w.fsw.Add(path)
}

func (w *watcher) Unwatch(path string) error {
	w.mu.Lock()
	delete(w.callbacks, path)
	w.mu.Unlock()

	return w.fsw.Remove(path)
}

func (w *watcher) run() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			w.mu.Lock()
			fn := w.callbacks[ev.Name]
			w.mu.Unlock()
			if fn != nil {
				w.logger.Debugw("external file change", "path", ev.Name, "op", ev.Op.String())
				fn(ev.Name)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warnw("watch error", "error", err)
		}
	}
}

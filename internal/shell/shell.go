// Package shell tracks the application's open windows. Windows themselves
// belong to the external UI; the registry only makes sure each kind is open
// at most once.
package shell

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/cli/browser"
)

const (
	Calendar = "calendar"
	Editor   = "editor"
)

type Window interface {
	// Focus shows the window and brings it to the front.
	Focus() error
	Close() error
}

// Factory creates the window for kind.
type Factory func(kind string) (Window, error)

type Registry struct {
	mu      sync.Mutex
	windows map[string]Window
	factory Factory
}

func NewRegistry(factory Factory) *Registry {
	return &Registry{
		windows: make(map[string]Window),
		factory: factory,
	}
}

func (r *Registry) Register(kind string, w Window) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.windows[kind] = w
}

func (r *Registry) Lookup(kind string) (Window, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.windows[kind]
	return w, ok
}

// Unregister forgets the window, typically once the UI reports it closed.
func (r *Registry) Unregister(kind string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.windows[kind]
	delete(r.windows, kind)
	return ok
}

// Open focuses the window of kind, creating it first if it is not open.
func (r *Registry) Open(kind string) (Window, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if w, ok := r.windows[kind]; ok {
		return w, w.Focus()
	}

	w, err := r.factory(kind)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s window: %w", kind, err)
	}
	r.windows[kind] = w
	return w, w.Focus()
}

// CloseAll closes and forgets every window.
func (r *Registry) CloseAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var errs []error
	for kind, w := range r.windows {
		if err := w.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", kind, err))
		}
		delete(r.windows, kind)
	}
	return errors.Join(errs...)
}

// BrowserFactory opens windows as pages of the UI served at baseURL. An empty
// baseURL yields windows that only log, for headless use.
func BrowserFactory(baseURL string) Factory {
	return func(kind string) (Window, error) {
		if baseURL == "" {
			return &logWindow{kind: kind}, nil
		}
		return &browserWindow{url: strings.TrimRight(baseURL, "/") + "/" + kind}, nil
	}
}

var openURL = browser.OpenURL

// browserWindow is a page of the UI in the user's browser. A browser gives
// no handle to raise an existing tab, so the page is opened once and stays
// registered until the UI reports it closed.
type browserWindow struct {
	url    string
	opened bool
}

func (b *browserWindow) Focus() error {
	if b.opened {
		slog.Debug("window already open", "url", b.url)
		return nil
	}
	err := openURL(b.url)
	if err != nil {
		return err
	}
	b.opened = true
	return nil
}

func (b *browserWindow) Close() error {
	return nil
}

type logWindow struct {
	kind string
}

func (l *logWindow) Focus() error {
	slog.Info("window requested (no UI configured)", "window", l.kind)
	return nil
}

func (l *logWindow) Close() error {
	return nil
}

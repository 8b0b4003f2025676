package editor

import (
	"sync"

	"github.com/millersjournal/journal/internal/model"
)

type Loader interface {
	Load(dateKey string) (*model.Entry, error)
}

// ApplyFunc receives the entry for the selected date; entry is nil when
// the date has none.
type ApplyFunc func(dateKey string, entry *model.Entry, err error)

// Navigator fetches the entry for each selected date in the background and
// applies only the response to the latest selection.
type Navigator struct {
	loader Loader
	apply  ApplyFunc
	wg     sync.WaitGroup

	mu       sync.Mutex
	selected string
	seq      uint64
}

func NewNavigator(loader Loader, apply ApplyFunc) *Navigator {
	return &Navigator{loader: loader, apply: apply}
}

func (n *Navigator) Select(dateKey string) {
	n.mu.Lock()
	n.seq++
	seq := n.seq
	n.selected = dateKey
	n.mu.Unlock()

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		entry, err := n.loader.Load(dateKey)
		n.deliver(seq, dateKey, entry, err)
	}()
}

// Refresh reloads the selected date, e.g. when the window regains focus.
func (n *Navigator) Refresh() {
	n.mu.Lock()
	selected := n.selected
	n.mu.Unlock()
	if selected != "" {
		n.Select(selected)
	}
}

func (n *Navigator) Selected() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.selected
}

// Wait blocks until every outstanding fetch has returned.
func (n *Navigator) Wait() {
	n.wg.Wait()
}

func (n *Navigator) deliver(seq uint64, dateKey string, entry *model.Entry, err error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if seq != n.seq || dateKey != n.selected {
		return
	}
	n.apply(dateKey, entry, err)
}

// Package editor holds the editor-side timing rules: debounced autosave and
// date navigation that ignores stale fetches.
package editor

import (
	"sync"
	"time"

	"github.com/millersjournal/journal/internal/model"
)

// DefaultDelay is how long the editor waits after the last keystroke
// before syncing.
const DefaultDelay = 600 * time.Millisecond

type Syncer interface {
	Sync(entry *model.EntrySync) error
}

// Session coalesces edits to one entry: each edit cancels the pending sync
// and schedules a new one, so only the trailing edit is written.
type Session struct {
	syncer Syncer
	delay  time.Duration

	// syncMu keeps syncs in edit order.
	syncMu sync.Mutex

	mu      sync.Mutex
	timer   *time.Timer
	pending *model.EntrySync
	gen     uint64
	lastErr error
}

func NewSession(syncer Syncer, delay time.Duration) *Session {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Session{
		syncer: syncer,
		delay:  delay,
	}
}

func (s *Session) Edit(entry model.EntrySync) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
	}
	s.pending = &entry
	s.gen++
	gen := s.gen
	s.timer = time.AfterFunc(s.delay, func() {
		s.flush(gen, false)
	})
}

// HasUnsavedChanges reports whether an edit is waiting to be synced, either
// on its timer or after a failed sync.
func (s *Session) HasUnsavedChanges() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending != nil
}

// Err is the result of the most recent sync.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Flush syncs the pending edit now.
func (s *Session) Flush() error {
	return s.flush(0, true)
}

func (s *Session) Close() error {
	return s.Flush()
}

func (s *Session) flush(gen uint64, force bool) error {
	s.syncMu.Lock()
	defer s.syncMu.Unlock()

	s.mu.Lock()
	if s.pending == nil || (!force && gen != s.gen) {
		s.mu.Unlock()
		return nil
	}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	entry := s.pending
	s.pending = nil
	s.mu.Unlock()

	err := s.syncer.Sync(entry)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = err
	if err != nil && s.pending == nil {
		s.pending = entry
	}
	return err
}

package store

import (
	"errors"
	"sync"
	"time"

	"go.uber.org/atomic"

	"github.com/i474232898/weather-tickler/internal/weather"
)

var (
	// ErrNotFound is returned when no view is currently shown.
	ErrNotFound = errors.New("no weather view available")
)

// Snapshot is a copy of the dashboard state at one moment.
type Snapshot struct {
	Seq       uint64             `json:"seq"`
	Query     string             `json:"query"`
	Loading   bool               `json:"loading"`
	Error     string             `json:"error,omitempty"`
	View      *weather.ViewModel `json:"view,omitempty"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// ViewState holds the single current view. Every query is tagged with a
// sequence number from Begin; only the latest issued sequence may update
// the state, so an older response that arrives late is dropped.
type ViewState struct {
	issued *atomic.Uint64

	mu        sync.RWMutex
	query     string
	loading   bool
	errMsg    string
	view      *weather.ViewModel
	updatedAt time.Time
}

// NewViewState creates an empty ViewState.
func NewViewState() *ViewState {
	return &ViewState{
		issued: atomic.NewUint64(0),
	}
}

// Begin issues the next sequence number and marks the state as loading.
// The current view stays visible until the query completes.
func (s *ViewState) Begin(query string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq := s.issued.Inc()
	s.query = query
	s.loading = true
	return seq
}

// Latest returns the most recently issued sequence number.
func (s *ViewState) Latest() uint64 {
	return s.issued.Load()
}

// IsLatest reports whether seq is still the newest query.
func (s *ViewState) IsLatest(seq uint64) bool {
	return seq == s.issued.Load()
}

// Commit replaces the view wholesale. It reports false and changes nothing
// when a newer query has been issued since seq.
func (s *ViewState) Commit(seq uint64, vm weather.ViewModel) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.issued.Load() {
		return false
	}

	s.view = &vm
	s.errMsg = ""
	s.loading = false
	s.updatedAt = time.Now().UTC()
	return true
}

// Fail records a terminal error for seq and clears the shown view. Like
// Commit, it is a no-op for a superseded sequence.
func (s *ViewState) Fail(seq uint64, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.issued.Load() {
		return false
	}

	s.view = nil
	s.errMsg = err.Error()
	s.loading = false
	s.updatedAt = time.Now().UTC()
	return true
}

// Current returns the view being shown.
func (s *ViewState) Current() (weather.ViewModel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.view == nil {
		return weather.ViewModel{}, ErrNotFound
	}
	return *s.view, nil
}

// Snapshot returns a copy of the whole state.
func (s *ViewState) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Seq:       s.issued.Load(),
		Query:     s.query,
		Loading:   s.loading,
		Error:     s.errMsg,
		UpdatedAt: s.updatedAt,
	}
	if s.view != nil {
		vm := *s.view
		snap.View = &vm
	}
	return snap
}

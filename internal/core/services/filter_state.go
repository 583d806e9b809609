// internal/core/services/filter_state.go
package services

import (
	"log/slog"
	"sync"
	"time"

	"github.com/easyboard/easyboard-go/internal/core/domain"
)

// DefaultDebounce is the pause after the last filter edit before a search
// fires on its own.
const DefaultDebounce = 400 * time.Millisecond

// FilterState owns the current filter form values and the debounce timer.
// Every field mutation schedules a debounced search through onSearch;
// applying or resetting fires immediately, cancelling anything pending.
type FilterState struct {
	mu        sync.Mutex
	filters   domain.FilterSet
	debouncer *Debouncer
	onSearch  func()
	logger    *slog.Logger
}

// NewFilterState creates a filter state with defaults applied. onSearch is
// invoked exactly once per debounce window; it must be safe to call from a
// timer goroutine.
func NewFilterState(debounce time.Duration, onSearch func(), logger *slog.Logger) *FilterState {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &FilterState{
		filters:   domain.DefaultFilters(),
		debouncer: NewDebouncer(debounce),
		onSearch:  onSearch,
		logger:    logger.With(slog.String("component", "filter_state")),
	}
}

// SetField updates exactly one filter field and schedules the debounced
// search. A pending search is replaced, never stacked.
func (s *FilterState) SetField(name, value string) error {
	s.mu.Lock()
	err := s.filters.SetField(name, value)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.logger.Debug("filter field updated", slog.String("field", name))
	s.debouncer.Schedule(s.onSearch)
	return nil
}

// Apply bypasses the debounce: any pending search is cancelled and one runs
// immediately.
func (s *FilterState) Apply() {
	s.debouncer.Flush(s.onSearch)
}

// Reset restores all fields to their defaults and searches immediately.
func (s *FilterState) Reset() {
	s.mu.Lock()
	s.filters = domain.DefaultFilters()
	s.mu.Unlock()
	s.logger.Debug("filters reset to defaults")
	s.debouncer.Flush(s.onSearch)
}

// Stop cancels any pending debounced search.
func (s *FilterState) Stop() {
	s.debouncer.Stop()
}

// Filters returns a copy of the current filter set.
func (s *FilterState) Filters() domain.FilterSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

// Params builds the outgoing query parameters from the current filters.
func (s *FilterState) Params() map[string]string {
	return s.Filters().QueryParams()
}

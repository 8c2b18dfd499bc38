package state

import "strings"

// SetQuery records the search text. On the search page a non-empty
// query (re)schedules the single debounced evaluation; otherwise results
// and the loading flag clear immediately.
func (s *Store) SetQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.query == query {
		return
	}
	s.query = query
	s.refreshSearchLocked()
}

// refreshSearchLocked mirrors the search effect: it runs whenever the
// query or the page changes. Must be called with s.mu held.
func (s *Store) refreshSearchLocked() {
	s.cancelPendingLocked()

	if s.page != PageSearch || strings.TrimSpace(s.query) == "" {
		s.results = nil
		s.loading = false
		return
	}

	s.generation++
	generation := s.generation
	query := s.query
	s.loading = true
	s.pending = s.clock.AfterFunc(s.debounce, func() {
		s.deliverSearch(generation, query)
	})
}

// cancelPendingLocked stops the scheduled evaluation, if any.
func (s *Store) cancelPendingLocked() {
	if s.pending == nil {
		return
	}
	s.pending.Stop()
	s.pending = nil
	s.generation++
}

func (s *Store) deliverSearch(generation uint64, query string) {
	s.mu.Lock()
	if generation != s.generation {
		s.mu.Unlock()
		return
	}
	s.pending = nil
	s.results = s.catalog.Search(query)
	s.loading = false
	s.evaluations++
	s.lastSearchAt = s.clock.Now()
	onChange := s.onChange
	s.logger.Debug("search evaluated", "query", query, "results", len(s.results))
	s.mu.Unlock()

	if onChange != nil {
		onChange()
	}
}

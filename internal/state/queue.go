package state

import "fmt"

// AddToQueue appends songID to the end of the queue. Duplicates are
// allowed.
func (s *Store) AddToQueue(songID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	song, err := s.lookupLocked(songID)
	if err != nil {
		return fmt.Errorf("add to queue: %w", err)
	}
	s.queue = append(s.queue, song)
	s.logger.Debug("queue add", "song", songID, "position", len(s.queue))
	return nil
}

// RemoveFromQueue drops every queue entry for songID and returns how
// many were removed.
func (s *Store) RemoveFromQueue(songID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.queue[:0]
	removed := 0
	for _, song := range s.queue {
		if song.ID == songID {
			removed++
			continue
		}
		kept = append(kept, song)
	}
	clear(s.queue[len(kept):])
	s.queue = kept
	s.logger.Debug("queue remove", "song", songID, "removed", removed)
	return removed
}

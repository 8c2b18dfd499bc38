package state

import (
	"strings"
	"time"

	"github.com/Rhymond/go-money"

	"github.com/five82/cosmic/internal/catalog"
)

// Snapshot is a read-only copy of the store for rendering.
type Snapshot struct {
	Page    Page
	Query   string
	Results []catalog.Song
	Loading bool

	SearchEvaluations int
	LastSearchAt      time.Time

	Playing string
	Cart    []CartItem
	Total   *money.Money
	Queue   []catalog.Song
	History []HistoryEntry // newest first

	liked map[string]bool
}

// IsPlaying reports whether songID holds the playback slot.
func (s Snapshot) IsPlaying(songID string) bool {
	return songID != "" && s.Playing == songID
}

// IsLiked reports whether the user has liked songID.
func (s Snapshot) IsLiked(songID string) bool {
	return s.liked[songID]
}

// HasQuery reports whether the query has non-space text.
func (s Snapshot) HasQuery() bool {
	return strings.TrimSpace(s.Query) != ""
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	liked := make(map[string]bool, len(s.liked))
	for id, v := range s.liked {
		liked[id] = v
	}

	return Snapshot{
		Page:              s.page,
		Query:             s.query,
		Results:           cloneSongs(s.results, liked),
		Loading:           s.loading,
		SearchEvaluations: s.evaluations,
		LastSearchAt:      s.lastSearchAt,
		Playing:           s.playing,
		Cart:              cloneCart(s.cart),
		Total:             sumPrices(s.cart, s.currency),
		Queue:             cloneSongs(s.queue, liked),
		History:           cloneHistory(s.history),
		liked:             liked,
	}
}

func cloneSongs(songs []catalog.Song, liked map[string]bool) []catalog.Song {
	if len(songs) == 0 {
		return nil
	}
	dup := make([]catalog.Song, len(songs))
	for i, song := range songs {
		song.Liked = liked[song.ID]
		dup[i] = song
	}
	return dup
}

func cloneCart(items []CartItem) []CartItem {
	if len(items) == 0 {
		return nil
	}
	dup := make([]CartItem, len(items))
	copy(dup, items)
	return dup
}

func cloneHistory(entries []HistoryEntry) []HistoryEntry {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]HistoryEntry, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		entry := entries[i]
		entry.Items = cloneCart(entry.Items)
		dup = append(dup, entry)
	}
	return dup
}

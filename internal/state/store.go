package state

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/five82/cosmic/internal/catalog"
	"github.com/five82/cosmic/internal/clock"
)

// DefaultSearchDebounce is the delay between the last query change and
// the search evaluation.
const DefaultSearchDebounce = 500 * time.Millisecond

var (
	// ErrUnknownSong is returned when an operation names a song id that
	// is not in the catalog.
	ErrUnknownSong = errors.New("unknown song")

	// ErrEmptyCart is returned by Checkout when there is nothing to buy.
	ErrEmptyCart = errors.New("cart is empty")
)

// Options configure a Store.
type Options struct {
	Catalog  *catalog.Catalog
	Clock    clock.Clock
	Logger   *slog.Logger
	Debounce time.Duration // zero or negative uses DefaultSearchDebounce
	Currency string        // empty uses catalog.DefaultCurrency
}

// Store is the application shell: it owns all view state and is changed
// only through its methods. Readers take Snapshots.
type Store struct {
	catalog  *catalog.Catalog
	clock    clock.Clock
	logger   *slog.Logger
	debounce time.Duration
	currency string

	mu       sync.Mutex
	onChange func()

	page    Page
	query   string
	results []catalog.Song
	loading bool

	// pending is the only scheduled search; generation identifies it so a
	// callback that raced with Stop is discarded.
	pending      *clock.Timer
	generation   uint64
	evaluations  int
	lastSearchAt time.Time

	playing string
	liked   map[string]bool
	cart    []CartItem
	queue   []catalog.Song
	history []HistoryEntry
}

// New creates a Store on the home page.
func New(opts Options) *Store {
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.Default()
	}
	clk := opts.Clock
	if clk == nil {
		clk = clock.Real()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultSearchDebounce
	}
	currency := strings.ToUpper(strings.TrimSpace(opts.Currency))
	if currency == "" {
		currency = catalog.DefaultCurrency
	}

	liked := make(map[string]bool)
	for _, song := range cat.Songs() {
		if song.Liked {
			liked[song.ID] = true
		}
	}

	return &Store{
		catalog:  cat,
		clock:    clk,
		logger:   logger.With("component", "store"),
		debounce: debounce,
		currency: currency,
		page:     PageHome,
		liked:    liked,
	}
}

// SetOnChange registers fn to be called after state changes that happen
// off the caller's goroutine (search results arriving). fn runs without
// the store lock held.
func (s *Store) SetOnChange(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// Catalog returns the catalog backing the store.
func (s *Store) Catalog() *catalog.Catalog {
	return s.catalog
}

// Navigate switches to page. Entering or leaving the search page
// re-evaluates the search.
func (s *Store) Navigate(page Page) {
	if !page.Valid() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.page == page {
		return
	}
	s.logger.Debug("navigate", "from", s.page.String(), "to", page.String())
	s.page = page
	s.refreshSearchLocked()
}

// SubmitSearch is the home search bar's submit action. It moves to the
// search page only when the trimmed query is non-empty and reports
// whether it did.
func (s *Store) SubmitSearch() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(s.query) == "" {
		return false
	}
	if s.page != PageSearch {
		s.page = PageSearch
		s.refreshSearchLocked()
	}
	return true
}

// TogglePlay makes songID the only playing song, or clears the slot if
// it is already playing.
func (s *Store) TogglePlay(songID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.catalog.Lookup(songID); !ok {
		return fmt.Errorf("toggle play %q: %w", songID, ErrUnknownSong)
	}
	if s.playing == songID {
		s.playing = ""
	} else {
		s.playing = songID
	}
	s.logger.Debug("playback", "playing", s.playing)
	return nil
}

// ToggleLike flips the liked flag of songID and returns the new value.
func (s *Store) ToggleLike(songID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.catalog.Lookup(songID); !ok {
		return false, fmt.Errorf("toggle like %q: %w", songID, ErrUnknownSong)
	}
	liked := !s.liked[songID]
	if liked {
		s.liked[songID] = true
	} else {
		delete(s.liked, songID)
	}
	return liked, nil
}

func (s *Store) lookupLocked(songID string) (catalog.Song, error) {
	song, ok := s.catalog.Lookup(songID)
	if !ok {
		return catalog.Song{}, fmt.Errorf("%q: %w", songID, ErrUnknownSong)
	}
	song.Liked = s.liked[songID]
	return song, nil
}

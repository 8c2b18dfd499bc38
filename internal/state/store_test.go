package state

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/cosmic/internal/catalog"
	"github.com/five82/cosmic/internal/clock"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) (*Store, *clock.FakeClock) {
	t.Helper()
	clk := clock.Fake(epoch)
	store := New(Options{Catalog: catalog.Default(), Clock: clk})
	return store, clk
}

func resultTitles(snap Snapshot) []string {
	out := make([]string, 0, len(snap.Results))
	for _, song := range snap.Results {
		out = append(out, song.Title)
	}
	return out
}

func TestNewStartsOnHome(t *testing.T) {
	store, _ := newTestStore(t)
	snap := store.Snapshot()

	assert.Equal(t, PageHome, snap.Page)
	assert.Empty(t, snap.Results)
	assert.False(t, snap.Loading)
	assert.Empty(t, snap.Playing)
	assert.Equal(t, int64(0), snap.Total.Amount())
	assert.True(t, snap.IsLiked("1"), "Faded starts liked")
}

func TestNavigate(t *testing.T) {
	store, _ := newTestStore(t)

	for _, page := range []Page{PageQueue, PageCart, PageHistory, PageSearch, PageHome} {
		store.Navigate(page)
		assert.Equal(t, page, store.Snapshot().Page)
	}

	store.Navigate(Page(42))
	assert.Equal(t, PageHome, store.Snapshot().Page, "invalid page is ignored")
}

func TestSubmitSearchRequiresQuery(t *testing.T) {
	store, _ := newTestStore(t)

	for _, q := range []string{"", "   ", "\t"} {
		store.SetQuery(q)
		assert.False(t, store.SubmitSearch(), "query %q", q)
		assert.Equal(t, PageHome, store.Snapshot().Page)
	}

	store.SetQuery("faded")
	assert.True(t, store.SubmitSearch())
	assert.Equal(t, PageSearch, store.Snapshot().Page)
}

func TestTogglePlaySingleSlot(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.TogglePlay("1"))
	require.NoError(t, store.TogglePlay("2"))
	snap := store.Snapshot()
	assert.False(t, snap.IsPlaying("1"))
	assert.True(t, snap.IsPlaying("2"))

	require.NoError(t, store.TogglePlay("2"))
	assert.Empty(t, store.Snapshot().Playing)

	err := store.TogglePlay("nope")
	assert.True(t, errors.Is(err, ErrUnknownSong))
}

func TestToggleLike(t *testing.T) {
	store, _ := newTestStore(t)

	liked, err := store.ToggleLike("1")
	require.NoError(t, err)
	assert.False(t, liked)
	assert.False(t, store.Snapshot().IsLiked("1"))

	liked, err = store.ToggleLike("3")
	require.NoError(t, err)
	assert.True(t, liked)
	assert.True(t, store.Snapshot().IsLiked("3"))

	_, err = store.ToggleLike("nope")
	assert.True(t, errors.Is(err, ErrUnknownSong))
}

func TestLikesSurviveNewSearch(t *testing.T) {
	store, clk := newTestStore(t)
	store.Navigate(PageSearch)
	store.SetQuery("spectre")
	clk.Advance(DefaultSearchDebounce)

	_, err := store.ToggleLike("3")
	require.NoError(t, err)
	require.True(t, store.Snapshot().Results[0].Liked)

	store.SetQuery("the spectre")
	clk.Advance(DefaultSearchDebounce)
	snap := store.Snapshot()
	require.Len(t, snap.Results, 1)
	assert.True(t, snap.Results[0].Liked)
}

func TestSnapshotIsACopy(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.AddToQueue("1"))
	_, err := store.AddToCart("2", catalog.FormatMP3)
	require.NoError(t, err)

	snap := store.Snapshot()
	snap.Queue[0].Title = "mutated"
	snap.Cart[0].Song.Title = "mutated"

	again := store.Snapshot()
	assert.Equal(t, "Faded", again.Queue[0].Title)
	assert.Equal(t, "Alone", again.Cart[0].Song.Title)
}

func TestPageCycle(t *testing.T) {
	assert.Equal(t, PageSearch, PageHome.Next())
	assert.Equal(t, PageHome, PageHistory.Next())
	assert.Equal(t, PageHistory, PageHome.Prev())
	assert.Equal(t, "cart", PageCart.String())
	assert.Equal(t, "page(9)", Page(9).String())
}

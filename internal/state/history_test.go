package state

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/cosmic/internal/catalog"
)

func TestCheckoutEmptyCart(t *testing.T) {
	store, _ := newTestStore(t)
	_, err := store.Checkout()
	assert.True(t, errors.Is(err, ErrEmptyCart))
	assert.Empty(t, store.Snapshot().History)
}

func TestCheckoutMovesCartToHistory(t *testing.T) {
	store, clk := newTestStore(t)
	_, err := store.AddToCart("1", catalog.FormatMP3)
	require.NoError(t, err)
	_, err = store.AddToCart("2", catalog.FormatWAV)
	require.NoError(t, err)

	clk.Advance(time.Minute)
	entry, err := store.Checkout()
	require.NoError(t, err)

	_, parseErr := uuid.Parse(entry.OrderID)
	assert.NoError(t, parseErr)
	assert.Equal(t, epoch.Add(time.Minute), entry.CompletedAt)
	assert.Len(t, entry.Items, 2)
	assert.Equal(t, int64(398), entry.Total.Amount())

	snap := store.Snapshot()
	assert.Empty(t, snap.Cart)
	assert.Equal(t, int64(0), snap.Total.Amount())
	require.Len(t, snap.History, 1)
	assert.Equal(t, entry.OrderID, snap.History[0].OrderID)
}

func TestHistoryNewestFirst(t *testing.T) {
	store, clk := newTestStore(t)
	var orders []string
	for _, id := range []string{"1", "2"} {
		_, err := store.AddToCart(id, catalog.FormatFLAC)
		require.NoError(t, err)
		entry, err := store.Checkout()
		require.NoError(t, err)
		orders = append(orders, entry.OrderID)
		clk.Advance(time.Second)
	}

	snap := store.Snapshot()
	require.Len(t, snap.History, 2)
	assert.Equal(t, orders[1], snap.History[0].OrderID)
	assert.Equal(t, orders[0], snap.History[1].OrderID)
}

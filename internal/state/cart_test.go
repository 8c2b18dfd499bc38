package state

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/cosmic/internal/catalog"
)

func TestCartTotal(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.AddToCart("1", catalog.FormatMP3)
	require.NoError(t, err)
	_, err = store.AddToCart("4", catalog.FormatFLAC)
	require.NoError(t, err)

	total := store.CartTotal()
	assert.Equal(t, int64(298), total.Amount())
	assert.Equal(t, "$2.98", total.Display())
	assert.Equal(t, int64(298), store.Snapshot().Total.Amount())
}

func TestAddToCartPricesByFormat(t *testing.T) {
	store, _ := newTestStore(t)

	tests := []struct {
		format catalog.Format
		cents  int64
	}{
		{catalog.FormatMP3, 99},
		{catalog.FormatFLAC, 199},
		{catalog.FormatWAV, 299},
	}
	for _, tt := range tests {
		item, err := store.AddToCart("2", tt.format)
		require.NoError(t, err)
		assert.Equal(t, tt.cents, item.Price.Amount(), string(tt.format))
	}
	assert.Len(t, store.Snapshot().Cart, 3)
}

func TestAddToCartAllowsDuplicates(t *testing.T) {
	store, _ := newTestStore(t)
	for i := 0; i < 2; i++ {
		_, err := store.AddToCart("3", catalog.FormatMP3)
		require.NoError(t, err)
	}
	assert.Len(t, store.Snapshot().Cart, 2)
	assert.Equal(t, int64(198), store.CartTotal().Amount())
}

func TestAddToCartRejectsUnknown(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.AddToCart("nope", catalog.FormatMP3)
	assert.True(t, errors.Is(err, ErrUnknownSong))

	_, err = store.AddToCart("1", catalog.Format("OGG"))
	assert.True(t, errors.Is(err, catalog.ErrUnknownFormat))
	assert.Empty(t, store.Snapshot().Cart)
}

func TestRemoveFromCartRemovesAllVariants(t *testing.T) {
	store, _ := newTestStore(t)
	for _, f := range catalog.Formats {
		_, err := store.AddToCart("1", f)
		require.NoError(t, err)
	}
	_, err := store.AddToCart("2", catalog.FormatWAV)
	require.NoError(t, err)

	assert.Equal(t, 3, store.RemoveFromCart("1"))
	snap := store.Snapshot()
	require.Len(t, snap.Cart, 1)
	assert.Equal(t, "2", snap.Cart[0].Song.ID)
	assert.Equal(t, int64(299), snap.Total.Amount())

	assert.Equal(t, 0, store.RemoveFromCart("1"))
}

func TestCartCurrency(t *testing.T) {
	store := New(Options{Currency: "eur"})
	item, err := store.AddToCart("1", catalog.FormatMP3)
	require.NoError(t, err)
	assert.Equal(t, "EUR", item.Price.Currency().Code)
	assert.Equal(t, "EUR", store.CartTotal().Currency().Code)
}

package state

import (
	"fmt"

	"github.com/Rhymond/go-money"

	"github.com/five82/cosmic/internal/catalog"
)

// CartItem is one line in the cart. The same song may appear several
// times, in the same or different formats.
type CartItem struct {
	Song   catalog.Song
	Format catalog.Format
	Price  *money.Money
}

// AddToCart appends songID in format, priced from the format tier.
func (s *Store) AddToCart(songID string, format catalog.Format) (CartItem, error) {
	if !format.Valid() {
		return CartItem{}, fmt.Errorf("add to cart: %w: %q", catalog.ErrUnknownFormat, format)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	song, err := s.lookupLocked(songID)
	if err != nil {
		return CartItem{}, fmt.Errorf("add to cart: %w", err)
	}
	item := CartItem{Song: song, Format: format, Price: format.Price(s.currency)}
	s.cart = append(s.cart, item)
	s.logger.Debug("cart add", "song", songID, "format", string(format), "lines", len(s.cart))
	return item, nil
}

// RemoveFromCart drops every line for songID regardless of format and
// returns how many lines were removed.
func (s *Store) RemoveFromCart(songID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.cart[:0]
	removed := 0
	for _, item := range s.cart {
		if item.Song.ID == songID {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	clear(s.cart[len(kept):])
	s.cart = kept
	s.logger.Debug("cart remove", "song", songID, "removed", removed)
	return removed
}

// CartTotal sums the cart prices.
func (s *Store) CartTotal() *money.Money {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sumPrices(s.cart, s.currency)
}

func sumPrices(items []CartItem, currency string) *money.Money {
	total := money.New(0, currency)
	for _, item := range items {
		next, err := total.Add(item.Price)
		if err != nil {
			// Every line is priced in the store currency.
			continue
		}
		total = next
	}
	return total
}

package state

import (
	"time"

	"github.com/Rhymond/go-money"
	"github.com/google/uuid"
)

// HistoryEntry records one checkout. History lives only in memory.
type HistoryEntry struct {
	OrderID     string
	CompletedAt time.Time
	Items       []CartItem
	Total       *money.Money
}

// Checkout moves the cart into the download history and empties it.
func (s *Store) Checkout() (HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.cart) == 0 {
		return HistoryEntry{}, ErrEmptyCart
	}

	entry := HistoryEntry{
		OrderID:     uuid.NewString(),
		CompletedAt: s.clock.Now(),
		Items:       cloneCart(s.cart),
		Total:       sumPrices(s.cart, s.currency),
	}
	s.history = append(s.history, entry)
	s.cart = nil
	s.logger.Info("checkout", "order", entry.OrderID, "lines", len(entry.Items), "total", entry.Total.Display())
	return entry, nil
}

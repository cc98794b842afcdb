// Package cart holds the session shopping cart and its seller grouping.
package cart

import (
	"errors"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/huynhtuanvt18/pah-mobile-client/internal/models"
)

// Item is one cart line: a product snapshot with the seller fields needed
// for shipping quotes, plus the selected quantity.
type Item struct {
	ProductID int
	Name      string
	ImageURL  string
	Price     decimal.Decimal
	// Weight in grams per unit.
	Weight   int
	Quantity int
	Type     int
	Seller   models.Seller
}

var (
	ErrQuantityTooLow = errors.New("cart: quantity must be at least 1")
	ErrNotInCart      = errors.New("cart: product not in cart")
)

// Store is the in-memory session cart. Items are unique by product id and
// keep their insertion order. Safe for concurrent use.
type Store struct {
	mu    sync.Mutex
	items []Item
}

func NewStore() *Store {
	return &Store{}
}

// Add puts an item in the cart. Adding a product already present merges
// the quantities instead of duplicating the line.
func (s *Store) Add(item Item) error {
	if item.Quantity < 1 {
		return ErrQuantityTooLow
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == item.ProductID {
			s.items[i].Quantity += item.Quantity
			return nil
		}
	}
	s.items = append(s.items, item)
	return nil
}

// SetQuantity replaces the quantity of a line already in the cart.
func (s *Store) SetQuantity(productID, quantity int) error {
	if quantity < 1 {
		return ErrQuantityTooLow
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity = quantity
			return nil
		}
	}
	return ErrNotInCart
}

// Remove drops a line from the cart.
func (s *Store) Remove(productID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return ErrNotInCart
}

// Empty clears the cart, called after a successful checkout.
func (s *Store) Empty() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// Items returns a snapshot of the cart in insertion order.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Item(nil), s.items...)
}

// Count returns the summed quantity over all lines.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// Subtotal returns sum(price * quantity) over all lines.
func (s *Store) Subtotal() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for _, item := range s.items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

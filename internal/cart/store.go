package cart

import (
	"github.com/nikolayk812/efood-demo/internal/domain"
	"github.com/nikolayk812/efood-demo/internal/port"
	"github.com/shopspring/decimal"
)

type store struct {
	items []domain.CartItem
}

// NewStore returns an empty in-memory cart for a single session.
// Not safe for concurrent use; the owning session serializes access.
func NewStore() port.CartStore {
	return &store{}
}

// AddItem increments the quantity when the product is already in the cart,
// matching on product id, and appends a fresh item otherwise.
func (s *store) AddItem(product domain.Product) {
	for i := range s.items {
		if s.items[i].Product.ID == product.ID {
			s.items[i].Quantity++
			return
		}
	}

	s.items = append(s.items, domain.CartItem{Product: product, Quantity: 1})
}

func (s *store) RemoveItem(productID int64) {
	for i := range s.items {
		if s.items[i].Product.ID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

func (s *store) Clear() {
	s.items = nil
}

// Items returns a copy in insertion order, so callers cannot mutate
// the cart behind the store's back.
func (s *store) Items() []domain.CartItem {
	items := make([]domain.CartItem, len(s.items))
	copy(items, s.items)

	return items
}

func (s *store) Total() decimal.Decimal {
	return domain.Cart{Items: s.items}.Total()
}

func (s *store) Count() int {
	return domain.Cart{Items: s.items}.Count()
}

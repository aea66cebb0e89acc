package port

import (
	"github.com/nikolayk812/efood-demo/internal/domain"
	"github.com/shopspring/decimal"
)

// CartStore holds the active session's cart. All operations are total:
// removing an absent product is a no-op, never an error.
type CartStore interface {
	AddItem(product domain.Product)
	RemoveItem(productID int64)
	Clear()
	Items() []domain.CartItem
	Total() decimal.Decimal
	Count() int
}

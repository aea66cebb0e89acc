package domain

import (
	"github.com/shopspring/decimal"
)

// CartItem pairs a product with how many times the user added it.
// Quantity is always positive; a zero-quantity item never exists.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart is an insertion-ordered sequence of items, at most one per
// distinct product id.
type Cart struct {
	Items []CartItem
}

// Total is the sum of price times quantity over all items.
// Zero for an empty cart, never negative.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// Count is the sum of all item quantities, used for the cart badge.
func (c Cart) Count() int {
	var count int
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

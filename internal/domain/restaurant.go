package domain

import (
	"github.com/shopspring/decimal"
)

// Product is a single dish on a restaurant's menu. JSON tags follow the
// remote catalog's wire format, which uses Portuguese field names.
// Products are immutable once loaded from the catalog.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"nome"`
	Description string          `json:"descricao"`
	Portion     string          `json:"porcao"`
	Photo       string          `json:"foto"`
	Price       decimal.Decimal `json:"preco"`
}

// Restaurant embeds its full menu, as the catalog endpoint returns
// everything in one payload.
type Restaurant struct {
	ID          int64     `json:"id"`
	Title       string    `json:"titulo"`
	Type        string    `json:"tipo"`
	Description string    `json:"descricao"`
	Cover       string    `json:"capa"`
	Rating      float64   `json:"avaliacao"`
	Featured    bool      `json:"destacado"`
	Menu        []Product `json:"cardapio"`
}

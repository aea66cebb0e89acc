package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

// The catalog carries plain numeric prices; the storefront displays
// everything in a single fixed locale.
var ptBR = message.NewPrinter(language.BrazilianPortuguese)

func BRL(amount decimal.Decimal) Money {
	return Money{Amount: amount, Currency: currency.BRL}
}

// Display renders the value for the storefront locale, e.g. "R$ 60,00".
// Presentation-only: nothing in the core depends on this string.
func (m Money) Display() string {
	f, _ := m.Amount.Float64()
	return ptBR.Sprintf("%v", currency.Symbol(m.Currency.Amount(f)))
}

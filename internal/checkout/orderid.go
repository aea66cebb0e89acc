package checkout

import (
	"math/rand"
)

const (
	orderIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	orderIDLength   = 8
)

// OrderIDFunc produces order identifiers. The session takes it as a
// dependency so tests can pin a deterministic value.
type OrderIDFunc func() string

// RandomOrderID returns an 8-character uppercase alphanumeric token.
// Only needs to be visually distinct across checkouts, no crypto guarantee.
func RandomOrderID() string {
	b := make([]byte, orderIDLength)
	for i := range b {
		b[i] = orderIDAlphabet[rand.Intn(len(orderIDAlphabet))]
	}

	return string(b)
}

package domain

// Step is the checkout flow's current phase.
type Step string

const (
	StepCart     Step = "cart"
	StepDelivery Step = "delivery"
	StepPayment  Step = "payment"
	StepConfirm  Step = "confirm"
)

// String representation (for logging)
func (s Step) String() string {
	return string(s)
}

// DeliveryForm holds the address draft. All fields are free text;
// the core does not validate any of them.
type DeliveryForm struct {
	Receiver   string `json:"receiver"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"cep"`
	Number     string `json:"number"`
	Complement string `json:"complement,omitempty"`
}

// PaymentForm holds the card draft. Free text, no Luhn or format checks;
// payment is simulated and always succeeds.
type PaymentForm struct {
	CardName   string `json:"card_name"`
	CardNumber string `json:"card_number"`
	CVV        string `json:"cvv"`
	ExpMonth   string `json:"exp_month"`
	ExpYear    string `json:"exp_year"`
}

package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/nikolayk812/efood-demo/internal/checkout"
	"github.com/nikolayk812/efood-demo/internal/domain"
	"github.com/nikolayk812/efood-demo/internal/session"
	"github.com/shopspring/decimal"
)

type CheckoutHandler struct {
	session *session.Session
}

func NewCheckoutHandler(sess *session.Session) *CheckoutHandler {
	return &CheckoutHandler{session: sess}
}

type CheckoutDTO struct {
	Open         bool                `json:"open"`
	Step         domain.Step         `json:"step"`
	Title        string              `json:"title"`
	OrderID      string              `json:"order_id,omitempty"`
	Total        decimal.Decimal     `json:"total"`
	TotalDisplay string              `json:"total_display"`
	Delivery     domain.DeliveryForm `json:"delivery"`
	Payment      domain.PaymentForm  `json:"payment"`
}

func (h *CheckoutHandler) GetCheckout(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.checkoutDTO())
}

func (h *CheckoutHandler) Open(w http.ResponseWriter, r *http.Request) {
	h.session.Checkout(func(c *checkout.Session) {
		c.Open()
	})

	respondJSON(w, http.StatusOK, h.checkoutDTO())
}

func (h *CheckoutHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	h.session.Checkout(func(c *checkout.Session) {
		c.Dismiss()
	})

	respondJSON(w, http.StatusOK, h.checkoutDTO())
}

func (h *CheckoutHandler) ProceedToDelivery(w http.ResponseWriter, r *http.Request) {
	h.transition(w, func(c *checkout.Session) bool { return c.ProceedToDelivery() })
}

func (h *CheckoutHandler) ProceedToPayment(w http.ResponseWriter, r *http.Request) {
	h.transition(w, func(c *checkout.Session) bool { return c.ProceedToPayment() })
}

func (h *CheckoutHandler) Back(w http.ResponseWriter, r *http.Request) {
	h.transition(w, func(c *checkout.Session) bool { return c.Back() })
}

func (h *CheckoutHandler) Finalize(w http.ResponseWriter, r *http.Request) {
	h.transition(w, func(c *checkout.Session) bool { return c.Finalize() })
}

func (h *CheckoutHandler) Conclude(w http.ResponseWriter, r *http.Request) {
	h.transition(w, func(c *checkout.Session) bool { return c.Conclude() })
}

// transition applies a step change and maps a refusal to 409, leaving the
// flow untouched.
func (h *CheckoutHandler) transition(w http.ResponseWriter, action func(c *checkout.Session) bool) {
	var ok bool
	h.session.Checkout(func(c *checkout.Session) {
		ok = action(c)
	})

	if !ok {
		respondError(w, http.StatusConflict, "transition_refused", "transition not allowed from the current step")
		return
	}

	respondJSON(w, http.StatusOK, h.checkoutDTO())
}

func (h *CheckoutHandler) SetDeliveryForm(w http.ResponseWriter, r *http.Request) {
	var form domain.DeliveryForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	// free text by design, nothing to validate
	h.session.Checkout(func(c *checkout.Session) {
		c.SetDelivery(form)
	})

	respondJSON(w, http.StatusOK, h.checkoutDTO())
}

func (h *CheckoutHandler) SetPaymentForm(w http.ResponseWriter, r *http.Request) {
	var form domain.PaymentForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	h.session.Checkout(func(c *checkout.Session) {
		c.SetPayment(form)
	})

	respondJSON(w, http.StatusOK, h.checkoutDTO())
}

func (h *CheckoutHandler) checkoutDTO() CheckoutDTO {
	var dto CheckoutDTO

	total := h.session.CartTotal()
	totalDisplay := domain.BRL(total).Display()

	h.session.Checkout(func(c *checkout.Session) {
		dto = CheckoutDTO{
			Open:         c.IsOpen(),
			Step:         c.Step(),
			Title:        stepTitle(c, totalDisplay),
			OrderID:      c.OrderID(),
			Total:        total,
			TotalDisplay: totalDisplay,
			Delivery:     c.Delivery(),
			Payment:      c.Payment(),
		}
	})

	return dto
}

// stepTitle mirrors the storefront drawer headers, including the amount due
// on the payment step and the order id on confirmation.
func stepTitle(c *checkout.Session, totalDisplay string) string {
	switch c.Step() {
	case domain.StepDelivery:
		return "Entrega"
	case domain.StepPayment:
		return "Pagamento - Valor a pagar " + totalDisplay
	case domain.StepConfirm:
		return "Pedido realizado - " + c.OrderID()
	default:
		return "Carrinho"
	}
}

package checkout

import (
	"github.com/google/uuid"
	"github.com/nikolayk812/efood-demo/internal/domain"
	"github.com/nikolayk812/efood-demo/internal/port"
)

// Session is the checkout flow for one cart: a step cursor plus the form
// drafts and, once the flow reaches confirmation, a generated order id.
//
// Every transition is a total function: an action that is not legal for the
// current step is refused by leaving the step unchanged, never by an error.
// Not safe for concurrent use; the owning session serializes access.
type Session struct {
	ID uuid.UUID

	cart    port.CartStore
	orderID OrderIDFunc

	step     domain.Step
	open     bool
	delivery domain.DeliveryForm
	payment  domain.PaymentForm
	order    string
}

// NewSession creates a session at the Cart step. A nil orderID falls back
// to RandomOrderID.
func NewSession(cart port.CartStore, orderID OrderIDFunc) *Session {
	if orderID == nil {
		orderID = RandomOrderID
	}

	return &Session{
		ID:      uuid.New(),
		cart:    cart,
		orderID: orderID,
		step:    domain.StepCart,
	}
}

func (s *Session) Step() domain.Step {
	return s.step
}

// OrderID is empty until the flow first reaches the Confirm step.
func (s *Session) OrderID() string {
	return s.order
}

func (s *Session) IsOpen() bool {
	return s.open
}

// Open shows the checkout and resets the view to the Cart step, the way
// the storefront reopens the drawer from the cart button.
func (s *Session) Open() {
	s.open = true
	s.step = domain.StepCart
}

// Dismiss closes the checkout without completing it. The cart and both
// form drafts survive, so an abandoned checkout can be resumed later.
func (s *Session) Dismiss() {
	s.open = false
}

// ProceedToDelivery moves Cart -> Delivery. Refused when the cart is empty
// or the flow is not at the Cart step.
func (s *Session) ProceedToDelivery() bool {
	if s.step != domain.StepCart || s.cart.Count() == 0 {
		return false
	}

	s.step = domain.StepDelivery
	return true
}

// ProceedToPayment moves Delivery -> Payment. The delivery draft is not
// validated; checkout is simulated end to end.
func (s *Session) ProceedToPayment() bool {
	if s.step != domain.StepDelivery {
		return false
	}

	s.step = domain.StepPayment
	return true
}

// Back moves one step towards the cart: Payment -> Delivery or
// Delivery -> Cart. Refused elsewhere.
func (s *Session) Back() bool {
	switch s.step {
	case domain.StepDelivery:
		s.step = domain.StepCart
	case domain.StepPayment:
		s.step = domain.StepDelivery
	default:
		return false
	}

	return true
}

// Finalize moves Payment -> Confirm, emptying the cart in the same
// transition. The order id is generated on first entry to Confirm and kept
// stable until Conclude.
func (s *Session) Finalize() bool {
	if s.step != domain.StepPayment {
		return false
	}

	s.cart.Clear()
	s.step = domain.StepConfirm

	if s.order == "" {
		s.order = s.orderID()
	}

	return true
}

// Conclude dismisses a confirmed order: the view closes, the step resets to
// Cart and the order id is cleared for the next checkout.
func (s *Session) Conclude() bool {
	if s.step != domain.StepConfirm {
		return false
	}

	s.step = domain.StepCart
	s.order = ""
	s.open = false
	return true
}

// Delivery returns the current address draft.
func (s *Session) Delivery() domain.DeliveryForm {
	return s.delivery
}

// SetDelivery replaces the address draft. Legal at any step; drafts persist
// across step navigation within the session.
func (s *Session) SetDelivery(form domain.DeliveryForm) {
	s.delivery = form
}

// Payment returns the current card draft.
func (s *Session) Payment() domain.PaymentForm {
	return s.payment
}

// SetPayment replaces the card draft.
func (s *Session) SetPayment(form domain.PaymentForm) {
	s.payment = form
}

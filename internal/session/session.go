package session

import (
	"context"
	"sync"

	"github.com/nikolayk812/efood-demo/internal/cart"
	"github.com/nikolayk812/efood-demo/internal/catalog"
	"github.com/nikolayk812/efood-demo/internal/checkout"
	"github.com/nikolayk812/efood-demo/internal/domain"
	"github.com/nikolayk812/efood-demo/internal/port"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

// Phase is the catalog load state. A session is always in exactly one of
// loading, error or ready.
type Phase string

const (
	PhaseLoading Phase = "loading"
	PhaseError   Phase = "error"
	PhaseReady   Phase = "ready"
)

// Session is the single owned state object for one storefront user: the
// loaded catalog, the browse cursor, the cart and the checkout flow.
//
// The core packages underneath are synchronous and lock-free; the session
// adds the one mutex needed when a server composition drives it from
// concurrent requests.
type Session struct {
	client port.CatalogClient
	sfg    singleflight.Group // collapses racing Init calls into one fetch

	mu          sync.Mutex
	phase       Phase
	loadErr     error
	restaurants []domain.Restaurant

	selection catalog.Selection
	cart      port.CartStore
	checkout  *checkout.Session
}

// New creates a session in the loading phase. A nil orderID keeps the
// default random generator.
func New(client port.CatalogClient, orderID checkout.OrderIDFunc) *Session {
	store := cart.NewStore()

	return &Session{
		client:   client,
		phase:    PhaseLoading,
		cart:     store,
		checkout: checkout.NewSession(store, orderID),
	}
}

// Init performs the one-shot catalog fetch. The first call resolves the
// session to ready or error; later calls return the stored outcome without
// touching the network, so the fetch happens at most once per session and
// a failed load is never retried automatically.
func (s *Session) Init(ctx context.Context) error {
	_, err, _ := s.sfg.Do("catalog", func() (any, error) {
		s.mu.Lock()
		if s.phase != PhaseLoading {
			err := s.loadErr
			s.mu.Unlock()
			return nil, err
		}
		s.mu.Unlock()

		restaurants, err := s.client.GetRestaurants(ctx)

		s.mu.Lock()
		defer s.mu.Unlock()

		if err != nil {
			s.phase = PhaseError
			s.loadErr = err
			return nil, err
		}

		s.phase = PhaseReady
		s.restaurants = restaurants

		// the storefront lands on the first restaurant's menu
		if len(restaurants) > 0 {
			s.selection.SelectRestaurant(restaurants[0].ID)
		}

		return nil, nil
	})

	return err
}

func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.phase
}

// Err returns the catalog load failure, nil unless the phase is error.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadErr
}

func (s *Session) Restaurants() []domain.Restaurant {
	s.mu.Lock()
	defer s.mu.Unlock()

	restaurants := make([]domain.Restaurant, len(s.restaurants))
	copy(restaurants, s.restaurants)

	return restaurants
}

// Restaurant looks up a loaded restaurant by id.
func (s *Session) Restaurant(id int64) (domain.Restaurant, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.restaurantLocked(id)
}

func (s *Session) restaurantLocked(id int64) (domain.Restaurant, bool) {
	for _, r := range s.restaurants {
		if r.ID == id {
			return r, true
		}
	}

	return domain.Restaurant{}, false
}

func (s *Session) SelectRestaurant(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selection.SelectRestaurant(id)
}

// SelectedRestaurant resolves the cursor against the loaded catalog.
// A cursor pointing at an unknown id yields no restaurant, which is a
// valid "nothing displayed" state.
func (s *Session) SelectedRestaurant() (domain.Restaurant, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.selection.Restaurant()
	if !ok {
		return domain.Restaurant{}, false
	}

	return s.restaurantLocked(id)
}

func (s *Session) InspectProduct(product domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selection.InspectProduct(product)
}

func (s *Session) InspectedProduct() (domain.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.selection.InspectedProduct()
}

func (s *Session) ClearInspection() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selection.ClearInspection()
}

// AddToCart puts the product in the cart, closes the detail view and opens
// the checkout at the cart step, mirroring the storefront's add flow.
func (s *Session) AddToCart(product domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.AddItem(product)
	s.selection.ClearInspection()
	s.checkout.Open()
}

func (s *Session) RemoveFromCart(productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.RemoveItem(productID)
}

func (s *Session) CartItems() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart.Items()
}

func (s *Session) CartTotal() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart.Total()
}

func (s *Session) CartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart.Count()
}

// Checkout runs fn against the checkout session while holding the session
// lock, keeping multi-step reads and transitions atomic for callers.
func (s *Session) Checkout(fn func(c *checkout.Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(s.checkout)
}

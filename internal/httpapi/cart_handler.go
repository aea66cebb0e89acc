package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nikolayk812/efood-demo/internal/domain"
	"github.com/nikolayk812/efood-demo/internal/session"
	"github.com/shopspring/decimal"
)

type CartHandler struct {
	session *session.Session
}

func NewCartHandler(sess *session.Session) *CartHandler {
	return &CartHandler{session: sess}
}

type CartDTO struct {
	Items        []domain.CartItem `json:"items"`
	Count        int               `json:"count"`
	Total        decimal.Decimal   `json:"total"`
	TotalDisplay string            `json:"total_display"`
}

type AddItemRequestDTO struct {
	RestaurantID int64 `json:"restaurant_id"`
	ProductID    int64 `json:"product_id"`
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, newCartDTO(h.session))
}

// AddItem resolves the product in the loaded catalog and adds it to the
// cart. The storefront UI can only add products it is displaying, so a
// missing product here means a bad request, not a cart error.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if req.RestaurantID <= 0 || req.ProductID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_request", "restaurant_id and product_id must be positive")
		return
	}

	if h.session.Phase() != session.PhaseReady {
		respondError(w, http.StatusServiceUnavailable, "catalog_unavailable", "catalog is not loaded")
		return
	}

	product, ok := findProduct(h.session, req.RestaurantID, req.ProductID)
	if !ok {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}

	h.session.AddToCart(product)
	respondJSON(w, http.StatusCreated, newCartDTO(h.session))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID, ok := parseID(w, chi.URLParam(r, "product_id"), "product_id")
	if !ok {
		return
	}

	// removing an absent product is a no-op by design
	h.session.RemoveFromCart(productID)
	respondJSON(w, http.StatusOK, newCartDTO(h.session))
}

func newCartDTO(sess *session.Session) CartDTO {
	items := sess.CartItems()
	if items == nil {
		items = []domain.CartItem{}
	}

	total := sess.CartTotal()

	return CartDTO{
		Items:        items,
		Count:        sess.CartCount(),
		Total:        total,
		TotalDisplay: domain.BRL(total).Display(),
	}
}

func findProduct(sess *session.Session, restaurantID, productID int64) (domain.Product, bool) {
	restaurant, ok := sess.Restaurant(restaurantID)
	if !ok {
		return domain.Product{}, false
	}

	for _, p := range restaurant.Menu {
		if p.ID == productID {
			return p, true
		}
	}

	return domain.Product{}, false
}

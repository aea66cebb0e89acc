package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/nikolayk812/efood-demo/internal/session"
)

// NewRouter mounts the storefront JSON API over one application session.
func NewRouter(sess *session.Session) http.Handler {
	catalogHandler := NewCatalogHandler(sess)
	cartHandler := NewCartHandler(sess)
	checkoutHandler := NewCheckoutHandler(sess)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(RequestIDMiddleware)

	r.Get("/catalog", catalogHandler.GetCatalog)
	r.Get("/catalog/restaurants/{id}", catalogHandler.GetRestaurant)
	r.Get("/catalog/selection", catalogHandler.GetSelection)
	r.Post("/catalog/selection/{id}", catalogHandler.SelectRestaurant)
	r.Post("/catalog/inspection", catalogHandler.InspectProduct)
	r.Delete("/catalog/inspection", catalogHandler.ClearInspection)

	r.Get("/cart", cartHandler.GetCart)
	r.Post("/cart/items", cartHandler.AddItem)
	r.Delete("/cart/items/{product_id}", cartHandler.RemoveItem)

	r.Get("/checkout", checkoutHandler.GetCheckout)
	r.Post("/checkout/open", checkoutHandler.Open)
	r.Post("/checkout/dismiss", checkoutHandler.Dismiss)
	r.Post("/checkout/delivery", checkoutHandler.ProceedToDelivery)
	r.Post("/checkout/payment", checkoutHandler.ProceedToPayment)
	r.Post("/checkout/back", checkoutHandler.Back)
	r.Post("/checkout/finalize", checkoutHandler.Finalize)
	r.Post("/checkout/conclude", checkoutHandler.Conclude)
	r.Put("/checkout/delivery-form", checkoutHandler.SetDeliveryForm)
	r.Put("/checkout/payment-form", checkoutHandler.SetPaymentForm)

	return r
}

// RequestIDMiddleware adds a unique request ID to each request
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = fmt.Sprintf("req-%d", time.Now().UnixNano())
		}

		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r)
	})
}

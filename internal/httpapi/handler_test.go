package httpapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nikolayk812/efood-demo/internal/domain"
	"github.com/nikolayk812/efood-demo/internal/httpapi"
	"github.com/nikolayk812/efood-demo/internal/session"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalog struct {
	restaurants []domain.Restaurant
	err         error
}

func (f *fakeCatalog) GetRestaurants(_ context.Context) ([]domain.Restaurant, error) {
	return f.restaurants, f.err
}

func fixtureCatalog() []domain.Restaurant {
	return []domain.Restaurant{
		{
			ID:     1,
			Title:  "La Pasta",
			Type:   "italiana",
			Rating: 4.8,
			Menu: []domain.Product{
				{ID: 10, Name: "Lasanha", Price: decimal.RequireFromString("25.00")},
				{ID: 11, Name: "Ravioli", Price: decimal.RequireFromString("10.00")},
			},
		},
	}
}

func newTestAPI(t *testing.T, client *fakeCatalog, init bool) (http.Handler, *session.Session) {
	t.Helper()

	sess := session.New(client, func() string { return "AAAA1111" })
	if init {
		_ = sess.Init(t.Context())
	}

	return httpapi.NewRouter(sess), sess
}

func doRequest(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(target))
}

func TestGetCatalogPhases(t *testing.T) {
	tests := []struct {
		name       string
		client     *fakeCatalog
		init       bool
		wantStatus string
	}{
		{
			name:       "before init: loading",
			client:     &fakeCatalog{restaurants: fixtureCatalog()},
			init:       false,
			wantStatus: "loading",
		},
		{
			name:       "after init: ready with restaurants",
			client:     &fakeCatalog{restaurants: fixtureCatalog()},
			init:       true,
			wantStatus: "ready",
		},
		{
			name:       "after failed init: error",
			client:     &fakeCatalog{err: assertableErr("boom")},
			init:       true,
			wantStatus: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _ := newTestAPI(t, tt.client, tt.init)

			rec := doRequest(t, handler, http.MethodGet, "/catalog", "")
			require.Equal(t, http.StatusOK, rec.Code)

			var dto struct {
				Status      string `json:"status"`
				Error       string `json:"error"`
				Restaurants []any  `json:"restaurants"`
			}
			decodeBody(t, rec, &dto)

			assert.Equal(t, tt.wantStatus, dto.Status)
			switch tt.wantStatus {
			case "ready":
				assert.Len(t, dto.Restaurants, 1)
				assert.Empty(t, dto.Error)
			case "error":
				assert.NotEmpty(t, dto.Error)
				assert.Empty(t, dto.Restaurants)
			default:
				assert.Empty(t, dto.Error)
				assert.Empty(t, dto.Restaurants)
			}
		})
	}
}

type assertableErr string

func (e assertableErr) Error() string { return string(e) }

func TestAddItem(t *testing.T) {
	tests := []struct {
		name     string
		init     bool
		body     string
		wantCode int
	}{
		{
			name:     "known product: created",
			init:     true,
			body:     `{"restaurant_id": 1, "product_id": 10}`,
			wantCode: http.StatusCreated,
		},
		{
			name:     "unknown product: not found",
			init:     true,
			body:     `{"restaurant_id": 1, "product_id": 999}`,
			wantCode: http.StatusNotFound,
		},
		{
			name:     "unknown restaurant: not found",
			init:     true,
			body:     `{"restaurant_id": 999, "product_id": 10}`,
			wantCode: http.StatusNotFound,
		},
		{
			name:     "catalog still loading: unavailable",
			init:     false,
			body:     `{"restaurant_id": 1, "product_id": 10}`,
			wantCode: http.StatusServiceUnavailable,
		},
		{
			name:     "malformed body: bad request",
			init:     true,
			body:     `{"restaurant_id": `,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _ := newTestAPI(t, &fakeCatalog{restaurants: fixtureCatalog()}, tt.init)

			rec := doRequest(t, handler, http.MethodPost, "/cart/items", tt.body)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestCartLifecycle(t *testing.T) {
	handler, _ := newTestAPI(t, &fakeCatalog{restaurants: fixtureCatalog()}, true)

	// two lasanhas and one ravioli
	for _, body := range []string{
		`{"restaurant_id": 1, "product_id": 10}`,
		`{"restaurant_id": 1, "product_id": 10}`,
		`{"restaurant_id": 1, "product_id": 11}`,
	} {
		rec := doRequest(t, handler, http.MethodPost, "/cart/items", body)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doRequest(t, handler, http.MethodGet, "/cart", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var cart struct {
		Items []struct {
			Product  domain.Product `json:"product"`
			Quantity int            `json:"quantity"`
		} `json:"items"`
		Count        int             `json:"count"`
		Total        decimal.Decimal `json:"total"`
		TotalDisplay string          `json:"total_display"`
	}
	decodeBody(t, rec, &cart)

	require.Len(t, cart.Items, 2)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, 1, cart.Items[1].Quantity)
	assert.Equal(t, 3, cart.Count)
	assert.True(t, decimal.RequireFromString("60.00").Equal(cart.Total))
	assert.Contains(t, cart.TotalDisplay, "R$")

	// removing an absent product id leaves the cart unchanged
	rec = doRequest(t, handler, http.MethodDelete, "/cart/items/999", "")
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &cart)
	assert.Equal(t, 3, cart.Count)

	rec = doRequest(t, handler, http.MethodDelete, "/cart/items/10", "")
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &cart)
	require.Len(t, cart.Items, 1)
	assert.True(t, decimal.RequireFromString("10.00").Equal(cart.Total))
}

func TestCheckoutFlow(t *testing.T) {
	handler, _ := newTestAPI(t, &fakeCatalog{restaurants: fixtureCatalog()}, true)

	// empty cart: proceeding to delivery is refused
	rec := doRequest(t, handler, http.MethodPost, "/checkout/delivery", "")
	require.Equal(t, http.StatusConflict, rec.Code)

	var errDTO httpapi.ErrorResponse
	decodeBody(t, rec, &errDTO)
	assert.Equal(t, "transition_refused", errDTO.Code)

	rec = doRequest(t, handler, http.MethodPost, "/cart/items", `{"restaurant_id": 1, "product_id": 10}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	type checkoutDTO struct {
		Open    bool   `json:"open"`
		Step    string `json:"step"`
		Title   string `json:"title"`
		OrderID string `json:"order_id"`
	}
	var dto checkoutDTO

	// adding to the cart opened the checkout at the cart step
	rec = doRequest(t, handler, http.MethodGet, "/checkout", "")
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &dto)
	assert.True(t, dto.Open)
	assert.Equal(t, "cart", dto.Step)

	rec = doRequest(t, handler, http.MethodPost, "/checkout/delivery", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, handler, http.MethodPut, "/checkout/delivery-form",
		`{"receiver": "Maria", "address": "Rua A", "city": "SP", "cep": "01000-000", "number": "42"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, handler, http.MethodPost, "/checkout/payment", "")
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &dto)
	assert.Equal(t, "payment", dto.Step)
	assert.Contains(t, dto.Title, "Pagamento")

	rec = doRequest(t, handler, http.MethodPut, "/checkout/payment-form",
		`{"card_name": "MARIA", "card_number": "4111111111111111", "cvv": "123", "exp_month": "12", "exp_year": "2030"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, handler, http.MethodPost, "/checkout/finalize", "")
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &dto)
	assert.Equal(t, "confirm", dto.Step)
	assert.Equal(t, "AAAA1111", dto.OrderID)
	assert.Contains(t, dto.Title, "AAAA1111")

	// the same transition emptied the cart
	rec = doRequest(t, handler, http.MethodGet, "/cart", "")
	var cart struct {
		Count int `json:"count"`
	}
	decodeBody(t, rec, &cart)
	assert.Equal(t, 0, cart.Count)

	rec = doRequest(t, handler, http.MethodPost, "/checkout/conclude", "")
	require.Equal(t, http.StatusOK, rec.Code)
	// order_id is omitempty, so decoding cannot clear the previous value
	dto = checkoutDTO{}
	decodeBody(t, rec, &dto)
	assert.False(t, dto.Open)
	assert.Equal(t, "cart", dto.Step)
	assert.Empty(t, dto.OrderID)
}

func TestDismissPreservesCart(t *testing.T) {
	handler, _ := newTestAPI(t, &fakeCatalog{restaurants: fixtureCatalog()}, true)

	rec := doRequest(t, handler, http.MethodPost, "/cart/items", `{"restaurant_id": 1, "product_id": 10}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, handler, http.MethodPost, "/checkout/delivery", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, handler, http.MethodPost, "/checkout/dismiss", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, handler, http.MethodGet, "/cart", "")
	var cart struct {
		Count int `json:"count"`
	}
	decodeBody(t, rec, &cart)
	assert.Equal(t, 1, cart.Count)
}

func TestSelection(t *testing.T) {
	handler, _ := newTestAPI(t, &fakeCatalog{restaurants: fixtureCatalog()}, true)

	// the first restaurant is pre-selected after load
	rec := doRequest(t, handler, http.MethodGet, "/catalog/selection", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var dto struct {
		RestaurantID *int64 `json:"restaurant_id"`
	}
	decodeBody(t, rec, &dto)
	require.NotNil(t, dto.RestaurantID)
	assert.Equal(t, int64(1), *dto.RestaurantID)

	// selecting an unknown id is allowed and yields an empty selection
	rec = doRequest(t, handler, http.MethodPost, "/catalog/selection/999", "")
	require.Equal(t, http.StatusOK, rec.Code)

	dto.RestaurantID = nil
	decodeBody(t, rec, &dto)
	assert.Nil(t, dto.RestaurantID)
}

func TestInspection(t *testing.T) {
	handler, _ := newTestAPI(t, &fakeCatalog{restaurants: fixtureCatalog()}, true)

	rec := doRequest(t, handler, http.MethodPost, "/catalog/inspection", `{"restaurant_id": 1, "product_id": 10}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, handler, http.MethodGet, "/catalog/selection", "")
	var dto struct {
		InspectedProduct *domain.Product `json:"inspected_product"`
	}
	decodeBody(t, rec, &dto)
	require.NotNil(t, dto.InspectedProduct)
	assert.Equal(t, int64(10), dto.InspectedProduct.ID)

	rec = doRequest(t, handler, http.MethodDelete, "/catalog/inspection", "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(t, handler, http.MethodGet, "/catalog/selection", "")
	dto.InspectedProduct = nil
	decodeBody(t, rec, &dto)
	assert.Nil(t, dto.InspectedProduct)
}

func TestGetRestaurant(t *testing.T) {
	handler, _ := newTestAPI(t, &fakeCatalog{restaurants: fixtureCatalog()}, true)

	rec := doRequest(t, handler, http.MethodGet, "/catalog/restaurants/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var dto struct {
		Title       string   `json:"titulo"`
		MenuDisplay []string `json:"menu_display"`
	}
	decodeBody(t, rec, &dto)
	assert.Equal(t, "La Pasta", dto.Title)
	require.Len(t, dto.MenuDisplay, 2)
	assert.Contains(t, dto.MenuDisplay[0], "R$")

	rec = doRequest(t, handler, http.MethodGet, "/catalog/restaurants/999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/nikolayk812/efood-demo/internal/domain"
	"github.com/nikolayk812/efood-demo/internal/session"
)

type CatalogHandler struct {
	session *session.Session
}

func NewCatalogHandler(sess *session.Session) *CatalogHandler {
	return &CatalogHandler{session: sess}
}

// CatalogDTO always carries exactly one of: nothing extra (loading),
// an error message, or the restaurant list.
type CatalogDTO struct {
	Status      string              `json:"status"`
	Error       string              `json:"error,omitempty"`
	Restaurants []domain.Restaurant `json:"restaurants,omitempty"`
}

type SelectionDTO struct {
	RestaurantID     *int64          `json:"restaurant_id,omitempty"`
	Restaurant       *RestaurantDTO  `json:"restaurant,omitempty"`
	InspectedProduct *domain.Product `json:"inspected_product,omitempty"`
}

// RestaurantDTO decorates a restaurant with display prices for its menu.
type RestaurantDTO struct {
	domain.Restaurant
	MenuDisplay []string `json:"menu_display,omitempty"`
}

func (h *CatalogHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	dto := CatalogDTO{Status: string(h.session.Phase())}

	switch h.session.Phase() {
	case session.PhaseError:
		dto.Error = h.session.Err().Error()
	case session.PhaseReady:
		dto.Restaurants = h.session.Restaurants()
	}

	respondJSON(w, http.StatusOK, dto)
}

func (h *CatalogHandler) GetRestaurant(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, chi.URLParam(r, "id"), "id")
	if !ok {
		return
	}

	restaurant, found := h.session.Restaurant(id)
	if !found {
		respondError(w, http.StatusNotFound, "not_found", "restaurant not found")
		return
	}

	respondJSON(w, http.StatusOK, newRestaurantDTO(restaurant))
}

// SelectRestaurant moves the browse cursor. The id is not validated against
// the catalog: an unknown id simply resolves to an empty selection.
func (h *CatalogHandler) SelectRestaurant(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, chi.URLParam(r, "id"), "id")
	if !ok {
		return
	}

	h.session.SelectRestaurant(id)
	h.GetSelection(w, r)
}

func (h *CatalogHandler) GetSelection(w http.ResponseWriter, r *http.Request) {
	var dto SelectionDTO

	if restaurant, ok := h.session.SelectedRestaurant(); ok {
		dto.RestaurantID = &restaurant.ID
		restaurantDTO := newRestaurantDTO(restaurant)
		dto.Restaurant = &restaurantDTO
	}

	if product, ok := h.session.InspectedProduct(); ok {
		dto.InspectedProduct = &product
	}

	respondJSON(w, http.StatusOK, dto)
}

type InspectProductRequestDTO struct {
	RestaurantID int64 `json:"restaurant_id"`
	ProductID    int64 `json:"product_id"`
}

func (h *CatalogHandler) InspectProduct(w http.ResponseWriter, r *http.Request) {
	var req InspectProductRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	product, ok := findProduct(h.session, req.RestaurantID, req.ProductID)
	if !ok {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}

	h.session.InspectProduct(product)
	respondJSON(w, http.StatusOK, product)
}

func (h *CatalogHandler) ClearInspection(w http.ResponseWriter, r *http.Request) {
	h.session.ClearInspection()
	w.WriteHeader(http.StatusNoContent)
}

func newRestaurantDTO(restaurant domain.Restaurant) RestaurantDTO {
	dto := RestaurantDTO{Restaurant: restaurant}
	for _, p := range restaurant.Menu {
		dto.MenuDisplay = append(dto.MenuDisplay, domain.BRL(p.Price).Display())
	}

	return dto
}

func parseID(w http.ResponseWriter, raw, field string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_"+field, field+" must be a positive integer")
		return 0, false
	}

	return id, true
}

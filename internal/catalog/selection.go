package catalog

import (
	"github.com/nikolayk812/efood-demo/internal/domain"
)

// Selection is the browse cursor: which restaurant is expanded and which
// product is open in the detail view. Pure state, no business rules.
//
// Selecting an id that is not in the loaded catalog is allowed; lookups
// against the catalog then simply find nothing.
type Selection struct {
	restaurantID  int64
	hasRestaurant bool

	product    domain.Product
	hasProduct bool
}

func (s *Selection) SelectRestaurant(id int64) {
	s.restaurantID = id
	s.hasRestaurant = true
}

func (s *Selection) Restaurant() (int64, bool) {
	return s.restaurantID, s.hasRestaurant
}

func (s *Selection) InspectProduct(product domain.Product) {
	s.product = product
	s.hasProduct = true
}

func (s *Selection) InspectedProduct() (domain.Product, bool) {
	return s.product, s.hasProduct
}

func (s *Selection) ClearInspection() {
	s.product = domain.Product{}
	s.hasProduct = false
}

package port

import (
	"context"

	"github.com/nikolayk812/efood-demo/internal/domain"
)

// CatalogClient fetches the read-only restaurant catalog.
type CatalogClient interface {
	GetRestaurants(ctx context.Context) ([]domain.Restaurant, error)
}

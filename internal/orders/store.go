package orders

import (
	"context"
	"errors"

	"storefront/internal/models"
)

// ErrOrderNotFound indicates the requested order does not exist.
var ErrOrderNotFound = errors.New("order not found")

// Store defines behavior for persisting orders. Orders are write-once:
// there is no update or delete.
type Store interface {
	// Create persists the order with its embedded items as one atomic
	// write, assigning the order id and createdAt when unset.
	Create(ctx context.Context, order *models.Order) error
	// List returns orders most recent first. page and limit are both
	// positive when paginating; zero values return everything.
	List(ctx context.Context, page, limit int64) ([]models.Order, error)
	// GetByID returns one order by its hex id, or ErrOrderNotFound.
	GetByID(ctx context.Context, id string) (models.Order, error)
}

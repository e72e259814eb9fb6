package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"

	"storefront/internal/models"
)

// ErrEmptyCart indicates an order submitted with no items.
var ErrEmptyCart = errors.New("cart is empty")

// InvalidQuantityError marks a requested line with a non-positive quantity.
type InvalidQuantityError struct {
	ProductID string
	Quantity  int
}

func (e InvalidQuantityError) Error() string {
	return fmt.Sprintf("invalid quantity %d for product %q", e.Quantity, e.ProductID)
}

// CatalogReader is the catalog lookup the assembler needs; satisfied by
// catalog.Service.
type CatalogReader interface {
	Get(ctx context.Context, provider, id string) (models.Product, error)
}

// CreateOrderItem is one requested cart line.
type CreateOrderItem struct {
	ProductID string `json:"productId"`
	Provider  string `json:"provider"`
	Quantity  int    `json:"quantity"`
}

// CreateOrderRequest is the checkout payload. Prices and totals are never
// taken from the client; they are re-derived from the live catalog.
type CreateOrderRequest struct {
	CustomerName  string            `json:"customerName" binding:"required"`
	CustomerEmail string            `json:"customerEmail" binding:"required,email"`
	Items         []CreateOrderItem `json:"items"`
}

// Service assembles and persists orders: it resolves every requested line
// against the live catalog, computes the total server-side, and writes the
// order with its items in one atomic insert.
type Service struct {
	catalog CatalogReader
	store   Store
}

func NewService(catalog CatalogReader, store Store) *Service {
	return &Service{catalog: catalog, store: store}
}

// Create builds and persists an order. Any resolution failure fails the
// whole order; nothing is written until every line has a live price.
func (s *Service) Create(ctx context.Context, req CreateOrderRequest) (models.Order, error) {
	if len(req.Items) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	lines, err := mergeLines(req.Items)
	if err != nil {
		return models.Order{}, err
	}

	items := make([]models.OrderItem, len(lines))
	g, gctx := errgroup.WithContext(ctx)
	for i, line := range lines {
		i, line := i, line
		g.Go(func() error {
			product, err := s.catalog.Get(gctx, line.Provider, line.ProductID)
			if err != nil {
				return err
			}
			items[i] = models.OrderItem{
				ID:          primitive.NewObjectID(),
				ProductID:   line.ProductID,
				Provider:    product.Provider,
				ProductName: product.Name,
				Price:       product.Price,
				Quantity:    line.Quantity,
				Image:       product.Image,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return models.Order{}, err
	}

	total := 0.0
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}

	order := models.Order{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Total:         total,
		Status:        models.OrderStatusPending,
		CreatedAt:     time.Now().UTC(),
		Items:         items,
	}
	if err := s.store.Create(ctx, &order); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// List returns persisted orders, most recent first.
func (s *Service) List(ctx context.Context, page, limit int64) ([]models.Order, error) {
	return s.store.List(ctx, page, limit)
}

// Get returns one persisted order by id.
func (s *Service) Get(ctx context.Context, id string) (models.Order, error) {
	return s.store.GetByID(ctx, id)
}

// mergeLines validates requested lines and merges duplicate
// (provider, productId) pairs additively, the same rule the storefront cart
// applies client-side. First-seen order is preserved.
func mergeLines(requested []CreateOrderItem) ([]CreateOrderItem, error) {
	type key struct {
		provider  models.Provider
		productID string
	}

	index := make(map[key]int)
	merged := make([]CreateOrderItem, 0, len(requested))

	for _, line := range requested {
		provider, err := models.ParseProvider(line.Provider)
		if err != nil {
			return nil, err
		}
		if line.Quantity <= 0 {
			return nil, InvalidQuantityError{ProductID: line.ProductID, Quantity: line.Quantity}
		}

		k := key{provider: provider, productID: line.ProductID}
		if at, ok := index[k]; ok {
			merged[at].Quantity += line.Quantity
			continue
		}
		index[k] = len(merged)
		merged = append(merged, line)
	}
	return merged, nil
}

package orders

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront/internal/models"
)

// MemoryStore is an in-memory Store for tests and local runs without a
// database.
type MemoryStore struct {
	mu     sync.RWMutex
	orders map[string]models.Order
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{orders: make(map[string]models.Order)}
}

func (s *MemoryStore) Create(ctx context.Context, order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}

	s.orders[order.ID.Hex()] = *order
	return nil
}

func (s *MemoryStore) List(ctx context.Context, page, limit int64) ([]models.Order, error) {
	s.mu.RLock()
	out := make([]models.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID.Hex() > out[j].ID.Hex()
	})

	if page > 0 && limit > 0 {
		start := (page - 1) * limit
		if start >= int64(len(out)) {
			return []models.Order{}, nil
		}
		end := start + limit
		if end > int64(len(out)) {
			end = int64(len(out))
		}
		out = out[start:end]
	}
	return out, nil
}

func (s *MemoryStore) GetByID(ctx context.Context, id string) (models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[id]
	if !ok {
		return models.Order{}, ErrOrderNotFound
	}
	return order, nil
}

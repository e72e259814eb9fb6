package orders

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront/internal/models"
)

func TestMemoryStoreCreateAndGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	order := models.Order{
		CustomerName:  "Kalita Trevisan",
		CustomerEmail: "kalita@email.com",
		Total:         64.80,
		Status:        models.OrderStatusPending,
	}
	if err := store.Create(ctx, &order); err != nil {
		t.Fatalf("create: %v", err)
	}
	if order.ID.IsZero() {
		t.Fatal("expected assigned id")
	}
	if order.CreatedAt.IsZero() {
		t.Fatal("expected assigned createdAt")
	}

	got, err := store.GetByID(ctx, order.ID.Hex())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.CustomerName != "Kalita Trevisan" {
		t.Fatalf("unexpected order: %+v", got)
	}
}

func TestMemoryStoreGetUnknownID(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.GetByID(context.Background(), "64b0c0ffee0ddba11ca70000")
	if !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestMemoryStoreListMostRecentFirst(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	base := time.Date(2025, 6, 18, 18, 30, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		order := models.Order{
			CustomerName: "Customer",
			Total:        float64(i),
			CreatedAt:    base.Add(time.Duration(i) * time.Hour),
		}
		if err := store.Create(ctx, &order); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	list, err := store.List(ctx, 0, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 orders, got %d", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i].CreatedAt.After(list[i-1].CreatedAt) {
			t.Fatalf("expected most recent first, got %v before %v", list[i-1].CreatedAt, list[i].CreatedAt)
		}
	}
}

func TestMemoryStoreListPagination(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	base := time.Date(2025, 6, 18, 18, 30, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		order := models.Order{CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		if err := store.Create(ctx, &order); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	page, err := store.List(ctx, 2, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(page) != 2 {
		t.Fatalf("expected page of 2, got %d", len(page))
	}

	beyond, err := store.List(ctx, 9, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(beyond) != 0 {
		t.Fatalf("expected empty page past the end, got %d", len(beyond))
	}
}

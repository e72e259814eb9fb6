package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"sync"
	"testing"

	"storefront/internal/models"
	"storefront/internal/providers"
)

// stubFetcher serves canned raw payloads and counts calls.
type stubFetcher struct {
	mu        sync.Mutex
	lists     map[models.Provider][]json.RawMessage
	items     map[models.Provider]map[string]json.RawMessage
	listErr   map[models.Provider]error
	callCount int
}

func newStubFetcher() *stubFetcher {
	return &stubFetcher{
		lists:   make(map[models.Provider][]json.RawMessage),
		items:   make(map[models.Provider]map[string]json.RawMessage),
		listErr: make(map[models.Provider]error),
	}
}

func (f *stubFetcher) ListRaw(ctx context.Context, provider models.Provider) ([]json.RawMessage, error) {
	f.mu.Lock()
	f.callCount++
	f.mu.Unlock()
	if err := f.listErr[provider]; err != nil {
		return nil, err
	}
	return f.lists[provider], nil
}

func (f *stubFetcher) GetRaw(ctx context.Context, provider models.Provider, id string) (json.RawMessage, error) {
	f.mu.Lock()
	f.callCount++
	f.mu.Unlock()
	raw, ok := f.items[provider][id]
	if !ok {
		return nil, providers.NotFoundError{Provider: provider, ID: id}
	}
	return raw, nil
}

func (f *stubFetcher) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.callCount
}

func seedFetcher() *stubFetcher {
	f := newStubFetcher()
	f.lists[models.ProviderBrazilian] = []json.RawMessage{
		json.RawMessage(`{"id":"1","nome":"Café","preco":"24.90","imagem":"https://cdn.example.com/cafe.jpg"}`),
		json.RawMessage(`{"id":"2","nome":"Queijo","preco":"59.90","imagem":"https://cdn.example.com/queijo.jpg"}`),
	}
	f.lists[models.ProviderEuropean] = []json.RawMessage{
		json.RawMessage(`{"id":"1","name":"Chocolate","price":"39.90","gallery":["https://cdn.example.com/choc.jpg"]}`),
	}
	f.items[models.ProviderBrazilian] = map[string]json.RawMessage{
		"1": f.lists[models.ProviderBrazilian][0],
	}
	f.items[models.ProviderEuropean] = map[string]json.RawMessage{
		"1": f.lists[models.ProviderEuropean][0],
	}
	return f
}

func TestListAllIsConcatenation(t *testing.T) {
	ctx := context.Background()
	svc := NewService(seedFetcher())

	all, err := svc.List(ctx, FilterAll)
	if err != nil {
		t.Fatalf("List(all) returned error: %v", err)
	}

	brazilian, err := svc.List(ctx, "brazilian")
	if err != nil {
		t.Fatalf("List(brazilian) returned error: %v", err)
	}
	european, err := svc.List(ctx, "european")
	if err != nil {
		t.Fatalf("List(european) returned error: %v", err)
	}

	want := append(append([]models.Product{}, brazilian...), european...)
	if !reflect.DeepEqual(all, want) {
		t.Fatalf("expected all == brazilian ++ european\nall:  %+v\nwant: %+v", all, want)
	}
	if all[0].Provider != models.ProviderBrazilian {
		t.Fatal("expected brazilian items first")
	}
}

func TestListEmptyFilterMeansAll(t *testing.T) {
	ctx := context.Background()
	svc := NewService(seedFetcher())

	all, err := svc.List(ctx, "")
	if err != nil {
		t.Fatalf("List(\"\") returned error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 products, got %d", len(all))
	}
}

func TestListUnknownFilter(t *testing.T) {
	svc := NewService(seedFetcher())

	_, err := svc.List(context.Background(), "asian")
	var invalid models.InvalidProviderError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidProviderError, got %v", err)
	}
}

func TestListAllFailsWhenOneProviderFails(t *testing.T) {
	fetcher := seedFetcher()
	fetcher.listErr[models.ProviderEuropean] = providers.UpstreamError{Provider: models.ProviderEuropean, Status: 503}
	svc := NewService(fetcher)

	_, err := svc.List(context.Background(), FilterAll)
	var upstream providers.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
}

func TestGetValidatesProviderBeforeNetworkCall(t *testing.T) {
	fetcher := seedFetcher()
	svc := NewService(fetcher)

	_, err := svc.Get(context.Background(), "asian", "1")
	var invalid models.InvalidProviderError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidProviderError, got %v", err)
	}
	if fetcher.calls() != 0 {
		t.Fatalf("expected no upstream call, got %d", fetcher.calls())
	}
}

func TestGetNotFoundPropagates(t *testing.T) {
	svc := NewService(seedFetcher())

	_, err := svc.Get(context.Background(), "european", "999")
	var notFound providers.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestGetNormalizes(t *testing.T) {
	svc := NewService(seedFetcher())

	product, err := svc.Get(context.Background(), "brazilian", "1")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if product.Name != "Café" || product.Price != 24.90 || product.Provider != models.ProviderBrazilian {
		t.Fatalf("unexpected product: %+v", product)
	}
}

package catalog

import (
	"context"
	"encoding/json"

	"golang.org/x/sync/errgroup"

	"storefront/internal/models"
	"storefront/internal/providers"
)

// FilterAll selects both providers when listing.
const FilterAll = "all"

// Fetcher is the upstream access the service needs; satisfied by
// providers.Client.
type Fetcher interface {
	ListRaw(ctx context.Context, provider models.Provider) ([]json.RawMessage, error)
	GetRaw(ctx context.Context, provider models.Provider, id string) (json.RawMessage, error)
}

// Service answers catalog reads by fetching and normalizing upstream data.
// There is no cache: every call re-fetches, so listings are always current.
type Service struct {
	fetcher Fetcher
}

func NewService(fetcher Fetcher) *Service {
	return &Service{fetcher: fetcher}
}

// List returns products for the requested provider filter. An empty filter
// or "all" fetches both providers concurrently and concatenates brazilian
// items first, each collection keeping its upstream order. Both fetches
// must succeed; no partial catalog is ever returned.
func (s *Service) List(ctx context.Context, filter string) ([]models.Product, error) {
	if filter == "" || filter == FilterAll {
		return s.listAll(ctx)
	}

	provider, err := models.ParseProvider(filter)
	if err != nil {
		return nil, err
	}
	return s.listOne(ctx, provider)
}

// Get returns a single product. The provider tag is validated before any
// network call is issued.
func (s *Service) Get(ctx context.Context, provider, id string) (models.Product, error) {
	parsed, err := models.ParseProvider(provider)
	if err != nil {
		return models.Product{}, err
	}

	raw, err := s.fetcher.GetRaw(ctx, parsed, id)
	if err != nil {
		return models.Product{}, err
	}
	return providers.Normalize(parsed, raw)
}

func (s *Service) listAll(ctx context.Context) ([]models.Product, error) {
	var brazilian, european []models.Product

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		brazilian, err = s.listOne(gctx, models.ProviderBrazilian)
		return err
	})
	g.Go(func() error {
		var err error
		european, err = s.listOne(gctx, models.ProviderEuropean)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	combined := make([]models.Product, 0, len(brazilian)+len(european))
	combined = append(combined, brazilian...)
	combined = append(combined, european...)
	return combined, nil
}

func (s *Service) listOne(ctx context.Context, provider models.Provider) ([]models.Product, error) {
	raws, err := s.fetcher.ListRaw(ctx, provider)
	if err != nil {
		return nil, err
	}
	return providers.NormalizeAll(provider, raws)
}

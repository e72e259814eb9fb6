package providers

import (
	"encoding/json"
	"fmt"
	"strings"

	"storefront/internal/models"
)

// The brazilian catalog still references placeimg.com, which shut down;
// those URLs are swapped for a placeholder seeded by the product id so the
// same product always renders the same image.
const defunctImageHost = "placeimg.com"

func placeholderImage(id string) string {
	return fmt.Sprintf("https://picsum.photos/seed/%s/640/480", id)
}

func resolveImage(url, id string) string {
	if url != "" && strings.Contains(url, defunctImageHost) {
		return placeholderImage(id)
	}
	if url == "" {
		return placeholderImage(id)
	}
	return url
}

// Normalize maps one raw provider record to the canonical product shape.
func Normalize(provider models.Provider, raw json.RawMessage) (models.Product, error) {
	switch provider {
	case models.ProviderBrazilian:
		return normalizeBrazilian(raw)
	case models.ProviderEuropean:
		return normalizeEuropean(raw)
	default:
		return models.Product{}, models.InvalidProviderError{Value: string(provider)}
	}
}

// NormalizeAll maps a full raw collection, preserving the upstream order.
func NormalizeAll(provider models.Provider, raws []json.RawMessage) ([]models.Product, error) {
	products := make([]models.Product, 0, len(raws))
	for _, raw := range raws {
		product, err := Normalize(provider, raw)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, nil
}

func normalizeBrazilian(raw json.RawMessage) (models.Product, error) {
	var r brazilianRaw
	if err := json.Unmarshal(raw, &r); err != nil {
		return models.Product{}, BadPayloadError{Provider: models.ProviderBrazilian, ID: rawID(raw), Err: err}
	}
	if r.Preco == nil {
		return models.Product{}, BadPayloadError{Provider: models.ProviderBrazilian, ID: r.ID, Err: fmt.Errorf("missing preco field")}
	}

	name := r.Nome
	if name == "" {
		name = r.Name
	}

	return models.Product{
		ID:          r.ID,
		Name:        name,
		Price:       float64(*r.Preco),
		Image:       resolveImage(r.Imagem, r.ID),
		Description: r.Descricao,
		Provider:    models.ProviderBrazilian,
	}, nil
}

func normalizeEuropean(raw json.RawMessage) (models.Product, error) {
	var r europeanRaw
	if err := json.Unmarshal(raw, &r); err != nil {
		return models.Product{}, BadPayloadError{Provider: models.ProviderEuropean, ID: rawID(raw), Err: err}
	}
	if r.Price == nil {
		return models.Product{}, BadPayloadError{Provider: models.ProviderEuropean, ID: r.ID, Err: fmt.Errorf("missing price field")}
	}

	image := ""
	if len(r.Gallery) > 0 {
		image = r.Gallery[0]
	}

	return models.Product{
		ID:          r.ID,
		Name:        r.Name,
		Price:       float64(*r.Price),
		Image:       resolveImage(image, r.ID),
		Description: r.Description,
		Provider:    models.ProviderEuropean,
	}, nil
}

// rawID pulls the id out of a record that failed full decoding, purely to
// make the resulting error traceable to an upstream row.
func rawID(raw json.RawMessage) string {
	var probe struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return ""
	}
	return probe.ID
}

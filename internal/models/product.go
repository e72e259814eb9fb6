package models

// Product is the canonical, provider-agnostic product representation.
// Products are derived from the upstream catalogs on every read and are
// never persisted; identity is the (Provider, ID) pair.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	Description string   `json:"description,omitempty"`
	Provider    Provider `json:"provider"`
}

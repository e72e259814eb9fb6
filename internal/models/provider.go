package models

import "fmt"

// Provider identifies one of the two upstream catalog sources.
type Provider string

const (
	ProviderBrazilian Provider = "brazilian"
	ProviderEuropean  Provider = "european"
)

// ParseProvider validates a raw provider tag against the two known sources.
func ParseProvider(value string) (Provider, error) {
	switch Provider(value) {
	case ProviderBrazilian:
		return ProviderBrazilian, nil
	case ProviderEuropean:
		return ProviderEuropean, nil
	default:
		return "", InvalidProviderError{Value: value}
	}
}

// InvalidProviderError marks a provider tag outside the known enum.
type InvalidProviderError struct {
	Value string
}

func (e InvalidProviderError) Error() string {
	return fmt.Sprintf("invalid provider %q", e.Value)
}

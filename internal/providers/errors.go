package providers

import (
	"fmt"

	"storefront/internal/models"
)

// NotFoundError reports a product id the upstream provider does not know.
type NotFoundError struct {
	Provider models.Provider
	ID       string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("product %s/%s not found", e.Provider, e.ID)
}

// UpstreamError reports an unreachable or erroring provider origin. Status
// is zero for transport failures.
type UpstreamError struct {
	Provider models.Provider
	Status   int
	Err      error
}

func (e UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("provider %s unavailable: %v", e.Provider, e.Err)
	}
	return fmt.Sprintf("provider %s returned status %d", e.Provider, e.Status)
}

func (e UpstreamError) Unwrap() error { return e.Err }

// BadPayloadError reports an upstream record that does not fit the
// provider's documented shape (typically a non-numeric price).
type BadPayloadError struct {
	Provider models.Provider
	ID       string
	Err      error
}

func (e BadPayloadError) Error() string {
	return fmt.Sprintf("provider %s sent a malformed record (id %q): %v", e.Provider, e.ID, e.Err)
}

func (e BadPayloadError) Unwrap() error { return e.Err }

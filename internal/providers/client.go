package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"storefront/internal/models"
)

// Client fetches raw catalog JSON from the two upstream provider origins.
// It is a thin wrapper: no retries, no caching, and no timeout of its own —
// callers bound requests through the context.
type Client struct {
	httpClient *http.Client
	baseURLs   map[models.Provider]string
}

// NewClient builds a client for the two provider base URLs.
func NewClient(brazilianURL, europeanURL string) *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURLs: map[models.Provider]string{
			models.ProviderBrazilian: strings.TrimRight(brazilianURL, "/"),
			models.ProviderEuropean:  strings.TrimRight(europeanURL, "/"),
		},
	}
}

// ListRaw fetches the full collection for one provider.
func (c *Client) ListRaw(ctx context.Context, provider models.Provider) ([]json.RawMessage, error) {
	base, err := c.baseURL(provider)
	if err != nil {
		return nil, err
	}

	body, status, err := c.get(ctx, provider, base)
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		return nil, UpstreamError{Provider: provider, Status: status}
	}

	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, BadPayloadError{Provider: provider, Err: err}
	}
	return items, nil
}

// GetRaw fetches a single item by id. An upstream 404 maps to NotFoundError.
func (c *Client) GetRaw(ctx context.Context, provider models.Provider, id string) (json.RawMessage, error) {
	base, err := c.baseURL(provider)
	if err != nil {
		return nil, err
	}

	body, status, err := c.get(ctx, provider, fmt.Sprintf("%s/%s", base, id))
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, NotFoundError{Provider: provider, ID: id}
	}
	if status < 200 || status > 299 {
		return nil, UpstreamError{Provider: provider, Status: status}
	}
	return json.RawMessage(body), nil
}

func (c *Client) baseURL(provider models.Provider) (string, error) {
	base, ok := c.baseURLs[provider]
	if !ok {
		return "", models.InvalidProviderError{Value: string(provider)}
	}
	return base, nil
}

func (c *Client) get(ctx context.Context, provider models.Provider, url string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, UpstreamError{Provider: provider, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, UpstreamError{Provider: provider, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, UpstreamError{Provider: provider, Err: err}
	}
	return body, resp.StatusCode, nil
}

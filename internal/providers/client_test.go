package providers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/models"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL+"/brazilian", server.URL+"/european")
}

func TestClientListRaw(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/brazilian" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"1","nome":"Café","preco":"24.90"},{"id":"2","nome":"Doce","preco":"5"}]`))
	}))

	raws, err := client.ListRaw(context.Background(), models.ProviderBrazilian)
	if err != nil {
		t.Fatalf("ListRaw returned error: %v", err)
	}
	if len(raws) != 2 {
		t.Fatalf("expected 2 raw records, got %d", len(raws))
	}
}

func TestClientGetRawNotFound(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))

	_, err := client.GetRaw(context.Background(), models.ProviderEuropean, "999")
	var notFound NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if notFound.Provider != models.ProviderEuropean || notFound.ID != "999" {
		t.Fatalf("unexpected error detail: %+v", notFound)
	}
}

func TestClientGetRawServerError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	_, err := client.GetRaw(context.Background(), models.ProviderBrazilian, "1")
	var upstream UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if upstream.Status != http.StatusInternalServerError {
		t.Fatalf("expected status 500 in error, got %d", upstream.Status)
	}
}

func TestClientUnreachableOrigin(t *testing.T) {
	client := NewClient("http://127.0.0.1:1/brazilian", "http://127.0.0.1:1/european")

	_, err := client.ListRaw(context.Background(), models.ProviderBrazilian)
	var upstream UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError for unreachable origin, got %v", err)
	}
}

func TestClientUnknownProvider(t *testing.T) {
	client := NewClient("http://localhost/brazilian", "http://localhost/european")

	_, err := client.ListRaw(context.Background(), models.Provider("asian"))
	var invalid models.InvalidProviderError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidProviderError, got %v", err)
	}
}

func TestClientListRawNonArrayBody(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"oops":true}`))
	}))

	_, err := client.ListRaw(context.Background(), models.ProviderBrazilian)
	var bad BadPayloadError
	if !errors.As(err, &bad) {
		t.Fatalf("expected BadPayloadError, got %v", err)
	}
}

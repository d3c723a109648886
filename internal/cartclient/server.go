package cartclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/drivecans/storefront-backend/internal/cart"
)

// ServerBackend delegates every cart operation to the cart API. It keeps
// no cart state of its own; the session cookie in the jar is the only
// thing tying calls together.
type ServerBackend struct {
	baseURL string
	client  *http.Client
}

// NewServerBackend builds a server backend rooted at baseURL (for example
// "http://localhost:8080"). The cookie jar carries the session cookie the
// API mints on first contact.
func NewServerBackend(baseURL string, client *http.Client) (*ServerBackend, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("base URL required")
	}
	if client == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("building cookie jar: %w", err)
		}
		client = &http.Client{Jar: jar, Timeout: 10 * time.Second}
	}
	return &ServerBackend{baseURL: baseURL, client: client}, nil
}

func (b *ServerBackend) Get(ctx context.Context) (*cart.Snapshot, error) {
	return b.do(ctx, http.MethodGet, "/api/cart", nil)
}

func (b *ServerBackend) Add(ctx context.Context, productID uint, quantity int) (*cart.Snapshot, error) {
	return b.do(ctx, http.MethodPost, "/api/cart", map[string]any{
		"productId": productID,
		"quantity":  quantity,
	})
}

func (b *ServerBackend) Update(ctx context.Context, itemID uint, quantity int) (*cart.Snapshot, error) {
	return b.do(ctx, http.MethodPatch, "/api/cart", map[string]any{
		"itemId":   itemID,
		"quantity": quantity,
	})
}

func (b *ServerBackend) Remove(ctx context.Context, itemID uint) (*cart.Snapshot, error) {
	return b.do(ctx, http.MethodDelete, fmt.Sprintf("/api/cart/%d", itemID), nil)
}

func (b *ServerBackend) Checkout(ctx context.Context) (*cart.Snapshot, error) {
	return b.do(ctx, http.MethodPost, "/api/checkout", nil)
}

type apiEnvelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (b *ServerBackend) do(ctx context.Context, method, path string, body any) (*cart.Snapshot, error) {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request: %w", err)
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, b.baseURL+path, payload)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling cart API: %w", err)
	}
	defer resp.Body.Close()

	var envelope apiEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decoding cart API response: %w", err)
	}
	if envelope.Error != nil {
		return nil, fmt.Errorf("cart API %s: %s", envelope.Error.Code, envelope.Error.Message)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("cart API returned status %d", resp.StatusCode)
	}

	var snap cart.Snapshot
	if err := json.Unmarshal(envelope.Data, &snap); err != nil {
		return nil, fmt.Errorf("decoding cart snapshot: %w", err)
	}
	return &snap, nil
}

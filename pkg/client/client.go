// Package client is a small typed client for the breezehire products
// API, for external tools (bulk imports, the ops dashboard) that talk
// to /api/v1 rather than the HTML pages.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Product is the wire shape served by /api/v1/products.
type Product struct {
	ID             string             `json:"_id,omitempty"`
	Name           string             `json:"name"`
	Description    string             `json:"description"`
	Category       string             `json:"category"`
	Images         []string           `json:"images"`
	BuyPrice       *float64           `json:"buyPrice,omitempty"`
	RentPrices     map[string]float64 `json:"rentPrices,omitempty"`
	Availability   string             `json:"availability"`
	Specifications map[string]string  `json:"specifications,omitempty"`
	Features       []string           `json:"features,omitempty"`
	Locations      []string           `json:"locations,omitempty"`
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Count   int             `json:"count"`
	Message string          `json:"message"`
}

// APIError carries the HTTP status and the body's message field, which
// the server populates on failures.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (%d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error (%d)", e.Status)
}

// Client talks to one breezehire instance.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// New constructs a client with sane defaults. baseURL is the server
// root, e.g. "http://localhost:8080".
func New(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
	}
}

// FetchAll lists every product.
func (c *Client) FetchAll(ctx context.Context) ([]Product, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/v1/products", nil)
	if err != nil {
		return nil, err
	}
	var out []Product
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	return out, nil
}

// GetByID fetches one product.
func (c *Client) GetByID(ctx context.Context, id string) (*Product, error) {
	return c.oneProduct(ctx, http.MethodGet, "/api/v1/products/"+id, nil)
}

// Create adds a product; the server assigns the identifier.
func (c *Client) Create(ctx context.Context, p Product) (*Product, error) {
	p.ID = ""
	return c.oneProduct(ctx, http.MethodPost, "/api/v1/products", p)
}

// Update fully replaces a product's mutable fields.
func (c *Client) Update(ctx context.Context, id string, p Product) (*Product, error) {
	if id == "" {
		return nil, fmt.Errorf("product id is required")
	}
	p.ID = ""
	return c.oneProduct(ctx, http.MethodPut, "/api/v1/products/"+id, p)
}

// Delete removes a product.
func (c *Client) Delete(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/v1/products/"+id, nil)
	return err
}

func (c *Client) oneProduct(ctx context.Context, method, path string, body any) (*Product, error) {
	env, err := c.do(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	var out Product
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return nil, fmt.Errorf("failed to decode product: %w", err)
	}
	return &out, nil
}

// do performs the request and decodes the envelope. Non-2xx statuses
// (and success=false bodies) surface as *APIError with the server's
// message when one was sent.
func (c *Client) do(ctx context.Context, method, path string, body any) (*envelope, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var env envelope
	// Decode regardless of status code so the message field, if
	// present, makes it into the error.
	_ = json.Unmarshal(respBody, &env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Success {
		return nil, &APIError{Status: resp.StatusCode, Message: env.Message}
	}
	return &env, nil
}

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/nikolayk812/efood-demo/internal/domain"
	"github.com/nikolayk812/efood-demo/internal/port"
)

// DefaultURL is the public catalog endpoint the storefront ships with.
const DefaultURL = "https://api-ebac.vercel.app/api/efood/restaurantes"

// FetchError is a failed catalog request: a non-2xx response (Status set)
// or a transport failure (Status 0, cause wrapped).
type FetchError struct {
	Status int
	cause  error
}

func (e *FetchError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("catalog fetch failed: %v", e.cause)
	}

	return fmt.Sprintf("catalog fetch failed: HTTP %d", e.Status)
}

func (e *FetchError) Unwrap() error {
	return e.cause
}

// ParseError is a response body that does not decode as a restaurant list.
type ParseError struct {
	cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("catalog response is not valid: %v", e.cause)
}

func (e *ParseError) Unwrap() error {
	return e.cause
}

type client struct {
	url        string
	httpClient *http.Client
}

// NewClient returns a catalog client for the given endpoint. A nil
// httpClient falls back to a default with a request timeout.
func NewClient(url string, httpClient *http.Client) (port.CatalogClient, error) {
	if url == "" {
		return nil, fmt.Errorf("url is empty")
	}

	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &client{url: url, httpClient: httpClient}, nil
}

func (c *client) GetRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &FetchError{Status: resp.StatusCode}
	}

	var restaurants []domain.Restaurant
	if err := json.NewDecoder(resp.Body).Decode(&restaurants); err != nil {
		return nil, &ParseError{cause: err}
	}

	return restaurants, nil
}

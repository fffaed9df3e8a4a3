package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// DefaultEndpoint is the public quotes API.
const DefaultEndpoint = "https://type.fit/api/quotes"

// Fetcher retrieves the full list of quotes.
type Fetcher interface {
	Fetch(ctx context.Context) ([]Quote, error)
}

// Client fetches quotes from an HTTP endpoint.
type Client struct {
	endpoint string
	client   *http.Client
}

// NewClient creates a Client for endpoint. A nil httpClient means
// http.DefaultClient.
func NewClient(endpoint string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{endpoint: endpoint, client: httpClient}
}

// NewClientWithTimeout creates a Client whose requests give up after
// timeout. A zero timeout means no limit.
func NewClientWithTimeout(endpoint string, timeout time.Duration) *Client {
	return NewClient(endpoint, &http.Client{Timeout: timeout})
}

// Endpoint returns the URL the client fetches from.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Fetch issues one GET against the endpoint and decodes the body as a JSON
// array of quotes. The records are trusted as-is: missing fields decode as
// empty strings.
func (c *Client) Fetch(ctx context.Context) ([]Quote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %w", ErrNetwork, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	var quotes []Quote
	if err := json.NewDecoder(resp.Body).Decode(&quotes); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return quotes, nil
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context) ([]Quote, error)

// Fetch calls f(ctx).
func (f FetcherFunc) Fetch(ctx context.Context) ([]Quote, error) {
	return f(ctx)
}

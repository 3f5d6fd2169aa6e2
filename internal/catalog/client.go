package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var (
	// ErrNotFound: the upstream has no product with that id.
	ErrNotFound = errors.New("catalog: product not found")
	// ErrUnavailable: the upstream could not be reached or answered outside 2xx.
	ErrUnavailable = errors.New("catalog: upstream unavailable")
)

// Client talks to the upstream product catalog API:
//
//	GET {base}            -> []Product
//	GET {base}/categories -> []string
//	GET {base}/{id}       -> Product
//
// The client is stateless; it holds no cache and performs at most one retry
// on transport failure.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// List fetches the full product list in upstream order.
func (c *Client) List(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.getJSON(ctx, c.baseURL, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Categories fetches the category names.
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.getJSON(ctx, c.baseURL+"/categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Get fetches a single product. Upstream 404 (and any other non-200) maps to
// ErrNotFound so callers can render a not-found page without inspecting
// status codes themselves.
func (c *Client) Get(ctx context.Context, id int) (Product, error) {
	url := fmt.Sprintf("%s/%d", c.baseURL, id)

	resp, err := c.do(ctx, url)
	if err != nil {
		return Product{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return Product{}, ErrNotFound
	}

	var p Product
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return Product{}, ErrNotFound
	}
	// The upstream answers 200 with an empty body for unknown ids.
	if p.ID == 0 {
		return Product{}, ErrNotFound
	}
	return p, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	resp, err := c.do(ctx, url)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode: %v", ErrUnavailable, err)
	}
	return nil
}

// do issues the GET and retries once on transport errors. Non-2xx responses
// are not retried; the caller decides what a bad status means.
func (c *Client) do(ctx context.Context, url string) (*http.Response, error) {
	resp, err := c.getOnce(ctx, url)
	if err == nil {
		return resp, nil
	}
	if ctx.Err() != nil {
		return nil, err
	}
	return c.getOnce(ctx, url)
}

func (c *Client) getOnce(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	return c.httpClient.Do(req)
}

package distance

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client talks to the external distance-matrix provider. Every quote re-queries
// the provider; nothing is cached.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Route resolves the driving distance between two free-text locations.
func (c *Client) Route(ctx context.Context, origin, destination string) (Route, error) {
	if c.baseURL == "" {
		return Route{}, ErrNotConfigured
	}

	endpoint := fmt.Sprintf("%s/route?origin=%s&destination=%s",
		c.baseURL, url.QueryEscape(origin), url.QueryEscape(destination))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Route{}, fmt.Errorf("%w: failed to create request: %v", ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Route{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return Route{}, ErrRouteNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return Route{}, fmt.Errorf("%w: unexpected status %d: %s", ErrUnavailable, resp.StatusCode, string(body))
	}

	var route Route
	if err := json.NewDecoder(resp.Body).Decode(&route); err != nil {
		return Route{}, fmt.Errorf("%w: failed to decode response: %v", ErrUnavailable, err)
	}
	if route.DistanceKm < 0 {
		return Route{}, fmt.Errorf("%w: negative distance", ErrUnavailable)
	}
	return route, nil
}

package sleeper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const baseURL = "https://api.sleeper.app/v1"

// Client is a thin wrapper over the Sleeper read API. Sleeper requires no
// authentication for reads.
type Client struct {
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Get fetches an endpoint and decodes the JSON body into result. A 404
// leaves result untouched and returns found=false: Sleeper signals unknown
// users and leagues that way and callers treat it as not-found, not as a
// failure.
func (c *Client) Get(ctx context.Context, endpoint string, result interface{}) (bool, error) {
	url := fmt.Sprintf("%s%s", baseURL, endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("error creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return false, fmt.Errorf("error decoding response: %w", err)
	}

	return true, nil
}

// Package client provides an HTTP client for the ROI JSON API.
package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"airbnb-roi/internal/market"
	"airbnb-roi/internal/valuation"
)

// Client is an HTTP client for a running ROI server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new API client.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Estimate requests an estimate for one property configuration.
func (c *Client) Estimate(in valuation.Input) (*valuation.Report, error) {
	params := url.Values{}
	params.Set("bedrooms", strconv.Itoa(in.Bedrooms))
	params.Set("guests", strconv.Itoa(in.Guests))
	params.Set("distance", strconv.FormatFloat(in.DistanceMiles, 'f', -1, 64))
	params.Set("reviews", strconv.Itoa(in.Reviews))

	var report valuation.Report
	if err := c.get("/api/estimate?"+params.Encode(), &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// Market returns the server's market summary.
func (c *Client) Market() (*market.Summary, error) {
	var summary market.Summary
	if err := c.get("/api/market", &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// Health checks that the server is up.
func (c *Client) Health() error {
	var resp struct {
		Status string `json:"status"`
	}
	if err := c.get("/health", &resp); err != nil {
		return err
	}
	if resp.Status != "ok" {
		return fmt.Errorf("server unhealthy: %q", resp.Status)
	}
	return nil
}

// get performs a GET request and decodes the response.
func (c *Client) get(path string, result interface{}) error {
	req, err := http.NewRequest("GET", c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			fmt.Printf("warning: closing response body: %v\n", cerr)
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error != "" {
			return fmt.Errorf("%s", errResp.Error)
		}
		return fmt.Errorf("server error: %s", http.StatusText(resp.StatusCode))
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}

package postcodesio

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// API Docs: https://postcodes.io/docs
// Sample requests:
// - https://api.postcodes.io/postcodes/SW1A1AA
// - https://api.postcodes.io/postcodes?lon=-0.1416&lat=51.5010&limit=1
const (
	baseURL        = "https://api.postcodes.io"
	requestTimeout = 10 * time.Second
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewClient(logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    baseURL,
		logger:     logger.With("component", "postcodesio-client"),
	}
}

// NormalisePostcode strips spaces and upper-cases a postcode for use as a
// lookup key.
func NormalisePostcode(postcode string) string {
	return strings.ToUpper(strings.ReplaceAll(postcode, " ", ""))
}

// Lookup fetches the record for a single postcode. The postcode is normalised
// before the request; the returned record carries the API's canonical spacing.
func (c *Client) Lookup(postcode string) (*PostcodeResult, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}
	u.Path = "/postcodes/" + NormalisePostcode(postcode)

	c.logger.Debug("looking up postcode", "url", u.String())

	resp, err := c.httpClient.Get(u.String())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var apiResp LookupAPIResponse
	if resp.StatusCode != http.StatusOK {
		// postcodes.io returns a JSON error envelope for bad postcodes.
		msg := "unknown error"
		if err := json.Unmarshal(body, &apiResp); err == nil && apiResp.Error != "" {
			msg = apiResp.Error
		}
		c.logger.Debug("postcode lookup failed",
			"status_code", resp.StatusCode,
			"error", msg,
		)
		return nil, fmt.Errorf("postcode lookup returned status %d: %s", resp.StatusCode, msg)
	}

	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if apiResp.Result == nil {
		return nil, fmt.Errorf("postcode lookup returned no result")
	}
	return apiResp.Result, nil
}

// ReverseLookup returns the nearest postcode record to the given coordinate,
// or nil when no postcode lies within the API's search radius. The nil result
// is not an error: open water and remote land legitimately have no nearest
// postcode.
func (c *Client) ReverseLookup(latitude, longitude float64) (*PostcodeResult, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}
	u.Path = "/postcodes"
	q := u.Query()
	q.Set("lon", fmt.Sprintf("%f", longitude))
	q.Set("lat", fmt.Sprintf("%f", latitude))
	q.Set("limit", "1")
	u.RawQuery = q.Encode()

	c.logger.Debug("reverse geocoding", "url", u.String())

	resp, err := c.httpClient.Get(u.String())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("reverse lookup returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp ReverseAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(apiResp.Result) == 0 {
		return nil, nil
	}
	return &apiResp.Result[0], nil
}

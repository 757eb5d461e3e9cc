package ogcfeatures

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// API Docs: https://ogcapi.ogc.org/features/
// Items requests take a bbox in lon-lat order:
// <collection>/items?bbox=minLon,minLat,maxLon,maxLat&limit=20&f=json
const requestTimeout = 20 * time.Second

type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     logger.With("component", "ogcfeatures-client"),
	}
}

// Items fetches the features of a collection whose bounding boxes intersect
// the given bbox (minLon, minLat, maxLon, maxLat). Intersection is a coarse
// filter: a returned feature's geometry does not necessarily contain any
// particular point inside the bbox, so callers verify candidates themselves.
func (c *Client) Items(collectionURL string, bbox [4]float64, limit int) (*FeatureCollection, error) {
	u, err := url.Parse(collectionURL + "/items")
	if err != nil {
		return nil, fmt.Errorf("failed to parse collection URL: %w", err)
	}

	q := u.Query()
	q.Set("bbox", fmt.Sprintf("%f,%f,%f,%f", bbox[0], bbox[1], bbox[2], bbox[3]))
	q.Set("limit", strconv.Itoa(limit))
	q.Set("f", "json")
	u.RawQuery = q.Encode()

	c.logger.Debug("querying feature collection",
		"collection_url", collectionURL,
		"bbox", q.Get("bbox"),
		"limit", limit,
	)

	resp, err := c.httpClient.Get(u.String())
	if err != nil {
		c.logger.Error("failed to query feature collection", "collection_url", collectionURL, "error", err)
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("feature collection returned error",
			"collection_url", collectionURL,
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp FeatureCollection
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug("fetched feature collection",
		"collection_url", collectionURL,
		"feature_count", len(apiResp.Features),
	)

	return &apiResp, nil
}

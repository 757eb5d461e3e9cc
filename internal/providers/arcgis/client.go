package arcgis

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// API Docs: https://developers.arcgis.com/rest/services-reference/enterprise/query-feature-service-layer/
// Sample request: <layer>/query?f=json&geometry={"x":-0.14,"y":51.50,...}&geometryType=esriGeometryPoint&spatialRel=esriSpatialRelIntersects
const requestTimeout = 20 * time.Second

type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     logger.With("component", "arcgis-client"),
	}
}

// pointGeometry is the esriGeometryPoint JSON body for a WGS84 point.
type pointGeometry struct {
	X                float64          `json:"x"`
	Y                float64          `json:"y"`
	SpatialReference spatialReference `json:"spatialReference"`
}

type spatialReference struct {
	Wkid int `json:"wkid"`
}

// QueryPoint queries a FeatureServer polygon layer for features intersecting
// a WGS84 point and returns the first feature with its attributes and
// geometry, or nil when the point falls in no feature of the layer.
func (c *Client) QueryPoint(layerURL string, latitude, longitude float64, outFields string) (*Feature, error) {
	u, err := url.Parse(layerURL + "/query")
	if err != nil {
		return nil, fmt.Errorf("failed to parse layer URL: %w", err)
	}

	geometry, err := json.Marshal(pointGeometry{
		X:                longitude,
		Y:                latitude,
		SpatialReference: spatialReference{Wkid: 4326},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode point geometry: %w", err)
	}

	if outFields == "" {
		outFields = "*"
	}

	q := u.Query()
	q.Set("f", "json")
	q.Set("where", "1=1")
	q.Set("geometry", string(geometry))
	q.Set("geometryType", "esriGeometryPoint")
	q.Set("inSR", "4326")
	q.Set("spatialRel", "esriSpatialRelIntersects")
	q.Set("outFields", outFields)
	q.Set("returnGeometry", "true")
	q.Set("outSR", "4326")
	u.RawQuery = q.Encode()

	c.logger.Debug("querying feature layer",
		"layer_url", layerURL,
		"latitude", latitude,
		"longitude", longitude,
	)

	resp, err := c.httpClient.Get(u.String())
	if err != nil {
		c.logger.Error("failed to query feature layer", "layer_url", layerURL, "error", err)
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("feature layer returned error",
			"layer_url", layerURL,
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp QueryAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if apiResp.Error != nil {
		msg := apiResp.Error.Message
		if msg == "" {
			msg = "unknown ArcGIS error"
		}
		c.logger.Error("feature service error",
			"layer_url", layerURL,
			"code", apiResp.Error.Code,
			"message", msg,
		)
		return nil, fmt.Errorf("feature service error: %s", msg)
	}

	if len(apiResp.Features) == 0 {
		return nil, nil
	}
	return &apiResp.Features[0], nil
}

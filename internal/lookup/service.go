package lookup

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"uk-lookup/internal/config"
	"uk-lookup/internal/geo"
	"uk-lookup/internal/providers/arcgis"
	"uk-lookup/internal/providers/nominatim"
	"uk-lookup/internal/providers/ogcfeatures"
	"uk-lookup/internal/providers/postcodesio"
	"uk-lookup/internal/types"
)

// Feature layers consumed for containment lookups.
const (
	// Natural England National Character Areas, polygon layer 0
	ncaLayerURL = "https://services.arcgis.com/JJzESW51TqeY9uat/arcgis/rest/services/" +
		"National_Character_Areas_England/FeatureServer/0"
	ncaOutFields = "JCANAME,NCA_Name"

	// ONS Local Authority Districts (December 2024) Boundaries UK (BFC), polygon layer 0
	lpaLayerURL = "https://services1.arcgis.com/ESMARspQHYMw9BZ9/arcgis/rest/services/" +
		"Local_Authority_Districts_December_2024_Boundaries_UK_BFC/FeatureServer/0"
	lpaOutFields = "LAD24NM,LAD24CD"

	// Environment Agency Operational Catchments, an OGC API Features collection
	catchmentCollectionURL = "https://environment.data.gov.uk/spatialdata/operational-catchments/" +
		"ogc/features/v1/collections/OperationalCatchments"

	// The catchment collection only filters by bounding box, so candidates
	// around the point are fetched and verified for genuine containment.
	catchmentBBoxMargin     = 0.1
	catchmentCandidateLimit = 20
)

// PostcodeProvider resolves UK postcodes to coordinates and back.
type PostcodeProvider interface {
	Lookup(postcode string) (*postcodesio.PostcodeResult, error)
	ReverseLookup(latitude, longitude float64) (*postcodesio.PostcodeResult, error)
}

// GeocodeProvider resolves free-text addresses to coordinates.
type GeocodeProvider interface {
	Search(query string) (*nominatim.SearchResult, error)
}

// FeatureLayerProvider queries an ArcGIS polygon layer with a point.
type FeatureLayerProvider interface {
	QueryPoint(layerURL string, latitude, longitude float64, outFields string) (*arcgis.Feature, error)
}

// FeatureCollectionProvider fetches candidate polygons from an OGC API
// Features collection.
type FeatureCollectionProvider interface {
	Items(collectionURL string, bbox [4]float64, limit int) (*ogcfeatures.FeatureCollection, error)
}

// Service resolves a submitted postcode or address to the areas containing it.
type Service interface {
	Lookup(req Request) (*Result, error)
}

type lookupService struct {
	postcodes     PostcodeProvider
	geocoder      GeocodeProvider
	featureLayers FeatureLayerProvider
	collections   FeatureCollectionProvider
	logger        *slog.Logger
}

// NewService creates a lookup service with real provider clients, each
// wrapped in a TTL response cache.
func NewService(cfg *config.Config, logger *slog.Logger) Service {
	ttl := cfg.CacheTTL()
	return NewServiceWithProviders(
		logger,
		newCachedPostcodeProvider(postcodesio.NewClient(logger), ttl),
		newCachedGeocodeProvider(nominatim.NewClient(logger, cfg.Upstream.UserAgent), ttl),
		newCachedFeatureLayerProvider(arcgis.NewClient(logger), ttl),
		newCachedFeatureCollectionProvider(ogcfeatures.NewClient(logger), ttl),
	)
}

// NewServiceWithProviders creates a lookup service with custom providers.
// This is useful for testing with mock providers.
func NewServiceWithProviders(
	logger *slog.Logger,
	postcodes PostcodeProvider,
	geocoder GeocodeProvider,
	featureLayers FeatureLayerProvider,
	collections FeatureCollectionProvider,
) Service {
	return &lookupService{
		postcodes:     postcodes,
		geocoder:      geocoder,
		featureLayers: featureLayers,
		collections:   collections,
		logger:        logger.With("component", "lookup-service"),
	}
}

// Lookup resolves the request to a point, finds the containing LPA, NCA, and
// catchment polygons, and assembles the result view model.
func (s *lookupService) Lookup(req Request) (*Result, error) {
	point, postcode, adminArea, notes, err := s.resolvePoint(req)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("resolved query point",
		"latitude", point.Latitude,
		"longitude", point.Longitude,
		"postcode", postcode,
	)

	var (
		wg           sync.WaitGroup
		lpaFeat      *arcgis.Feature
		ncaFeat      *arcgis.Feature
		catchment    *ogcfeatures.Feature
		lpaErr       error
		ncaErr       error
		catchmentErr error
	)

	wg.Add(3)

	go func() {
		defer wg.Done()
		lpaFeat, lpaErr = s.featureLayers.QueryPoint(lpaLayerURL, point.Latitude, point.Longitude, lpaOutFields)
		if lpaErr != nil {
			lpaErr = fmt.Errorf("failed to get LPA feature: %w", lpaErr)
		}
	}()

	go func() {
		defer wg.Done()
		ncaFeat, ncaErr = s.featureLayers.QueryPoint(ncaLayerURL, point.Latitude, point.Longitude, ncaOutFields)
		if ncaErr != nil {
			ncaErr = fmt.Errorf("failed to get NCA feature: %w", ncaErr)
		}
	}()

	go func() {
		defer wg.Done()
		catchment, catchmentErr = s.findCatchment(point)
	}()

	wg.Wait()

	if lpaErr != nil {
		s.logger.Error("LPA lookup failed", "error", lpaErr)
		return nil, lpaErr
	}
	if ncaErr != nil {
		s.logger.Error("NCA lookup failed", "error", ncaErr)
		return nil, ncaErr
	}
	// Catchment data is supplementary: a failure degrades the result instead
	// of failing the whole lookup.
	if catchmentErr != nil {
		s.logger.Warn("catchment lookup failed", "error", catchmentErr)
		notes = append(notes, "Catchment lookup failed; result shown without catchment data.")
	}

	result := &Result{
		Point:    point,
		Postcode: postcode,
		Notes:    notes,
		LPAName:  "Unknown",
		NCAName:  "Not found",
	}

	queryPoint := geo.Point(point.LonLat())

	if geom, ok := s.verifiedGeometry("LPA", lpaFeat, queryPoint); ok {
		result.LPAGeometry = geom
		if name := lpaDisplayName(lpaFeat.Attributes); name != "" {
			result.LPAName = name
		}
	}
	if result.LPAName == "Unknown" && adminArea != "" {
		result.LPAName = adminArea
	}

	if geom, ok := s.verifiedGeometry("NCA", ncaFeat, queryPoint); ok {
		result.NCAGeometry = geom
		if name := ncaDisplayName(ncaFeat.Attributes); name != "" {
			result.NCAName = name
		}
	}

	if catchment != nil {
		result.CatchmentName = catchment.Properties.DisplayName()
		result.CatchmentGeometry = catchment.Geometry
	}

	s.logger.Debug("lookup complete",
		"lpa", result.LPAName,
		"nca", result.NCAName,
		"catchment", result.CatchmentName,
	)

	return result, nil
}

// resolvePoint turns the submitted form fields into a coordinate plus the
// postcode and admin area to display, following the original fallback order:
// postcode lookup first, then free-text geocoding with a reverse postcode
// lookup for whichever input was given.
func (s *lookupService) resolvePoint(req Request) (types.Coords, string, string, []string, error) {
	postcode := strings.TrimSpace(req.Postcode)
	address := strings.TrimSpace(req.Address)
	var notes []string

	if postcode != "" {
		rec, err := s.postcodes.Lookup(postcode)
		if err == nil && (rec.Latitude == nil || rec.Longitude == nil) {
			err = fmt.Errorf("no coordinates returned for this postcode")
		}
		if err == nil {
			return types.NewCoords(*rec.Latitude, *rec.Longitude), rec.Postcode, rec.AdminArea(), nil, nil
		}

		if LooksLikeUKPostcode(postcode) {
			notes = append(notes, fmt.Sprintf("Postcode lookup failed (%v). Falling back to address geocoding.", err))
		} else {
			notes = append(notes, "Input didn't validate as a UK postcode. Using address geocoding.")
		}
		point, nearest, area, err := s.geocode(postcode)
		return point, nearest, area, notes, err
	}

	if address == "" {
		return types.Coords{}, "", "", nil, ErrEmptyInput
	}
	point, nearest, area, err := s.geocode(address)
	return point, nearest, area, notes, err
}

// geocode resolves free text to a coordinate and reverse-looks-up the nearest
// postcode and admin area for display.
func (s *lookupService) geocode(query string) (types.Coords, string, string, error) {
	hit, err := s.geocoder.Search(query)
	if err != nil {
		return types.Coords{}, "", "", fmt.Errorf("failed to geocode address: %w", err)
	}
	lat, lon, err := hit.Coordinates()
	if err != nil {
		return types.Coords{}, "", "", fmt.Errorf("geocoder did not return usable coordinates: %w", err)
	}

	point := types.NewCoords(lat, lon)
	rec, err := s.postcodes.ReverseLookup(lat, lon)
	if err != nil {
		return types.Coords{}, "", "", fmt.Errorf("failed to find nearest postcode: %w", err)
	}
	if rec == nil {
		return point, "", "Unknown", nil
	}
	return point, rec.Postcode, rec.AdminArea(), nil
}

// findCatchment fetches catchment candidates around the point and returns the
// first whose geometry genuinely contains it.
func (s *lookupService) findCatchment(point types.Coords) (*ogcfeatures.Feature, error) {
	bbox := [4]float64{
		point.Longitude - catchmentBBoxMargin,
		point.Latitude - catchmentBBoxMargin,
		point.Longitude + catchmentBBoxMargin,
		point.Latitude + catchmentBBoxMargin,
	}
	fc, err := s.collections.Items(catchmentCollectionURL, bbox, catchmentCandidateLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get catchment candidates: %w", err)
	}

	queryPoint := geo.Point(point.LonLat())
	for i := range fc.Features {
		if fc.Features[i].Geometry.Contains(queryPoint) {
			return &fc.Features[i], nil
		}
	}
	return nil, nil
}

// verifiedGeometry converts a feature's geometry and confirms it contains the
// query point. The upstream query already asked for point intersection, but a
// feature that fails the containment check is discarded rather than trusted.
func (s *lookupService) verifiedGeometry(layer string, feat *arcgis.Feature, p geo.Point) (*geo.Geometry, bool) {
	if feat == nil {
		return nil, false
	}
	geom := feat.Geometry.ToGeometry()
	if geom == nil {
		// Attributes without geometry still name the area.
		return nil, true
	}
	if !geom.Contains(p) {
		s.logger.Warn("discarding feature that does not contain the query point",
			"layer", layer,
			"longitude", p.Lon(),
			"latitude", p.Lat(),
		)
		return nil, false
	}
	return geom, true
}

// lpaDisplayName consults the LPA layer's name attributes in priority order.
func lpaDisplayName(attrs arcgis.FeatureAttributes) string {
	for _, candidate := range []string{attrs.LAD24NM, attrs.Name} {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}

// ncaDisplayName consults the NCA layer's name attributes in priority order.
func ncaDisplayName(attrs arcgis.FeatureAttributes) string {
	for _, candidate := range []string{attrs.NCAName, attrs.JCAName} {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}

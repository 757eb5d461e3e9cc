package lookup

import (
	"fmt"
	"time"

	"uk-lookup/internal/cache"
	"uk-lookup/internal/providers/arcgis"
	"uk-lookup/internal/providers/nominatim"
	"uk-lookup/internal/providers/ogcfeatures"
	"uk-lookup/internal/providers/postcodesio"
)

// Caching decorators around the provider interfaces. Keys are an operation
// identifier plus the call's arguments, so identical requests within the TTL
// are served from memory instead of re-hitting the upstream.

type cachedPostcodeProvider struct {
	inner PostcodeProvider
	c     *cache.Cache[*postcodesio.PostcodeResult]
}

func newCachedPostcodeProvider(inner PostcodeProvider, ttl time.Duration) PostcodeProvider {
	return &cachedPostcodeProvider{inner: inner, c: cache.New[*postcodesio.PostcodeResult](ttl)}
}

func (p *cachedPostcodeProvider) Lookup(postcode string) (*postcodesio.PostcodeResult, error) {
	key := "postcode-lookup:" + postcodesio.NormalisePostcode(postcode)
	return p.c.GetOrCompute(key, func() (*postcodesio.PostcodeResult, error) {
		return p.inner.Lookup(postcode)
	})
}

func (p *cachedPostcodeProvider) ReverseLookup(latitude, longitude float64) (*postcodesio.PostcodeResult, error) {
	key := fmt.Sprintf("reverse-lookup:%.6f,%.6f", latitude, longitude)
	return p.c.GetOrCompute(key, func() (*postcodesio.PostcodeResult, error) {
		return p.inner.ReverseLookup(latitude, longitude)
	})
}

type cachedGeocodeProvider struct {
	inner GeocodeProvider
	c     *cache.Cache[*nominatim.SearchResult]
}

func newCachedGeocodeProvider(inner GeocodeProvider, ttl time.Duration) GeocodeProvider {
	return &cachedGeocodeProvider{inner: inner, c: cache.New[*nominatim.SearchResult](ttl)}
}

func (p *cachedGeocodeProvider) Search(query string) (*nominatim.SearchResult, error) {
	return p.c.GetOrCompute("geocode:"+query, func() (*nominatim.SearchResult, error) {
		return p.inner.Search(query)
	})
}

type cachedFeatureLayerProvider struct {
	inner FeatureLayerProvider
	c     *cache.Cache[*arcgis.Feature]
}

func newCachedFeatureLayerProvider(inner FeatureLayerProvider, ttl time.Duration) FeatureLayerProvider {
	return &cachedFeatureLayerProvider{inner: inner, c: cache.New[*arcgis.Feature](ttl)}
}

func (p *cachedFeatureLayerProvider) QueryPoint(layerURL string, latitude, longitude float64, outFields string) (*arcgis.Feature, error) {
	key := fmt.Sprintf("feature-query:%s:%.6f,%.6f:%s", layerURL, latitude, longitude, outFields)
	return p.c.GetOrCompute(key, func() (*arcgis.Feature, error) {
		return p.inner.QueryPoint(layerURL, latitude, longitude, outFields)
	})
}

type cachedFeatureCollectionProvider struct {
	inner FeatureCollectionProvider
	c     *cache.Cache[*ogcfeatures.FeatureCollection]
}

func newCachedFeatureCollectionProvider(inner FeatureCollectionProvider, ttl time.Duration) FeatureCollectionProvider {
	return &cachedFeatureCollectionProvider{inner: inner, c: cache.New[*ogcfeatures.FeatureCollection](ttl)}
}

func (p *cachedFeatureCollectionProvider) Items(collectionURL string, bbox [4]float64, limit int) (*ogcfeatures.FeatureCollection, error) {
	key := fmt.Sprintf("collection-items:%s:%.6f,%.6f,%.6f,%.6f:%d",
		collectionURL, bbox[0], bbox[1], bbox[2], bbox[3], limit)
	return p.c.GetOrCompute(key, func() (*ogcfeatures.FeatureCollection, error) {
		return p.inner.Items(collectionURL, bbox, limit)
	})
}

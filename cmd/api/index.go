package main

import (
	"errors"
	"net/http"

	"uk-lookup/internal/lookup"
	"uk-lookup/internal/mapview"
	"uk-lookup/internal/providers/nominatim"

	"github.com/gin-gonic/gin"
)

// indexPage is the template context for the HTML lookup page
type indexPage struct {
	Submitted bool
	Postcode  string
	Address   string
	Error     string
	Result    *lookup.Result
	MapView   mapview.View
}

// handleIndex renders the lookup form, and the result with a map once a
// postcode or address has been submitted
func (app *App) handleIndex(c *gin.Context) {
	page := indexPage{
		Postcode: c.Query("postcode"),
		Address:  c.Query("address"),
	}

	// A bare visit renders just the form
	if !c.Request.URL.Query().Has("postcode") && !c.Request.URL.Query().Has("address") {
		c.HTML(http.StatusOK, "index.tmpl", page)
		return
	}
	page.Submitted = true

	result, err := app.lookupService.Lookup(lookup.Request{
		Postcode: page.Postcode,
		Address:  page.Address,
	})
	if err != nil {
		switch {
		case errors.Is(err, lookup.ErrEmptyInput):
			page.Error = "Please enter either a postcode or an address."
		case errors.Is(err, nominatim.ErrNoResult):
			page.Error = "Could not find that location. Check the postcode or address and try again."
		default:
			app.logger.Error("lookup failed",
				"postcode", page.Postcode,
				"address", page.Address,
				"error", err,
			)
			page.Error = "Lookup failed. Please try again later."
		}
		c.HTML(http.StatusOK, "index.tmpl", page)
		return
	}

	page.Result = result
	page.MapView = mapview.Build(result)
	c.HTML(http.StatusOK, "index.tmpl", page)
}

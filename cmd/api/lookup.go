package main

import (
	"errors"
	"net/http"

	"uk-lookup/internal/lookup"
	"uk-lookup/internal/providers/nominatim"

	"github.com/gin-gonic/gin"
)

// LookupInput defines the query parameters for the lookup endpoint
type LookupInput struct {
	Postcode string `form:"postcode"` // UK postcode, e.g. SW1A 1AA
	Address  string `form:"address"`  // Free-text address, used when postcode is blank
}

// @title UK Planning Area Lookup API
// @version 1.0
// @description Resolves a UK postcode or address to its Local Planning Authority, National Character Area, and operational catchment.

// handleLookup godoc
// @Summary Look up planning areas for a location
// @Description Resolve a postcode or address to coordinates and report which Local Planning Authority, National Character Area, and operational catchment contain that point
// @Tags lookup
// @Accept json
// @Produce json
// @Param postcode query string false "UK postcode" example(SW1A 1AA)
// @Param address query string false "Free-text address, used when postcode is blank" example(10 Downing Street, London)
// @Success 200 {object} lookup.Result
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/lookup [get]
func (app *App) handleLookup(c *gin.Context) {
	var input LookupInput

	// Bind and validate query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Delegate to business layer
	result, err := app.lookupService.Lookup(lookup.Request{
		Postcode: input.Postcode,
		Address:  input.Address,
	})
	if err != nil {
		if errors.Is(err, lookup.ErrEmptyInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, nominatim.ErrNoResult) {
			c.JSON(http.StatusNotFound, gin.H{"error": "location not found"})
			return
		}

		// Other errors are internal server errors
		app.logger.Error("lookup failed",
			"postcode", input.Postcode,
			"address", input.Address,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}

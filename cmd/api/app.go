package main

import (
	"log/slog"

	"uk-lookup/internal/config"
	"uk-lookup/internal/lookup"

	"github.com/gin-gonic/gin"

	_ "uk-lookup/docs" // Ensure docs are imported
)

// App encapsulates application dependencies
type App struct {
	router        *gin.Engine
	logger        *slog.Logger
	lookupService lookup.Service
	cfg           *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) *App {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())

	// Templates for the HTML lookup page
	router.LoadHTMLGlob("templates/*.tmpl")

	app := &App{
		router:        router,
		logger:        logger,
		lookupService: lookup.NewService(cfg, logger),
		cfg:           cfg,
	}

	// Register routes
	app.registerRoutes()

	return app
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}

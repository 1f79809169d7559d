package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/mag7pulse/config"
	"github.com/guttosm/mag7pulse/internal/api"
	"github.com/guttosm/mag7pulse/internal/service"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the returns API client using InitUpstream().
//   - Initializes the dashboard orchestrator on top of it.
//   - Creates the HTTP handler layer to handle requests.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to release idle upstream connections.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp(cfg config.Config) (*gin.Engine, func(), error) {
	// indirection for unit testing
	client, err := upstreamOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize returns client: %w", err)
	}

	// Initialize service layer (orchestrator)
	svc := service.NewDashboardService(client)

	// Initialize HTTP handler layer
	handler := api.NewHandler(svc, cfg)

	// Setup Gin router with routes
	router := api.NewRouter(handler, cfg.Server)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(client.Ping)
	healthHandler.Register(router)

	cleanup := func() {
		client.CloseIdleConnections()
	}

	return router, cleanup, nil
}

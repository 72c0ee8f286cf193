// Package http contains HTTP delivery implementations for the search service
package http

import (
	"net/http"

	"github.com/soedr/google-flights-api/pkg/api"
	"github.com/soedr/google-flights-api/pkg/logger"
)

// HealthHandler handles HTTP requests for health check operations
type HealthHandler struct {
	Logger  logger.LoggerInterface
	API     api.Api
	Version string
}

// NewHealthHandler creates a new instance of HealthHandler
func NewHealthHandler(version string, appLogger logger.LoggerInterface) *HealthHandler {
	return &HealthHandler{
		Logger:  appLogger,
		API:     api.New(api.WithLogger(appLogger)),
		Version: version,
	}
}

// HealthCheckHandler reports that the service is up
func (h *HealthHandler) HealthCheckHandler(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	h.Logger.DebugContext(ctx, "Health check endpoint called")

	h.API.Success(ctx, w, map[string]string{
		"status":  "healthy",
		"version": h.Version,
	})
}

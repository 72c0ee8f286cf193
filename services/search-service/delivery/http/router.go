package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/soedr/google-flights-api/pkg/api"
	"github.com/soedr/google-flights-api/pkg/logger"
)

type Router struct {
	SearchHandler *SearchHandler
	HealthHandler *HealthHandler
	AppLogger     logger.LoggerInterface
}

func NewRouter(searchHandler *SearchHandler, healthHandler *HealthHandler, appLogger logger.LoggerInterface) *Router {
	return &Router{
		SearchHandler: searchHandler,
		HealthHandler: healthHandler,
		AppLogger:     appLogger,
	}
}

func (r *Router) SetupRoutes() http.Handler {
	router := chi.NewRouter()
	responses := api.New(api.WithLogger(r.AppLogger))

	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(LoggingMiddleware(r.AppLogger))
	router.Use(middleware.Heartbeat("/ping"))

	router.NotFound(func(w http.ResponseWriter, req *http.Request) {
		responses.NotFound(req.Context(), w, "Route not found")
	})

	router.Get("/health", r.HealthHandler.HealthCheckHandler)

	router.Route("/api/v1", func(v1 chi.Router) {
		v1.Post("/search", r.SearchHandler.SearchHandler)
		v1.Post("/search/raw", r.SearchHandler.RawSearchHandler)
	})

	return router
}

// Package ui is the HTTP boundary serving the presentation collaborator.
// It carries data only: filtered rows, aggregates, metrics, narratives, and
// exports. Rendering, styling, and chart configuration live entirely on the
// consumer side.
package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"pulseboard/app"
	"pulseboard/internal"
	"pulseboard/ports"
)

// App represents the dashboard API application
type App struct {
	router   *chi.Mux
	svc      *app.DashboardService
	exporter ports.TableExporterPort
	log      *internal.Logger
}

// NewApp creates the API application over an initialized dashboard service
func NewApp(svc *app.DashboardService, exporter ports.TableExporterPort, log *internal.Logger) *App {
	a := &App{
		router:   chi.NewRouter(),
		svc:      svc,
		exporter: exporter,
		log:      log,
	}
	a.setupMiddleware()
	a.setupRoutes()
	return a
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

// setupRoutes configures the application routes. Every data endpoint accepts
// the same two selectors, education and gender, defaulting to no constraint.
func (a *App) setupRoutes() {
	a.router.Get("/api/dataset", a.handleDataset)
	a.router.Get("/api/respondents", a.handleRespondents)
	a.router.Get("/api/metrics", a.handleMetrics)

	a.router.Get("/api/aggregates/demographics", a.handleDemographics)
	a.router.Get("/api/aggregates/correlation", a.handleCorrelation)
	a.router.Get("/api/aggregates/platforms", a.handlePlatforms)

	a.router.Get("/api/snapshot", a.handleSnapshot)
	a.router.Get("/api/insights", a.handleInsights)
	a.router.Get("/api/export", a.handleExport)
}

// Router exposes the handler for serving and tests
func (a *App) Router() http.Handler {
	return a.router
}

// Start starts the HTTP server
func (a *App) Start(port string) error {
	addr := ":" + port
	a.log.Info("starting pulseboard API on %s", addr)
	return http.ListenAndServe(addr, a.router)
}

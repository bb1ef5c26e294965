package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/osse101/Stockpile_Go/docs"
	"github.com/osse101/Stockpile_Go/internal/database"
	"github.com/osse101/Stockpile_Go/internal/handler"
	"github.com/osse101/Stockpile_Go/internal/inventory"
	"github.com/osse101/Stockpile_Go/internal/item"
	"github.com/osse101/Stockpile_Go/internal/metrics"
)

// Options configures the HTTP server
type Options struct {
	Port           int
	APIKey         string
	Version        string
	TrustedProxies []string
}

// Server is the HTTP API
type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, dbPool database.Pool, itemService item.Service, inventoryService inventory.Service) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, dbPool, itemService, inventoryService),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the route tree with its middleware stack.
// Middleware runs in the order it is added, outermost first.
func NewRouter(opts Options, dbPool database.Pool, itemService item.Service, inventoryService inventory.Service) http.Handler {
	r := chi.NewRouter()

	detector := NewActivityDetector(RateWindow, MaxRequestsPerWindow)

	r.Use(RequestIDMiddleware)
	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))
	r.Get("/version", handler.HandleVersion(opts.Version))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	itemHandler := handler.NewItemHandler(itemService)
	inventoryHandler := handler.NewInventoryHandler(inventoryService)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/inventories", func(r chi.Router) {
			r.Post("/", inventoryHandler.HandleCreate)
			r.Get("/", inventoryHandler.HandleList)

			r.Route("/{inventoryID}", func(r chi.Router) {
				r.Get("/", inventoryHandler.HandleGet)
				r.Put("/id-format", inventoryHandler.HandleUpdateIDFormat)
				r.Post("/fields", inventoryHandler.HandleAddField)
				r.Post("/items", itemHandler.HandleCreate)
				r.Post("/custom-id/validate", itemHandler.HandleValidateCustomID)
			})
		})

		r.Route("/items/{itemID}", func(r chi.Router) {
			r.Get("/", itemHandler.HandleGet)
			r.Patch("/", itemHandler.HandleUpdate)
			r.Delete("/", itemHandler.HandleDelete)
		})

		r.Post("/id-format/preview", itemHandler.HandlePreview)
	})

	return r
}

// Start starts the server; it returns http.ErrServerClosed after Stop
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	slog.Default().Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}

// Package server provides the HTTP API for the storesearch service.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/quickcart/storesearch/internal/config"
	"github.com/quickcart/storesearch/internal/metrics"
	"github.com/quickcart/storesearch/internal/search"
	"github.com/quickcart/storesearch/internal/storage"
)

// Server is the HTTP server for the storesearch API.
type Server struct {
	engine  *search.Engine
	storage storage.Store
	config  *config.Config
	logger  *zap.Logger
	server  *http.Server
}

// NewServer creates a server with the given dependencies.
func NewServer(engine *search.Engine, store storage.Store, cfg *config.Config, logger *zap.Logger) *Server {
	return &Server{
		engine:  engine,
		storage: store,
		config:  cfg,
		logger:  logger,
	}
}

// Router builds the chi router with all routes and middleware.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))
	r.Use(metrics.Middleware())

	r.Get("/api/v1/products", s.handleListProducts)
	r.Post("/api/v1/products", s.handleCreateProduct)
	r.Get("/api/v1/products/{id}", s.handleGetProduct)
	r.Put("/api/v1/products/{id}", s.handleUpdateProduct)
	r.Delete("/api/v1/products/{id}", s.handleDeleteProduct)
	r.Get("/api/v1/admin/products", s.handleAdminListProducts)
	r.Get("/api/v1/categories", s.handleListCategories)
	r.Get("/api/v1/categories/tree", s.handleCategoryTree)
	r.Post("/api/v1/categories", s.handleCreateCategory)
	r.Get("/api/v1/status", s.handleStatus)
	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.Router(),
	}
	s.logger.Info("Starting server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

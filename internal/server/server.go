// Package server sets up the HTTP server, router, and all route definitions.
//
// SERVER ARCHITECTURE:
// This package is the "wiring" layer — it connects handlers, middleware, and routes.
// Think of it as the control centre that decides:
// - Which URL patterns map to which handler functions
// - What middleware runs on which routes
// - How the server starts and stops gracefully
//
// WHY SEPARATE FROM main.go?
// Keeping server setup in its own package makes it:
// - Testable (tests can create a server without running main)
// - Reusable (multiple entry points could use the same wiring)
// - Clean (main.go stays minimal — just "load config, start the server")
//
// DEPENDENCY INJECTION FLOW:
// main.go loads config and passes it to New(), which assembles the chain:
//   sqlite.DB (key-value store)
//     → kv.Listings / kv.Users / kv.Session (snapshot repositories)
//       → service.ListingService / service.AuthService
//         → handler.ListingHandler / handler.AuthHandler
//
// This is the "composition root" pattern — all dependencies are wired in one
// place rather than scattered across the codebase.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/sakif/marketplace/internal/auth"
	"github.com/sakif/marketplace/internal/config"
	"github.com/sakif/marketplace/internal/handler"
	"github.com/sakif/marketplace/internal/middleware"
	"github.com/sakif/marketplace/internal/repository/kv"
	"github.com/sakif/marketplace/internal/seed"
	"github.com/sakif/marketplace/internal/service"
	"github.com/sakif/marketplace/internal/store/sqlite"
)

// Server owns the router and the resources that must be released on shutdown.
//
// RESOURCE MANAGEMENT:
// The Server owns the database connection (db). When the server shuts down we
// must close it to flush pending writes and release the file lock — handled
// in Start() during graceful shutdown.
type Server struct {
	router *chi.Mux
	config config.Config
	logger *slog.Logger
	db     *sqlite.DB
}

// New creates a Server with its full dependency chain assembled.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	db, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	s := &Server{
		router: chi.NewRouter(),
		config: cfg,
		logger: logger,
		db:     db,
	}

	if err := s.setupRoutes(); err != nil {
		db.Close() // Clean up the store if wiring fails
		return nil, fmt.Errorf("setting up routes: %w", err)
	}

	return s, nil
}

// setupRoutes configures all middleware and route handlers.
//
// ROUTE STRUCTURE:
// POST   /api/auth/register                  → Create account + session
// POST   /api/auth/login                     → Open session
// POST   /api/auth/logout                    → Close session
// GET    /api/auth/me                        → Current session user
// GET    /api/home                           → Featured/recent/gaming rails
// GET    /api/listings                       → Browse with filters and sort
// POST   /api/listings                       → Post a listing        [auth]
// GET    /api/listings/{id}                  → Detail view (counts a view)
// POST   /api/listings/{id}/favorite         → Toggle favorite       [auth]
// GET    /api/me/listings                    → Own listings          [auth]
// GET    /api/me/favorites                   → Favorited listings    [auth]
// GET    /api/categories                     → Category taxonomy
// GET    /api/catalog/...                    → Brands, cities, form options
//
// MIDDLEWARE ORDER MATTERS:
// Middleware executes in the order it's added:
// 1. RequestID — assigns a unique ID to each request (for tracing)
// 2. RealIP — extracts the real client IP from proxy headers
// 3. Recoverer — catches panics and returns 500 instead of crashing
// 4. RequestLogger — logs each request with timing info (needs the request ID)
func (s *Server) setupRoutes() error {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(middleware.RequestLogger(s.logger))

	// === REPOSITORIES ===
	// All three are JSON-snapshot views over the same key-value store.
	listingRepo := kv.NewListings(s.db)
	userRepo := kv.NewUsers(s.db)
	sessionRepo := kv.NewSession(s.db)

	// === SEED ===
	// First run only: an empty store gets the sample inventory.
	if s.config.Seed {
		if _, err := seed.Listings(listingRepo, s.logger); err != nil {
			return fmt.Errorf("seeding: %w", err)
		}
	}

	// === SERVICES ===
	authService := service.NewAuthService(userRepo, sessionRepo, s.logger)
	listingService := service.NewListingService(listingRepo, s.logger)

	tokens, err := auth.NewTokenService(s.config.JWTSecret)
	if err != nil {
		return fmt.Errorf("creating token service: %w", err)
	}

	// === HANDLERS ===
	authHandler := handler.NewAuthHandler(authService, tokens, s.logger)
	listingHandler := handler.NewListingHandler(listingService, authService, s.logger)
	catalogHandler := handler.NewCatalogHandler()

	s.router.Route("/api", func(r chi.Router) {
		// Account and session
		r.Post("/auth/register", authHandler.HandleRegister)
		r.Post("/auth/login", authHandler.HandleLogin)
		r.Post("/auth/logout", authHandler.HandleLogout)
		r.Get("/auth/me", authHandler.HandleMe)

		// Public browsing. OptionalAuth attaches the caller's identity when a
		// valid token rides along, without blocking anonymous visitors.
		r.Group(func(r chi.Router) {
			r.Use(auth.OptionalAuth(tokens))

			r.Get("/home", listingHandler.HandleHome)
			r.Get("/listings", listingHandler.HandleList)
			r.Get("/listings/{id}", listingHandler.HandleGet)
		})

		// Reference data for the posting form's cascading selects
		r.Get("/categories", catalogHandler.HandleCategories)
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/brands", catalogHandler.HandleBrands)
			r.Get("/brands/{brand}/models", catalogHandler.HandleBrandModels)
			r.Get("/cities", catalogHandler.HandleCities)
			r.Get("/cities/{city}/districts", catalogHandler.HandleCityDistricts)
			r.Get("/cities/{city}/districts/{district}/neighborhoods", catalogHandler.HandleDistrictNeighborhoods)
			r.Get("/vehicle-options", catalogHandler.HandleVehicleOptions)
			r.Get("/property-options", catalogHandler.HandlePropertyOptions)
		})

		// Routes that require a logged-in user.
		// r.Group creates a sub-router sharing the parent's path prefix,
		// so we can attach RequireAuth to just these routes.
		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth(tokens))

			r.Post("/listings", listingHandler.HandleCreate)
			r.Post("/listings/{id}/favorite", listingHandler.HandleToggleFavorite)
			r.Get("/me/listings", listingHandler.HandleMyListings)
			r.Get("/me/favorites", listingHandler.HandleMyFavorites)
		})
	})

	return nil
}

// Router exposes the configured router, mainly so tests can mount the full
// route table on an httptest server.
func (s *Server) Router() http.Handler {
	return s.router
}

// Close releases the server's resources without going through Start's
// signal loop. Tests use this; production shutdown happens inside Start.
func (s *Server) Close() error {
	return s.db.Close()
}

// Start starts the HTTP server and handles graceful shutdown.
//
// GRACEFUL SHUTDOWN:
// 1. Stop accepting new HTTP connections
// 2. Wait for in-flight requests to finish (30s timeout)
// 3. Close the store (flushes the WAL, releases the file lock)
//
// Skipping step 3 could leave the database file in an inconsistent state.
// The `defer s.db.Close()` ensures it happens even if something panics.
func (s *Server) Start() error {
	defer s.db.Close()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to receive OS signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Channel to receive server errors
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine (so it doesn't block)
	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.config.Port),
			slog.String("url", fmt.Sprintf("http://localhost:%d", s.config.Port)),
			slog.String("store", s.config.DBPath),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		// Give in-flight requests 30 seconds to complete
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}

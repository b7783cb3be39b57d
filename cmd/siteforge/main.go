// Package main is the entry point for the siteforge server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"siteforge/internal/auth"
	"siteforge/internal/cache"
	"siteforge/internal/config"
	"siteforge/internal/database"
	"siteforge/internal/handlers"
	"siteforge/internal/router"
	"siteforge/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"public_base_url", cfg.PublicBaseURL,
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN(), cfg.DBMaxConns)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Connect to Valkey for the rendered-site cache. Optional: without it
	// every render hits the database, which is fine for small deployments.
	var siteCache *cache.SiteCache
	if cfg.CacheEnabled() {
		valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			slog.Error("failed to connect to valkey", "error", err)
			os.Exit(1)
		}
		defer valkeyClient.Close()
		siteCache = cache.NewSiteCache(valkeyClient, cache.DefaultSiteTTL)
	} else {
		slog.Warn("valkey not configured — rendered-site cache disabled")
	}

	// Initialize the data store and the owner-key authorizer over it.
	websiteStore := store.NewWebsiteStore(db)
	authorizer := auth.NewKeyAuthorizer(websiteStore)

	// Create the handler group and router.
	sites := handlers.NewSites(cfg, websiteStore, authorizer, siteCache)
	r := router.New(sites)

	// Create the HTTP server with sensible timeouts. Every request is a
	// single storage round-trip, so the write timeout stays short.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}

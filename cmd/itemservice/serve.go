package main

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/erazemk/itemservice/internal/api"
	"github.com/erazemk/itemservice/internal/auth"
	"github.com/erazemk/itemservice/internal/config"
	"github.com/erazemk/itemservice/internal/db"
	"github.com/erazemk/itemservice/internal/items"
	"github.com/erazemk/itemservice/internal/ratelimit"
	"github.com/erazemk/itemservice/internal/store"
	"github.com/erazemk/itemservice/internal/validation"
	"github.com/erazemk/itemservice/internal/web"
)

var configFile string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long: `Starts the HTTP server with the item pages and the JSON API.

Settings come from defaults, the optional --config file, ITEMSERVICE_*
environment variables and flags, in increasing order of precedence.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&configFile, "config", "c", "", "config file (yaml, toml or json)")
	config.RegisterFlags(serveCmd.Flags())
}

func runServe(cmd *cobra.Command, _ []string) error {
	v := viper.New()
	if err := config.BindFlags(v, cmd.Flags()); err != nil {
		return err
	}
	cfg, err := config.Load(v, configFile)
	if err != nil {
		return err
	}

	closeLog, err := setupLogger(cfg.Log.Path)
	if err != nil {
		return err
	}
	defer closeLog()

	itemStore, closeStore, err := openStore(cfg.Store)
	if err != nil {
		return err
	}
	defer closeStore()

	validator, err := validation.New(cfg.Validation.Strategy)
	if err != nil {
		return err
	}
	svc := items.NewService(itemStore, validator)

	jwtSecret := cfg.Auth.JWTSecret
	if jwtSecret == "" {
		jwtSecret, err = randomSecret()
		if err != nil {
			return fmt.Errorf("generating JWT secret: %w", err)
		}
		slog.Warn("no auth.jwt_secret configured, sessions will not survive a restart")
	}

	op := auth.Operator{Username: cfg.Auth.Username, PasswordHash: cfg.Auth.PasswordHash}
	if !op.Enabled() {
		slog.Warn("no auth.password_hash configured, anyone can change items")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	limiter := ratelimit.New(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	go limiter.Run(ctx, time.Minute)

	// Set up routers.
	apiRouter := api.NewRouter(svc, op, jwtSecret, limiter)
	webRouter, err := web.NewRouter(svc, op, jwtSecret, limiter)
	if err != nil {
		return fmt.Errorf("setting up web router: %w", err)
	}

	// Combine: API routes take priority, web routes handle the rest.
	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	mux.Handle("/", webRouter)

	var handler http.Handler = mux
	handler = api.LoggingMiddleware(handler)
	handler = middleware.Recoverer(handler)
	handler = middleware.RealIP(handler)
	handler = middleware.RequestID(handler)

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		<-ctx.Done()
		slog.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("server forced to shutdown", "error", err)
		}
	}()

	slog.Info("server started",
		"addr", cfg.Addr,
		"store", cfg.Store.Driver,
		"validation", cfg.Validation.Strategy,
		"auth", op.Enabled(),
	)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

// openStore returns the configured item store and a func releasing it.
func openStore(cfg config.StoreConfig) (store.Store, func(), error) {
	if cfg.Driver == config.DriverMemory {
		slog.Info("using in-memory store, items are lost on exit")
		return store.NewMemory(), func() {}, nil
	}

	database, err := db.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}

	// Ensure schema exists (idempotent).
	if err := db.EnsureSchema(database, cfg.Driver); err != nil {
		database.Close()
		return nil, nil, fmt.Errorf("ensuring database schema: %w", err)
	}

	slog.Info("database ready", "driver", cfg.Driver)
	return store.NewSQL(database, cfg.Driver), func() { closeDB(database) }, nil
}

func closeDB(database *sql.DB) {
	if err := database.Close(); err != nil {
		slog.Error("failed to close database", "error", err)
	}
}

// randomSecret returns 32 random bytes, hex encoded.
func randomSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

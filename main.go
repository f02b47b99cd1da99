package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/somascents/storefront/internal/core"
	"github.com/somascents/storefront/internal/storefront/api"
	"github.com/somascents/storefront/internal/storefront/assistant"
	"github.com/somascents/storefront/internal/storefront/catalog"
	"github.com/somascents/storefront/internal/storefront/checkout"
	"github.com/somascents/storefront/internal/storefront/model"
	"github.com/somascents/storefront/internal/storefront/notify"
	"github.com/somascents/storefront/internal/storefront/session"
	logx "github.com/somascents/storefront/pkg/logger"
	pkgmongo "github.com/somascents/storefront/pkg/mongo"
	pkgpostgres "github.com/somascents/storefront/pkg/postgres"
	pkgredis "github.com/somascents/storefront/pkg/redis"
)

// AppConfig defines all configurable parameters of the storefront,
// sourced from environment variables (loaded from .env for local runs).
type AppConfig struct {
	Environment string `envconfig:"ENVIRONMENT" default:"development"`

	HTTP api.Config

	// Infrastructure; only the one selected by STORAGE_BACKEND is dialled.
	Storage  model.StorageConfig
	Redis    pkgredis.Config
	Postgres pkgpostgres.Config
	Mongo    pkgmongo.Config

	// Storefront configs
	Store     model.StoreConfig
	Notify    model.NotifyConfig
	Assistant model.AssistantConfig
}

func main() {
	// Load .env file
	if err := godotenv.Load(".env"); err != nil {
		logx.Warn().Err(err).Msg("Could not load .env file")
	}

	// Load structured config from env
	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		logx.Fatal().Err(err).Msg("Failed to process environment config")
	}

	env := core.ParseEnvironment(cfg.Environment)
	logx.Init(logx.LoggerOpts{Environment: env})
	gin.SetMode(env.GinMode())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storage, err := openBackend(ctx, cfg)
	if err != nil {
		logx.Fatal().Err(err).Str("backend", cfg.Storage.Backend).Msg("Failed to open storage backend")
	}
	defer storage.close()

	// ====================================================
	// Session, notification boundary and checkout
	sess := session.New(ctx, catalog.Default(), storage.snapshots, cfg.Store)
	defer sess.Close()

	boundary := notify.NewService(cfg.Notify, nil)
	var orderNotifier model.Notifier = boundary
	if cfg.Notify.Endpoint != "" {
		orderNotifier = notify.NewClient(cfg.Notify.Endpoint, cfg.Notify.Timeout)
		logx.Info().Str("endpoint", cfg.Notify.Endpoint).Msg("Order notifications go to remote boundary")
	}

	orders := checkout.NewService(checkout.Config{
		StoreName:  cfg.Store.Name,
		ClearDelay: cfg.Store.CheckoutClearDelay,
	}, orderNotifier, sess.Cart)
	defer orders.Close()

	executor, err := assistant.NewExecutor(ctx, assistant.GetStorefrontTools(sess), storage.transcripts, cfg.Assistant)
	if err != nil {
		logx.Fatal().Err(err).Msg("Failed to build assistant tools")
	}

	router := api.NewRouter(cfg.HTTP, api.Deps{
		Session:   sess,
		Checkout:  orders,
		Notifier:  boundary,
		Assistant: executor,
	})

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logx.Info().
			Str("addr", srv.Addr).
			Str("environment", env.String()).
			Str("storage", cfg.Storage.Backend).
			Int("products", sess.Catalog.Len()).
			Msg("Storefront listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logx.Error().Err(err).Msg("HTTP server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	logx.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logx.Error().Err(err).Msg("Graceful shutdown failed")
	}
}

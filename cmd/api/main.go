package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"

	"github.com/lowkeylegends/storefront-backend/api/routes"
	"github.com/lowkeylegends/storefront-backend/internal/addresses"
	"github.com/lowkeylegends/storefront-backend/internal/carts"
	"github.com/lowkeylegends/storefront-backend/internal/catalog"
	"github.com/lowkeylegends/storefront-backend/internal/marketing"
	"github.com/lowkeylegends/storefront-backend/internal/orders"
	productsvc "github.com/lowkeylegends/storefront-backend/internal/products"
	"github.com/lowkeylegends/storefront-backend/internal/tax"
	"github.com/lowkeylegends/storefront-backend/pkg/config"
	"github.com/lowkeylegends/storefront-backend/pkg/db"
	"github.com/lowkeylegends/storefront-backend/pkg/logger"
	"github.com/lowkeylegends/storefront-backend/pkg/metrics"
	"github.com/lowkeylegends/storefront-backend/pkg/migrate"
	"github.com/lowkeylegends/storefront-backend/pkg/printify"
	"github.com/lowkeylegends/storefront-backend/pkg/redis"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
	} else {
		logg.Warn(context.Background(), "redis not configured, rate limiting disabled")
	}

	var provider catalog.ProviderClient
	if cfg.Printify.APIToken != "" && cfg.Printify.ShopID != "" {
		client, err := printify.NewClient(context.Background(), cfg.Printify, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap printify client", err)
			os.Exit(1)
		}
		provider = client
	} else {
		logg.Warn(context.Background(), "printify not configured, catalog served from local cache")
	}

	productService := productsvc.NewService(productsvc.NewRepository(dbClient.DB()))
	catalogService := catalog.NewService(provider, productService, logg)
	taxService := tax.NewService(tax.NewRepository(dbClient.DB()))
	addressService := addresses.NewService(addresses.NewRepository(dbClient.DB()), dbClient)
	orderService := orders.NewService(orders.NewRepository(dbClient.DB()), dbClient)
	cartService := carts.NewService(carts.NewRepository(dbClient.DB()))
	marketingService := marketing.NewService(marketing.NewRepository(dbClient.DB()))

	httpMetrics := metrics.NewHTTPMetrics(prometheus.NewRegistry())

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			redisClient,
			httpMetrics,
			catalogService,
			productService,
			taxService,
			addressService,
			orderService,
			cartService,
			marketingService,
		),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-stop:
		logg.Info(logg.WithField(ctx, "signal", sig.String()), "shutting down api server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "error during server shutdown", err)
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
		}
	}

	var closeErr error
	if redisClient != nil {
		closeErr = multierr.Append(closeErr, redisClient.Close())
	}
	closeErr = multierr.Append(closeErr, dbClient.Close())
	if closeErr != nil {
		logg.Error(ctx, "error closing resources", closeErr)
		os.Exit(1)
	}
}

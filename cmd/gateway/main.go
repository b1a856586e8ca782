package main

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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/commercekit/payment-gateways/internal/config"
	"github.com/commercekit/payment-gateways/internal/interfaces/rest"
	"github.com/commercekit/payment-gateways/internal/interfaces/rest/handlers"
	"github.com/commercekit/payment-gateways/internal/interfaces/rest/middleware"
	"github.com/commercekit/payment-gateways/internal/observability/metrics"
	"github.com/commercekit/payment-gateways/internal/provider"
	"github.com/commercekit/payment-gateways/internal/provider/mollie"
	"github.com/commercekit/payment-gateways/internal/provider/sumup"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting payment gateway connectors",
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
	)

	gatewayMetrics := metrics.NewGatewayMetrics(prometheus.DefaultRegisterer)
	registry := provider.NewRegistry()

	mollieClient := mollie.NewRetryClient(mollie.NewClient(cfg.Mollie), cfg.Retry.BaseDelay, cfg.Retry.MaxRetries)
	for _, variant := range gatewayVariants("mollie", cfg.Mollie) {
		prov, err := mollie.New(cfg.Mollie, variant, mollieClient, logger, gatewayMetrics)
		if err != nil {
			logger.Error("failed to build mollie provider", "variant", variant.ID, "error", err)
			os.Exit(1)
		}
		if err := registry.Register(prov); err != nil {
			logger.Error("failed to register provider", "variant", variant.ID, "error", err)
			os.Exit(1)
		}
	}

	sumupClient := sumup.NewRetryClient(sumup.NewClient(cfg.SumUp), cfg.Retry.BaseDelay, cfg.Retry.MaxRetries)
	for _, variant := range gatewayVariants("sumup", cfg.SumUp) {
		prov, err := sumup.New(cfg.SumUp, variant, sumupClient, logger, gatewayMetrics)
		if err != nil {
			logger.Error("failed to build sumup provider", "variant", variant.ID, "error", err)
			os.Exit(1)
		}
		if err := registry.Register(prov); err != nil {
			logger.Error("failed to register provider", "variant", variant.ID, "error", err)
			os.Exit(1)
		}
	}

	logger.Info("providers registered", "tokens", registry.Tokens())

	verifiers := map[string]rest.SignatureVerifier{
		"mollie": rest.NewHMACVerifier(cfg.Mollie.WebhookSecret),
		"sumup":  rest.NewHMACVerifier(cfg.SumUp.WebhookSecret),
	}

	h := handlers.NewHandlers(registry, verifiers, logger)

	router := chi.NewRouter()
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.Logging(logger))
	router.Use(middleware.Timeout(cfg.Server.ReadTimeout))
	h.Routes(router)
	router.Handle("/metrics", promhttp.Handler())
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "ok")
	})

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}

// gatewayVariants expands a gateway config into its base variant plus one
// variant per configured payment method.
func gatewayVariants(gateway string, cfg config.GatewayConfig) []provider.Variant {
	variants := []provider.Variant{{ID: gateway}}
	for _, method := range cfg.Methods {
		variants = append(variants, provider.Variant{
			ID:     fmt.Sprintf("%s-%s", gateway, method),
			Method: method,
		})
	}
	return variants
}

package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/Muhammad-Masood/ssi-system-backend/internal/cas"
	"github.com/Muhammad-Masood/ssi-system-backend/internal/cidseal"
	credhandler "github.com/Muhammad-Masood/ssi-system-backend/internal/credential/handler"
	credmetrics "github.com/Muhammad-Masood/ssi-system-backend/internal/credential/metrics"
	credservice "github.com/Muhammad-Masood/ssi-system-backend/internal/credential/service"
	credstore "github.com/Muhammad-Masood/ssi-system-backend/internal/credential/store"
	didhandler "github.com/Muhammad-Masood/ssi-system-backend/internal/did/handler"
	didmetrics "github.com/Muhammad-Masood/ssi-system-backend/internal/did/metrics"
	didservice "github.com/Muhammad-Masood/ssi-system-backend/internal/did/service"
	didstore "github.com/Muhammad-Masood/ssi-system-backend/internal/did/store"
	fhirhandler "github.com/Muhammad-Masood/ssi-system-backend/internal/fhir/handler"
	fhirstore "github.com/Muhammad-Masood/ssi-system-backend/internal/fhir/store"
	"github.com/Muhammad-Masood/ssi-system-backend/internal/ledger"
	"github.com/Muhammad-Masood/ssi-system-backend/internal/platform/config"
	"github.com/Muhammad-Masood/ssi-system-backend/internal/platform/database"
	"github.com/Muhammad-Masood/ssi-system-backend/internal/platform/health"
	"github.com/Muhammad-Masood/ssi-system-backend/internal/platform/httpserver"
	"github.com/Muhammad-Masood/ssi-system-backend/internal/platform/logger"
	httptransport "github.com/Muhammad-Masood/ssi-system-backend/internal/transport/http"
	verifhandler "github.com/Muhammad-Masood/ssi-system-backend/internal/verification/handler"
	verifmetrics "github.com/Muhammad-Masood/ssi-system-backend/internal/verification/metrics"
	verifservice "github.com/Muhammad-Masood/ssi-system-backend/internal/verification/service"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	log.Info("initializing ssi-backend",
		"addr", cfg.Addr,
		"ledger", ledgerKind(cfg),
		"database", cfg.DatabaseURL != "",
	)

	sealer, err := cidseal.New(cfg.SecretKeyHex, cfg.SecretNonceHex)
	if err != nil {
		log.Error("invalid seal key material", "error", err)
		os.Exit(1)
	}

	ledgerClient, err := buildLedger(cfg, log)
	if err != nil {
		log.Error("ledger client init failed", "error", err)
		os.Exit(1)
	}

	content := cas.New(cfg.CASPinEndpoint, cfg.CASGatewayURL, cfg.CASToken,
		cas.WithTimeout(cfg.ExternalCallTimeout))

	pool, err := buildPool(cfg)
	if err != nil {
		log.Error("database init failed", "error", err)
		os.Exit(1)
	}
	if pool != nil {
		defer pool.Close()
	}

	var (
		didMirror  didstore.Store
		credMirror credstore.Store
		fhirMirror fhirstore.Store
	)
	if pool != nil {
		didMirror = didstore.NewPostgres(pool.DB())
		credMirror = credstore.NewPostgres(pool.DB())
		fhirMirror = fhirstore.NewPostgres(pool.DB())
	} else {
		log.Warn("no database configured, using in-memory mirror stores")
		didMirror = didstore.NewInMemoryStore()
		credMirror = credstore.NewInMemoryStore()
		fhirMirror = fhirstore.NewInMemoryStore()
	}

	dids := didservice.New(ledgerClient, content, didMirror,
		didservice.WithLogger(log),
		didservice.WithMetrics(didmetrics.New()),
	)
	credentials := credservice.New(ledgerClient, content, sealer, credMirror,
		credservice.WithLogger(log),
		credservice.WithMetrics(credmetrics.New()),
	)
	verifications := verifservice.New(ledgerClient, content, sealer, credMirror, dids,
		verifservice.WithLogger(log),
		verifservice.WithMetrics(verifmetrics.New()),
	)

	healthHandler := health.New(os.Getenv("ENVIRONMENT"))
	if pool != nil {
		healthHandler.RegisterCheck("database", func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return pool.Health(ctx)
		})
	}

	router := httptransport.NewRouter(httptransport.Deps{
		DID:            didhandler.New(dids, log),
		Credential:     credhandler.New(credentials, credMirror, log),
		Verification:   verifhandler.New(verifications, log),
		FHIR:           fhirhandler.New(ledgerClient, content, sealer, fhirMirror, log),
		Health:         healthHandler,
		AdminTokenHash: cfg.AdminTokenHash,
	}, log)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting http server", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown on SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	log.Info("shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}

func ledgerKind(cfg config.Server) string {
	if cfg.RPCURL != "" && cfg.ContractAddress != "" {
		return "ethereum"
	}
	return "memory"
}

func buildLedger(cfg config.Server, log *slog.Logger) (ledger.Client, error) {
	if cfg.RPCURL != "" && cfg.ContractAddress != "" {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ExternalCallTimeout)
		defer cancel()
		return ledger.NewEthereumClient(ctx, cfg.RPCURL, cfg.ContractAddress, cfg.ChainID)
	}
	log.Warn("no RPC endpoint configured, using in-memory ledger")
	return ledger.NewMemoryClient(), nil
}

func buildPool(cfg config.Server) (*database.Pool, error) {
	dbCfg := database.DefaultConfig()
	dbCfg.URL = cfg.DatabaseURL
	return database.New(dbCfg)
}

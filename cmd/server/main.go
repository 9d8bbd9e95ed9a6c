package main

import (
	"context"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/handler"
	"github.com/MKhiriev/go-notes-keeper/internal/handler/http"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/metrics"
	"github.com/MKhiriev/go-notes-keeper/internal/server"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger("notes-server", cfg.App.LogLevel)
	log.Debug().
		Str("environment", cfg.App.Environment).
		Str("address", cfg.Server.HTTPAddress).
		Str("password_hasher", cfg.App.PasswordHasher).
		Msg("received configs")

	if cfg.App.SessionSecret == config.DefaultSessionSecret {
		log.Warn().Msg("using the default session secret; set APP_SESSION_SECRET outside local development")
	}

	if err = run(cfg, log); err != nil {
		log.Fatal().Err(err).Send()
	}
}

func run(cfg *config.StructuredConfig, log *logger.Logger) error {
	ctx := context.Background()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		return fmt.Errorf("error connecting to storage: %w", err)
	}
	defer db.Close()

	if err = db.Migrate(ctx); err != nil {
		return fmt.Errorf("error migrating storage: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.NewMetrics(registry)
	if err = m.RegisterDB(db.DB, "notes"); err != nil {
		return fmt.Errorf("error registering database metrics: %w", err)
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(store.NewStorages(db, log), cfg.App, buildInfo, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	if cfg.Seed.Enabled() {
		created, seedErr := services.AuthService.SeedUser(ctx, models.Credentials{
			Email:    cfg.Seed.Email,
			Password: cfg.Seed.Password,
		})
		if seedErr != nil {
			return fmt.Errorf("error seeding user: %w", seedErr)
		}
		log.Info().Str("email", cfg.Seed.Email).Bool("created", created).Msg("seed account checked")
	}

	handlers, err := handler.NewHandlers(services, cfg, log,
		http.WithHealthChecker(db),
		http.WithMetrics(m),
	)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return server.RunUntilSignal(srv)
}

// printBuildInfo prints the linker-injected metadata, "N/A" for anything
// that was not set.
func printBuildInfo() {
	fmt.Printf("Build version: %s\n", orNA(buildVersion))
	fmt.Printf("Build date: %s\n", orNA(buildDate))
	fmt.Printf("Build commit: %s\n", orNA(buildCommit))
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}

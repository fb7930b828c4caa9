package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/central-adventures/trips/internal/auth"
	"github.com/central-adventures/trips/internal/chrome"
	"github.com/central-adventures/trips/internal/config"
	"github.com/central-adventures/trips/internal/contact"
	"github.com/central-adventures/trips/internal/database"
	"github.com/central-adventures/trips/internal/destinations"
	"github.com/central-adventures/trips/internal/handlers"
	"github.com/central-adventures/trips/internal/locations"
	"github.com/central-adventures/trips/internal/logger"
	"github.com/central-adventures/trips/internal/profile"
	"github.com/central-adventures/trips/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logger.Init(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	// Connect to Database
	db := database.Connect(cfg)
	provider := storage.NewGormProvider(db)

	dataset, err := loadLocations(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load locations")
	}

	relay, err := contact.NewRelay(cfg, &http.Client{})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set up contact relay")
	}

	// Initialize Handlers
	simulator := auth.NewSimulator(cfg)
	h := &handlers.Handlers{
		Client:       auth.NewClientHandler(cfg),
		Simulator:    simulator,
		Storage:      provider,
		Account:      handlers.NewAccountHandler(simulator, provider),
		Profile:      handlers.NewProfileHandler(profile.NewEditor(dataset), provider),
		Locations:    handlers.NewLocationsHandler(dataset),
		Destinations: handlers.NewDestinationsHandler(destinations.Default()),
		Contact:      handlers.NewContactHandler(db, contact.NewSubmitter(relay), cfg.ContactBackend),
		Chrome:       handlers.NewChromeHandler(chrome.NewRegistry(cfg.ChromeIdleTTL, cfg.ChromeMaxClients)),
	}

	r := chi.NewRouter()
	handlers.RegisterRoutes(r, cfg, h)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: r,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("contact_backend", cfg.ContactBackend).Msg("Starting server")
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exiting")
}

func loadLocations(cfg *config.Config) (*locations.Dataset, error) {
	if cfg.LocationsPath == "" {
		return locations.Kenya()
	}
	return locations.Load(cfg.LocationsPath)
}

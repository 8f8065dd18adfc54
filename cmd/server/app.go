package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/benkyo/doushi-api/internal/config"
	"github.com/benkyo/doushi-api/internal/domain/mastery"
	"github.com/benkyo/doushi-api/internal/platform/postgres"
	"github.com/benkyo/doushi-api/internal/service"
	"github.com/benkyo/doushi-api/internal/service/auth"
	"github.com/benkyo/doushi-api/internal/store"
)

// application holds the shared application dependencies so wiring and
// shutdown live in one place.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore    store.UserStore
	verbStore    store.VerbStore
	recordStore  store.StudyRecordStore
	profileStore store.ProfileStore

	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	masteryService   mastery.Service
	practiceService  service.PracticeService
	verbService      service.VerbService
	profileService   service.ProfileService
}

// newApplication wires all application dependencies. Configuration, logger
// and database connection must already be established.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.passwordVerifier = auth.NewBcryptVerifier()

	app.userStore = postgres.NewUserStore(db, cfg.Auth.BcryptCost, logger)
	app.verbStore = postgres.NewVerbStore(db, logger)
	app.recordStore = postgres.NewStudyRecordStore(db, logger)
	app.profileStore = postgres.NewProfileStore(db, logger)

	app.masteryService = mastery.NewServiceWithParams(mastery.NewParams(mastery.ParamsConfig{
		DailyHistoryLimit: cfg.Study.DailyHistoryLimit,
	}))

	app.practiceService = service.NewPracticeService(
		db,
		app.verbStore,
		app.recordStore,
		app.profileStore,
		app.masteryService,
		logger,
	)
	app.verbService = service.NewVerbService(db, app.verbStore, logger)
	app.profileService = service.NewProfileService(db, app.profileStore, app.recordStore, logger)

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the HTTP server and blocks until shutdown.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup releases application resources on shutdown.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}

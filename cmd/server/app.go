package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/wellbeing-api/internal/config"
	"github.com/phrazzld/wellbeing-api/internal/platform/logger"
	"github.com/phrazzld/wellbeing-api/internal/platform/postgres"
	"github.com/phrazzld/wellbeing-api/internal/service/auth"
	"github.com/phrazzld/wellbeing-api/internal/store"
)

// application holds the server's configuration and wired dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore    store.UserStore
	checkInStore store.CheckInStore
	journalStore store.JournalStore

	jwtService       auth.JWTService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier
}

// newApplication loads configuration and wires every component the
// server needs. It also applies pending schema migrations.
func newApplication() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(logger.LoggerConfig{Level: cfg.Server.LogLevel})
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(db, appLogger); err != nil {
		_ = db.Close()
		return nil, err
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	return &application{
		config:           cfg,
		logger:           appLogger,
		db:               db,
		userStore:        postgres.NewPostgresUserStore(db, appLogger),
		checkInStore:     postgres.NewPostgresCheckInStore(db, appLogger),
		journalStore:     postgres.NewPostgresJournalStore(db, appLogger),
		jwtService:       jwtService,
		passwordHasher:   auth.NewBcryptHasher(),
		passwordVerifier: auth.NewBcryptVerifier(),
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}

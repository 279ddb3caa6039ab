package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"atlas/internal/config"
	"atlas/internal/database"
	"atlas/internal/logger"
	"atlas/internal/middleware"
	"atlas/internal/router"
	"atlas/internal/service"
	"atlas/internal/validation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	_ "atlas/docs"

	echoSwagger "github.com/swaggo/echo-swagger"
)

var (
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	runMigrationsFn = database.RunMigrations
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
)

func newServer(cfg *config.Config, log *slog.Logger, db database.DB, tm *service.TokenManager) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Debug = cfg.Debug
	e.Validator = validation.NewCustomValidator()
	e.HTTPErrorHandler = middleware.ErrorHandler

	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.RequestLogger(log))
	e.Use(echomw.Recover())

	router.Setup(e, db, tm)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return e
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	l := logger.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	l.SetDefault()

	tm, err := service.NewTokenManager(cfg.JWT.Secret, cfg.JWT.Algorithm, cfg.JWT.AccessTokenTTL)
	if err != nil {
		return fmt.Errorf("invalid token settings: %w", err)
	}

	if err := runMigrationsFn(cfg.Database.URL); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	db, err := newPgxPool(context.Background(), cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer db.Close()

	e := newServer(cfg, l.Logger, db, tm)

	l.Info("starting server", "app", cfg.AppName, "addr", cfg.HTTP.Addr)
	return startServer(e, cfg.HTTP.Addr)
}

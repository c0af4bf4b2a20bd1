package main

import (
	"github.com/joho/godotenv"

	"github.com/qwarnma600-sudo/ecommerces/internal/auth"
	"github.com/qwarnma600-sudo/ecommerces/internal/config"
	"github.com/qwarnma600-sudo/ecommerces/internal/database"
	"github.com/qwarnma600-sudo/ecommerces/internal/handlers"
	"github.com/qwarnma600-sudo/ecommerces/internal/logger"
	"github.com/qwarnma600-sudo/ecommerces/internal/routes"
	"github.com/qwarnma600-sudo/ecommerces/internal/store"
)

func main() {
	// 0. --- Load Environment Variables (.env) ---
	if err := godotenv.Load(); err != nil {
		zl := logger.Get()
		zl.Warn().Msg("could not load .env file, relying on system environment")
	}

	cfg, err := config.Load()
	if err != nil {
		zl := logger.Get()
		zl.Fatal().Err(err).Msg("invalid configuration")
	}
	logger.SetLevel(cfg.LogLevel)
	log := logger.Get()

	// 1. --- Database Connection & Schema ---
	db, err := database.OpenDB(cfg.DBDsn)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to create tables")
	}

	// 2. --- Application Setup ---
	app := &handlers.Handlers{
		Store: store.NewMySQL(db),
		Auth:  auth.NewIssuer(cfg.JWTSecret),
		Cfg:   cfg,
	}

	// 3. --- Router & Server ---
	router := routes.SetupRouter(app)

	log.Info().Str("addr", cfg.Addr).Msg("starting API server")
	if err := router.Run(cfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

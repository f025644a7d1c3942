package database

import (
	"context"
	"database/sql"
	"time"

	"jobboard/internal/platform/config"
	"jobboard/internal/platform/database/migrations"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog/log"
)

var DB *sql.DB

func Connect() {
	var err error
	DB, err = sql.Open("pgx", config.AppConfig.DBConnStr)
	if err != nil {
		log.Fatal().Err(err).Msg("Error opening database")
	}

	DB.SetMaxOpenConns(25)
	DB.SetMaxIdleConns(25)
	DB.SetConnMaxLifetime(5 * time.Minute)

	// Verify connection
	if err = DB.Ping(); err != nil {
		log.Fatal().Err(err).Msg("Error connecting to database")
	}

	log.Info().Msg("Successfully connected to PostgreSQL database")
}

// RunMigrations applies the embedded goose migrations.
func RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return goose.UpContext(ctx, DB, ".")
}

func Close() {
	if DB != nil {
		DB.Close()
		log.Info().Msg("Database connection closed")
	}
}

package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/project/catalog/pkg/logger"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

const migrationsDir = "migrations"

// SetupPostgres applies every pending migration to the database behind dsn.
func SetupPostgres(ctx context.Context, dsn string, l *zap.Logger) error {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("failed to open postgres: %w", err)
	}
	defer func() {
		_ = db.Close()
	}()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err = db.PingContext(pingCtx); err != nil {
		return fmt.Errorf("failed to ping postgres: %w", err)
	}

	return RunMigrations(ctx, db, l)
}

func RunMigrations(ctx context.Context, db *sql.DB, l *zap.Logger) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, migrationsDir); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, db)
	if !logger.CheckError(err, l, "can not read migration version", zap.Error(err)) {
		logger.MakeInfo(l, "migrations applied", zap.Int64("version", version))
	}

	return nil
}

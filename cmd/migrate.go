package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"phi-inspection/pkg/migrate"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [" + strings.Join(migrate.Commands, "|") + "]",
	Short:     "Run database schema migrations",
	Args:      cobra.RangeArgs(0, 2),
	ValidArgs: migrate.Commands,
	RunE: func(cmd *cobra.Command, args []string) error {
		command := "up"
		if len(args) > 0 {
			command = args[0]
		}

		config, logger, err := bootstrap()
		if err != nil {
			return err
		}
		defer logger.Sync()

		if err := migrateDatabase(cmd.Context(), config.Database.DSN(), command, args[min(len(args), 1):]...); err != nil {
			logger.Error("Migration failed", zap.String("command", command), zap.Error(err))
			return err
		}

		logger.Info("Migration finished", zap.String("command", command))
		return nil
	},
}

// migrateDatabase runs a goose command over a database/sql handle backed by pgx.
func migrateDatabase(ctx context.Context, dsn, command string, args ...string) error {
	return withMigrationDB(dsn, func(db *sql.DB) error {
		return migrate.Run(ctx, db, command, args...)
	})
}

// applyMigrations brings the schema up to date before serving.
func applyMigrations(ctx context.Context, dsn string) error {
	return withMigrationDB(dsn, func(db *sql.DB) error {
		return migrate.Up(ctx, db)
	})
}

func withMigrationDB(dsn string, fn func(db *sql.DB) error) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	return fn(db)
}

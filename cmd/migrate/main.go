package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fhuszti/paper-site-go/internal/config"
	"github.com/fhuszti/paper-site-go/internal/db"
	"github.com/fhuszti/paper-site-go/internal/logger"
	"github.com/fhuszti/paper-site-go/internal/migration"
)

func main() {
	ctx := context.Background()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		logger.Errorf(ctx, "❌  %v", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "migrate",
		Short:         "Apply or roll back the catalog schema",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger.Init()
			return nil
		},
		// plain `migrate` keeps applying pending migrations
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUp(cmd.Context())
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply every pending migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUp(cmd.Context())
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "down [steps]",
		Short: "Roll back the given number of migrations (default 1)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps := 1
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n <= 0 {
					return fmt.Errorf("invalid steps %q: must be a positive integer", args[0])
				}
				steps = n
			}
			return runDown(cmd.Context(), steps)
		},
	})

	return cmd
}

func runUp(ctx context.Context) error {
	database, err := initDb()
	if err != nil {
		return err
	}
	defer closeDb(ctx, database)

	if err := migration.MigrateUp(ctx, database.DB); err != nil {
		return err
	}
	logger.Info(ctx, "✅  Migrations applied successfully")
	return nil
}

func runDown(ctx context.Context, steps int) error {
	database, err := initDb()
	if err != nil {
		return err
	}
	defer closeDb(ctx, database)

	if err := migration.MigrateDown(ctx, database.DB, steps); err != nil {
		return err
	}
	logger.Infof(ctx, "✅  Rolled back %d migration(s)", steps)
	return nil
}

func initDb() (*db.Database, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	return db.New(db.MariaDbConfig{
		DSN:             withMultiStatements(cfg.MariaDBDSN),
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})
}

func closeDb(ctx context.Context, database *db.Database) {
	if err := database.Close(); err != nil {
		logger.Warnf(ctx, "DB close error: %v", err)
	}
}

func withMultiStatements(dsn string) string {
	if strings.Contains(dsn, "multiStatements=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&multiStatements=true"
	}
	return dsn + "?multiStatements=true"
}

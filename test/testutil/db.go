package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/fhuszti/paper-site-go/internal/migration"
)

type TestDB struct {
	DB      *sql.DB
	Cleanup func() error
}

// SetupTestDB creates a throwaway database on the server behind TEST_DB_DSN
// and applies every migration to it.
func SetupTestDB() (*TestDB, error) {
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		return nil, fmt.Errorf("TEST_DB_DSN env-var not set")
	}

	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse DSN %q: %w", dsn, err)
	}

	origName := cfg.DBName
	if origName == "" {
		origName = "paper_site"
	}
	cfg.DBName = ""
	rootDB, err := sql.Open("mysql", cfg.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("open root DB: %w", err)
	}

	dbName := fmt.Sprintf("%s_%d", origName, time.Now().UnixNano())
	if _, err := rootDB.Exec("CREATE DATABASE " + dbName); err != nil {
		_ = rootDB.Close()
		return nil, err
	}

	cfg.DBName = dbName
	cfg.ParseTime = true
	cfg.MultiStatements = true
	db, err := sql.Open("mysql", cfg.FormatDSN())
	if err != nil {
		_, _ = rootDB.Exec("DROP DATABASE " + dbName)
		_ = rootDB.Close()
		return nil, fmt.Errorf("open test DB %q: %w", dbName, err)
	}

	cleanup := func() error {
		if err := db.Close(); err != nil {
			return err
		}
		if _, err := rootDB.Exec("DROP DATABASE " + dbName); err != nil {
			_ = rootDB.Close()
			return fmt.Errorf("drop database %q: %w", dbName, err)
		}
		return rootDB.Close()
	}

	if err := migration.MigrateUp(context.Background(), db); err != nil {
		_ = cleanup()
		return nil, fmt.Errorf("migrate %q: %w", dbName, err)
	}

	return &TestDB{DB: db, Cleanup: cleanup}, nil
}

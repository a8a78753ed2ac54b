package database

import (
	"net/url"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/neo4j"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"questionnaire/internal/logger"
)

func Migrations() {
	uri := os.Getenv("AURADB_URI")
	if uri == "" {
		logger.Fatal("AURADB_URI not set", nil)
	}

	u, err := url.Parse(uri)
	if err != nil {
		logger.Fatal("Unable to parse AURADB_URI", err)
	}
	u.User = url.UserPassword(os.Getenv("AURADB_USERNAME"), os.Getenv("AURADB_PASSWORD"))
	u.RawQuery = "x-multi-statement=true"

	migration, err := migrate.New(
		"file://migrations",
		u.String(),
	)
	if err != nil {
		logger.Fatal("migration init error", err)
	}

	if _, dirty, _ := migration.Version(); dirty {
		logger.Error("database is dirty, forcing version", nil)
		if err := migration.Force(1); err != nil {
			logger.Fatal("failed to force migration version", err)
		}
	}

	if err := migration.Up(); err != nil && err != migrate.ErrNoChange {
		logger.Fatal("migration failed", err)
	} else {
		logger.Info("migrations applied")
	}
}

package driver

import (
	"database/sql"
	"os"

	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func ConnectDB() *sql.DB {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		logrus.Fatal("DB_DSN variable is not set")
	}
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		logrus.Fatalf("failed to open database: %v", err)
	}
	if err := db.Ping(); err != nil {
		logrus.Fatalf("failed to connect to database: %v", err)
	}
	return db
}

// Migrate applies pending schema migrations from ./migrations.
func Migrate(db *sql.DB) error {
	instance, err := migratemysql.WithInstance(db, &migratemysql.Config{})
	if err != nil {
		return errors.Wrap(err, "failed to create migration driver")
	}
	m, err := migrate.NewWithDatabaseInstance("file://migrations", "mysql", instance)
	if err != nil {
		return errors.Wrap(err, "failed to load migrations")
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return errors.Wrap(err, "failed to apply migrations")
	}
	return nil
}

// Package ledger persists per-run block statistics (processed, corrected,
// failed counts) for the encode/decode CLI drivers using GORM over the
// pure-Go modernc.org/sqlite driver.
package ledger

import (
	"database/sql"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// Config holds ledger database configuration.
type Config struct {
	Path string // path to the SQLite database file
}

// DB wraps the GORM database instance backing the ledger.
type DB struct {
	db *gorm.DB
}

// Open creates a ledger database connection and migrates its schema.
func Open(config Config, logOut *log.Logger) (*DB, error) {
	var gormLog logger.Interface
	if logOut != nil {
		gormLog = logger.New(
			logOut,
			logger.Config{
				LogLevel:                  logger.Warn,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		)
	} else {
		gormLog = logger.Default.LogMode(logger.Silent)
	}

	dialector := sqlite.Dialector{
		DriverName: "sqlite",
		DSN:        config.Path,
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLog,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	if err := configureSQLite(sqlDB); err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&RunRecord{}); err != nil {
		return nil, err
	}

	if logOut != nil {
		logOut.Printf("ledger: opened %s", config.Path)
	}

	return &DB{db: db}, nil
}

func configureSQLite(sqlDB *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
		"PRAGMA temp_store=memory",
	}

	for _, pragma := range pragmas {
		if _, err := sqlDB.Exec(pragma); err != nil {
			return err
		}
	}

	return nil
}

// GORM returns the underlying GORM database instance.
func (db *DB) GORM() *gorm.DB {
	return db.db
}

// Close releases the underlying connection.
func (db *DB) Close() error {
	sqlDB, err := db.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Health reports whether the connection is usable.
func (db *DB) Health() error {
	sqlDB, err := db.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

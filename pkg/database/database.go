package database

import (
	"database/sql"
	"fmt"
	"io/fs"
	"path"
	"time"

	"github.com/alimgiray/menuhub/pkg/logger"
	_ "github.com/mattn/go-sqlite3"
)

// MemoryPath opens a private in-memory database
const MemoryPath = ":memory:"

var DB *sql.DB

// Init opens the global SQLite connection and applies the schema scripts
func Init(dbPath string, migrations fs.FS) error {
	var err error

	DB, err = Open(dbPath)
	if err != nil {
		return err
	}

	logger.WithField("path", dbPath).Info("Database connected successfully with WAL mode")

	return RunSQLScripts(DB, migrations)
}

// Open opens a SQLite database at dbPath and tunes it for concurrent access
func Open(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dsn(dbPath))
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if dbPath == MemoryPath {
		// every connection to :memory: is a separate database
		db.SetMaxOpenConns(1)
		db.SetConnMaxLifetime(0)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(10)
		db.SetConnMaxLifetime(time.Hour)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = optimizeDatabase(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func dsn(dbPath string) string {
	if dbPath == MemoryPath {
		return dbPath + "?_foreign_keys=ON"
	}
	return dbPath + "?_journal_mode=WAL&_synchronous=NORMAL&_cache_size=10000&_temp_store=MEMORY&_foreign_keys=ON&_busy_timeout=30000"
}

// optimizeDatabase configures SQLite for optimal performance
func optimizeDatabase(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA cache_size=10000",
		"PRAGMA temp_store=MEMORY",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=30000",
		"PRAGMA mmap_size=268435456", // 256MB
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("error applying %s: %w", pragma, err)
		}
	}
	return nil
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

// Ping checks that the global connection is usable
func Ping() error {
	if DB == nil {
		return fmt.Errorf("database not initialized")
	}
	return DB.Ping()
}

// RunSQLScripts executes every .sql file of fsys in name order. Scripts must be idempotent.
func RunSQLScripts(db *sql.DB, fsys fs.FS) error {
	files, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("error reading migrations: %w", err)
	}

	for _, file := range files {
		if file.IsDir() || path.Ext(file.Name()) != ".sql" {
			continue
		}

		sqlContent, err := fs.ReadFile(fsys, file.Name())
		if err != nil {
			return err
		}

		if _, err = db.Exec(string(sqlContent)); err != nil {
			return fmt.Errorf("error executing %s: %w", file.Name(), err)
		}

		logger.Debugf("Executed SQL script: %s", file.Name())
	}

	logger.Info("All SQL scripts executed successfully")
	return nil
}

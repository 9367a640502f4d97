package store

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"net/url"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/roach88/catalog/internal/catalog"
)

//go:embed schema.sql
var schemaSQL string

// Schema version tracking:
// 1 - shops, products and the two sequences
const currentSchemaVersion = 1

// dsnParams configures every connection the driver opens.
const dsnParams = "_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000&_foreign_keys=on"

// Store is an open catalog file.
type Store struct {
	db   *sql.DB
	path string
}

// Open creates or opens the catalog file at path and ensures the schema
// exists. It is idempotent: opening an initialized file leaves its rows alone.
//
// All failures are reported as *catalog.StorageError, which matches
// catalog.ErrStorageUnavailable.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, &catalog.StorageError{Op: "open", Err: errors.New("empty database path")}
	}

	dsn, err := fileDSN(path)
	if err != nil {
		return nil, &catalog.StorageError{Op: "open", Path: path, Err: err}
	}

	// Open database (creates file if doesn't exist)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, &catalog.StorageError{Op: "open", Path: path, Err: err}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &catalog.StorageError{Op: "open", Path: path, Err: err}
	}

	// SQLite has a single writer; one connection also keeps the
	// per-connection settings from the DSN in force for every statement.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applySchema(db); err != nil {
		db.Close()
		return nil, &catalog.StorageError{Op: "initialize", Path: path, Err: err}
	}

	return &Store{db: db, path: path}, nil
}

// fileDSN builds a file: URI for path. The path is made absolute and
// percent-escaped so that '?', '#' and '%' stay part of the file name
// instead of starting the driver's parameter list.
func fileDSN(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve path: %w", err)
	}
	u := url.URL{Path: filepath.ToSlash(abs)}
	return "file:" + u.EscapedPath() + "?" + dsnParams, nil
}

// Close releases the file handle.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the catalog file path.
func (s *Store) Path() string {
	return s.path
}

// applySchema creates tables and sequences if they don't exist.
func applySchema(db *sql.DB) error {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("get user_version: %w", err)
	}
	if version > currentSchemaVersion {
		return fmt.Errorf("schema version %d is newer than supported version %d", version, currentSchemaVersion)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}

	if version < currentSchemaVersion {
		if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentSchemaVersion)); err != nil {
			return fmt.Errorf("set user_version: %w", err)
		}
	}

	return nil
}

// storageErr wraps a driver error for this store's file.
func (s *Store) storageErr(op string, err error) error {
	return &catalog.StorageError{Op: op, Path: s.path, Err: err}
}

// verifyPragma checks that a pragma is set to the expected value.
// Used for testing.
func (s *Store) verifyPragma(name, expected string) error {
	var value string
	query := fmt.Sprintf("PRAGMA %s", name)
	if err := s.db.QueryRow(query).Scan(&value); err != nil {
		return fmt.Errorf("failed to query %s: %w", name, err)
	}
	if value != expected {
		return fmt.Errorf("%s = %q, expected %q", name, value, expected)
	}
	return nil
}

package db

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// expectedTables are the tables that make up the store schema. The store
// counts as set up only when all of them are present.
var expectedTables = []string{"bookmark", "tag", "bookmark_tag"}

// DB is a handle to one bookmark store. The process holds exactly one
// connection; SQLite only supports a single writer anyway.
type DB struct {
	db             *sql.DB
	eventListeners map[EventKind][]EventListener
}

// IsSetupDone reports whether the store at path exists and contains the
// full schema. A missing file or a missing table both mean false.
func IsSetupDone(path string) (bool, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return false, nil
	} else if err != nil {
		return false, fmt.Errorf("failed to check store path: %w", err)
	}

	conn, err := openConn(path)
	if err != nil {
		return false, err
	}
	defer conn.Close()

	var count int
	err = conn.QueryRow(`
		SELECT COUNT(*) FROM sqlite_master
		WHERE type = 'table' AND name IN (?, ?, ?)
	`, expectedTables[0], expectedTables[1], expectedTables[2]).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to inspect schema catalog: %w", err)
	}
	return count == len(expectedTables), nil
}

// Setup creates the store at path: the containing directory, an empty
// database file if none exists, and the three tables. It returns
// ErrAlreadySetup when the schema is already present; callers are
// expected to check IsSetupDone first.
func Setup(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	done, err := IsSetupDone(path)
	if err != nil {
		return nil, err
	}
	if done {
		return nil, ErrAlreadySetup
	}

	// Create the file up front so a failed schema creation still leaves
	// a visible store location rather than nothing.
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o640)
	if err != nil {
		return nil, fmt.Errorf("failed to create store file: %w", err)
	}
	f.Close()

	conn, err := openConn(path)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return newDB(conn), nil
}

// Open opens an existing store for reading and writing. It returns
// ErrNotSetup when the file or any expected table is missing.
func Open(path string) (*DB, error) {
	done, err := IsSetupDone(path)
	if err != nil {
		return nil, err
	}
	if !done {
		return nil, ErrNotSetup
	}

	conn, err := openConn(path)
	if err != nil {
		return nil, err
	}
	return newDB(conn), nil
}

func newDB(conn *sql.DB) *DB {
	return &DB{
		db:             conn,
		eventListeners: make(map[EventKind][]EventListener),
	}
}

// openConn opens the single SQLite connection with foreign key
// enforcement on, so bookmark_tag rows can never orphan.
func openConn(path string) (*sql.DB, error) {
	conn, err := sql.Open("sqlite3", path+"?_fk=1")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	return conn, nil
}

func (db *DB) Close() error {
	return db.db.Close()
}

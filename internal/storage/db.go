// Package storage provides the database layer for daygrid. It keeps user
// preferences and the history of written exports; journals themselves live
// only in memory for the length of a session.
package storage

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	badger "github.com/dgraph-io/badger/v4"

	"github.com/manav03panchal/daygrid/internal/errors"
)

const (
	// AppName is the application name used for data directories.
	AppName = "daygrid"
)

// DB wraps a Badger database connection.
type DB struct {
	db   *badger.DB
	path string
}

// Options configures the database connection.
type Options struct {
	// Path is the database directory path. Empty string uses in-memory mode.
	Path string
	// InMemory forces in-memory mode regardless of Path.
	InMemory bool
}

// DefaultPath returns the default database path following XDG spec.
func DefaultPath() string {
	return filepath.Join(xdg.DataHome, AppName, "db")
}

// Open opens or creates a database at the given path.
func Open(opts Options) (*DB, error) {
	var badgerOpts badger.Options
	path := ""

	if opts.InMemory || opts.Path == "" {
		badgerOpts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := EnsureDirectory(opts.Path); err != nil {
			return nil, err
		}
		badgerOpts = badger.DefaultOptions(opts.Path)
		path = opts.Path
	}

	// Reduce logging noise
	badgerOpts = badgerOpts.WithLoggingLevel(badger.ERROR)

	db, err := badger.Open(badgerOpts)
	if err != nil {
		if strings.Contains(err.Error(), "Cannot acquire directory lock") {
			return nil, errors.NewRecoverableError("database is in use", errors.ErrLockHeld)
		}
		if os.IsPermission(err) {
			return nil, errors.NewSystemErrorWithOp("open database", err.Error(), errors.ErrPermissionDenied)
		}
		return nil, errors.WithStack(err, "open database")
	}

	return &DB{db: db, path: path}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// Path returns the database directory, or "" for an in-memory database.
func (d *DB) Path() string {
	return d.path
}

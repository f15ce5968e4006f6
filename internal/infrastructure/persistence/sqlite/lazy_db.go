package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/splitview/internal/application/port"
	"github.com/bnema/splitview/internal/logging"
)

// ErrDatabaseClosed is returned by DB after Close.
var ErrDatabaseClosed = errors.New("layout database closed")

// LazyDB opens the layout database on first use, so commands that never read
// or write layouts skip loading the SQLite module and migrating.
type LazyDB struct {
	path string

	mu      sync.Mutex
	opened  bool
	db      *sql.DB
	version int64
	err     error
}

var _ port.DatabaseProvider = (*LazyDB)(nil)

// NewLazyDB returns a provider for the database at path. Nothing is opened yet.
func NewLazyDB(path string) *LazyDB {
	return &LazyDB{path: path}
}

// DB opens the database and applies pending migrations on the first call.
// An open failure is kept and returned by every later call.
func (l *LazyDB) DB(ctx context.Context) (*sql.DB, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.opened {
		l.opened = true
		l.db, l.version, l.err = l.open(ctx)
	}
	if l.err != nil {
		return nil, fmt.Errorf("layout database %s: %w", l.path, l.err)
	}
	return l.db, nil
}

func (l *LazyDB) open(ctx context.Context) (*sql.DB, int64, error) {
	log := logging.FromContext(ctx)

	db, err := NewConnection(ctx, l.path)
	if err != nil {
		log.Error().Err(err).Str("path", l.path).Msg("cannot open layout database")
		return nil, 0, err
	}
	version, err := GetMigrationStatus(ctx, db)
	if err != nil {
		_ = db.Close()
		return nil, 0, fmt.Errorf("read schema version: %w", err)
	}

	log.Debug().Str("path", l.path).Int64("schema_version", version).Msg("layout database ready")
	return db, version, nil
}

// SchemaVersion returns the migration version, opening the database if needed.
func (l *LazyDB) SchemaVersion(ctx context.Context) (int64, error) {
	if _, err := l.DB(ctx); err != nil {
		return 0, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.version, nil
}

// Close closes the connection if it was opened. DB fails afterwards.
func (l *LazyDB) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	db := l.db
	l.opened, l.db, l.err = true, nil, ErrDatabaseClosed
	if db == nil {
		return nil
	}
	return db.Close()
}

// IsInitialized reports whether a connection is open.
func (l *LazyDB) IsInitialized() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.db != nil
}

// Path returns the database path.
func (l *LazyDB) Path() string {
	return l.path
}

package roster

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for identity records.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates the roster database and applies migrations.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, storeErr("open", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, storeErr("open", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, storeErr("open", execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) migrate() error {
	const schema = `CREATE TABLE IF NOT EXISTS identities (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		attrs_json TEXT NOT NULL DEFAULT '{}',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);`
	if _, err := s.db.Exec(schema); err != nil {
		return storeErr("open", err)
	}
	return nil
}

// Put inserts or replaces an identity record.
func (s *Store) Put(ctx context.Context, identity Identity) error {
	attrs := identity.Attrs
	if attrs == nil {
		attrs = map[string]string{}
	}
	attrsJSON, err := json.Marshal(attrs)
	if err != nil {
		return storeErr("put", err)
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO identities (id, name, attrs_json, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   name = excluded.name,
		   attrs_json = excluded.attrs_json,
		   updated_at = excluded.updated_at`,
		identity.ID, identity.Name, string(attrsJSON), now, now,
	)
	if err != nil {
		return storeErr("put", err)
	}
	return nil
}

// Get returns the identity for an identifier, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (*Identity, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT id, name, attrs_json FROM identities WHERE id = ?`,
		id,
	)
	identity, err := scanIdentity(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, storeErr("get", err)
	}
	return identity, nil
}

// List returns every identity ordered by identifier.
func (s *Store) List(ctx context.Context) ([]Identity, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, name, attrs_json FROM identities ORDER BY id`,
	)
	if err != nil {
		return nil, storeErr("list", err)
	}
	defer rows.Close()

	var identities []Identity
	for rows.Next() {
		identity, scanErr := scanIdentity(rows.Scan)
		if scanErr != nil {
			return nil, storeErr("list", scanErr)
		}
		identities = append(identities, *identity)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list", err)
	}
	return identities, nil
}

// Snapshot loads the full roster keyed by identifier, the shape the
// reconciler consumes.
func (s *Store) Snapshot(ctx context.Context) (map[string]Identity, error) {
	identities, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	snapshot := make(map[string]Identity, len(identities))
	for _, identity := range identities {
		snapshot[identity.ID] = identity
	}
	return snapshot, nil
}

func scanIdentity(scan func(dest ...any) error) (*Identity, error) {
	var identity Identity
	var attrsJSON string
	if err := scan(&identity.ID, &identity.Name, &attrsJSON); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(attrsJSON), &identity.Attrs); err != nil {
		return nil, err
	}
	if len(identity.Attrs) == 0 {
		identity.Attrs = nil
	}
	return &identity, nil
}

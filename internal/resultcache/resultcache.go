// Package resultcache is an explicitly host-side memoization cache for
// internal/rpcapi's Solve results, keyed by a sha256 hash of the
// request's recurrence in JSON form. spec.md §5 is explicit that "memoization, when added by the
// host, is the host's responsibility" — the core solvers
// (internal/theorem, internal/linrec) stay pure and cache-unaware; this
// package is consulted only by cmd/complexityd, before it calls into
// rpcapi.Server, and is never imported by anything under internal/
// that the core depends on.
//
// Grounded on the teacher's "sql" virtual package
// (internal/modules/virtual_packages_other.go declares a database/sql-
// shaped lib/sql surface for its scripting language) generalized from a
// declared-but-unimplemented FFI surface into a concrete, host-side
// database/sql consumer backed by modernc.org/sqlite, the pure-Go
// driver already in the teacher's go.mod.
package resultcache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Entry is one cached Solve outcome.
type Entry struct {
	Outcome          string
	Expression       string
	CriticalExponent float64
	Reasons          []string
	CachedAt         time.Time
}

// Cache wraps a sqlite-backed table of Entry values keyed by the hash
// strings Key produces.
type Cache struct {
	db *sql.DB
}

// Open opens (creating if necessary) a sqlite database at path and
// ensures its schema exists. path may be ":memory:" for an ephemeral,
// process-local cache.
func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("resultcache: open %s: %w", path, err)
	}
	if _, err := db.Exec(schemaDDL); err != nil {
		db.Close()
		return nil, fmt.Errorf("resultcache: schema: %w", err)
	}
	return &Cache{db: db}, nil
}

const schemaDDL = `
CREATE TABLE IF NOT EXISTS solve_results (
	key                TEXT PRIMARY KEY,
	outcome            TEXT NOT NULL,
	expression         TEXT NOT NULL,
	critical_exponent  REAL NOT NULL,
	reasons            TEXT NOT NULL,
	cached_at          DATETIME NOT NULL
)`

// Close releases the underlying database handle.
func (c *Cache) Close() error { return c.db.Close() }

// Get looks up key, returning (entry, true, nil) on a hit, (Entry{},
// false, nil) on a clean miss, and a non-nil error only for an actual
// storage failure.
func (c *Cache) Get(key string) (Entry, bool, error) {
	var e Entry
	var reasonsJSON string
	row := c.db.QueryRow(`SELECT outcome, expression, critical_exponent, reasons, cached_at FROM solve_results WHERE key = ?`, key)
	if err := row.Scan(&e.Outcome, &e.Expression, &e.CriticalExponent, &reasonsJSON, &e.CachedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Entry{}, false, nil
		}
		return Entry{}, false, fmt.Errorf("resultcache: get %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(reasonsJSON), &e.Reasons); err != nil {
		return Entry{}, false, fmt.Errorf("resultcache: decode reasons for %s: %w", key, err)
	}
	return e, true, nil
}

// Put stores entry under key, overwriting any previous value.
func (c *Cache) Put(key string, entry Entry) error {
	reasonsJSON, err := json.Marshal(entry.Reasons)
	if err != nil {
		return fmt.Errorf("resultcache: encode reasons: %w", err)
	}
	_, err = c.db.Exec(
		`INSERT INTO solve_results (key, outcome, expression, critical_exponent, reasons, cached_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET outcome=excluded.outcome, expression=excluded.expression,
			critical_exponent=excluded.critical_exponent, reasons=excluded.reasons, cached_at=excluded.cached_at`,
		key, entry.Outcome, entry.Expression, entry.CriticalExponent, string(reasonsJSON), entry.CachedAt,
	)
	if err != nil {
		return fmt.Errorf("resultcache: put %s: %w", key, err)
	}
	return nil
}

// Key derives a stable cache key from the canonical text form of a
// recurrence request (e.g. a RecurrenceSpec serialized by the caller in
// a fixed field order). It's a thin sha256 wrapper, not a domain
// concern — hashing an opaque byte string needs nothing beyond the
// standard library.
func Key(canonical string) string {
	sum := sha256.Sum256([]byte(canonical))
	return hex.EncodeToString(sum[:])
}

package catalog

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"golang.org/x/crypto/sha3"

	"github.com/nao1215/internhunt/internal/model"
)

// ErrNotFound is returned when a listing id is not in the cache.
var ErrNotFound = errors.New("internship not found in catalog cache")

// DB is the SQLite-backed catalog cache.
type DB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures DB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent
	// performance.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates the catalog cache inside the given data directory.
func Open(dataDir string, opts Options) (*DB, error) {
	dbPath := filepath.Join(dataDir, "catalog.db")

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("catalog cache not found at %s", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check catalog path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dataDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	// modernc.org/sqlite connection string: mode=rw prevents creating new
	// files, mode=rwc allows creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog cache: %w", err)
	}

	// SQLite only supports one writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	cdb := &DB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := cdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return cdb, nil
}

// Close closes the database connection.
func (cdb *DB) Close() error {
	return cdb.db.Close()
}

// createTables creates the schema if it doesn't exist.
func (cdb *DB) createTables() error {
	schema := `
	-- Snapshot of the internship catalog from the last successful fetch.
	-- record_hash is a SHA3-256 over the display fields, used to detect
	-- changed listings between snapshots.
	CREATE TABLE IF NOT EXISTS internships (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		organization TEXT,
		url TEXT,
		contact TEXT,
		deadline TEXT,
		category TEXT,
		location TEXT,
		description TEXT,
		record_hash TEXT NOT NULL,
		cached_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_internships_category ON internships(category);
	`

	_, err := cdb.db.ExecContext(context.Background(), schema)
	return err
}

// ChangeSummary reports how a Replace differed from the previous snapshot.
type ChangeSummary struct {
	// Total is the number of listings in the new snapshot.
	Total int
	// Added is the number of listing ids not present before.
	Added int
	// Changed is the number of listings whose content hash differs.
	Changed int
}

// recordHash computes the content hash for change detection.
func recordHash(i model.Internship) string {
	h := sha3.Sum256([]byte(strings.Join([]string{
		i.ID, i.Name, i.Organization, i.URL, i.Contact,
		i.Deadline, i.Category, i.Location, i.Description,
	}, "\x1f")))
	return hex.EncodeToString(h[:])
}

// Replace swaps the cached snapshot for the given listings.
// The whole operation runs in one transaction so readers never observe a
// half-replaced catalog. Listings are assumed to be normalized already.
func (cdb *DB) Replace(ctx context.Context, internships []model.Internship) (ChangeSummary, error) {
	summary := ChangeSummary{Total: len(internships)}

	// Load previous hashes for the change report.
	previous := make(map[string]string)
	rows, err := cdb.db.QueryContext(ctx, "SELECT id, record_hash FROM internships")
	if err != nil {
		return summary, fmt.Errorf("failed to read previous snapshot: %w", err)
	}
	for rows.Next() {
		var id, hash string
		if err := rows.Scan(&id, &hash); err != nil {
			_ = rows.Close()
			return summary, fmt.Errorf("failed to scan previous snapshot: %w", err)
		}
		previous[id] = hash
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return summary, fmt.Errorf("failed to read previous snapshot: %w", err)
	}
	_ = rows.Close()

	tx, err := cdb.db.BeginTx(ctx, nil)
	if err != nil {
		return summary, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after commit

	if _, err := tx.ExecContext(ctx, "DELETE FROM internships"); err != nil {
		return summary, fmt.Errorf("failed to clear snapshot: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO internships (id, name, organization, url, contact, deadline, category, location, description, record_hash)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return summary, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close() //nolint:errcheck // Statement closed with tx

	for _, i := range internships {
		hash := recordHash(i)
		if prevHash, seen := previous[i.ID]; !seen {
			summary.Added++
		} else if prevHash != hash {
			summary.Changed++
		}

		if _, err := stmt.ExecContext(ctx,
			i.ID, i.Name, i.Organization, i.URL, i.Contact,
			i.Deadline, i.Category, i.Location, i.Description, hash,
		); err != nil {
			return summary, fmt.Errorf("failed to insert listing %s: %w", i.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return summary, fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return summary, nil
}

// scanInternship reads one listing row.
func scanInternship(rows *sql.Rows) (model.Internship, error) {
	var i model.Internship
	err := rows.Scan(&i.ID, &i.Name, &i.Organization, &i.URL, &i.Contact,
		&i.Deadline, &i.Category, &i.Location, &i.Description)
	return i, err
}

// List returns cached listings, optionally filtered by a free-text query
// (matched against name, organization, and description) and a category.
// Results come back in snapshot insertion order, matching the backend's
// ordering.
func (cdb *DB) List(ctx context.Context, query, category string) ([]model.Internship, error) {
	where := make([]string, 0, 2)
	args := make([]any, 0, 4)
	if query != "" {
		like := "%" + query + "%"
		where = append(where, "(name LIKE ? OR organization LIKE ? OR description LIKE ?)")
		args = append(args, like, like, like)
	}
	if category != "" {
		where = append(where, "category = ?")
		args = append(args, category)
	}

	q := "SELECT id, name, organization, url, contact, deadline, category, location, description FROM internships"
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY rowid"

	rows, err := cdb.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog cache: %w", err)
	}
	defer rows.Close() //nolint:errcheck // Read-only rows

	var internships []model.Internship
	for rows.Next() {
		i, err := scanInternship(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan listing: %w", err)
		}
		internships = append(internships, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read catalog cache: %w", err)
	}
	return internships, nil
}

// Get returns a single cached listing by id.
func (cdb *DB) Get(ctx context.Context, id string) (model.Internship, error) {
	rows, err := cdb.db.QueryContext(ctx,
		"SELECT id, name, organization, url, contact, deadline, category, location, description FROM internships WHERE id = ?", id)
	if err != nil {
		return model.Internship{}, fmt.Errorf("failed to query catalog cache: %w", err)
	}
	defer rows.Close() //nolint:errcheck // Read-only rows

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return model.Internship{}, fmt.Errorf("failed to read catalog cache: %w", err)
		}
		return model.Internship{}, ErrNotFound
	}
	return scanInternship(rows)
}

// Categories returns the distinct non-empty categories in snapshot order.
func (cdb *DB) Categories(ctx context.Context) ([]string, error) {
	rows, err := cdb.db.QueryContext(ctx,
		"SELECT category FROM internships WHERE category <> '' GROUP BY category ORDER BY MIN(rowid)")
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close() //nolint:errcheck // Read-only rows

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read categories: %w", err)
	}
	return categories, nil
}

// Count returns the number of cached listings.
func (cdb *DB) Count(ctx context.Context) (int, error) {
	var n int
	if err := cdb.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM internships").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count listings: %w", err)
	}
	return n, nil
}

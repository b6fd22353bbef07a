// Package history keeps a sqlite record of configuration builds so a dump
// can be traced back to the arguments and parameter file that produced it.
package history

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// ErrNotFound is returned by Get when no build matches the ID.
var ErrNotFound = errors.New("build not found")

// Build statuses.
const (
	StatusOK    = "ok"
	StatusFatal = "fatal"
)

// Build is one recorded configuration build.
type Build struct {
	ID           string
	CreatedAt    time.Time
	Args         string // command line parameters, space separated
	ConfigFile   string
	Status       string
	Warnings     int
	ErrorMessage string
	Dump         string // serialized configuration, empty for fatal builds
	Objective    string
	Boosting     string
}

// ShortID returns the first eight characters of the build ID.
func (b *Build) ShortID() string {
	if len(b.ID) > 8 {
		return b.ID[:8]
	}
	return b.ID
}

// Store manages the build history database
type Store struct {
	db     *sql.DB
	dbPath string
}

// NewStore opens (creating if needed) the history database at dbPath.
// ":memory:" gives a private in-memory database.
func NewStore(dbPath string) (*Store, error) {
	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA busy_timeout=5000", // Must be first
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
	}
	for _, pragma := range pragmas {
		if err := execWithRetry(db, pragma, 5, 10*time.Millisecond); err != nil {
			db.Close()
			return nil, fmt.Errorf("set %s: %w", pragma, err)
		}
	}

	if err := execWithRetry(db, schemaSQL, 5, 10*time.Millisecond); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Store{db: db, dbPath: dbPath}, nil
}

// execWithRetry retries statements that fail with "database is locked",
// doubling the delay each time.
func execWithRetry(db *sql.DB, stmt string, maxRetries int, baseDelay time.Duration) error {
	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		_, err := db.Exec(stmt)
		if err == nil {
			return nil
		}
		if !strings.Contains(err.Error(), "database is locked") {
			return err
		}
		lastErr = err
		time.Sleep(baseDelay * time.Duration(1<<attempt))
	}
	return lastErr
}

// Path returns the database path the store was opened with.
func (s *Store) Path() string {
	return s.dbPath
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Record inserts b, filling in ID and CreatedAt when they are unset.
func (s *Store) Record(ctx context.Context, b *Build) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	if b.Status == "" {
		b.Status = StatusOK
	}

	query := `INSERT INTO builds
		(id, created_at, args, config_file, status, warnings, error_message, dump, objective, boosting)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query,
		b.ID, b.CreatedAt.UnixNano(), b.Args, b.ConfigFile, b.Status,
		b.Warnings, b.ErrorMessage, b.Dump, b.Objective, b.Boosting)
	if err != nil {
		return fmt.Errorf("insert build: %w", err)
	}
	return nil
}

const selectColumns = `SELECT id, created_at, args, config_file, status, warnings, error_message, dump, objective, boosting FROM builds`

// List returns up to limit builds, newest first. A limit <= 0 returns all.
func (s *Store) List(ctx context.Context, limit int) ([]*Build, error) {
	query := selectColumns + ` ORDER BY seq DESC`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query builds: %w", err)
	}
	defer rows.Close()

	var builds []*Build
	for rows.Next() {
		b, err := scanBuild(rows)
		if err != nil {
			return nil, err
		}
		builds = append(builds, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate builds: %w", err)
	}
	return builds, nil
}

// Get returns the build whose ID is id or starts with id. A prefix matching
// more than one build is an error.
func (s *Store) Get(ctx context.Context, id string) (*Build, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("build id is empty")
	}

	rows, err := s.db.QueryContext(ctx, selectColumns+` WHERE id LIKE ? ESCAPE '\' ORDER BY seq DESC LIMIT 2`, escapeLike(id)+"%")
	if err != nil {
		return nil, fmt.Errorf("query build: %w", err)
	}
	defer rows.Close()

	var found []*Build
	for rows.Next() {
		b, err := scanBuild(rows)
		if err != nil {
			return nil, err
		}
		found = append(found, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate builds: %w", err)
	}

	switch len(found) {
	case 0:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	case 1:
		return found[0], nil
	default:
		return nil, fmt.Errorf("build id %s is ambiguous", id)
	}
}

// Count returns the number of recorded builds.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM builds`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count builds: %w", err)
	}
	return n, nil
}

// Prune deletes all but the newest keep builds and returns how many went.
// keep <= 0 disables pruning.
func (s *Store) Prune(ctx context.Context, keep int) (int64, error) {
	if keep <= 0 {
		return 0, nil
	}
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM builds WHERE seq NOT IN (SELECT seq FROM builds ORDER BY seq DESC LIMIT ?)`, keep)
	if err != nil {
		return 0, fmt.Errorf("prune builds: %w", err)
	}
	return res.RowsAffected()
}

// Clear deletes every build and returns how many there were.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM builds`)
	if err != nil {
		return 0, fmt.Errorf("clear builds: %w", err)
	}
	return res.RowsAffected()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanBuild(row scanner) (*Build, error) {
	var b Build
	var created int64
	err := row.Scan(&b.ID, &created, &b.Args, &b.ConfigFile, &b.Status,
		&b.Warnings, &b.ErrorMessage, &b.Dump, &b.Objective, &b.Boosting)
	if err != nil {
		return nil, fmt.Errorf("scan build: %w", err)
	}
	b.CreatedAt = time.Unix(0, created)
	return &b, nil
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

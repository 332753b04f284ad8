package storage

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"svw.info/sudoku-solver/internal/domain"
)

//go:embed schema.sql
var schemaSQL string

// ErrNotFound is returned by Load when no puzzle has the given id.
var ErrNotFound = errors.New("puzzle not found")

// SQLite persists puzzles in a single-file SQLite database.
type SQLite struct {
	db *sql.DB
}

// Open creates or opens the database at path and applies pragmas and the
// schema. Safe to call repeatedly on the same file.
func Open(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite supports one writer at a time; keep the pool at one connection
	// to avoid SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Save upserts a puzzle, assigning an id and creation time when missing.
func (s *SQLite) Save(ctx context.Context, p *domain.Puzzle) error {
	if p == nil {
		return errors.New("invalid puzzle: nil")
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().UnixNano()
	}
	board, err := json.Marshal(p.Board)
	if err != nil {
		return fmt.Errorf("failed to encode board: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO puzzles (id, name, notes, board, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			notes = excluded.notes,
			board = excluded.board`,
		p.ID, p.Name, p.Notes, string(board), p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save puzzle %s: %w", p.ID, err)
	}
	return nil
}

// Load retrieves a puzzle by id.
func (s *SQLite) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, notes, board, created_at FROM puzzles WHERE id = ?`, id)

	var p domain.Puzzle
	var board string
	if err := row.Scan(&p.ID, &p.Name, &p.Notes, &board, &p.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load puzzle %s: %w", id, err)
	}
	if err := json.Unmarshal([]byte(board), &p.Board); err != nil {
		return nil, fmt.Errorf("failed to decode board for %s: %w", id, err)
	}
	return &p, nil
}

// List returns metadata for all stored puzzles, newest first.
func (s *SQLite) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, created_at FROM puzzles ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list puzzles: %w", err)
	}
	defer rows.Close()

	var out []domain.PuzzleMeta
	for rows.Next() {
		var m domain.PuzzleMeta
		if err := rows.Scan(&m.ID, &m.Name, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"aperture/internal/modules/notes/domain"
	notesout "aperture/internal/modules/notes/port/out"

	_ "modernc.org/sqlite"
)

type SQLiteNoteProjector struct {
	db *sql.DB
}

func NewSQLiteNoteProjector(dbPath string) (notesout.NoteIndexProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	projector := &SQLiteNoteProjector{db: db}
	if err := projector.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return projector, nil
}

func (s *SQLiteNoteProjector) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS notes (
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  title_lc TEXT NOT NULL DEFAULT '',
  path TEXT NOT NULL,
  word_count INTEGER NOT NULL DEFAULT 0,
  has_summary INTEGER NOT NULL DEFAULT 0,
  updated_at TEXT NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create notes table: %w", err)
	}
	return s.ensureLowerTitle(ctx)
}

// ensureLowerTitle adds title_lc to indexes created before it existed.
// Rows backfilled here only fold ASCII until the next reindex.
func (s *SQLiteNoteProjector) ensureLowerTitle(ctx context.Context) error {
	rows, err := s.db.QueryContext(ctx, `PRAGMA table_info(notes)`)
	if err != nil {
		return fmt.Errorf("inspect notes table: %w", err)
	}
	found := false
	for rows.Next() {
		var (
			cid       int
			name      string
			colType   string
			notNull   int
			dfltValue sql.NullString
			pk        int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dfltValue, &pk); err != nil {
			rows.Close()
			return fmt.Errorf("scan notes column: %w", err)
		}
		if name == "title_lc" {
			found = true
		}
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return fmt.Errorf("iterate notes columns: %w", err)
	}
	rows.Close()
	if found {
		return nil
	}
	if _, err := s.db.ExecContext(ctx, `ALTER TABLE notes ADD COLUMN title_lc TEXT NOT NULL DEFAULT ''`); err != nil {
		return fmt.Errorf("add title_lc column: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, `UPDATE notes SET title_lc = lower(title)`); err != nil {
		return fmt.Errorf("backfill title_lc: %w", err)
	}
	return nil
}

func (s *SQLiteNoteProjector) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM notes`); err != nil {
		return fmt.Errorf("reset notes: %w", err)
	}
	return nil
}

func (s *SQLiteNoteProjector) UpsertNote(ctx context.Context, note domain.Note) error {
	const stmt = `
INSERT INTO notes (id, title, title_lc, path, word_count, has_summary, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  title=excluded.title,
  title_lc=excluded.title_lc,
  path=excluded.path,
  word_count=excluded.word_count,
  has_summary=excluded.has_summary,
  updated_at=excluded.updated_at;
`
	entry := note.Entry()
	_, err := s.db.ExecContext(ctx, stmt, entry.ID, entry.Title, strings.ToLower(entry.Title), entry.Path, entry.WordCount, entry.HasSummary, entry.UpdatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("upsert note: %w", err)
	}
	return nil
}

func (s *SQLiteNoteProjector) DeleteNote(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete note row: %w", err)
	}
	return nil
}

func (s *SQLiteNoteProjector) ListNotes(ctx context.Context) ([]domain.IndexEntry, error) {
	return s.query(ctx, `SELECT id, title, path, word_count, has_summary, updated_at FROM notes ORDER BY updated_at DESC, title`)
}

// SearchNotes matches titles case-insensitively. Folding happens in Go on
// both sides since SQLite's lower() only handles ASCII.
func (s *SQLiteNoteProjector) SearchNotes(ctx context.Context, query string) ([]domain.IndexEntry, error) {
	pattern := "%" + escapeLike(strings.ToLower(query)) + "%"
	return s.query(ctx, `SELECT id, title, path, word_count, has_summary, updated_at FROM notes WHERE title_lc LIKE ? ESCAPE '\' ORDER BY updated_at DESC, title`, pattern)
}

func (s *SQLiteNoteProjector) query(ctx context.Context, query string, args ...any) ([]domain.IndexEntry, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query notes: %w", err)
	}
	defer rows.Close()

	var out []domain.IndexEntry
	for rows.Next() {
		var (
			entry     domain.IndexEntry
			updatedAt string
		)
		if err := rows.Scan(&entry.ID, &entry.Title, &entry.Path, &entry.WordCount, &entry.HasSummary, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		entry.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
		out = append(out, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notes: %w", err)
	}
	return out, nil
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

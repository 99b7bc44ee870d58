package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"aperture/internal/modules/exam/domain"
	examout "aperture/internal/modules/exam/port/out"

	_ "modernc.org/sqlite"
)

type SQLiteAttemptProjector struct {
	db *sql.DB
}

func NewSQLiteAttemptProjector(dbPath string) (examout.AttemptProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	projector := &SQLiteAttemptProjector{db: db}
	if err := projector.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return projector, nil
}

func (s *SQLiteAttemptProjector) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS exam_attempts (
  id TEXT PRIMARY KEY,
  subject TEXT NOT NULL,
  bank_title TEXT NOT NULL,
  correct INTEGER NOT NULL,
  incorrect INTEGER NOT NULL,
  score INTEGER NOT NULL,
  max_score INTEGER NOT NULL,
  feedback TEXT,
  started_at TEXT NOT NULL,
  finished_at TEXT NOT NULL,
  note_path TEXT
);
CREATE INDEX IF NOT EXISTS idx_exam_attempts_subject ON exam_attempts(subject, finished_at);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create exam_attempts table: %w", err)
	}
	return nil
}

func (s *SQLiteAttemptProjector) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM exam_attempts`); err != nil {
		return fmt.Errorf("reset exam attempts: %w", err)
	}
	return nil
}

func (s *SQLiteAttemptProjector) UpsertAttempt(ctx context.Context, attempt domain.Attempt) error {
	const stmt = `
INSERT INTO exam_attempts (id, subject, bank_title, correct, incorrect, score, max_score, feedback, started_at, finished_at, note_path)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  subject=excluded.subject,
  bank_title=excluded.bank_title,
  correct=excluded.correct,
  incorrect=excluded.incorrect,
  score=excluded.score,
  max_score=excluded.max_score,
  feedback=excluded.feedback,
  started_at=excluded.started_at,
  finished_at=excluded.finished_at,
  note_path=excluded.note_path;
`
	_, err := s.db.ExecContext(ctx, stmt,
		attempt.ID,
		string(attempt.Subject),
		attempt.BankTitle,
		attempt.Correct,
		attempt.Incorrect,
		attempt.Score,
		attempt.MaxScore,
		strings.Join(attempt.Feedback, "\n"),
		attempt.StartedAt.Format(time.RFC3339),
		attempt.FinishedAt.Format(time.RFC3339),
		attempt.NotePath,
	)
	if err != nil {
		return fmt.Errorf("upsert exam attempt: %w", err)
	}
	return nil
}

// ListAttempts returns the newest attempts first. An empty subject matches all.
func (s *SQLiteAttemptProjector) ListAttempts(ctx context.Context, subject domain.Subject, limit int) ([]domain.Attempt, error) {
	query := `SELECT id, subject, bank_title, correct, incorrect, score, max_score, feedback, started_at, finished_at, note_path FROM exam_attempts`
	args := []any{}
	if subject != "" {
		query += ` WHERE subject = ?`
		args = append(args, string(subject))
	}
	query += ` ORDER BY finished_at DESC, id`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query exam attempts: %w", err)
	}
	defer rows.Close()

	var out []domain.Attempt
	for rows.Next() {
		var (
			a                     domain.Attempt
			subj, feedback        string
			startedAt, finishedAt string
			notePath              sql.NullString
		)
		if err := rows.Scan(&a.ID, &subj, &a.BankTitle, &a.Correct, &a.Incorrect, &a.Score, &a.MaxScore, &feedback, &startedAt, &finishedAt, &notePath); err != nil {
			return nil, fmt.Errorf("scan exam attempt: %w", err)
		}
		a.Subject = domain.Subject(subj)
		if feedback != "" {
			a.Feedback = strings.Split(feedback, "\n")
		}
		a.StartedAt, _ = time.Parse(time.RFC3339, startedAt)
		a.FinishedAt, _ = time.Parse(time.RFC3339, finishedAt)
		a.NotePath = notePath.String
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exam attempts: %w", err)
	}
	return out, nil
}

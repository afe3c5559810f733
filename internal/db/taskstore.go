package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Task is one recorded automation task outcome.
type Task struct {
	ID        string
	Kind      string
	URL       string
	Success   bool
	Error     string
	Duration  time.Duration
	CreatedAt time.Time
}

// Store wraps the single shared SQLite connection.
type Store struct {
	db *sql.DB
}

// NewStore creates a Store from an open database connection
func NewStore(sqlDB *sql.DB) *Store {
	return &Store{db: sqlDB}
}

// DB returns the underlying database connection for sharing with other components
func (s *Store) DB() *sql.DB {
	return s.db
}

// RecordTask inserts one task outcome. A failed insert never fails the
// task itself; callers log and move on.
func (s *Store) RecordTask(ctx context.Context, t Task) error {
	id := t.ID
	if id == "" {
		id = uuid.New().String()
	}
	var success int
	if t.Success {
		success = 1
	}
	var errMsg sql.NullString
	if t.Error != "" {
		errMsg = sql.NullString{String: t.Error, Valid: true}
	}
	createdAt := t.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO tasks (id, kind, url, success, error, duration_ms, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, t.Kind, t.URL, success, errMsg, t.Duration.Milliseconds(), createdAt.Unix(),
	)
	return err
}

// RecentTasks returns the most recent task records, newest first.
func (s *Store) RecentTasks(ctx context.Context, limit int) ([]Task, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, kind, url, success, error, duration_ms, created_at FROM tasks ORDER BY created_at DESC, id LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]Task, 0, limit)
	for rows.Next() {
		var (
			t          Task
			success    int
			errMsg     sql.NullString
			durationMs int64
			createdAt  int64
		)
		if err := rows.Scan(&t.ID, &t.Kind, &t.URL, &success, &errMsg, &durationMs, &createdAt); err != nil {
			return nil, err
		}
		t.Success = success == 1
		t.Error = errMsg.String
		t.Duration = time.Duration(durationMs) * time.Millisecond
		t.CreatedAt = time.Unix(createdAt, 0)
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

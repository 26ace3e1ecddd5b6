package todo

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// schema is the single todos table. The column order is relied on by files
// written with earlier versions and must not change.
const schema = `
CREATE TABLE IF NOT EXISTS todos (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	name       TEXT NOT NULL,
	text       TEXT,
	status     TEXT NOT NULL,
	created_at TEXT NOT NULL,
	due_date   TEXT,
	priority   TEXT NOT NULL
)`

const selectTodos = `SELECT id, name, text, status, created_at, due_date, priority FROM todos`

// SQLStore persists tasks in a SQLite database file.
type SQLStore struct {
	db  *sql.DB
	loc *time.Location
	now func() time.Time
}

var _ Store = (*SQLStore)(nil)

// OpenSQLStore opens (or creates) the database at path. The returned store
// holds the handle until Close.
func OpenSQLStore(path string, loc *time.Location, opts ...Option) (*SQLStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, &StorageError{Op: "create db directory", Err: err}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &StorageError{Op: "open sqlite", Err: err}
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	o := buildOptions(opts)
	s := &SQLStore{db: db, loc: locationOrUTC(loc), now: o.now}
	if err := s.ensureTable(); err != nil {
		_ = db.Close()
		return nil, err
	}

	slog.Debug("todo store opened", "path", path, "timezone", s.loc.String())
	return s, nil
}

func (s *SQLStore) ensureTable() error {
	if _, err := s.db.Exec(`PRAGMA busy_timeout = 5000`); err != nil {
		return &StorageError{Op: "configure sqlite", Err: err}
	}
	if _, err := s.db.Exec(schema); err != nil {
		return &StorageError{Op: "create todos table", Err: err}
	}
	return nil
}

// Add inserts a new row with status InProgress and returns the engine id.
func (s *SQLStore) Add(c CreateIntent) (uint32, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, &StorageError{Op: "begin insert", Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(
		`INSERT INTO todos (name, text, status, created_at, due_date, priority) VALUES (?, ?, ?, ?, ?, ?)`,
		c.Name,
		encodeOptionalString(c.Text),
		StatusInProgress.String(),
		encodeTime(s.now(), s.loc),
		encodeOptionalTime(c.DueDate, s.loc),
		c.Priority.String(),
	)
	if err != nil {
		return 0, &StorageError{Op: "insert todo", Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, &StorageError{Op: "insert todo", Err: err}
	}
	// The row is only kept if its id fits the uint32 id space.
	if id <= 0 || id > math.MaxUint32 {
		return 0, &StorageError{Op: "insert todo", Err: fmt.Errorf("assigned id %d does not fit in 32 bits", id)}
	}
	if err := tx.Commit(); err != nil {
		return 0, &StorageError{Op: "commit insert", Err: err}
	}

	slog.Debug("todo added", "id", id, "store", "sqlite")
	return uint32(id), nil
}

// Update reads the current row, merges u into it and rewrites the row, all
// inside one transaction.
func (s *SQLStore) Update(id uint32, u UpdateIntent) error {
	if err := u.Validate(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return &StorageError{Op: "begin update", Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	t, err := s.get(tx, id)
	if err != nil {
		return err
	}
	if u.IsEmpty() {
		return nil
	}
	u.Apply(t, s.loc)

	_, err = tx.Exec(
		`UPDATE todos SET name = ?, text = ?, status = ?, due_date = ?, priority = ? WHERE id = ?`,
		t.Name,
		encodeOptionalString(t.Text),
		t.Status.String(),
		encodeOptionalTime(t.DueDate, s.loc),
		t.Priority.String(),
		id,
	)
	if err != nil {
		return &StorageError{Op: fmt.Sprintf("update todo %d", id), Err: err}
	}
	if err := tx.Commit(); err != nil {
		return &StorageError{Op: "commit update", Err: err}
	}

	slog.Debug("todo updated", "id", id, "store", "sqlite")
	return nil
}

// Delete removes the row and returns what it held. A missing id reports
// ErrNotFound rather than silently deleting nothing.
func (s *SQLStore) Delete(id uint32) (*Task, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, &StorageError{Op: "begin delete", Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	t, err := s.get(tx, id)
	if err != nil {
		return nil, err
	}
	if _, err := tx.Exec(`DELETE FROM todos WHERE id = ?`, id); err != nil {
		return nil, &StorageError{Op: fmt.Sprintf("delete todo %d", id), Err: err}
	}
	if err := tx.Commit(); err != nil {
		return nil, &StorageError{Op: "commit delete", Err: err}
	}

	slog.Debug("todo deleted", "id", id, "store", "sqlite")
	return t, nil
}

// Get reads a single task by id.
func (s *SQLStore) Get(id uint32) (*Task, error) {
	return s.get(s.db, id)
}

type queryRower interface {
	QueryRow(query string, args ...any) *sql.Row
}

func (s *SQLStore) get(q queryRower, id uint32) (*Task, error) {
	var r row
	err := q.QueryRow(selectTodos+` WHERE id = ?`, id).Scan(r.fields()...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, &StorageError{Op: fmt.Sprintf("get todo %d", id), Err: err}
	}
	return r.decode(s.loc)
}

// List returns every task in row order. One undecodable row fails the call.
func (s *SQLStore) List() ([]*Task, error) {
	rows, err := s.db.Query(selectTodos + ` ORDER BY id`)
	if err != nil {
		return nil, &StorageError{Op: "list todos", Err: err}
	}
	defer rows.Close()

	var tasks []*Task
	for rows.Next() {
		var r row
		if err := rows.Scan(r.fields()...); err != nil {
			return nil, &StorageError{Op: "scan todo", Err: err}
		}
		t, err := r.decode(s.loc)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "list todos", Err: err}
	}
	return tasks, nil
}

// Close releases the database handle.
func (s *SQLStore) Close() error {
	if err := s.db.Close(); err != nil {
		return &StorageError{Op: "close sqlite", Err: err}
	}
	return nil
}

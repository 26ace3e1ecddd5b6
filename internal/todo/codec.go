package todo

import (
	"database/sql"
	"fmt"
	"math"
	"time"
)

// timeLayout always writes a numeric UTC offset ("+00:00", never "Z") so
// files stay readable by the older rfc3339 writer. Fractional seconds are
// kept when present.
const timeLayout = "2006-01-02T15:04:05.999999999-07:00"

func encodeTime(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(timeLayout)
}

func encodeOptionalTime(t *time.Time, loc *time.Location) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: encodeTime(*t, loc), Valid: true}
}

func encodeOptionalString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// row mirrors one record of the todos table, columns in table order.
type row struct {
	id        int64
	name      string
	text      sql.NullString
	status    string
	createdAt string
	dueDate   sql.NullString
	priority  string
}

func (r *row) fields() []any {
	return []any{&r.id, &r.name, &r.text, &r.status, &r.createdAt, &r.dueDate, &r.priority}
}

// decode turns a row into a Task. Only canonical enum spellings are
// accepted; anything else means the file was not written by this store.
func (r *row) decode(loc *time.Location) (*Task, error) {
	if r.id <= 0 || r.id > math.MaxUint32 {
		return nil, &DecodeError{ID: r.id, Column: "id", Value: fmt.Sprint(r.id), Err: fmt.Errorf("out of range")}
	}

	status := Status(r.status)
	if !status.Valid() {
		return nil, &DecodeError{ID: r.id, Column: "status", Value: r.status, Err: fmt.Errorf("unknown status")}
	}
	priority := Priority(r.priority)
	if !priority.Valid() {
		return nil, &DecodeError{ID: r.id, Column: "priority", Value: r.priority, Err: fmt.Errorf("unknown priority")}
	}

	createdAt, err := decodeTime(r.createdAt, loc)
	if err != nil {
		return nil, &DecodeError{ID: r.id, Column: "created_at", Value: r.createdAt, Err: err}
	}

	t := &Task{
		ID:        uint32(r.id),
		Name:      r.name,
		Status:    status,
		Priority:  priority,
		CreatedAt: createdAt,
	}
	if r.text.Valid {
		text := r.text.String
		t.Text = &text
	}
	if r.dueDate.Valid {
		due, err := decodeTime(r.dueDate.String, loc)
		if err != nil {
			return nil, &DecodeError{ID: r.id, Column: "due_date", Value: r.dueDate.String, Err: err}
		}
		t.DueDate = &due
	}
	return t, nil
}

func decodeTime(s string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(loc), nil
}

// Package todo provides the task record model and its two stores: an
// ephemeral in-memory map and a SQLite-backed table.
package todo

import (
	"strings"
	"time"
)

// Status represents the lifecycle state of a task.
// The constant values are the canonical persisted spellings.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "InProgress"
	StatusCompleted  Status = "Completed"
)

// Statuses lists every accepted status in display order.
var Statuses = []Status{StatusPending, StatusInProgress, StatusCompleted}

// Priority represents how urgent a task is.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Priorities lists every accepted priority in ascending order.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

func (s Status) String() string { return string(s) }

// Valid reports whether s is one of the canonical statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

func (p Priority) String() string { return string(p) }

// Valid reports whether p is one of the canonical priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// ParseStatus parses a status case-insensitively. "in progress" is accepted
// as a human spelling of InProgress.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return StatusPending, nil
	case "inprogress", "in progress":
		return StatusInProgress, nil
	case "completed":
		return StatusCompleted, nil
	}
	return "", &ValueError{Kind: "status", Input: s, Accepted: statusNames()}
}

// ParsePriority parses a priority case-insensitively.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return PriorityLow, nil
	case "medium":
		return PriorityMedium, nil
	case "high":
		return PriorityHigh, nil
	}
	return "", &ValueError{Kind: "priority", Input: s, Accepted: priorityNames()}
}

func statusNames() []string {
	names := make([]string, len(Statuses))
	for i, s := range Statuses {
		names[i] = string(s)
	}
	return names
}

func priorityNames() []string {
	names := make([]string, len(Priorities))
	for i, p := range Priorities {
		names[i] = string(p)
	}
	return names
}

// Task is one tracked to-do item.
type Task struct {
	ID        uint32     `json:"id" yaml:"id"`
	Name      string     `json:"name" yaml:"name"`
	Text      *string    `json:"text,omitempty" yaml:"text,omitempty"`
	Status    Status     `json:"status" yaml:"status"`
	Priority  Priority   `json:"priority" yaml:"priority"`
	CreatedAt time.Time  `json:"created_at" yaml:"created_at"`
	DueDate   *time.Time `json:"due_date,omitempty" yaml:"due_date,omitempty"`
}

// Clone returns a deep copy so callers never alias store-owned state.
func (t *Task) Clone() *Task {
	c := *t
	if t.Text != nil {
		text := *t.Text
		c.Text = &text
	}
	if t.DueDate != nil {
		due := *t.DueDate
		c.DueDate = &due
	}
	return &c
}

// CreateIntent carries everything needed to create a task. ID, status and
// creation time are derived by the store.
type CreateIntent struct {
	Name     string
	Text     *string
	DueDate  *time.Time
	Priority Priority
}

// Validate checks the fields a store requires.
func (c CreateIntent) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return &ValueError{Kind: "name", Input: c.Name, Reason: "must not be empty"}
	}
	if !c.Priority.Valid() {
		return &ValueError{Kind: "priority", Input: string(c.Priority), Accepted: priorityNames()}
	}
	return nil
}

// UpdateIntent is a sparse patch: nil fields are left unchanged.
// ClearText and ClearDueDate reset the optional fields to absent.
type UpdateIntent struct {
	Name     *string
	Text     *string
	DueDate  *time.Time
	Status   *Status
	Priority *Priority

	ClearText    bool
	ClearDueDate bool
}

// IsEmpty reports whether applying u would change nothing.
func (u UpdateIntent) IsEmpty() bool {
	return u.Name == nil && u.Text == nil && u.DueDate == nil &&
		u.Status == nil && u.Priority == nil && !u.ClearText && !u.ClearDueDate
}

// Validate rejects values a store must never persist.
func (u UpdateIntent) Validate() error {
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return &ValueError{Kind: "name", Input: *u.Name, Reason: "must not be empty"}
	}
	if u.Status != nil && !u.Status.Valid() {
		return &ValueError{Kind: "status", Input: string(*u.Status), Accepted: statusNames()}
	}
	if u.Priority != nil && !u.Priority.Valid() {
		return &ValueError{Kind: "priority", Input: string(*u.Priority), Accepted: priorityNames()}
	}
	if u.Text != nil && u.ClearText {
		return &ValueError{Kind: "text", Input: *u.Text, Reason: "cannot both set and clear"}
	}
	if u.DueDate != nil && u.ClearDueDate {
		return &ValueError{Kind: "due date", Input: u.DueDate.Format(time.RFC3339), Reason: "cannot both set and clear"}
	}
	return nil
}

// Apply merges u into t. Timestamps are converted to loc. ID and CreatedAt
// are never touched.
func (u UpdateIntent) Apply(t *Task, loc *time.Location) {
	if u.Name != nil {
		t.Name = *u.Name
	}
	switch {
	case u.ClearText:
		t.Text = nil
	case u.Text != nil:
		text := *u.Text
		t.Text = &text
	}
	switch {
	case u.ClearDueDate:
		t.DueDate = nil
	case u.DueDate != nil:
		due := u.DueDate.In(loc)
		t.DueDate = &due
	}
	if u.Status != nil {
		t.Status = *u.Status
	}
	if u.Priority != nil {
		t.Priority = *u.Priority
	}
}

package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/dohr-michael/todo/internal/todo"
)

// run executes the CLI against a private TODO_PATH and returns stdout.
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("TODO_PATH", dir)
	t.Setenv("TODO_TZ", "")
	t.Setenv("TODO_STORE", "")
	t.Setenv("TODO_DB", "")
	t.Setenv("NO_COLOR", "1")

	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.Writer = &out
	cmd.ErrWriter = io.Discard

	full := append([]string{"todo", "--tz", "UTC"}, args...)
	err := cmd.Run(context.Background(), full)
	return out.String(), err
}

func mustRun(t *testing.T, dir string, args ...string) string {
	t.Helper()
	out, err := run(t, dir, args...)
	if err != nil {
		t.Fatalf("todo %s: %v", strings.Join(args, " "), err)
	}
	return out
}

func TestAddListShow(t *testing.T) {
	dir := t.TempDir()

	out := mustRun(t, dir, "add", "--priority", "high", "--due", "2024-03-01", "Buy milk")
	if out != "Added new TODO with ID: 1\n" {
		t.Errorf("unexpected add output %q", out)
	}
	out = mustRun(t, dir, "add", "Walk", "the", "dog")
	if out != "Added new TODO with ID: 2\n" {
		t.Errorf("unexpected add output %q", out)
	}

	out = mustRun(t, dir, "list")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 rows, got %q", out)
	}
	for _, col := range []string{"ID", "STATUS", "PRIORITY", "DUE", "NAME"} {
		if !strings.Contains(lines[0], col) {
			t.Errorf("header missing %s: %q", col, lines[0])
		}
	}
	if !strings.Contains(lines[1], "Buy milk") || !strings.Contains(lines[1], "High") ||
		!strings.Contains(lines[1], "2024-03-01T00:00:00Z") {
		t.Errorf("unexpected first row %q", lines[1])
	}
	if !strings.Contains(lines[2], "Walk the dog") || !strings.Contains(lines[2], "Medium") {
		t.Errorf("unexpected second row %q", lines[2])
	}

	out = mustRun(t, dir, "show", "2")
	for _, want := range []string{"Walk the dog", "InProgress", "Medium"} {
		if !strings.Contains(out, want) {
			t.Errorf("show output missing %q:\n%s", want, out)
		}
	}
}

func TestDefaultCommandIsList(t *testing.T) {
	out := mustRun(t, t.TempDir())
	if out != "TODO list is empty.\n" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestUpdate(t *testing.T) {
	dir := t.TempDir()
	mustRun(t, dir, "add", "--text", "2 litres", "Buy milk")

	out := mustRun(t, dir, "update", "--status", "in progress", "--clear-text", "1")
	if out != "Updated TODO with ID: 1\n" {
		t.Errorf("unexpected update output %q", out)
	}

	var task todo.Task
	if err := json.Unmarshal([]byte(mustRun(t, dir, "-o", "json", "show", "1")), &task); err != nil {
		t.Fatal(err)
	}
	if task.Status != todo.StatusInProgress {
		t.Errorf("expected InProgress, got %s", task.Status)
	}
	if task.Text != nil {
		t.Errorf("expected text cleared, got %q", *task.Text)
	}
	if task.Name != "Buy milk" || task.Priority != todo.PriorityMedium {
		t.Errorf("untouched fields changed: %+v", task)
	}
}

func TestUpdateRejectsBadInput(t *testing.T) {
	dir := t.TempDir()
	mustRun(t, dir, "add", "Buy milk")

	tests := []struct {
		name string
		args []string
	}{
		{"bad status", []string{"update", "--status", "done", "1"}},
		{"bad priority", []string{"update", "--priority", "urgent", "1"}},
		{"bad date", []string{"update", "--due", "tomorrow", "1"}},
		{"set and clear", []string{"update", "--text", "x", "--clear-text", "1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, dir, tt.args...)
			if !errors.Is(err, todo.ErrInvalidValue) {
				t.Errorf("expected ErrInvalidValue, got %v", err)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	dir := t.TempDir()
	mustRun(t, dir, "add", "Buy milk")

	out := mustRun(t, dir, "delete", "1")
	if !strings.HasPrefix(out, "Deleted TODO with ID: 1") || !strings.Contains(out, "Buy milk") {
		t.Errorf("unexpected delete output %q", out)
	}

	_, err := run(t, dir, "delete", "1")
	if !errors.Is(err, todo.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err.Error() != "No TODO found with ID: 1" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestMissingID(t *testing.T) {
	dir := t.TempDir()
	for _, verb := range []string{"show", "update", "delete"} {
		t.Run(verb, func(t *testing.T) {
			_, err := run(t, dir, verb, "42")
			if !errors.Is(err, todo.ErrNotFound) {
				t.Errorf("expected ErrNotFound, got %v", err)
			}
		})
	}
}

func TestInvalidID(t *testing.T) {
	dir := t.TempDir()
	for _, arg := range []string{"abc", "0", "-1", "4294967296"} {
		_, err := run(t, dir, "show", arg)
		if err == nil || errors.Is(err, todo.ErrNotFound) {
			t.Errorf("id %q: expected usage error, got %v", arg, err)
		}
	}
}

func TestSeedAndFormats(t *testing.T) {
	dir := t.TempDir()

	var tasks []todo.Task
	out := mustRun(t, dir, "--store", "memory", "--seed", "-o", "json", "list")
	if err := json.Unmarshal([]byte(out), &tasks); err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 seeded tasks, got %d", len(tasks))
	}
	if tasks[0].Name != "First Task" || tasks[0].Priority != todo.PriorityHigh || tasks[0].DueDate == nil {
		t.Errorf("unexpected first task %+v", tasks[0])
	}
	if tasks[1].Name != "Second Task" || tasks[1].Priority != todo.PriorityLow {
		t.Errorf("unexpected second task %+v", tasks[1])
	}

	out = mustRun(t, dir, "--store", "memory", "--seed", "-o", "yaml", "list")
	var raw []map[string]any
	if err := yaml.Unmarshal([]byte(out), &raw); err != nil {
		t.Fatal(err)
	}
	if len(raw) != 2 || raw[0]["name"] != "First Task" || raw[1]["priority"] != "Low" {
		t.Errorf("unexpected yaml list %v", raw)
	}

	// the memory backend never touches the database file
	if matches, _ := filepath.Glob(filepath.Join(dir, "todos.db")); len(matches) != 0 {
		t.Errorf("memory backend created %v", matches)
	}
}

func TestEmptyListJSON(t *testing.T) {
	out := mustRun(t, t.TempDir(), "-o", "json", "list")
	if strings.TrimSpace(out) != "[]" {
		t.Errorf("expected [], got %q", out)
	}
}

func TestBadOutputFormat(t *testing.T) {
	if _, err := run(t, t.TempDir(), "-o", "xml", "list"); err == nil {
		t.Error("expected error for unknown output format")
	}
}

func TestSeedSkipsNonEmptyStore(t *testing.T) {
	dir := t.TempDir()
	mustRun(t, dir, "--seed", "list")
	mustRun(t, dir, "--seed", "list")

	var tasks []todo.Task
	if err := json.Unmarshal([]byte(mustRun(t, dir, "-o", "json", "list")), &tasks); err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks after seeding twice, got %d", len(tasks))
	}
}

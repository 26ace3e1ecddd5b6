package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"charm.land/lipgloss/v2"
	"gopkg.in/yaml.v3"

	"github.com/dohr-michael/todo/internal/config"
	"github.com/dohr-michael/todo/internal/todo"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle  = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

const displayTime = time.RFC3339

func (e *env) printList(list []*todo.Task) error {
	switch e.cfg.Output.Format {
	case config.FormatJSON:
		if list == nil {
			list = []*todo.Task{}
		}
		return e.writeJSON(list)
	case config.FormatYAML:
		if list == nil {
			list = []*todo.Task{}
		}
		return e.writeYAML(list)
	}

	if len(list) == 0 {
		fmt.Fprintln(e.out, "TODO list is empty.")
		return nil
	}

	// Render into a buffer first: styling the header after alignment keeps
	// escape codes out of tabwriter's width computation.
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tPRIORITY\tDUE\tNAME")
	for _, t := range list {
		due := "-"
		if t.DueDate != nil {
			due = t.DueDate.Format(displayTime)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", t.ID, t.Status, t.Priority, due, t.Name)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	header, rest, _ := strings.Cut(buf.String(), "\n")
	fmt.Fprintln(e.out, e.style(headerStyle, header))
	_, err := fmt.Fprint(e.out, rest)
	return err
}

func (e *env) printTask(t *todo.Task) error {
	switch e.cfg.Output.Format {
	case config.FormatJSON:
		return e.writeJSON(t)
	case config.FormatYAML:
		return e.writeYAML(t)
	}

	field := func(label, value string) {
		fmt.Fprintf(e.out, "%s %s\n", e.style(labelStyle, fmt.Sprintf("%-10s", label+":")), value)
	}
	none := e.style(dimStyle, "-")

	field("ID", fmt.Sprint(t.ID))
	field("Name", t.Name)
	field("Status", t.Status.String())
	field("Priority", t.Priority.String())
	field("Created", t.CreatedAt.Format(displayTime))
	if t.DueDate != nil {
		field("Due", t.DueDate.Format(displayTime))
	} else {
		field("Due", none)
	}
	if t.Text != nil {
		field("Text", *t.Text)
	} else {
		field("Text", none)
	}
	return nil
}

func (e *env) style(s lipgloss.Style, text string) string {
	if !e.color {
		return text
	}
	return s.Render(text)
}

func (e *env) writeJSON(v any) error {
	enc := json.NewEncoder(e.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (e *env) writeYAML(v any) error {
	enc := yaml.NewEncoder(e.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/dohr-michael/todo/internal/config"
	"github.com/dohr-michael/todo/internal/todo"
)

// env bundles what every action needs: resolved config, timezone and
// where to print.
type env struct {
	cfg   *config.Config
	loc   *time.Location
	out   io.Writer
	color bool
}

// newEnv loads the config file, applies CLI flag overrides and sets up logging.
func newEnv(cmd *cli.Command) (*env, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, err
	}

	// CLI flags override config
	if cmd.IsSet("store") {
		cfg.Store.Backend = cmd.String("store")
	}
	if cmd.IsSet("db") {
		cfg.Store.Path = cmd.String("db")
	}
	if cmd.IsSet("timezone") {
		cfg.Timezone = cmd.String("timezone")
	}
	if cmd.IsSet("output") {
		cfg.Output.Format = cmd.String("output")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	setupLogging(cmd, cfg)

	out := cmd.Root().Writer
	if out == nil {
		out = os.Stdout
	}

	return &env{
		cfg:   cfg,
		loc:   config.ResolveLocation(cfg.Timezone),
		out:   out,
		color: useColor(cfg, out),
	}, nil
}

func setupLogging(cmd *cli.Command, cfg *config.Config) {
	level, _ := cfg.Log.SlogLevel()
	if cmd.Bool("debug") {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func useColor(cfg *config.Config, out io.Writer) bool {
	if cfg.Output.Color != nil {
		return *cfg.Output.Color
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// openStore opens the configured backend. The caller must Close it.
func (e *env) openStore(cmd *cli.Command) (todo.Store, error) {
	var store todo.Store
	switch e.cfg.Store.Backend {
	case config.BackendMemory:
		store = todo.NewMemoryStore(e.loc)
	default:
		s, err := todo.OpenSQLStore(e.cfg.Store.Path, e.loc)
		if err != nil {
			return nil, fmt.Errorf("open store: %w", err)
		}
		store = s
	}

	if cmd.Bool("seed") {
		if err := seed(store, e.loc); err != nil {
			store.Close()
			return nil, fmt.Errorf("seed store: %w", err)
		}
	}
	return store, nil
}

// parseID reads the positional task id.
func parseID(cmd *cli.Command) (uint32, error) {
	arg := cmd.Args().First()
	if arg == "" {
		return 0, fmt.Errorf("usage: todo %s <id>", cmd.Name)
	}
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q: must be a positive integer", arg)
	}
	return uint32(id), nil
}

// missingError reports an unknown id in the user's wording while still
// matching todo.ErrNotFound.
type missingError struct{ id uint32 }

func (e *missingError) Error() string { return fmt.Sprintf("No TODO found with ID: %d", e.id) }
func (e *missingError) Unwrap() error { return todo.ErrNotFound }

// describe turns store errors into the messages shown to the user.
func describe(id uint32, err error) error {
	if errors.Is(err, todo.ErrNotFound) {
		return &missingError{id: id}
	}
	return err
}

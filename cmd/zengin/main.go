package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/zengin"
	"github.com/fwojciec/zengin/data"
	zfs "github.com/fwojciec/zengin/fs"
	zslog "github.com/fwojciec/zengin/slog"
	"github.com/fwojciec/zengin/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database, opened when --db is given.
	DB *sqlite.DB

	// Loaded dataset, available after Run for end-to-end testing.
	Zengin *zengin.Zengin
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("zengin"),
		kong.Description("Look up Japanese bank and branch codes."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'zengin --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := newLogger(stderr, cli.Verbose)

	src, err := m.openSource(cli)
	if err != nil {
		return err
	}
	defer m.Close()

	loader := &zengin.Loader{
		Source:               zslog.NewLoggingSource(src, logger),
		AllowMissingBranches: cli.AllowMissingBranches,
	}
	m.Zengin, err = loader.Load(ctx)
	if err != nil {
		if zengin.ErrorCode(err) == zengin.ENOTFOUND {
			fmt.Fprintln(stderr, "Hint: Use --allow-missing-branches to load banks without a branch index")
		}
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	deps.Zengin = m.Zengin
	deps.Format = cli.Format

	return kongCtx.Run(deps)
}

// openSource selects the dataset: a SQLite database, a source-data directory,
// or the embedded files.
func (m *Main) openSource(cli *CLI) (zengin.Source, error) {
	switch {
	case cli.DB != "":
		m.DB = sqlite.NewReadOnlyDB(cli.DB)
		if err := m.DB.Open(); err != nil {
			return nil, fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
		}
		return sqlite.NewSource(m.DB), nil
	case cli.DataDir != "":
		return zfs.NewDirSource(cli.DataDir), nil
	default:
		return data.NewSource(), nil
	}
}

// newLogger returns a text logger on w. Only warnings are shown unless
// verbose is set.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

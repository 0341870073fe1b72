package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/contacts"
	"github.com/fwojciec/contacts/goquery"
	contactshttp "github.com/fwojciec/contacts/http"
	cslog "github.com/fwojciec/contacts/slog"
	"github.com/fwojciec/contacts/sqlite"
	"github.com/fwojciec/contacts/width"
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
	// Database path. Set before calling Run().
	DBPath string

	// Services for end-to-end testing. Wired by Run.
	ContactService contacts.ContactService
	RunService     contacts.RunService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
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
		kong.Name("contacts"),
		kong.Description("Scrape faculty contact records into a local database"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
		kong.Vars{"default_url": DefaultURL},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'contacts --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Errors are always logged; --debug adds per-call detail.
	level := slog.LevelError
	if cli.Debug {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cmd := kongCtx.Selected().Name

	if cmd != "probe" {
		m.ContactService = cslog.NewLoggingContactService(sqlite.NewContactService(m.DBPath), logger)
		m.RunService = cslog.NewLoggingRunService(sqlite.NewRunService(m.DBPath), logger)

		if err := m.ContactService.Initialize(ctx); err != nil {
			fmt.Fprintf(stderr, "Hint: Set CONTACTS_DB to use a different database path\n")
			return fmt.Errorf("failed to initialize database at %q: %w", m.DBPath, err)
		}

		deps.Contacts = m.ContactService
		deps.Runs = m.RunService
	}

	deps.Renderer = contacts.NewTableRenderer(width.NewCalculator())

	if cmd == "fetch" || cmd == "probe" {
		fetcher := cslog.NewLoggingFetcher(contactshttp.NewFetcher(contactshttp.WithTimeout(cli.Timeout)), logger)
		defer fetcher.Close()

		deps.Fetcher = fetcher
		deps.Blocks = goquery.NewBlockCounter()
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("CONTACTS_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "contacts.db"
	}
	dir := filepath.Join(home, ".contacts")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "contacts.db")
}

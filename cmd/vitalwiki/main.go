package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/pwalen/vitalwiki"
	"github.com/pwalen/vitalwiki/gofpdf"
	"github.com/pwalen/vitalwiki/goquery"
	vitalhttp "github.com/pwalen/vitalwiki/http"
	"github.com/pwalen/vitalwiki/mediawiki"
	vitalslog "github.com/pwalen/vitalwiki/slog"
	"github.com/pwalen/vitalwiki/sqlite"
	"github.com/pwalen/vitalwiki/vital"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, vitalwiki.ErrorMessage(err))
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// Session token file path. Set before calling Run().
	SessionPath string

	// BackendURL enables the remote session and read-log backend when
	// non-empty. Taken from VITALWIKI_BACKEND.
	BackendURL string

	// CategoriesPath optionally overrides the built-in categories with
	// a YAML file. Taken from VITALWIKI_CATEGORIES.
	CategoriesPath string

	// SQLite database used by the local services.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:         defaultDataPath("vitalwiki.db", "VITALWIKI_DB"),
		SessionPath:    defaultDataPath("session", "VITALWIKI_SESSION_FILE"),
		BackendURL:     os.Getenv("VITALWIKI_BACKEND"),
		CategoriesPath: os.Getenv("VITALWIKI_CATEGORIES"),
	}
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
		kong.Name("vitalwiki"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'vitalwiki --help' to see available commands")
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

	if err := os.MkdirAll(filepath.Dir(m.DBPath), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set VITALWIKI_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: logLevel(),
	}))

	categories := vitalwiki.DefaultCategories
	if m.CategoriesPath != "" {
		categories, err = loadCategories(m.CategoriesPath)
		if err != nil {
			return fmt.Errorf("failed to load categories from %q: %w", m.CategoriesPath, err)
		}
	}

	deps.Sessions = &sessionFile{path: m.SessionPath}
	deps.Token = deps.Sessions.Read()
	deps.Logs = sqlite.NewReadLogStore(m.DB)

	if m.BackendURL != "" {
		deps.Session = vitalhttp.NewClient(m.BackendURL)
	} else {
		deps.Session = sqlite.NewAuthService(m.DB)
	}

	deps.ReadLog = m.readLog(ctx, deps)

	client := mediawiki.NewClient()
	deps.Articles = &vital.Service{
		Links:      vitalslog.NewLoggingLinkSource(client, logger),
		Pages:      vitalslog.NewLoggingPageSource(client, logger),
		Extractor:  goquery.NewExtractor(),
		Renderer:   gofpdf.NewRenderer(),
		ReadLog:    deps.ReadLog,
		Categories: categories,
	}

	return kongCtx.Run(deps)
}

// readLog picks the log backend for the current user: the remote log
// when a session is active, the local store otherwise. A stale token or
// unreachable backend degrades to local-only mode.
func (m *Main) readLog(ctx context.Context, deps *Dependencies) vitalwiki.ReadLog {
	local := deps.Logs.ReadLog(localUser)
	if m.BackendURL == "" || deps.Token == "" {
		return local
	}
	client, ok := deps.Session.(*vitalhttp.Client)
	if !ok {
		return local
	}
	if _, err := client.CurrentUser(ctx, deps.Token); err != nil {
		return local
	}
	return client.ReadLog(deps.Token)
}

// localUser keys read-log entries recorded without an account.
const localUser = "local"

func logLevel() slog.Level {
	if os.Getenv("VITALWIKI_DEBUG") != "" {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

// defaultDataPath resolves a path under ~/.vitalwiki without touching
// the filesystem; the directory is created when a command actually
// opens the database or stores a session.
func defaultDataPath(name, envVar string) string {
	if path := os.Getenv(envVar); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	return filepath.Join(home, ".vitalwiki", name)
}

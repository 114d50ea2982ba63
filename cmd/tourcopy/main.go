package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/tourcopy"
	"github.com/fwojciec/tourcopy/fs"
	"github.com/fwojciec/tourcopy/goquery"
	"github.com/fwojciec/tourcopy/htmltomarkdown"
	tchttp "github.com/fwojciec/tourcopy/http"
	"github.com/fwojciec/tourcopy/memo"
	tcslog "github.com/fwojciec/tourcopy/slog"
	"github.com/fwojciec/tourcopy/sqlite"
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

	// Input for commands reading "-". Defaults to os.Stdin.
	Stdin io.Reader

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	ProductService tourcopy.ProductService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
		Stdin:  os.Stdin,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// storeCommands lists the commands that need the product database.
var storeCommands = map[string]bool{
	"import": true,
	"list":   true,
	"show":   true,
	"delete": true,
	"check":  true,
	"export": true,
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("tourcopy"),
		kong.Description("Inspect and preview tour product content"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'tourcopy --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := LoadConfig(cli.Config)
	if err != nil {
		fmt.Fprintf(stderr, "Hint: Set TOURCOPY_CONFIG or --config to a valid YAML file\n")
		return err
	}
	disclosure, err := cfg.Disclosure()
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	inspector := goquery.NewInspector()
	itinerary := memo.NewItineraryParser(
		tcslog.NewLoggingItineraryParser(goquery.NewItineraryParser(), inspector, logger),
		cfg.CacheSize,
	)
	faq := memo.NewFAQParser(
		tcslog.NewLoggingFAQParser(tourcopy.FAQParserFunc(tourcopy.ParseFAQ), inspector, logger),
		cfg.CacheSize,
	)

	deps.Config = cfg
	deps.Logger = logger
	deps.Inspector = inspector
	deps.Itinerary = itinerary
	deps.FAQ = faq
	deps.Converter = htmltomarkdown.NewConverter()
	deps.Fetcher = tchttp.NewFetcher(
		tchttp.WithRetryDelays(tchttp.DefaultRetryDelays()),
		tchttp.WithRateLimit(cfg.FetchRate),
	)
	deps.Store = func(dir string) tourcopy.PageStore {
		return fs.NewFileStore(filepath.Dir(dir), filepath.Base(dir))
	}
	deps.Pages = &tourcopy.PageBuilder{
		Disclosure: disclosure,
		Itinerary:  itinerary,
		FAQ:        faq,
	}

	if storeCommands[strings.Fields(kongCtx.Command())[0]] {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set TOURCOPY_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.ProductService = tcslog.NewLoggingProductService(sqlite.NewProductService(m.DB), logger)
		deps.Products = m.ProductService
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("TOURCOPY_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "tourcopy.db"
	}
	dir := filepath.Join(home, ".tourcopy")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "tourcopy.db")
}

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/cdpsupport/cdpchat"
	"github.com/cdpsupport/cdpchat/chunker"
	"github.com/cdpsupport/cdpchat/crawl"
	"github.com/cdpsupport/cdpchat/goquery"
	"github.com/cdpsupport/cdpchat/htmltomarkdown"
	cdphttp "github.com/cdpsupport/cdpchat/http"
	"github.com/cdpsupport/cdpchat/sqlite"
	"github.com/cdpsupport/cdpchat/trafilatura"
	"github.com/cdpsupport/cdpchat/yaml"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database and config paths. Set before calling Run().
	DBPath     string
	ConfigPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	DocumentService cdpchat.DocumentService
	ChunkService    cdpchat.ChunkService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:     defaultDBPath(),
		ConfigPath: defaultConfigPath(),
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
		Logger: slog.New(slog.NewTextHandler(stderr, nil)),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("kbuild"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'kbuild --help' to see available commands")
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

	cfg, err := yaml.LoadConfig(m.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config from %q: %w", m.ConfigPath, err)
	}
	deps.Config = cfg

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set CDPCHAT_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.DocumentService = sqlite.NewDocumentService(m.DB)
	m.ChunkService = sqlite.NewChunkService(m.DB)
	deps.Documents = m.DocumentService
	deps.Chunks = m.ChunkService
	deps.Chunker = chunker.New(
		chunker.WithMaxLen(cfg.ChunkMaxLen),
		chunker.WithOverlap(cfg.ChunkOverlap),
	)

	if cmd == "build" {
		deps.Crawler = &crawl.Crawler{
			Sitemaps:    cdphttp.NewSitemapService(nil),
			Fetcher:     cdphttp.NewFetcher(),
			Extractor:   trafilatura.NewExtractor(),
			Converter:   htmltomarkdown.NewConverter(),
			Links:       goquery.NewLinkExtractor(),
			Documents:   m.DocumentService,
			Limiter:     crawl.NewDomainLimiter(1.0),
			Logger:      deps.Logger,
			Concurrency: cli.Build.Concurrency,
			MaxPages:    cli.Build.MaxPages,
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("CDPCHAT_DB"); path != "" {
		return path
	}
	return "cdpchat.db"
}

func defaultConfigPath() string {
	if path := os.Getenv("CDPCHAT_CONFIG"); path != "" {
		return path
	}
	return "cdpchat.yml"
}

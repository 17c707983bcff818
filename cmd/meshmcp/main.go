package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	meshmcp "github.com/lukeylias/MeshMCP"
	"github.com/lukeylias/MeshMCP/config"
	"github.com/lukeylias/MeshMCP/fallback"
	"github.com/lukeylias/MeshMCP/gofakeit"
	"github.com/lukeylias/MeshMCP/goquery"
	meshhttp "github.com/lukeylias/MeshMCP/http"
	"github.com/lukeylias/MeshMCP/htmltomarkdown"
	"github.com/lukeylias/MeshMCP/pipeline"
	meshprom "github.com/lukeylias/MeshMCP/prometheus"
	"github.com/lukeylias/MeshMCP/rod"
	meshslog "github.com/lukeylias/MeshMCP/slog"
	"github.com/lukeylias/MeshMCP/sqlite"
	"github.com/lukeylias/MeshMCP/tools"
	prom "github.com/prometheus/client_golang/prometheus"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	Config config.Config

	// SQLite database backing the cache store.
	DB *sqlite.DB

	// Services for end-to-end testing.
	Store       meshmcp.CacheStore
	Coordinator *pipeline.Coordinator
}

// NewMain returns a new instance of Main with defaults.
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
		kong.Name("meshmcp"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'meshmcp --help' to see available commands")
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

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, "Hint: MESHMCP_* environment variables override defaults")
		return err
	}
	m.Config = cfg

	logger := meshslog.New(stderr, cfg.Logging.Level, cfg.Logging.Format)

	m.DB = sqlite.NewDB(cfg.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintln(stderr, "Hint: Set MESHMCP_DBPATH to use a different database path")
		return fmt.Errorf("failed to open database at %q: %w", cfg.DBPath, err)
	}
	defer m.Close()

	m.Store = meshslog.NewLoggingStore(sqlite.NewCacheStore(m.DB), logger)
	deps.Config = cfg
	deps.Logger = logger
	deps.Store = m.Store

	// The serve, refresh, sweep, and components commands reach the upstream
	// site and need the full extraction pipeline; clear and stats work
	// against the store alone.
	if cmd == "serve" || cmd == "refresh" || cmd == "sweep" || cmd == "components" {
		extractor, err := m.buildExtractor(stderr, logger)
		if err != nil {
			return err
		}
		defer extractor.Close()

		registry := prom.NewRegistry()

		var table meshmcp.FallbackTable
		if cfg.FallbackEnabled {
			table = fallback.NewTable(cfg.BaseURL)
		}

		m.Coordinator = &pipeline.Coordinator{
			Store:          m.Store,
			Extractor:      meshslog.NewLoggingExtractor(extractor, logger),
			Fallback:       table,
			TTLs:           cfg.TTLs(),
			ExtractTimeout: cfg.ExtractTimeout(),
			Logger:         logger,
			Metrics:        meshprom.NewMetrics(registry),
		}

		deps.Registry = registry
		deps.Coordinator = m.Coordinator
		deps.Invalidator = &pipeline.Invalidator{
			Coordinator: m.Coordinator,
			Store:       m.Store,
			Logger:      logger,
		}
		deps.Tools = &tools.Service{
			Coordinator: m.Coordinator,
			Generator:   gofakeit.NewGenerator(0),
			Logger:      logger,
		}
	}

	return kongCtx.Run(deps)
}

// buildExtractor assembles the scraping pipeline. The browser-rendering
// fetcher is preferred because the upstream site is a JavaScript
// application; when no browser is available the plain HTTP fetcher keeps
// the binary usable.
func (m *Main) buildExtractor(stderr io.Writer, logger *slog.Logger) (meshmcp.Extractor, error) {
	var fetcher meshmcp.Fetcher
	if rf, err := rod.NewFetcher(); err != nil {
		logger.Warn("browser unavailable, falling back to plain HTTP fetches", "err", err)
		fmt.Fprintln(stderr, "Hint: install Chrome or Chromium for full JavaScript rendering")
		fetcher = meshhttp.NewFetcher()
	} else {
		fetcher = rf
	}
	fetcher = rod.NewLoggingFetcher(fetcher, logger)

	return goquery.NewScraper(fetcher, htmltomarkdown.NewConverter(), m.Config.BaseURL), nil
}

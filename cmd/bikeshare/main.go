// Package main is the entry point for the bikeshare trip explorer.
// It loads configuration, wires the query service and runs the interactive
// Bubble Tea session.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"

	"github.com/j-veylop/bikeshare-explorer/internal/app"
	"github.com/j-veylop/bikeshare-explorer/internal/config"
	"github.com/j-veylop/bikeshare-explorer/internal/dataset"
	"github.com/j-veylop/bikeshare-explorer/internal/logger"
	"github.com/j-veylop/bikeshare-explorer/internal/services/explorer"
	"github.com/j-veylop/bikeshare-explorer/internal/version"
)

func main() {
	// Handle version flag
	if len(os.Args) > 1 && (os.Args[1] == "-v" || os.Args[1] == "--version") {
		fmt.Println(version.Info())
		os.Exit(0)
	}

	// Handle help flag
	if len(os.Args) > 1 && (os.Args[1] == "-h" || os.Args[1] == "--help") {
		printUsage()
		os.Exit(0)
	}

	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(code)
}

// run contains the main application logic and returns the exit code.
// Errors already shown by the session are not returned again.
func run() (int, error) {
	// 1. Load configuration from .env files and environment variables
	cfg, err := config.Load()
	if err != nil {
		return 1, fmt.Errorf("failed to load configuration: %w", err)
	}

	// 2. Route logs away from the interactive view
	logCloser, err := logger.Setup(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return 1, fmt.Errorf("failed to set up logging: %w", err)
	}
	defer func() {
		if closeErr := logCloser.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: error closing log file: %v\n", closeErr)
		}
	}()

	// 3. Wire the loader and query service
	loader := dataset.NewLoader(cfg.Sources())
	svc := explorer.New(loader)
	logger.Debug("configuration loaded",
		"data_dir", cfg.DataDir,
		"catalog", cfg.CatalogPath,
		"page_size", cfg.PageSize)

	// 4. Create the session model and program. Output stays in the
	// terminal scrollback, so the alternate screen is not used.
	model := app.NewModel(svc, cfg.PageSize)
	p := tea.NewProgram(model, programOptions()...)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		if _, ok := <-sigChan; ok {
			p.Send(tea.Quit())
		}
	}()

	// 5. Run until the user declines to restart or quits
	if _, err := p.Run(); err != nil {
		return 1, fmt.Errorf("error running session: %w", err)
	}

	if model.Err() != nil {
		return 1, nil
	}
	return 0, nil
}

// programOptions reads answers from stdin when it is piped or redirected.
// Bubble Tea would otherwise open the controlling terminal instead.
func programOptions() []tea.ProgramOption {
	if term.IsTerminal(os.Stdin.Fd()) {
		return nil
	}
	logger.Debug("stdin is not a terminal, reading answers from it")
	return []tea.ProgramOption{tea.WithInput(os.Stdin)}
}

// printUsage prints the command-line usage information.
func printUsage() {
	fmt.Println(`Bikeshare Explorer - interactive statistics for US bikeshare trips

Usage:
  bikeshare [flags]

Flags:
  -h, --help      Show this help message
  -v, --version   Show version information

Session:
  Answer the prompts for city (Chicago, New York City, Washington), month
  (all, january ... december) and day of week (all, monday ... sunday).
  Statistics are printed for the matching trips, then raw rows can be paged.

Keyboard Shortcuts:
  Enter           Submit answer (answers can also be piped, one per line)
  Tab             Complete suggestion
  Esc, Ctrl+C     Quit

Environment Variables:
  BIKESHARE_DATA_DIR      Directory holding the city CSV files (default: .)
  BIKESHARE_CATALOG       YAML file mapping cities to CSV files
  BIKESHARE_PAGE_SIZE     Raw rows shown per page (default: 5)
  BIKESHARE_LOG_LEVEL     debug, info, warn or error (default: warn)
  BIKESHARE_LOG_FILE      Write logs to this file (default: logs are discarded)

Configuration:
  The application looks for .env files in the following locations:
  - Current directory
  - ~/.config/bikeshare/.env
  - ~/.bikeshare/.env`)
}

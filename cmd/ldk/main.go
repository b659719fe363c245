// Package main is the entry point for the Launchdeck TUI application.
// It initializes configuration, services, and runs the Bubble Tea program.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"launchdeck/internal/app"
	"launchdeck/internal/config"
	"launchdeck/internal/services"
	"launchdeck/internal/ui/tabs/heaviest"
	"launchdeck/internal/ui/tabs/history"
	"launchdeck/internal/ui/tabs/info"
	"launchdeck/internal/ui/tabs/launches"
	"launchdeck/internal/version"
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

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run contains the main application logic, separated for cleaner error handling.
func run() error {
	// 1. Load configuration from .env files and environment variables
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// 2. Initialize the service manager
	// This opens the lookup catalog, history database and bookmark store
	svcManager, err := services.NewManager(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	// Ensure cleanup on exit
	defer func() {
		if closeErr := svcManager.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: error closing services: %v\n", closeErr)
		}
	}()

	// 3. Create the root Bubble Tea model
	model := app.NewModel(svcManager)

	// 4. Initialize tabs with shared state
	// Each tab receives the shared application state for consistent data access
	state := model.GetState()
	tabs := []app.Tab{
		launches.New(state),  // Tab 0: Launches - range form and results
		heaviest.New(state),  // Tab 1: Heaviest - heaviest launch breakdown
		history.New(state),   // Tab 2: History - recorded lookups
		info.New(state, cfg), // Tab 3: Info - configuration and app info
	}
	model.SetTabs(tabs)

	// 5. Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// 6. Create and configure the Bubble Tea program
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer (full terminal)
		tea.WithMouseCellMotion(), // Enable mouse support for selection
	)

	// 7. Handle signals in a separate goroutine
	go func() {
		<-sigChan
		p.Send(tea.Quit())
	}()

	// 8. Run the TUI program
	// This blocks until the user quits or an error occurs
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}

// printUsage prints the command-line usage information.
func printUsage() {
	fmt.Println(`Launchdeck - SpaceX launch catalog explorer

Usage:
  ldk [flags]

Flags:
  -h, --help      Show this help message
  -v, --version   Show version information

Keyboard Shortcuts:
  1-4             Switch between tabs (Launches, Heaviest, History, Info)
  Tab/Shift+Tab   Navigate between tabs
  j/k, Up/Down    Navigate lists
  e               Edit the date range
  a               Query all time
  s               Save the current range as a bookmark
  b               Open saved bookmarks
  Enter           Select/confirm
  r               Refresh data
  ?               Toggle help
  q, Ctrl+C       Quit

Environment Variables:
  SPACEX_API_URL      Launch catalog API base URL
  DATABASE_PATH       SQLite history database path
  BOOKMARKS_PATH      Bookmarks JSON file path
  HTTP_TIMEOUT        API request timeout (default: 30s)
  QUERY_PAGE_SIZE     Launches fetched per page (default: 100)
  MASS_WORKERS        Concurrent payload mass fetches (default: 5)

Configuration:
  The application looks for .env files in the following locations:
  - Current directory
  - ~/.config/launchdeck/.env
  - ~/.launchdeck/.env`)
}

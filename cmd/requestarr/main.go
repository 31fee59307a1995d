package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/requestarr/requestarr/internal/api"
	"github.com/requestarr/requestarr/internal/config"
	"github.com/requestarr/requestarr/internal/domain"
	"github.com/requestarr/requestarr/internal/log"
	"github.com/requestarr/requestarr/internal/service"
	"github.com/requestarr/requestarr/internal/store"
	"github.com/requestarr/requestarr/internal/tui"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	var showVersion, clearCache bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.BoolVar(&clearCache, "clear-cache", false, "delete the local page cache and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("requestarr %s\n", Version)
		return
	}

	if clearCache {
		if err := config.ClearCache(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Cache cleared.")
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting requestarr", "version", Version)

	if !cfg.IsConfigured() {
		return runSetupFlow(cfg, logger)
	}

	client := api.NewClient(cfg.Server.URL, cfg.Server.APIKey, logger)

	// A dead backend is not fatal; the UI surfaces offline errors itself.
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := client.Ping(pingCtx); err != nil {
		logger.Warn("backend not reachable at startup", "url", cfg.Server.URL, "error", err)
	}
	cancel()

	cache, err := store.Open(config.GetCachePath(), cfg.Server.URL)
	if err != nil {
		logger.Warn("local cache unavailable, running memory-only", "error", err)
		cache, _ = store.Open("", "")
	}
	defer cache.Close()

	// A configured default seeds the local mirror so the first session has a
	// selection even before the backend settings endpoint answers.
	if _, ok := cache.LoadDefaultInstances(); !ok && (cfg.Defaults.MovieInstance != "" || cfg.Defaults.TVInstance != "") {
		_ = cache.SaveDefaultInstances(domain.DefaultInstances{
			MovieInstance: cfg.Defaults.MovieInstance,
			TVInstance:    cfg.Defaults.TVInstance,
		})
	}

	cards := service.NewCardSync(logger)
	requests := service.NewRequests(client, logger)
	selection := service.NewSelection(client, cache, logger)
	hidden := service.NewHiddenMedia(client, logger)

	model := tui.NewModel(tui.Deps{
		Discovery: client,
		Requests:  requests,
		Selection: selection,
		Hidden:    hidden,
		Settings:  client,
		Cards:     cards,
		Cache:     cache,
		PageSize:  cfg.UI.PageSize,
		Columns:   cfg.UI.GridColumns,
		Logger:    logger,
	})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// runSetupFlow handles the initial setup when not configured
func runSetupFlow(cfg *config.Config, logger *slog.Logger) error {
	fmt.Println()
	fmt.Println("Welcome to Requestarr!")
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)

	var serverURL string
	for {
		fmt.Print("Enter your backend URL (e.g., http://192.168.1.100:5000): ")
		input, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		serverURL = strings.TrimRight(strings.TrimSpace(input), "/")
		if serverURL == "" {
			fmt.Println("Backend URL cannot be empty. Please try again.")
			continue
		}
		break
	}

	fmt.Print("Enter your API key (input hidden): ")
	keyBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("failed to read API key: %w", err)
	}
	apiKey := strings.TrimSpace(string(keyBytes))
	if apiKey == "" {
		return fmt.Errorf("API key cannot be empty")
	}

	cfg.Server.URL = serverURL
	cfg.Server.APIKey = apiKey

	// Verify the credentials before saving
	client := api.NewClient(serverURL, apiKey, logger)
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := client.Ping(ctx); err != nil {
		fmt.Printf("✗ Could not reach the backend: %v\n", err)
		fmt.Println("Configuration was not saved.")
		return err
	}
	fmt.Println("✓ Connected.")

	if err := config.SaveConfig(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println()
	fmt.Println("✓ Configuration saved!")
	fmt.Println()
	fmt.Println("Run requestarr again to start the application.")

	return nil
}

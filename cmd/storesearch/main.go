// Package main is the storesearch CLI entry point.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/quickcart/storesearch/internal/cli"
	"github.com/quickcart/storesearch/internal/config"
	"github.com/quickcart/storesearch/internal/models"
	"github.com/quickcart/storesearch/internal/search"
	"github.com/quickcart/storesearch/internal/server"
	"github.com/quickcart/storesearch/internal/storage"
	"github.com/quickcart/storesearch/pkg/utils"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/storesearch/config.yaml"

// loadConfig loads config from path. When path is the default, it first looks
// for config.yaml in the current directory (for development); if that exists
// it is used. A missing default config falls back to built-in defaults.
func loadConfig(path string) (*config.Config, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := cwd + "/config.yaml"
			if _, statErr := os.Stat(fallback); statErr == nil {
				return config.Load(fallback)
			}
		}
		if _, statErr := os.Stat(path); statErr != nil {
			return config.Default(), nil
		}
	}
	return config.Load(path)
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	switch os.Args[1] {
	case "server":
		runServer()
	case "search":
		runSearch()
	case "version", "--version", "-v":
		fmt.Printf("storesearch version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func runServer() {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	store, err := storage.NewSQLiteStore(cfg.Storage.DatabasePath)
	if err != nil {
		logger.Fatal("Failed to open catalog database", zap.Error(err))
	}
	defer store.Close()

	engine := search.NewEngine(store, &cfg.Ranking, &cfg.Search)
	srv := server.NewServer(engine, store, cfg, logger)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

// runSearch queries a running server and prints a ranked product list.
func runSearch() {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	host := fs.String("host", "localhost", "server host")
	port := fs.Int("port", 8080, "server port")
	categoryID := fs.String("category", "", "filter by category id (includes subcategories)")
	limit := fs.Int("limit", 12, "results per page")
	page := fs.Int("page", 1, "page number")
	asJSON := fs.Bool("json", false, "print the raw response as JSON")
	_ = fs.Parse(os.Args[2:])

	query := strings.TrimSpace(strings.Join(fs.Args(), " "))

	params := url.Values{}
	if query != "" {
		params.Set("search", query)
	}
	if *categoryID != "" {
		params.Set("categoryId", *categoryID)
	}
	params.Set("limit", fmt.Sprintf("%d", *limit))
	params.Set("page", fmt.Sprintf("%d", *page))

	endpoint := fmt.Sprintf("http://%s:%d/api/v1/products?%s", *host, *port, params.Encode())
	resp, err := http.Get(endpoint)
	if err != nil {
		fmt.Printf("Request failed: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	var result struct {
		Success bool `json:"success"`
		models.ProductResponse
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		fmt.Printf("Failed to decode response: %v\n", err)
		os.Exit(1)
	}
	if resp.StatusCode != http.StatusOK || !result.Success {
		fmt.Printf("Search failed (status %d)\n", resp.StatusCode)
		os.Exit(1)
	}

	format := cli.OutputText
	if *asJSON {
		format = cli.OutputJSON
	}
	if err := cli.WriteProductResults(os.Stdout, &result.ProductResponse, format); err != nil {
		fmt.Printf("Failed to write results: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`storesearch - hybrid product catalog search service

Usage:
  storesearch server [-config path] [-debug]   start the API server
  storesearch search [flags] <query>           query a running server
  storesearch version                          print version
  storesearch help                             show this help`)
}

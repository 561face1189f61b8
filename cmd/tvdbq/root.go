package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/tvdbgo/internal/config"
	"github.com/vmunix/tvdbgo/pkg/httpcache"
	"github.com/vmunix/tvdbgo/pkg/tvdb"
)

var version = "dev"

var (
	configPath string
	jsonOutput bool
	noCache    bool
	langFlag   string
)

var rootCmd = &cobra.Command{
	Use:   "tvdbq",
	Short: "CLI client for TV show metadata",
	Long: `tvdbq - CLI client for TV show metadata

Search for shows, browse seasons and episodes, and inspect actors
and banners from the XML metadata API.

Run 'tvdbq init' to write a starter config file.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&noCache, "no-cache", false, "Bypass the response cache")
	rootCmd.PersistentFlags().StringVar(&langFlag, "lang", "", "Language code (overrides config)")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("tvdbq {{.Version}}\n")
}

// loadConfig resolves the config file, falling back to a minimal
// config from TVDB_API_KEY when no file exists.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		found, err := config.Discover()
		if err != nil {
			if key := os.Getenv("TVDB_API_KEY"); key != "" {
				return &config.Config{
					APIKey:   key,
					Language: "en",
					LogLevel: "info",
					Cache:    config.CacheConfig{Enabled: true, Backend: "disk"},
				}, nil
			}
			return nil, err
		}
		path = found
	}
	return config.Load(path)
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// newStore builds the response cache store selected in the config.
func newStore(cfg *config.Config) (httpcache.Store, func(), error) {
	if !cfg.Cache.Enabled || noCache {
		return nil, func() {}, nil
	}
	switch cfg.Cache.Backend {
	case "sqlite":
		s, err := httpcache.NewSQLite(cfg.Cache.Path, cfg.Cache.TTL)
		if err != nil {
			return nil, nil, fmt.Errorf("open cache: %w", err)
		}
		return s, func() { _ = s.Close() }, nil
	default:
		dir := cfg.Cache.Dir
		if dir == "" {
			dir = filepath.Join(os.TempDir(), "tvdbgo")
		}
		s, err := httpcache.NewDisk(dir)
		if err != nil {
			return nil, nil, fmt.Errorf("open cache: %w", err)
		}
		return s, func() {}, nil
	}
}

// newClient builds the API client from the resolved config. The
// returned cleanup must run after the command finishes.
func newClient() (*tvdb.Client, *config.Config, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	if langFlag != "" {
		cfg.Language = langFlag
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}))

	store, cleanup, err := newStore(cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	opts := []tvdb.Option{tvdb.WithLogger(logger)}
	if store != nil {
		opts = append(opts, tvdb.WithStore(store))
	} else {
		opts = append(opts, tvdb.WithoutCache())
	}
	if cfg.IgnoreCase {
		opts = append(opts, tvdb.IgnoreCase())
	}
	if cfg.Actors {
		opts = append(opts, tvdb.WithActors())
	}
	if cfg.Banners {
		opts = append(opts, tvdb.WithBanners())
	}

	client, err := tvdb.New(cfg.APIKey, opts...)
	if err != nil {
		cleanup()
		return nil, nil, nil, err
	}
	return client, cfg, cleanup, nil
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return
	}
	fmt.Println(string(data))
}

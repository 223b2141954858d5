// Package main is the entry point for the geoquest server and tools
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/celala99/cela-geo-quest/cmd/server/client"
	"github.com/celala99/cela-geo-quest/internal/config"
)

// cfg is loaded from the environment before any command runs
var cfg *config.Config

var (
	logLevel     string
	dexBackend   string
	sqlitePath   string
	redisAddr    string
	counterDelay time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "geoquest",
	Short: "Geography quiz battle server",
	Long:  `geoquest serves quiz battles against region creatures and keeps each player's Dex.`,

	PersistentPreRunE: loadConfig,
	SilenceUsage:      true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&dexBackend, "dex-backend", "", "Dex storage backend (sqlite, redis)")
	flags.StringVar(&sqlitePath, "sqlite-path", "", "SQLite Dex database path")
	flags.StringVar(&redisAddr, "redis-addr", "", "Redis address for the Dex")
	flags.DurationVar(&counterDelay, "counter-delay", 0, "Delay before the enemy strikes back")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(client.ClientCmd)
}

// loadConfig reads GEOQUEST_* variables, applies explicit flags on top and
// installs the slog handler
func loadConfig(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		loaded.LogLevel = logLevel
	}
	if flags.Changed("dex-backend") {
		loaded.DexBackend = dexBackend
	}
	if flags.Changed("sqlite-path") {
		loaded.SQLitePath = sqlitePath
	}
	if flags.Changed("redis-addr") {
		loaded.RedisAddr = redisAddr
	}
	if flags.Changed("counter-delay") {
		loaded.CounterDelay = counterDelay
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: loaded.SlogLevel()})))

	cfg = loaded
	return nil
}

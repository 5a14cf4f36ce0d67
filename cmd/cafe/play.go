package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-cafe/internal/config"
	"github.com/vovakirdan/tui-cafe/internal/eventlog"
	"github.com/vovakirdan/tui-cafe/internal/games/cafe"
	"github.com/vovakirdan/tui-cafe/internal/metrics"
	"github.com/vovakirdan/tui-cafe/internal/orders"
	"github.com/vovakirdan/tui-cafe/internal/platform/tui"
	"github.com/vovakirdan/tui-cafe/internal/registry"
	"github.com/vovakirdan/tui-cafe/internal/session"
	"github.com/vovakirdan/tui-cafe/internal/storage"
)

var (
	flagConfig      string
	flagProfile     string
	flagCatalog     string
	flagLevel       int
	flagMetricsAddr string
)

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Play a kitchen",
	Long: `Open the specified kitchen.

Controls:
  Enter        - Start / serve / continue
  d s c        - Dough or bottom bun / sauce or top bun / cheese
  Space        - Place topping or patty
  1-9          - Pick from the shelf
  Arrows       - Move topping cursor, turn the knife, walk the shelf
  o            - Oven, grill or stop pouring
  x            - Cut
  a i t        - Assemble burger / add ice / switch patty
  Tab          - Next order
  Backspace    - Throw the item away
  P/Esc        - Pause
  R            - Restart
  Q/Ctrl+C     - Quit
  Mouse        - Click tickets, buttons, the shelf and the pizza

Profiles:
  classic - One customer at a time
  rush    - Up to three customers at once

Examples:
  cafe play cafe
  cafe play cafe_rush --level 3
  cafe play cafe --profile rush --catalog ./orders.yaml
  cafe play cafe --config ./my-cafe.yaml --metrics-addr :9090`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	addCafeFlags(playCmd)
	playCmd.Flags().StringVar(&flagMetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address")
}

// addCafeFlags registers the session setup flags shared by play, menu and sim.
func addCafeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom cafe config YAML")
	cmd.Flags().StringVar(&flagProfile, "profile", "", "Session profile (classic, rush, or one defined in the config)")
	cmd.Flags().StringVar(&flagCatalog, "catalog", "", "Order catalog file or directory")
	cmd.Flags().IntVar(&flagLevel, "level", 0, "Starting level (0 = first)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown kitchen %q (run 'cafe list' to see them)", gameID)
	}

	logger, closeLog, err := tuiLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	if err := setupCafe(logger); err != nil {
		return err
	}

	if flagMetricsAddr != "" {
		collector := metrics.New(true)
		stop := serveMetrics(flagMetricsAddr, collector, logger)
		defer stop()
		cafe.SetRecorder(eventlog.New(logger, collector))
	} else {
		cafe.SetRecorder(eventlog.New(logger, nil))
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, runtimeConfig(), logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// setupCafe checks the config, profile and catalog flags and hands them to
// the cafe. An explicit path that cannot be used is an error here rather than
// a silent fallback during play.
func setupCafe(logger *log.Logger) error {
	conf, err := config.LoadCafe(flagConfig)
	if err != nil {
		return err
	}
	if flagProfile != "" {
		if err := config.ApplyProfilePreset(&conf, flagProfile); err != nil {
			return err
		}
	}
	if err := conf.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	levels := len(conf.Levels)
	if levels == 0 {
		levels = session.LevelCount()
	}
	if flagLevel < 0 || flagLevel > levels {
		return fmt.Errorf("--level must be between 1 and %d", levels)
	}

	if flagCatalog != "" {
		cat, err := orders.LoadCatalog(flagCatalog)
		if err != nil {
			return err
		}
		for _, p := range cat.Problems() {
			logger.Warn("catalog", "problem", p)
		}
	}

	cafe.SetConfigPath(flagConfig)
	cafe.SetProfile(flagProfile)
	cafe.SetCatalogPath(flagCatalog)
	cafe.SetStartLevel(flagLevel)
	cafe.SetLogger(logger)
	return nil
}

// openStore opens the scores database. Play goes on without it on failure.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// serveMetrics exposes the collector on addr until the returned stop func
// is called.
func serveMetrics(addr string, collector *metrics.Collector, logger *log.Logger) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", collector.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("metrics listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", "err", err)
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Warn("metrics shutdown", "err", err)
		}
	}
}

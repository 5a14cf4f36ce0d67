// cafe is a terminal restaurant game: take orders, cook pizzas and burgers,
// pour drinks and keep the till above water.
//
// Usage:
//
//	cafe list                 - List available kitchens
//	cafe play <variant>       - Play a variant
//	cafe menu                 - Start menu to pick a variant interactively
//	cafe scores <variant>     - Show high scores and recent sessions
//	cafe levels               - Print the level table
//	cafe sim                  - Let the autopilot chef play headless
//	cafe catalog check <file> - Validate an order catalog
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 30)
//	--seed <value>      - Set RNG seed for reproducible sessions
//	--db <path>         - Set database path (default: ~/.cafe/scores.db)
//	--log-level <level> - debug, info, warn or error
//	--log-file <path>   - Where the TUI logs (default: discarded)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-cafe/internal/core"
	// Import the cafe to register its variants
	_ "github.com/vovakirdan/tui-cafe/internal/games/cafe"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cafe",
	Short: "TUI Cafe - run a tiny restaurant in your terminal",
	Long: `TUI Cafe is a terminal cooking game. Customers order pizzas, burgers
and drinks; build each item step by step, serve it, and meet the level's
customer and money targets before the clock runs out.

Available commands:
  list     - Show the available kitchens
  play     - Play a kitchen directly
  menu     - Interactive kitchen picker
  scores   - View high scores and recent sessions
  levels   - Print the level table
  sim      - Let the autopilot chef play headless
  catalog  - Work with order catalog files

Examples:
  cafe list
  cafe play cafe
  cafe play cafe_rush --level 3
  cafe menu
  cafe sim --levels 2 --skill 0.8 --seed 42
  cafe catalog check ./orders.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultConfig().TickRate, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.cafe/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for interactive play (default: discarded)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(catalogCmd)
}

// newLogger builds the command's logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "cafe",
		Level:           level,
	})
	return logger, nil
}

// tuiLogger logs to --log-file, or nowhere, so the alt screen stays clean.
// The returned close func is never nil.
func tuiLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		logger, err := newLogger(io.Discard)
		return logger, func() {}, err
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger, err := newLogger(f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, func() { f.Close() }, nil
}

// runtimeConfig sizes the session to the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

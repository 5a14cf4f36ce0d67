package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-cafe/internal/bot"
	"github.com/vovakirdan/tui-cafe/internal/config"
	"github.com/vovakirdan/tui-cafe/internal/eventlog"
	"github.com/vovakirdan/tui-cafe/internal/metrics"
	"github.com/vovakirdan/tui-cafe/internal/orders"
	"github.com/vovakirdan/tui-cafe/internal/session"
)

var (
	flagSimLevels int
	flagSkill     float64
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Let an autopilot chef run the kitchen",
	Long: `Play a session headlessly with a simulated chef and log every event.

Skill ranges from 0 (clumsy) to 1 (perfect timing). The run stops when the
game ends or after --levels levels are cleared. Logs go to stderr, the
summary to stdout.

Examples:
  cafe sim
  cafe sim --levels 3 --skill 0.6 --seed 42
  cafe sim --profile rush --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	addCafeFlags(simCmd)
	simCmd.Flags().IntVar(&flagSimLevels, "levels", 0, "Stop after this many levels (0 = play to the end)")
	simCmd.Flags().Float64Var(&flagSkill, "skill", 0.9, "Chef skill between 0 and 1")
}

func runSim(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	conf, err := config.LoadCafe(flagConfig)
	if err != nil {
		return err
	}
	if flagProfile != "" {
		if err := config.ApplyProfilePreset(&conf, flagProfile); err != nil {
			return err
		}
	}

	var catalog *orders.Catalog
	catalogPath := flagCatalog
	if catalogPath == "" {
		catalogPath = conf.CatalogPath
	}
	if catalogPath != "" {
		catalog, err = orders.LoadCatalog(catalogPath)
		if err != nil {
			return err
		}
	}

	opts, err := conf.SessionOptions(seed, flagLevel, catalog)
	if err != nil {
		return err
	}
	ctrl, err := session.New(opts)
	if err != nil {
		return err
	}

	collector := metrics.New(false)
	chef := bot.New(flagSkill, seed)
	logger.Info("kitchen open", "profile", ctrl.Profile().Name, "seed", seed, "skill", chef.Skill(), "levels", ctrl.LevelCount())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rep, err := bot.Run(ctx, ctrl, chef, bot.Options{
		Levels:   flagSimLevels,
		Recorder: eventlog.New(logger, collector),
	})
	switch {
	case errors.Is(err, context.Canceled):
		logger.Warn("interrupted")
	case err != nil:
		printReport(rep)
		return err
	}

	printReport(rep)
	if rep.Won(flagSimLevels) {
		fmt.Printf("Rating: %d stars\n", ctrl.Rating())
	}
	return nil
}

func printReport(rep bot.Report) {
	fmt.Println()
	fmt.Printf("Result:   %s\n", rep.Phase)
	if rep.Reason != "" {
		fmt.Printf("Reason:   %s\n", rep.Reason)
	}
	fmt.Printf("Levels:   %d cleared\n", rep.LevelsCleared)
	fmt.Printf("Money:    $%d\n", rep.Stats.Money)
	fmt.Printf("Score:    %d\n", rep.Stats.Score)
	fmt.Printf("Orders:   %d served, %d rejected, %d timed out\n", rep.Served, rep.Rejected, rep.TimedOut)
	fmt.Printf("Played:   %s\n", time.Duration(rep.Stats.Elapsed*float64(time.Second)).Round(time.Second))
}

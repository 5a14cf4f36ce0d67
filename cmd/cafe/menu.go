package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-cafe/internal/eventlog"
	"github.com/vovakirdan/tui-cafe/internal/games/cafe"
	"github.com/vovakirdan/tui-cafe/internal/platform/tui"
	"github.com/vovakirdan/tui-cafe/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a kitchen from a menu",
	Long: `Start the cafe in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a kitchen.
After a session ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select kitchen
  Tab          - Scoreboard
  Q            - Quit

Examples:
  cafe menu
  cafe menu --fps 20
  cafe menu --db ./scores.db --profile rush`,
	RunE: runMenu,
}

func init() {
	addCafeFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := tuiLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	if err := setupCafe(logger); err != nil {
		return err
	}
	cafe.SetRecorder(eventlog.New(logger, nil))

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return sbErr
			}
			if goBack {
				continue
			}
			return nil
		}

		if menuResult.GameID == "" {
			return nil
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			return err
		}

		// Fresh orders every visit unless a seed was given
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, store, cfg, logger); err != nil {
			return fmt.Errorf("running game: %w", err)
		}
	}
}

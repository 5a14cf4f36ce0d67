package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-cafe/internal/registry"
	"github.com/vovakirdan/tui-cafe/internal/storage"
)

var (
	flagScoresLimit int
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <variant>",
	Short: "Show high scores for a kitchen",
	Long: `Display the top high scores and the most recent sessions for the
specified kitchen.

Examples:
  cafe scores cafe
  cafe scores cafe_rush --limit 5
  cafe scores cafe --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores and sessions to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores and sessions for the kitchen")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'cafe list' to see them)", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", game.Title())
		return nil
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'cafe play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	sessions, err := store.RecentSessions(gameID, flagScoresLimit)
	if err != nil {
		return err
	}
	if len(sessions) > 0 {
		fmt.Println()
		fmt.Println("Recent sessions")
		fmt.Printf("  %-6s  %-8s  %-3s  %-6s  %-5s  %-6s  %s\n", "Result", "Profile", "Lvl", "Money", "Score", "Served", "Date")
		for _, s := range sessions {
			fmt.Printf("  %-6s  %-8s  %-3d  %-6d  %-5d  %-6d  %s\n",
				s.Outcome, s.Profile, s.Level, s.Money, s.Score, s.Served, s.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Best: %d  Games: %d  Wins: %d  Best level: %d  Served: %d\n",
			stats.HighScore, stats.GamesCount, stats.Wins, stats.BestLevel, stats.TotalServed)
	}
	return nil
}

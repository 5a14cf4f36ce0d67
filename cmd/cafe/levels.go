package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-cafe/internal/config"
	"github.com/vovakirdan/tui-cafe/internal/kitchen"
	"github.com/vovakirdan/tui-cafe/internal/session"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the level table",
	Long: `Print every level with its time limit, customer and money targets,
and the shelf the kitchen has at that level.

Examples:
  cafe levels
  cafe levels --config ./my-cafe.yaml`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom cafe config YAML")
}

func runLevels(_ *cobra.Command, _ []string) error {
	conf, err := config.LoadCafe(flagConfig)
	if err != nil {
		return err
	}
	levels := conf.Levels
	if len(levels) == 0 {
		levels = session.Levels
	}
	if err := session.ValidateLevels(levels); err != nil {
		return err
	}

	fmt.Println("Levels:")
	fmt.Println()
	fmt.Printf("  %-3s  %-18s  %-6s  %-9s  %s\n", "#", "Name", "Time", "Customers", "Target")
	fmt.Printf("  %-3s  %-18s  %-6s  %-9s  %s\n", "-", "----", "----", "---------", "------")
	for i, lvl := range levels {
		fmt.Printf("  %-3d  %-18s  %-6s  %-9d  $%d\n",
			i+1, lvl.Name, fmt.Sprintf("%.0fs", lvl.TimeLimit), lvl.Customers, lvl.MoneyTarget)
	}

	fmt.Println()
	fmt.Println("Shelf:")
	fmt.Println()
	for i := range levels {
		n := i + 1
		fmt.Printf("  %d  pizza: %s\n", n, ingredientNames(kitchen.PizzaToppings(n)))
		fmt.Printf("     burger: %s\n", ingredientNames(kitchen.BurgerToppings(n)))
		fmt.Printf("     drinks: %s\n", drinkNames(kitchen.Drinks(n)))
	}
	return nil
}

func ingredientNames(list []kitchen.Ingredient) string {
	names := make([]string, len(list))
	for i, ing := range list {
		names[i] = ing.String()
	}
	return strings.Join(names, ", ")
}

func drinkNames(list []kitchen.DrinkType) string {
	names := make([]string, len(list))
	for i, d := range list {
		names[i] = d.String()
	}
	return strings.Join(names, ", ")
}

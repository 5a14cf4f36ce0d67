package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-cafe/internal/orders"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Work with order catalog files",
}

var catalogCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate an order catalog",
	Long: `Load a catalog file or directory and report entries that cannot
produce an order, such as unknown ingredients or drinks.

Examples:
  cafe catalog check ./orders.yaml
  cafe catalog check ./catalogs/`,
	Args: cobra.ExactArgs(1),
	RunE: runCatalogCheck,
}

func init() {
	catalogCmd.AddCommand(catalogCheckCmd)
}

func runCatalogCheck(_ *cobra.Command, args []string) error {
	cat, err := orders.LoadCatalog(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Files: %d\n", len(cat.Files()))
	for _, f := range cat.Files() {
		fmt.Printf("  %s\n", f)
	}
	fmt.Println()
	fmt.Println("Orders by level:")
	for _, lvl := range cat.Levels() {
		fmt.Printf("  %-3d %d\n", lvl, cat.Len(lvl))
	}

	problems := cat.Problems()
	if len(problems) == 0 {
		fmt.Println()
		fmt.Println("OK")
		return nil
	}
	fmt.Println()
	fmt.Println("Problems:")
	for _, p := range problems {
		fmt.Printf("  %s\n", p)
	}
	return fmt.Errorf("catalog has %d problem(s)", len(problems))
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-cafe/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available kitchens",
	Long:  `Shows every cafe variant that can be played.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No kitchens available.")
		return
	}

	fmt.Println("Available kitchens:")
	fmt.Println()

	// Calculate column widths
	idW, titleW := len("ID"), len("Title")
	for _, g := range games {
		idW = max(idW, len(g.ID))
		titleW = max(titleW, len(g.Title))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", idW, "ID", titleW, "Title", "Counter")
	fmt.Printf("  %-*s  %-*s  %s\n", idW, "--", titleW, "-----", "-------")
	for _, g := range games {
		fmt.Printf("  %-*s  %-*s  %s\n", idW, g.ID, titleW, g.Title, g.Description)
	}

	fmt.Println()
	fmt.Println("Run 'cafe play <id>' to open a kitchen.")
}

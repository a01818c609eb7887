package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mkravt/piemenu/internal/config"
	"github.com/mkravt/piemenu/internal/platform/tui"
	"github.com/mkravt/piemenu/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats [menu]",
	Short: "Show selection history",
	Long: `Display how often menu items have been picked.

With a menu name the top entries are printed. Without one an interactive
browser opens covering all configured menus.

Examples:
  piemenu stats main
  piemenu stats`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening usage database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 1 {
		printStats(store, args[0])
		return
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	menuIDs := make([]string, len(cfg.Menus))
	for i, m := range cfg.Menus {
		menuIDs[i] = m.ID
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunStats(store, menuIDs, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printStats(store *storage.Store, menuID string) {
	selections, err := store.TopSelections(menuID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving history: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Menu usage - %s\n", menuID)
	fmt.Println()

	if len(selections) == 0 {
		fmt.Println("No selections recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'piemenu show %s' and pick something!\n", menuID)
		return
	}

	fmt.Printf("  %-4s  %-6s  %-30s  %s\n", "Rank", "Uses", "Item", "Last used")
	fmt.Printf("  %-4s  %-6s  %-30s  %s\n", "----", "----", "----", "---------")

	for i, s := range selections {
		fmt.Printf("  %-4d  %-6d  %-30s  %s\n", i+1, s.Count, s.ItemPath, s.LastUsed.Format("2006-01-02 15:04"))
	}

	total, err := store.SelectionCount(menuID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Total: %d selections\n", total)
	}
}

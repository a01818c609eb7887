package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkravt/piemenu/internal/config"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured menus",
	Long:  `Shows every menu defined in the configuration file.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if len(cfg.Menus) == 0 {
		fmt.Println("No menus configured.")
		return
	}

	fmt.Println("Configured menus:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, m := range cfg.Menus {
		if len(m.ID) > maxIDLen {
			maxIDLen = len(m.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Items")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, m := range cfg.Menus {
		fmt.Printf("  %-*s  %d\n", maxIDLen, m.ID, len(m.Items))
	}

	fmt.Println()
	fmt.Println("Run 'piemenu show <id>' to open a menu.")
}

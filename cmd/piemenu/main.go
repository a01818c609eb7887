// piemenu is a radial application launcher for the terminal.
//
// Usage:
//
//	piemenu show [menu]      - Open a menu and run what gets picked
//	piemenu list             - List configured menus
//	piemenu stats [menu]     - Show selection history
//	piemenu validate         - Check the menu configuration
//	piemenu serve            - Serve menus over SSH
//
// Global flags:
//
//	--config <path>  - Set config path (default: ~/.piemenu/menus.yaml)
//	--db <path>      - Set database path (default: ~/.piemenu/piemenu.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "piemenu",
	Short: "Radial launcher menus for your terminal",
	Long: `piemenu opens a radial (pie) menu in the terminal: items sit on a
ring around the center, submenus open further rings, and picking an item
runs its configured action.

Items can be rearranged by dragging them with the mouse; the new order is
remembered. Item directions come from the config, where any item may be
pinned to a fixed angle and the rest spread out evenly.

Available commands:
  show      - Open a menu interactively
  list      - Show configured menus
  stats     - View selection history
  validate  - Check the configuration file
  serve     - Serve menus to SSH clients

Examples:
  piemenu show
  piemenu show work --config ./menus.yaml
  piemenu stats main
  piemenu serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to menus YAML (default: ~/.piemenu/menus.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.piemenu/piemenu.db", "Path to usage database")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(serveCmd)
}

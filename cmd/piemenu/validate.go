package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkravt/piemenu/internal/action"
	"github.com/mkravt/piemenu/internal/config"
	"github.com/mkravt/piemenu/internal/menu"
)

var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Args:  cobra.MaximumNArgs(1),
	Short: "Check the menu configuration",
	Long: `Load the configuration and report every problem found: missing
labels, bad angles, items with no (or more than one) action, and action
types nobody has heard of.

Exits non-zero when the configuration is unusable.

Examples:
  piemenu validate
  piemenu validate --config ./menus.yaml
  piemenu validate --print-default > ~/.piemenu/menus.yaml`,
	Run: runValidate,
}

var flagPrintDefault bool

func init() {
	validateCmd.Flags().BoolVar(&flagPrintDefault, "print-default", false, "Print the built-in default config and exit")
}

func runValidate(cmd *cobra.Command, args []string) {
	if flagPrintDefault {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	path := flagConfig
	if len(args) > 0 {
		path = args[0]
	}

	var (
		cfg config.File
		err error
	)
	if path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load("")
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration:\n%v\n", err)
		os.Exit(1)
	}

	// Structure is fine; now check that every leaf names a known action
	// and that every level actually lays out.
	bad := 0
	for _, m := range cfg.Menus {
		root := m.ToTree()
		err := menu.Walk(root, func(path string, item *menu.Item, _ float64) error {
			if item.IsSubmenu() {
				return nil
			}
			if !action.Exists(item.Action) {
				fmt.Fprintf(os.Stderr, "  %s: unknown action type %q\n", path, item.Action)
				bad++
			}
			return nil
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "  menu %q: %v\n", m.ID, err)
			bad++
		}
	}
	if bad > 0 {
		fmt.Fprintf(os.Stderr, "%d problem(s) found\n", bad)
		os.Exit(1)
	}

	fmt.Printf("OK: %d menu(s) valid\n", len(cfg.Menus))
}

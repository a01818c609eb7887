package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mkravt/piemenu/internal/action"
	"github.com/mkravt/piemenu/internal/config"
	"github.com/mkravt/piemenu/internal/platform/tui"
	"github.com/mkravt/piemenu/internal/storage"
)

var showCmd = &cobra.Command{
	Use:   "show [menu]",
	Short: "Open a menu and run what gets picked",
	Long: `Open the named menu (default: main) as a radial menu.

Controls:
  Mouse        - Point at items, click to pick, drag to rearrange
  Left/Right   - Hover the previous/next item around the ring
  Enter/Space  - Pick the hovered item
  Esc          - Go up one level, or close at the top
  Q            - Close without picking

Examples:
  piemenu show
  piemenu show work
  piemenu show --config ./menus.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runShow,
}

func runShow(cmd *cobra.Command, args []string) {
	menuID := "main"
	if len(args) > 0 {
		menuID = args[0]
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid config: %v\n", err)
		os.Exit(1)
	}

	m, ok := cfg.FindMenu(menuID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown menu %q\n", menuID)
		fmt.Fprintln(os.Stderr, "Run 'piemenu list' to see configured menus.")
		os.Exit(1)
	}
	root := m.ToTree()

	// History and order persistence are best-effort; the menu still works
	// without the database.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: usage database unavailable: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
		if err := store.ApplyOrders(menuID, root); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not apply saved order: %v\n", err)
		}
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	result, err := tui.Run(root, tui.Options{
		MenuID: menuID,
		Store:  store,
		Width:  width,
		Height: height,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if result.Item == nil {
		return
	}

	// The action runs after the TUI has released the terminal.
	act, err := action.Lookup(result.Item.Action)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := act.Run(result.Item.Arg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running %q: %v\n", result.Path, err)
		os.Exit(1)
	}
}

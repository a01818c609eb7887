package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkravt/piemenu/internal/config"
	"github.com/mkravt/piemenu/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagServeMenu   string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a menu to SSH clients",
	Long: `Start an SSH server that lets users browse a menu remotely.

Remote sessions can navigate and rearrange the menu, and selections are
recorded, but item actions never run on the server.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.piemenu/host_key

Examples:
  piemenu serve                           # Listen on :23235 with auto-generated key
  piemenu serve --ssh :2222               # Listen on port 2222
  piemenu serve --menu work               # Serve the "work" menu
  piemenu serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23235`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagServeMenu, "menu", "main", "Menu to serve")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid config: %v\n", err)
		os.Exit(1)
	}
	m, ok := cfg.FindMenu(flagServeMenu)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown menu %q\n", flagServeMenu)
		os.Exit(1)
	}

	srvCfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		MenuID:      flagServeMenu,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(m.ToTree(), srvCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Serving menu %q on %s\n", flagServeMenu, srvCfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23235")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

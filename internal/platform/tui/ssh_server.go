// Serving the menu over SSH via Wish, so a machine's launcher menu can be
// browsed remotely.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/mkravt/piemenu/internal/menu"
	"github.com/mkravt/piemenu/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23235").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.piemenu/host_key.
	HostKeyPath string

	// DBPath is the path to the usage database.
	DBPath string

	// MenuID names the served menu for history and order persistence.
	MenuID string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23235",
		DBPath:      "~/.piemenu/piemenu.db",
		MenuID:      "main",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer wraps a Wish SSH server around a menu tree.
type SSHServer struct {
	config SSHServerConfig
	root   *menu.Item
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates an SSH server serving the given menu tree.
func NewSSHServer(root *menu.Item, cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "piemenu-ssh",
	})

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open usage database", "error", err)
		// Continue without storage
	}

	srv := &SSHServer{
		config: cfg,
		root:   root,
		store:  store,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".piemenu", "host_key")
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session. Every
// session navigates its own clone of the tree, so concurrent reorders do
// not step on each other.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	model, err := NewSessionModel(s.root.Clone(), Options{
		MenuID: s.config.MenuID,
		Store:  s.store,
		Width:  pty.Window.Width,
		Height: pty.Window.Height,
	})
	if err != nil {
		s.logger.Error("cannot open menu", "user", sshSession.User(), "error", err)
		return nil, nil
	}

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// SessionModel wraps the menu model for remote sessions: selections are
// recorded and shown, but item actions never run on the server host.
type SessionModel struct {
	inner    *Model
	selected *Result
	quitting bool
}

// NewSessionModel creates a session model over a menu tree.
func NewSessionModel(root *menu.Item, opts Options) (*SessionModel, error) {
	inner, err := NewModel(root, opts)
	if err != nil {
		return nil, err
	}
	return &SessionModel{inner: inner}, nil
}

// Init initializes the session.
func (m *SessionModel) Init() tea.Cmd {
	return m.inner.Init()
}

// Update routes messages to the menu until it ends, then waits for a key
// on the result screen.
func (m *SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.selected != nil {
		if _, ok := msg.(tea.KeyMsg); ok {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	_, cmd := m.inner.Update(msg)

	if m.inner.quitting {
		if r := m.inner.Result(); r.Item != nil {
			// Swallow the inner quit and show what was picked.
			m.inner.quitting = false
			m.selected = &r
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

// View renders the menu, or the result screen after a selection.
func (m *SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.selected != nil {
		return m.resultView()
	}
	return m.inner.View()
}

func (m *SessionModel) resultView() string {
	c := m.inner.canvas
	c.Clear()
	cx, cy := c.Center()
	c.TextCentered(cx, cy-1, "you picked", ColorGray)
	c.TextCentered(cx, cy, m.selected.Path, ColorBrightWhite)
	c.TextCentered(cx, cy+2, "actions only run locally", ColorGray)
	c.TextCentered(cx, c.Height()-1, "press any key to close", ColorGray)
	return RenderCanvas(c)
}

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

	"github.com/KrzyjoD/brainy-game-forge/internal/scenario"
	"github.com/KrzyjoD/brainy-game-forge/internal/session"
)

// SSHServerConfig holds configuration for the SSH server. Each connection
// gets its own independent single-player session; no game state is shared
// between connections.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23235").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.forge/host_key.
	HostKeyPath string

	// Scenario is the builtin scenario served to connecting players.
	Scenario string

	// TickRate is the frame rate for hosted sessions.
	TickRate int

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23235",
		Scenario:    "orbit-run",
		TickRate:    session.DefaultTickRate,
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer wraps a Wish SSH server for remote play.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "forge-ssh",
	})

	if !scenario.IsBuiltin(cfg.Scenario) {
		return nil, fmt.Errorf("ssh server: unknown builtin scenario %q", cfg.Scenario)
	}

	srv := &SSHServer{
		config: cfg,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".forge", "host_key")
	}

	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
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
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a fresh play session for each SSH connection.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	_, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	sc, err := scenario.LoadBuiltin(s.config.Scenario)
	if err != nil {
		s.logger.Error("cannot load scenario", "scenario", s.config.Scenario, "error", err)
		return nil, nil
	}

	ctl, err := session.New(sc)
	if err != nil {
		s.logger.Error("cannot create session", "scenario", s.config.Scenario, "error", err)
		return nil, nil
	}

	model := NewModel(ctl, sc.Name, s.config.TickRate)
	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
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
	s.logger.Info("starting SSH server",
		"address", s.config.Address,
		"scenario", s.config.Scenario,
	)

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
	return s.server.Shutdown(ctx)
}

package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/KrzyjoD/brainy-game-forge/internal/platform/tui"
)

var (
	flagServeAddress  string
	flagServeHostKey  string
	flagServeScenario string
	flagServeIdle     time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start SSH server for remote play",
	Long: `Start an SSH server that hosts the game for remote players.

Each connection gets its own independent single-player session of the
chosen builtin scenario. Connect with:

  ssh -p 23235 localhost`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagServeAddress, "ssh", ":23235", "SSH listen address")
	serveCmd.Flags().StringVar(&flagServeHostKey, "host-key", "", "Host key path (default: ~/.forge/host_key)")
	serveCmd.Flags().StringVar(&flagServeScenario, "scenario", "orbit-run", "Builtin scenario to host")
	serveCmd.Flags().DurationVar(&flagServeIdle, "idle-timeout", 30*time.Minute, "Close idle connections after this duration")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagServeAddress
	cfg.HostKeyPath = flagServeHostKey
	cfg.Scenario = flagServeScenario
	cfg.TickRate = flagFPS
	cfg.IdleTimeout = flagServeIdle

	srv, err := tui.NewSSHServer(cfg)
	if err != nil {
		return err
	}
	return srv.ListenAndServe()
}

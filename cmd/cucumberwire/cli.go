package main

import (
	"context"
	"log/slog"
	"os"
	"os/exec"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/anuragh27crony/cucumberwire/config"
	"github.com/anuragh27crony/cucumberwire/host"
	"github.com/anuragh27crony/cucumberwire/server"
)

// emptyWorld is the launcher binary's World: this binary links no
// project-specific steps, so it only exercises the bare server lifecycle.
// A project wanting its own steps imports this repository as a library and
// writes its own thin main, the way the original crate's launcher.start
// took per-project register_fns; this binary is ambient scaffolding for
// manually exercising the protocol, not a drop-in per-project launcher.
type emptyWorld struct{}

func newRootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "cucumberwire",
		Short:         "cucumberwire – Cucumber Wire Protocol host launcher",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to cucumberwire.yaml")

	root.AddCommand(newServeCommand(&configPath))
	root.AddCommand(newRunCommand(&configPath))
	return root
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func newServeCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "start the wire server and block until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			log := slog.Default().With("run_id", uuid.NewString())
			h := host.New[emptyWorld](&emptyWorld{})
			s := server.New(cfg.Listen, h)

			handle, err := s.Start()
			if err != nil {
				return err
			}
			log.Info("wire server listening", "addr", s.ListenAddr())

			<-cmd.Context().Done()
			log.Info("shutting down wire server")
			return server.Shutdown(context.Background(), handle)
		},
	}
}

func newRunCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "run -- <driver command> [args...]",
		Short: "start the wire server, run a driver process against it, then stop",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			driverArgs := args
			if len(cfg.Driver) > 0 {
				driverArgs = cfg.Driver
			}

			runID := uuid.NewString()
			log := slog.Default().With("run_id", runID)

			h := host.New[emptyWorld](&emptyWorld{})
			s := server.New(cfg.Listen, h)

			handle, err := s.Start()
			if err != nil {
				return err
			}
			log.Info("wire server listening", "addr", s.ListenAddr())

			driverCmd := driverCommand(driverArgs)
			log.Info("spawning driver", "command", driverArgs)
			if err := driverCmd.Run(); err != nil {
				log.Error("driver process failed", "err", err)
			}

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return server.Shutdown(ctx, handle)
		},
	}
}

// driverCommand builds the external driver process, grounded on the
// original's helpers.rs cucumber_command(): inherit stdout/stderr so the
// driver's own output reaches the operator directly.
func driverCommand(args []string) *exec.Cmd {
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd
}

package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	nircmd "github.com/volkit/go-nircmd"
	"github.com/volkit/go-nircmd/internal/config"
)

// Global flags and state shared by all subcommands
var (
	cfgPath    string
	deviceFlag string
	toolFlag   string
	verbosity  int

	cfg    config.Config
	logger *log.Logger
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "volctl",
		Short: "Control Windows audio output volume",
		Long: `volctl drives a NirCmd binary to set, adjust, and query the volume
and mute state of an audio output device.

The tool binary is located via --tool, the tool_path config key, or
PATH, in that order.`,
		Version:      nircmd.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(cfgPath)
			if err != nil {
				return err
			}
			logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "volctl"})
			logger.SetLevel(logLevel())
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", config.DefaultPath(), "config file path")
	cmd.PersistentFlags().StringVarP(&deviceFlag, "device", "d", "", "target device (default_render|speakers|headphones)")
	cmd.PersistentFlags().StringVar(&toolFlag, "tool", "", "path to the tool binary (default: config, then PATH)")
	cmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity (-v info, -vv debug)")

	cmd.AddCommand(
		newSetCmd(),
		newUpCmd(),
		newDownCmd(),
		newGetCmd(),
		newMuteCmd(),
		newUnmuteCmd(),
		newToggleCmd(),
		newStatusCmd(),
		newWatchCmd(),
		newShellCmd(),
	)

	return cmd
}

// logLevel maps -v counts onto log levels, falling back to the
// configured level when no flags are given.
func logLevel() log.Level {
	switch {
	case verbosity >= 2:
		return log.DebugLevel
	case verbosity == 1:
		return log.InfoLevel
	}
	if lv, err := log.ParseLevel(cfg.LogLevel); err == nil {
		return lv
	}
	return log.WarnLevel
}

// resolveTool finds the tool binary to drive
func resolveTool() (string, error) {
	if toolFlag != "" {
		return toolFlag, nil
	}
	if cfg.ToolPath != "" {
		return cfg.ToolPath, nil
	}
	if path, err := exec.LookPath(nircmd.DefaultToolName); err == nil {
		return path, nil
	}
	return "", fmt.Errorf("no tool binary found: pass --tool, set tool_path in the config, or put %s on PATH", nircmd.DefaultToolName)
}

// newClient builds a client for the selected device and tool
func newClient() (*nircmd.Client, error) {
	tool, err := resolveTool()
	if err != nil {
		return nil, err
	}

	name := deviceFlag
	if name == "" {
		name = cfg.Device
	}
	device, err := nircmd.ParseDevice(name)
	if err != nil {
		return nil, err
	}

	return nircmd.New(nil,
		nircmd.WithToolPath(tool),
		nircmd.WithDevice(device),
		nircmd.WithLogger(logger),
		nircmd.WithLogLevel(logLevel()),
	)
}

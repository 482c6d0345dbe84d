package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <percent>",
		Short: "Set the volume to an absolute percentage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			percent, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("percent must be an integer, got %q", args[0])
			}

			client, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			return client.SetVolume(cmd.Context(), percent)
		},
	}
}

func newUpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up [step]",
		Short: "Raise the volume by a percentage step",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			step, err := stepArg(args)
			if err != nil {
				return err
			}

			client, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			return client.IncreaseVolume(cmd.Context(), step)
		},
	}
}

func newDownCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "down [step]",
		Short: "Lower the volume by a percentage step",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			step, err := stepArg(args)
			if err != nil {
				return err
			}

			client, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			return client.DecreaseVolume(cmd.Context(), step)
		},
	}
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Print the current volume percentage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			volume, err := client.Volume(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), volume)
			return nil
		},
	}
}

// stepArg parses the optional step argument, defaulting to the
// configured step.
func stepArg(args []string) (int, error) {
	if len(args) == 0 {
		return cfg.Step, nil
	}
	step, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("step must be an integer, got %q", args[0])
	}
	return step, nil
}

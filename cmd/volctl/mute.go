package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	nircmd "github.com/volkit/go-nircmd"
)

func newMuteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mute",
		Short: "Mute the target device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(func(ctx context.Context, c *nircmd.Client) error {
				return c.Mute(ctx)
			}, cmd)
		},
	}
}

func newUnmuteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unmute",
		Short: "Unmute the target device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(func(ctx context.Context, c *nircmd.Client) error {
				return c.Unmute(ctx)
			}, cmd)
		},
	}
}

func newToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle",
		Short: "Flip the target device's mute state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(func(ctx context.Context, c *nircmd.Client) error {
				return c.ToggleMute(ctx)
			}, cmd)
		},
	}
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print the current volume and mute state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(func(ctx context.Context, c *nircmd.Client) error {
				volume, err := c.Volume(ctx)
				if err != nil {
					return err
				}
				muted, err := c.Muted(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "device=%s volume=%d%% muted=%t\n", c.Device(), volume, muted)
				return nil
			}, cmd)
		},
	}
}

// withClient runs fn against a freshly constructed client, closing it
// on every path.
func withClient(fn func(context.Context, *nircmd.Client) error, cmd *cobra.Command) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()
	return fn(cmd.Context(), client)
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	nircmd "github.com/volkit/go-nircmd"
)

func newWatchCmd() *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print volume and mute changes until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("interval") {
				interval = time.Duration(cfg.WatchIntervalMS) * time.Millisecond
			}

			client, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			events, cleanup, err := client.Watch(ctx, interval)
			if err != nil {
				return err
			}
			defer func() { _ = cleanup() }()

			return printEvents(ctx, cmd, events)
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", time.Second, "polling interval")
	return cmd
}

func printEvents(ctx context.Context, cmd *cobra.Command, events <-chan nircmd.WatchEvent) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if ev.Err != nil {
				logger.Error("poll failed", "err", ev.Err)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s volume=%d%% muted=%t\n",
				time.Now().Format(time.TimeOnly), ev.Volume, ev.Muted)
		}
	}
}

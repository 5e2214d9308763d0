package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os/signal"
	"syscall"

	"solar-catalog-be/pkg/events"
	pktNats "solar-catalog-be/pkg/nats"

	"github.com/spf13/cobra"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Tail catalog events published to NATS",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		sub, err := pktNats.NewSubscriber(natsURL)
		if err != nil {
			return fmt.Errorf("connect to NATS: %w", err)
		}
		defer sub.Close()

		out := cmd.OutOrStdout()
		err = sub.Subscribe(ctx, pktNats.SubjectPrefix+".>", "", func(_ context.Context, e events.Event) error {
			payload, err := json.Marshal(e.Payload())
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s  %-18s %s\n", e.Timestamp().Format("15:04:05"), e.EventType(), payload)
			return nil
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "Listening on %s.> (ctrl+c to stop)\n", pktNats.SubjectPrefix)
		<-ctx.Done()
		return nil
	},
}

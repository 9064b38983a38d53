package main

import (
	"github.com/spf13/cobra"

	"github.com/sysbrain/vigil/pkg/config"
	"github.com/sysbrain/vigil/pkg/eventlog"
	"github.com/sysbrain/vigil/pkg/output"
)

var eventsTail int

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Show the most recent run events",
	Args:  cobra.NoArgs,
	RunE:  runEvents,
}

func init() {
	eventsCmd.Flags().IntVarP(&eventsTail, "tail", "n", 10, "number of events to show (0 = all)")
	rootCmd.AddCommand(eventsCmd)
}

func runEvents(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	events, err := eventlog.Tail(cfg.EventLogPath(), eventsTail)
	if err != nil {
		return err
	}
	for _, ev := range events {
		output.PrintEvent(ev)
	}
	return nil
}

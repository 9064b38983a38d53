package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/sysbrain/vigil/pkg/agent"
	"github.com/sysbrain/vigil/pkg/cmdrun"
	"github.com/sysbrain/vigil/pkg/config"
	"github.com/sysbrain/vigil/pkg/output"
)

// ErrCheckFailed is returned when a check fails.
var ErrCheckFailed = errors.New("check failed")

var checksCmd = &cobra.Command{
	Use:   "checks",
	Short: "Run the contract checks interactively, without logging or evidence",
	Args:  cobra.NoArgs,
	RunE:  runChecks,
}

func init() {
	rootCmd.AddCommand(checksCmd)
}

// runChecks is the interactive doctor path: results go to the terminal
// instead of the event log, and a failing check fails the command.
func runChecks(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	a := agent.New(cfg, &cmdrun.RealRunner{})
	failed := false
	for _, c := range a.Checks() {
		result := c.Run()
		output.PrintResult(result)
		if !result.OK() {
			failed = true
		}
	}

	if failed {
		return ErrCheckFailed
	}
	return nil
}

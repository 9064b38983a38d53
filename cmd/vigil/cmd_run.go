package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sysbrain/vigil/pkg/agent"
	"github.com/sysbrain/vigil/pkg/cmdrun"
	"github.com/sysbrain/vigil/pkg/config"
	"github.com/sysbrain/vigil/pkg/output"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one observation: all checks, one event, evidence on failure",
	Args:  cobra.NoArgs,
	RunE:  runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// runRun exits non-zero only when the observer itself cannot record its
// result (storage failure). An unhealthy observed system is an ordinary,
// successfully recorded outcome; health lives in the log and evidence,
// not in this exit code.
func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	a := agent.New(cfg, &cmdrun.RealRunner{})
	report, err := a.Run()
	if err != nil {
		return err
	}

	output.PrintEvent(report.Event)
	if report.BundleDir != "" {
		fmt.Printf("evidence: %s\n", report.BundleDir)
	}
	for _, d := range report.Prune.Deleted {
		fmt.Printf("pruned: %s\n", d)
	}
	for _, e := range report.Prune.Errors {
		fmt.Fprintf(os.Stderr, "prune: %s\n", e)
	}
	return nil
}

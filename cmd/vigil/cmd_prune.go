package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sysbrain/vigil/pkg/config"
	"github.com/sysbrain/vigil/pkg/evidence"
)

var pruneKeep int

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete the oldest evidence bundles beyond the keep-count",
	Args:  cobra.NoArgs,
	RunE:  runPrune,
}

func init() {
	pruneCmd.Flags().IntVar(&pruneKeep, "keep", -1, "bundles to retain (default: configured keep-count)")
	rootCmd.AddCommand(pruneCmd)
}

func runPrune(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	keep := pruneKeep
	if keep < 0 {
		keep = cfg.EvidenceKeep
	}
	if keep <= 0 {
		fmt.Println("pruning disabled (keep-count is 0)")
		return nil
	}

	store := &evidence.Store{Root: cfg.EvidenceRoot()}
	res := store.Prune(keep)

	for _, d := range res.Deleted {
		fmt.Printf("pruned: %s\n", d)
	}
	for _, e := range res.Errors {
		fmt.Fprintf(os.Stderr, "prune: %s\n", e)
	}
	fmt.Printf("kept %d bundle(s)\n", res.Kept)
	return nil
}

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pubmed-codelinks/internal/sink"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print aggregate counts from an existing results database",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, cleanup, err := newLogger(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		scfg := sinkConfig(cmd)
		store, err := sink.Open(scfg, logger)
		if err != nil {
			return err
		}
		defer store.Close()

		sum, err := store.Summarize(context.Background())
		if err != nil {
			return err
		}

		fmt.Printf("Total publications:        %d\n", sum.Total)
		fmt.Printf("With repository links:     %d\n", sum.WithLink)
		fmt.Printf("Without repository links:  %d\n", sum.WithoutLink)
		return nil
	},
}

func init() {
	statsCmd.Flags().String("db", "pubmed_codelinks.db", "results database file")

	rootCmd.AddCommand(statsCmd)
}

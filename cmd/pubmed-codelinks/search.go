package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pubmed-codelinks/internal/harvest"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Collect all PMIDs matching a query",
	Long: `Search pages through PubMed esearch results for the query and prints the
number of PMIDs collected. With --out, the full ID list is saved to a YAML
file that the fetch subcommand can read later.`,
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	logger, cleanup, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	hcfg := harvestConfig(cmd)
	pipeline := newPipeline(hcfg, logger)

	ids, err := pipeline.CollectIDs(context.Background(), hcfg.Query, hcfg.PageSize)
	if err != nil {
		return err
	}

	fmt.Printf("%d PMIDs collected for query %q\n", len(ids), hcfg.Query)

	if outPath, _ := cmd.Flags().GetString("out"); outPath != "" {
		if err := harvest.WriteIDFile(outPath, hcfg.Query, ids); err != nil {
			return err
		}
		fmt.Println("ID list written to", outPath)
	}
	return nil
}

func init() {
	searchCmd.Flags().String("query", "github", "Entrez search term")
	searchCmd.Flags().Int("page-size", 10000, "esearch page size (retmax)")
	searchCmd.Flags().Duration("delay", time.Second, "pause between remote calls")
	searchCmd.Flags().String("out", "", "write the collected PMIDs to this YAML file")

	rootCmd.AddCommand(searchCmd)
}

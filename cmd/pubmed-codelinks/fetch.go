package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pubmed-codelinks/internal/harvest"
	"github.com/pdiddy/pubmed-codelinks/pkg/types"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [pmid...]",
	Short: "Fetch record details and extract repository links",
	Long: `Fetch retrieves full PubMed records for the given PMIDs, batched per the
fetch size, and prints each record's title and extracted GitHub link.
PMIDs come from arguments or from an ID file saved by search --out.`,
	RunE: runFetch,
}

func runFetch(cmd *cobra.Command, args []string) error {
	logger, cleanup, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	ids := args
	if idsPath, _ := cmd.Flags().GetString("ids-file"); idsPath != "" {
		f, err := harvest.ReadIDFile(idsPath)
		if err != nil {
			return err
		}
		ids = append(ids, f.IDs...)
	}
	if len(ids) == 0 {
		return fmt.Errorf("no PMIDs given: pass them as arguments or with --ids-file")
	}

	hcfg := harvestConfig(cmd)
	pipeline := newPipeline(hcfg, logger)

	pubs, err := pipeline.FetchAll(context.Background(), ids, hcfg.FetchSize)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatPublications(pubs, jsonOutput)
}

func formatPublications(pubs []types.Publication, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(pubs)
	}

	if len(pubs) == 0 {
		fmt.Println("No records found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-10s  %-60s  %s\n", "PMID", "Title", "Repository")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 110))

	withLink := 0
	for _, p := range pubs {
		title := p.Title
		if len(title) > 60 {
			title = title[:57] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-10s  %-60s  %s\n", p.PMID, title, p.RepoURL)
		if p.HasRepoURL {
			withLink++
		}
	}

	fmt.Fprintf(os.Stdout, "\n%d records, %d with repository links\n", len(pubs), withLink)
	return nil
}

func init() {
	fetchCmd.Flags().String("ids-file", "", "YAML ID file written by search --out")
	fetchCmd.Flags().Int("fetch-size", 100, "PMIDs per efetch call")
	fetchCmd.Flags().Duration("delay", time.Second, "pause between remote calls")
	fetchCmd.Flags().Bool("json", false, "output records as JSON")

	rootCmd.AddCommand(fetchCmd)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pubmed-codelinks/internal/entrez"
	"github.com/pdiddy/pubmed-codelinks/internal/harvest"
	"github.com/pdiddy/pubmed-codelinks/internal/httputil"
	"github.com/pdiddy/pubmed-codelinks/internal/sink"
	"github.com/pdiddy/pubmed-codelinks/pkg/types"
)

var harvestCmd = &cobra.Command{
	Use:   "harvest",
	Short: "Run the full pipeline: search, fetch, persist",
	Long: `Harvest pages through PubMed for all records matching the query, fetches
their full records in batches, extracts GitHub repository links, and writes
the results into a fresh SQLite table. Any previous results database is
discarded first.`,
	RunE: runHarvest,
}

func runHarvest(cmd *cobra.Command, args []string) error {
	logger, cleanup, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	hcfg := harvestConfig(cmd)
	scfg := sinkConfig(cmd)

	store, err := sink.Reset(scfg, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	pipeline := newPipeline(hcfg, logger)
	stats, err := pipeline.Run(context.Background(), store, hcfg)
	if err != nil {
		return err
	}

	fmt.Printf("\n%d publications persisted to %s (%d with repository links, %d without)\n",
		stats.Summary.Total, scfg.Path, stats.Summary.WithLink, stats.Summary.WithoutLink)

	if reportPath, _ := cmd.Flags().GetString("report"); reportPath != "" {
		if err := harvest.WriteReport(reportPath, harvest.NewReport(hcfg.Query, stats)); err != nil {
			return err
		}
		fmt.Println("Report written to", reportPath)
	}
	return nil
}

// --- shared helpers ---

// newPipeline wires the Entrez client and the rate limiter for a run.
func newPipeline(hcfg types.HarvestConfig, logger zerolog.Logger) *harvest.Pipeline {
	return &harvest.Pipeline{
		Entrez:  entrez.NewClient(entrezConfig(), logger),
		Limiter: httputil.NewFixedDelay(hcfg.RequestDelay),
		Log:     logger,
	}
}

func harvestConfig(cmd *cobra.Command) types.HarvestConfig {
	cfg := types.HarvestConfig{
		Query:        flagOrConfigString(cmd, "query", "harvest.query", "github"),
		PageSize:     flagOrConfigInt(cmd, "page-size", "harvest.page_size", 10000),
		RequestDelay: flagOrConfigDuration(cmd, "delay", "harvest.request_delay", time.Second),
	}
	if cmd.Flags().Lookup("fetch-size") != nil {
		cfg.FetchSize = flagOrConfigInt(cmd, "fetch-size", "harvest.fetch_size", 100)
	}
	return cfg
}

func sinkConfig(cmd *cobra.Command) types.SinkConfig {
	return types.SinkConfig{
		Path: flagOrConfigString(cmd, "db", "sink.path", "pubmed_codelinks.db"),
	}
}

// flagOrConfigString resolves a setting: an explicitly set flag wins, then
// the config file, then the compiled-in default.
func flagOrConfigString(cmd *cobra.Command, flag, key, fallback string) string {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetString(flag)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return fallback
}

func flagOrConfigInt(cmd *cobra.Command, flag, key string, fallback int) int {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetInt(flag)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetInt(key)
	}
	return fallback
}

func flagOrConfigDuration(cmd *cobra.Command, flag, key string, fallback time.Duration) time.Duration {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetDuration(flag)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetDuration(key)
	}
	return fallback
}

func init() {
	harvestCmd.Flags().String("query", "github", "Entrez search term")
	harvestCmd.Flags().Int("page-size", 10000, "esearch page size (retmax)")
	harvestCmd.Flags().Int("fetch-size", 100, "PMIDs per efetch call")
	harvestCmd.Flags().Duration("delay", time.Second, "pause between remote calls")
	harvestCmd.Flags().String("db", "pubmed_codelinks.db", "results database file")
	harvestCmd.Flags().String("report", "", "write a YAML run report to this file")

	rootCmd.AddCommand(harvestCmd)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pubmed-codelinks CLI.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pubmed-codelinks/internal/secrets"
	"github.com/pdiddy/pubmed-codelinks/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns fallback when set, otherwise the secret value for
// key if one was loaded.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the pubmed-codelinks CLI.
var rootCmd = &cobra.Command{
	Use:   "pubmed-codelinks",
	Short: "Harvest GitHub repository links from PubMed records",
	Long: `pubmed-codelinks pages through PubMed search results, fetches the full
bibliographic records in batches, extracts the first GitHub repository URL
found anywhere in each record's text, and saves everything into a local
SQLite table for querying.

Each pipeline stage is also available as its own subcommand: search collects
PMIDs, fetch retrieves record details, harvest runs the whole pipeline, and
stats re-reads the counts from an existing results database.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pubmed-codelinks.yaml or ~/.config/pubmed-codelinks/config.yaml)")
	rootCmd.PersistentFlags().String("log-file", "pubmed_codelinks.log", "file receiving a copy of all log output")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug-level logging")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pubmed-codelinks")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pubmed-codelinks"))
		}
	}

	viper.SetEnvPrefix("PUBMED_CODELINKS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newLogger builds the run logger: console output plus an optional log
// file, at info level or debug level with --verbose.
func newLogger(cmd *cobra.Command) (zerolog.Logger, func(), error) {
	logFile, _ := cmd.Flags().GetString("log-file")
	verbose, _ := cmd.Flags().GetBool("verbose")

	level := zerolog.InfoLevel
	if verbose || strings.EqualFold(viper.GetString("log.level"), "debug") {
		level = zerolog.DebugLevel
	}
	if viper.IsSet("log.file") && !cmd.Flags().Changed("log-file") {
		logFile = viper.GetString("log.file")
	}

	writers := []io.Writer{zerolog.ConsoleWriter{Out: os.Stdout}}
	cleanup := func() {}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return zerolog.Logger{}, nil, fmt.Errorf("opening log file %s: %w", logFile, err)
		}
		writers = append(writers, f)
		cleanup = func() { f.Close() }
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().Timestamp().Logger()
	return logger, cleanup, nil
}

// entrezConfig assembles the E-utilities client settings from the config
// file and loaded secrets.
func entrezConfig() types.EntrezConfig {
	cfg := types.EntrezConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   30 * time.Second,
			UserAgent: "pubmed-codelinks/" + version,
		},
		DB: "pubmed",
	}
	if viper.IsSet("entrez.timeout") {
		cfg.Timeout = viper.GetDuration("entrez.timeout")
	}
	if v := viper.GetString("entrez.user_agent"); v != "" {
		cfg.UserAgent = v
	}
	if v := viper.GetString("entrez.db"); v != "" {
		cfg.DB = v
	}
	cfg.Email = secretDefault(secrets.EntrezEmail, viper.GetString("entrez.email"))
	cfg.APIKey = secretDefault(secrets.NCBIAPIKey, viper.GetString("entrez.api_key"))
	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

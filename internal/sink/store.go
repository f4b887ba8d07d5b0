// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sink persists harvested publications into a local SQLite table
// and answers aggregate queries over it.
package sink

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"

	"github.com/pdiddy/pubmed-codelinks/pkg/types"
)

// Store manages the results database.
type Store struct {
	db   *sql.DB
	path string
	log  zerolog.Logger
}

// Summary holds the aggregate counts over the persisted table.
type Summary struct {
	// Total is the number of persisted publications.
	Total int

	// WithLink counts publications whose repo_url is set.
	WithLink int

	// WithoutLink counts publications without a repository link.
	WithoutLink int
}

// Reset removes any existing database file at cfg.Path, then opens a fresh
// database with the publications schema. Each run starts from an empty
// table: the sink is a full refresh, never an append.
func Reset(cfg types.SinkConfig, logger zerolog.Logger) (*Store, error) {
	if err := os.Remove(cfg.Path); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("removing previous database %s: %w", cfg.Path, err)
	}
	logger.Debug().Str("path", cfg.Path).Msg("previous results discarded")

	s, err := open(cfg, logger)
	if err != nil {
		return nil, err
	}
	if err := s.createSchema(); err != nil {
		s.db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Open opens an existing database at cfg.Path for querying. It fails when
// the file does not exist.
func Open(cfg types.SinkConfig, logger zerolog.Logger) (*Store, error) {
	if _, err := os.Stat(cfg.Path); err != nil {
		return nil, fmt.Errorf("no results database at %s: run harvest first", cfg.Path)
	}
	return open(cfg, logger)
}

func open(cfg types.SinkConfig, logger zerolog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite3", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return &Store{db: db, path: cfg.Path, log: logger}, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS publications (
		pmid TEXT,
		title TEXT,
		abstract TEXT,
		repo_url TEXT,
		has_repo_url INTEGER NOT NULL
	)`)
	return err
}

// Persist bulk-inserts all publications in one transaction and returns the
// aggregate counts, read back from the table rather than the input slice so
// the summary reflects what was actually stored. An empty input is a
// warning, not an error.
func (s *Store) Persist(ctx context.Context, pubs []types.Publication) (Summary, error) {
	if len(pubs) == 0 {
		s.log.Warn().Msg("no publications to insert")
		return s.Summarize(ctx)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Summary{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO publications (pmid, title, abstract, repo_url, has_repo_url)
		 VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return Summary{}, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range pubs {
		_, err := stmt.ExecContext(ctx,
			p.PMID, nullable(p.Title), nullable(p.Abstract), nullable(p.RepoURL), p.HasRepoURL)
		if err != nil {
			return Summary{}, fmt.Errorf("inserting publication %s: %w", p.PMID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Summary{}, fmt.Errorf("committing insert: %w", err)
	}

	s.log.Info().Int("rows", len(pubs)).Str("path", s.path).Msg("results saved")
	return s.Summarize(ctx)
}

// Summarize computes the aggregate counts with a single query over the
// persisted table. COUNT(repo_url) skips NULLs, so it counts exactly the
// rows with a link.
func (s *Store) Summarize(ctx context.Context) (Summary, error) {
	var sum Summary
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COUNT(repo_url) FROM publications`,
	).Scan(&sum.Total, &sum.WithLink)
	if err != nil {
		return Summary{}, fmt.Errorf("querying summary: %w", err)
	}
	sum.WithoutLink = sum.Total - sum.WithLink
	return sum, nil
}

// nullable maps an empty string to SQL NULL so absent fields stay absent in
// the table and aggregate counts over them behave correctly.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

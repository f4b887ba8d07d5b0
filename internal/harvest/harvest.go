// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package harvest orchestrates the pipeline: page through esearch for
// PMIDs, fetch record details in batches, persist into the sink.
package harvest

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pdiddy/pubmed-codelinks/internal/entrez"
	"github.com/pdiddy/pubmed-codelinks/internal/httputil"
	"github.com/pdiddy/pubmed-codelinks/internal/sink"
	"github.com/pdiddy/pubmed-codelinks/pkg/types"
)

// Pipeline wires the stages together. All remote calls after the first are
// paced by Limiter.
type Pipeline struct {
	Entrez  *entrez.Client
	Limiter httputil.Limiter
	Log     zerolog.Logger
}

// CollectIDs pages through esearch until the result set is exhausted and
// returns all PMIDs in server order. A page shorter than pageSize is the
// authoritative end-of-results signal; the server-reported Count only
// short-circuits the loop, since it can overstate the retrievable set.
func (p *Pipeline) CollectIDs(ctx context.Context, query string, pageSize int) ([]string, error) {
	if query == "" {
		return nil, fmt.Errorf("empty query")
	}
	if pageSize <= 0 {
		return nil, fmt.Errorf("non-positive page size %d", pageSize)
	}

	var all []string
	total := -1

	for offset := 0; ; offset += pageSize {
		if offset > 0 {
			if err := p.Limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		page, err := p.Entrez.Search(ctx, query, offset, pageSize)
		if err != nil {
			return nil, err
		}
		if total < 0 && page.HasCount {
			total = page.Count
			p.Log.Info().Int("count", total).Msg("total results reported by PubMed")
		}

		all = append(all, page.IDs...)

		if len(page.IDs) < pageSize {
			break
		}
		if total >= 0 && len(all) >= total {
			break
		}
	}

	p.Log.Info().Int("ids", len(all)).Str("query", query).Msg("PMID collection complete")
	return all, nil
}

// FetchAll partitions ids into batches of batchSize and fetches each in
// turn, pausing between batches. Results keep the input order.
func (p *Pipeline) FetchAll(ctx context.Context, ids []string, batchSize int) ([]types.Publication, error) {
	if batchSize <= 0 {
		return nil, fmt.Errorf("non-positive batch size %d", batchSize)
	}

	var pubs []types.Publication
	for i := 0; i < len(ids); i += batchSize {
		if i > 0 {
			if err := p.Limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		end := i + batchSize
		if end > len(ids) {
			end = len(ids)
		}

		batch, err := p.Entrez.Fetch(ctx, ids[i:end])
		if err != nil {
			return nil, err
		}
		pubs = append(pubs, batch...)
		p.Log.Debug().Int("batch", i/batchSize+1).Int("fetched", len(pubs)).Msg("batch complete")
	}

	p.Log.Info().Int("publications", len(pubs)).Msg("detail fetch complete")
	return pubs, nil
}

// Stats holds the outcome of a full pipeline run.
type Stats struct {
	IDsFound int
	Fetched  int
	Summary  sink.Summary
}

// Run executes the full pipeline against store and returns the run
// statistics. Any remote or parse failure aborts the run before anything
// is written; the insert happens once, at the end.
func (p *Pipeline) Run(ctx context.Context, store *sink.Store, cfg types.HarvestConfig) (Stats, error) {
	ids, err := p.CollectIDs(ctx, cfg.Query, cfg.PageSize)
	if err != nil {
		return Stats{}, err
	}

	pubs, err := p.FetchAll(ctx, ids, cfg.FetchSize)
	if err != nil {
		return Stats{}, err
	}

	summary, err := store.Persist(ctx, pubs)
	if err != nil {
		return Stats{}, err
	}

	p.Log.Info().
		Int("total", summary.Total).
		Int("with_link", summary.WithLink).
		Int("without_link", summary.WithoutLink).
		Msg("harvest complete")
	return Stats{IDsFound: len(ids), Fetched: len(pubs), Summary: summary}, nil
}

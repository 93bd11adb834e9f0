// Package enrich attaches Wikipedia summaries to leader records. A single
// Enricher owns a bounded worker pool that is created once per pipeline run
// and reused across country batches.
package enrich

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"runtime"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/leaders-pipeline/models"
	"github.com/dtnitsch/leaders-pipeline/pkg/api"
	"github.com/dtnitsch/leaders-pipeline/pkg/extract"
	"github.com/dtnitsch/leaders-pipeline/pkg/pagemeta"
)

// Enricher fetches reference pages and fills in leader summaries.
type Enricher struct {
	client  *api.Client
	logger  *slog.Logger
	workers int

	startOnce sync.Once
	jobs      chan job
	wg        sync.WaitGroup
}

type job struct {
	ctx     context.Context
	index   int
	leader  models.Leader
	results chan<- result
}

type result struct {
	index  int
	leader models.Leader
	err    error
}

// NewEnricher creates an Enricher. workers <= 0 sizes the pool to the
// number of available CPUs.
func NewEnricher(client *api.Client, logger *slog.Logger, workers int) *Enricher {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Enricher{
		client:  client,
		logger:  logger,
		workers: workers,
	}
}

// Workers returns the pool size.
func (e *Enricher) Workers() int {
	return e.workers
}

// Start launches the worker pool. EnrichAll starts the pool lazily on the
// first concurrent batch, so calling Start directly is optional.
func (e *Enricher) Start() {
	e.startOnce.Do(func() {
		e.jobs = make(chan job)
		for w := 1; w <= e.workers; w++ {
			e.wg.Add(1)
			go e.worker(w)
		}
		e.logger.Debug("enrichment pool started", "workers", e.workers)
	})
}

// Close shuts the pool down and waits for in-flight jobs to finish. Safe
// to call when the pool was never started.
func (e *Enricher) Close() {
	if e.jobs == nil {
		return
	}
	close(e.jobs)
	e.wg.Wait()
}

func (e *Enricher) worker(id int) {
	defer e.wg.Done()
	for j := range e.jobs {
		leader, err := e.EnrichOne(j.ctx, j.leader)
		if err != nil {
			e.logger.Error("enrichment failed", "worker_id", id, "url", j.leader.WikipediaURL, "error", err)
		}
		j.results <- result{index: j.index, leader: leader, err: err}
	}
}

// EnrichOne decodes the leader's Wikipedia URL, fetches the page, and sets
// the summary from its first qualifying paragraph. Leaders without a URL
// are returned unchanged.
func (e *Enricher) EnrichOne(ctx context.Context, leader models.Leader) (models.Leader, error) {
	if leader.WikipediaURL == "" {
		return leader, nil
	}

	decoded := DecodeURL(leader.WikipediaURL)
	leader.WikipediaURL = decoded

	// Progress visibility: the decoded URL reads correctly for Cyrillic
	// and Arabic titles.
	e.logger.Info("fetching reference page", "url", decoded)

	rawHTML, err := e.client.GetPageBytes(ctx, decoded)
	if err != nil {
		return leader, fmt.Errorf("failed to fetch reference page for %s %s: %w", leader.FirstName, leader.LastName, err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(rawHTML))
	if err != nil {
		return leader, fmt.Errorf("failed to parse reference page %s: %w", decoded, err)
	}
	leader.Summary = extract.FirstParagraph(doc)

	if meta := pagemeta.Analyze(decoded, rawHTML); meta != nil {
		e.logger.Debug("reference page metadata", "url", decoded, "title", meta.Title, "site", meta.SiteName)
	}

	return leader, nil
}

// EnrichAll enriches a batch of leaders, preserving input order in the
// returned slice. In concurrent mode the batch is spread over the worker
// pool; the first error fails the whole batch, surfacing when results are
// collected.
func (e *Enricher) EnrichAll(ctx context.Context, leaders []models.Leader, concurrent bool) ([]models.Leader, error) {
	if !concurrent {
		enriched := make([]models.Leader, len(leaders))
		for i, leader := range leaders {
			out, err := e.EnrichOne(ctx, leader)
			if err != nil {
				return nil, err
			}
			enriched[i] = out
		}
		return enriched, nil
	}

	e.Start()

	results := make(chan result, len(leaders))
	for i, leader := range leaders {
		e.jobs <- job{ctx: ctx, index: i, leader: leader, results: results}
	}

	enriched := make([]models.Leader, len(leaders))
	var firstErr error
	for range leaders {
		r := <-results
		enriched[r.index] = r.leader
		if r.err != nil && firstErr == nil {
			firstErr = r.err
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return enriched, nil
}

// DecodeURL percent-decodes a URL so escaped international characters
// render as literal text. Input that cannot be decoded is returned as-is.
func DecodeURL(raw string) string {
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}

// Package pipeline sequences a full scrape: authenticate, list countries,
// fetch and enrich leaders per country, aggregate, and write the output
// file.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/dtnitsch/leaders-pipeline/models"
	"github.com/dtnitsch/leaders-pipeline/pkg/analytics"
	"github.com/dtnitsch/leaders-pipeline/pkg/api"
	"github.com/dtnitsch/leaders-pipeline/pkg/db"
	"github.com/dtnitsch/leaders-pipeline/pkg/enrich"
	"github.com/dtnitsch/leaders-pipeline/pkg/langid"
	"github.com/dtnitsch/leaders-pipeline/pkg/mapreduce"
	"github.com/dtnitsch/leaders-pipeline/pkg/output"
	runindex "github.com/dtnitsch/leaders-pipeline/pkg/report"
)

// Options selects how a single run behaves.
type Options struct {
	// LimitPerCountry caps the leader list per country after fetching.
	// Zero or negative keeps everything.
	LimitPerCountry int

	// Concurrent spreads each country's enrichment batch over the
	// worker pool instead of enriching one leader at a time.
	Concurrent bool

	// Verbose prints a sample of the collected data to stdout.
	Verbose bool
}

// Report carries the observable results of one run.
type Report struct {
	RunID       int64
	Mode        string
	Countries   int
	Leaders     int
	Enriched    int
	Duration    time.Duration
	OutputPath  string
	TopKeywords []string
	Languages   []string
}

// Pipeline wires the API client, the enrichment pool, and the output
// writer into one runnable unit.
type Pipeline struct {
	client     *api.Client
	enricher   *enrich.Enricher
	writer     *output.Writer
	detector   *langid.Detector
	history    *db.DB
	logger     *slog.Logger
	outputPath string
}

// New assembles a Pipeline. history and detector may be nil; run history
// and language stats are then skipped.
func New(client *api.Client, enricher *enrich.Enricher, history *db.DB, detector *langid.Detector, logger *slog.Logger, outputPath string) *Pipeline {
	return &Pipeline{
		client:     client,
		enricher:   enricher,
		writer:     output.NewWriter(),
		detector:   detector,
		history:    history,
		logger:     logger,
		outputPath: outputPath,
	}
}

// Run executes one full scrape and returns its report. Any failure along
// the way aborts the run; there is no retry and no partial output.
func (p *Pipeline) Run(ctx context.Context, opts Options) (*Report, error) {
	start := time.Now()
	mode := "sequential"
	if opts.Concurrent {
		mode = "concurrent"
	}
	p.logger.Info("starting run", "mode", mode, "limit_per_country", opts.LimitPerCountry, "workers", p.enricher.Workers())

	if _, err := p.client.AcquireCookie(ctx); err != nil {
		return nil, fmt.Errorf("failed to acquire session cookie: %w", err)
	}

	countries, err := p.client.Countries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list countries: %w", err)
	}
	p.logger.Info("countries listed", "count", len(countries))

	leadersByCountry := models.NewLeadersByCountry()
	for _, code := range countries {
		leaders, err := p.client.Leaders(ctx, code)
		if err != nil {
			return nil, fmt.Errorf("failed to list leaders for %q: %w", code, err)
		}

		// The full list is always requested; the cap applies after the
		// fetch, before enrichment.
		if opts.LimitPerCountry > 0 && len(leaders) > opts.LimitPerCountry {
			leaders = leaders[:opts.LimitPerCountry]
		}

		enriched, err := p.enricher.EnrichAll(ctx, leaders, opts.Concurrent)
		if err != nil {
			return nil, fmt.Errorf("failed to enrich leaders for %q: %w", code, err)
		}
		leadersByCountry.Add(code, enriched)
		p.logger.Info("country enriched", "country", code, "leaders", len(enriched))
	}

	if err := p.writer.Write(leadersByCountry, p.outputPath); err != nil {
		return nil, err
	}
	elapsed := time.Since(start)
	p.logger.Info("output written", "path", p.outputPath, "elapsed", elapsed)

	result := &Report{
		Mode:       mode,
		Countries:  leadersByCountry.Len(),
		Leaders:    leadersByCountry.TotalLeaders(),
		Duration:   elapsed,
		OutputPath: p.outputPath,
	}
	p.collectStats(leadersByCountry, result)

	if opts.Verbose {
		printSample(leadersByCountry)
	}

	p.recordRun(opts, result)

	return result, nil
}

// collectStats aggregates summary word counts and language distribution.
// This runs after the elapsed time snapshot; it is reporting, not part of
// the measured scrape.
func (p *Pipeline) collectStats(leadersByCountry *models.LeadersByCountry, result *Report) {
	a := &analytics.Analytics{}
	var freqs []map[string]int
	var summaries []string

	for _, code := range leadersByCountry.Codes() {
		leaders, _ := leadersByCountry.Get(code)
		for _, leader := range leaders {
			if leader.Summary == "" {
				continue
			}
			result.Enriched++
			summaries = append(summaries, leader.Summary)
			freqs = append(freqs, mapreduce.Map(leader.Summary, a))
		}
	}

	result.TopKeywords = mapreduce.TopKeywords(mapreduce.Reduce(freqs), 10)
	if p.detector != nil {
		result.Languages = langid.Format(p.detector.Distribution(summaries))
	}
}

// recordRun persists the run in the history DB and the YAML run index.
// History failures are logged, not fatal; the scrape itself succeeded.
func (p *Pipeline) recordRun(opts Options, result *Report) {
	if p.history == nil {
		return
	}

	id, err := p.history.InsertRun(db.RunRecord{
		Mode:            result.Mode,
		LimitPerCountry: opts.LimitPerCountry,
		Countries:       result.Countries,
		Leaders:         result.Leaders,
		Enriched:        result.Enriched,
		Duration:        result.Duration,
		OutputPath:      result.OutputPath,
		TopKeywords:     result.TopKeywords,
		Languages:       result.Languages,
	})
	if err != nil {
		p.logger.Warn("failed to record run in history", "error", err)
		return
	}
	result.RunID = id

	indexPath := filepath.Join(filepath.Dir(p.outputPath), "runs.yaml")
	err = runindex.UpdateIndex(indexPath, runindex.Info{
		RunID:     id,
		Mode:      result.Mode,
		Created:   time.Now(),
		Countries: result.Countries,
		Leaders:   result.Leaders,
		Enriched:  result.Enriched,
		Duration:  result.Duration.Seconds(),
		Output:    result.OutputPath,
		Languages: result.Languages,
	})
	if err != nil {
		p.logger.Warn("failed to update run index", "error", err)
	}
}

// printSample prints the first few countries and leaders for inspection.
func printSample(leadersByCountry *models.LeadersByCountry) {
	codes := leadersByCountry.Codes()
	if len(codes) > 3 {
		codes = codes[:3]
	}
	for _, code := range codes {
		fmt.Printf("\nCountry: %s\n", code)
		leaders, _ := leadersByCountry.Get(code)
		if len(leaders) > 5 {
			leaders = leaders[:5]
		}
		for _, leader := range leaders {
			fmt.Printf("- %s %s: %s...\n", leader.FirstName, leader.LastName, truncate(leader.Summary, 100))
		}
	}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// Package scrape implements the scrape and compare CLI commands.
package scrape

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/leaders-pipeline/models"
	"github.com/dtnitsch/leaders-pipeline/pkg/api"
	"github.com/dtnitsch/leaders-pipeline/pkg/db"
	"github.com/dtnitsch/leaders-pipeline/pkg/enrich"
	"github.com/dtnitsch/leaders-pipeline/pkg/langid"
	"github.com/dtnitsch/leaders-pipeline/pkg/pipeline"
)

// newLogger builds the JSON logger all commands share.
func newLogger(c *cli.Context) *slog.Logger {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	if c.Bool("verbose") {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// loadConfig merges the config file with CLI flag overrides.
func loadConfig(c *cli.Context) (models.Config, error) {
	config, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return config, err
	}
	if c.IsSet("limit") {
		config.LimitPerCountry = c.Int("limit")
	}
	if c.IsSet("workers") {
		config.WorkerCount = c.Int("workers")
	}
	if c.IsSet("output") {
		config.OutputPath = c.String("output")
	}
	return config, nil
}

// buildPipeline assembles a ready-to-run pipeline from config. The
// returned cleanup closes the worker pool and history DB.
func buildPipeline(config models.Config, logger *slog.Logger) (*pipeline.Pipeline, func(), error) {
	history, err := db.Open(config.HistoryDB)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open history database: %w", err)
	}

	client := api.NewClient(config.BaseURL, config.UserAgent)
	enricher := enrich.NewEnricher(client, logger, config.WorkerCount)
	detector := langid.NewDetector()
	p := pipeline.New(client, enricher, history, detector, logger, config.OutputPath)

	cleanup := func() {
		enricher.Close()
		history.Close()
	}
	return p, cleanup, nil
}

// ScrapeAction runs the pipeline once.
func ScrapeAction(c *cli.Context) error {
	logger := newLogger(c)

	config, err := loadConfig(c)
	if err != nil {
		return err
	}

	p, cleanup, err := buildPipeline(config, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := p.Run(c.Context, pipeline.Options{
		LimitPerCountry: config.LimitPerCountry,
		Concurrent:      !c.Bool("sequential"),
		Verbose:         !c.Bool("quiet"),
	})
	if err != nil {
		return err
	}

	printReport(result)
	return nil
}

// CompareAction runs the pipeline twice, concurrent then sequential, and
// prints a timing comparison.
func CompareAction(c *cli.Context) error {
	logger := newLogger(c)

	config, err := loadConfig(c)
	if err != nil {
		return err
	}

	var elapsed [2]float64
	for i, concurrent := range []bool{true, false} {
		p, cleanup, err := buildPipeline(config, logger)
		if err != nil {
			return err
		}

		result, runErr := p.Run(c.Context, pipeline.Options{
			LimitPerCountry: config.LimitPerCountry,
			Concurrent:      concurrent,
			Verbose:         !c.Bool("quiet"),
		})
		cleanup()
		if runErr != nil {
			return runErr
		}

		elapsed[i] = result.Duration.Seconds()
		fmt.Printf("Run (mode=%s): %.2f seconds\n\n", result.Mode, elapsed[i])
	}

	fmt.Println("\nExecution time comparison:")
	fmt.Printf("- concurrent: %.2f seconds\n", elapsed[0])
	fmt.Printf("- sequential: %.2f seconds\n", elapsed[1])

	if elapsed[1] > elapsed[0] && elapsed[0] > 0 {
		fmt.Printf("\nConcurrent mode was ~%.2fx faster\n", elapsed[1]/elapsed[0])
	} else {
		fmt.Println("\nConcurrent mode was slower; the API might be throttling parallel requests.")
	}

	return nil
}

// printReport prints a short run summary to stdout.
func printReport(result *pipeline.Report) {
	fmt.Printf("\nData saved to %s\n", result.OutputPath)
	fmt.Printf("Run %d (%s): %d countries, %d leaders, %d enriched in %.2f seconds\n",
		result.RunID, result.Mode, result.Countries, result.Leaders, result.Enriched,
		result.Duration.Seconds())
	if len(result.TopKeywords) > 0 {
		fmt.Println("\nTop summary keywords:")
		for i, kw := range result.TopKeywords {
			fmt.Printf("%d. %s\n", i+1, kw)
		}
	}
	if len(result.Languages) > 0 {
		fmt.Printf("Summary languages: %v\n", result.Languages)
	}
}

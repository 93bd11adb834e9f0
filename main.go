package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/leaders-pipeline/internal/history"
	"github.com/dtnitsch/leaders-pipeline/internal/scrape"
)

func main() {
	app := &cli.App{
		Name:  "leaders-pipeline",
		Usage: "Collect country leaders and enrich them with reference page summaries",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: "config.yaml",
				Usage: "path to the YAML config file",
			},
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "only log errors",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log debug details",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "scrape",
				Usage: "Run the full pipeline once and write the output file",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Usage: "max leaders per country (0 keeps all)",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "enrichment worker count (0 uses the CPU count)",
					},
					&cli.StringFlag{
						Name:  "output",
						Usage: "output file path",
					},
					&cli.BoolFlag{
						Name:  "sequential",
						Usage: "enrich one leader at a time instead of using the worker pool",
					},
				},
				Action: scrape.ScrapeAction,
			},
			{
				Name:  "compare",
				Usage: "Run the pipeline twice, concurrent then sequential, and compare timings",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Usage: "max leaders per country (0 keeps all)",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "enrichment worker count (0 uses the CPU count)",
					},
					&cli.StringFlag{
						Name:  "output",
						Usage: "output file path",
					},
				},
				Action: scrape.CompareAction,
			},
			{
				Name:  "history",
				Usage: "List recent pipeline runs",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "count",
						Value: 10,
						Usage: "number of runs to show",
					},
				},
				Action: history.HistoryAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

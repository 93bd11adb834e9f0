// Package history implements the history CLI command.
package history

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/leaders-pipeline/models"
	"github.com/dtnitsch/leaders-pipeline/pkg/db"
)

// HistoryAction lists recent pipeline runs from the history database.
func HistoryAction(c *cli.Context) error {
	config, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}

	database, err := db.Open(config.HistoryDB)
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer database.Close()

	runs, err := database.RecentRuns(c.Int("count"))
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("%-5s %-12s %-20s %9s %7s %8s %9s  %s\n",
		"ID", "MODE", "CREATED", "COUNTRIES", "LEADERS", "ENRICHED", "SECONDS", "OUTPUT")
	for _, run := range runs {
		fmt.Printf("%-5d %-12s %-20s %9d %7d %8d %9.2f  %s\n",
			run.ID, run.Mode, run.CreatedAt.Format("2006-01-02 15:04:05"),
			run.Countries, run.Leaders, run.Enriched,
			run.Duration.Seconds(), run.OutputPath)
		if c.Bool("verbose") && len(run.TopKeywords) > 0 {
			fmt.Printf("      keywords: %s\n", strings.Join(run.TopKeywords, ", "))
		}
	}

	return nil
}

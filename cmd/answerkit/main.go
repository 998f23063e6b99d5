// Copyright 2026 Caresuite
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/caresuite/answerkit"
	"github.com/caresuite/answerkit/config"
	"github.com/caresuite/answerkit/core"
)

func main() {
	app := &cli.App{
		Name:  "answerkit",
		Usage: "Customer-support knowledge-base client with AI-assisted answer workflows",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file (default: answerkit.yaml in . or ~/.config/answerkit)",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "sync",
				Usage:     "Pull the Answers table into the local cache",
				Action:    syncCommand,
				ArgsUsage: " ",
			},
			{
				Name:      "search",
				Usage:     "Rank knowledge-base entries against a query",
				Action:    searchCommand,
				ArgsUsage: "QUERY",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "limit",
						Aliases: []string{"n"},
						Usage:   "Maximum number of results",
						Value:   5,
					},
					&cli.Float64Flag{
						Name:  "min-score",
						Usage: "Hide results scoring below this threshold",
						Value: 0,
					},
				},
			},
			{
				Name:   "tables",
				Usage:  "List the tables of the configured Bitable app",
				Action: tablesCommand,
			},
			{
				Name:      "optimize",
				Usage:     "Optimize an entry's standard answer with AI",
				Action:    optimizeCommand,
				ArgsUsage: "RECORD_ID",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "apply",
						Usage: "Write the optimized answer back to the table",
					},
				},
			},
			{
				Name:      "review",
				Usage:     "Run an AI review over an entry's standard answer",
				Action:    reviewCommand,
				ArgsUsage: "RECORD_ID",
			},
			{
				Name:      "risk",
				Usage:     "Run a fast AI risk screen over an entry's standard answer",
				Action:    riskCommand,
				ArgsUsage: "RECORD_ID",
			},
			{
				Name:   "check",
				Usage:  "Verify connectivity to the Bitable API and the AI service",
				Action: checkCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// newClient loads configuration and builds the full client.
func newClient(c *cli.Context) (*answerkit.Client, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	return answerkit.NewClient(cfg)
}

func syncCommand(c *cli.Context) error {
	client, err := newClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	total, changed, err := client.Sync(context.Background())
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	fmt.Printf("Synced %d entries (%d new or changed)\n", total, changed)
	return nil
}

func searchCommand(c *cli.Context) error {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("a search query is required")
	}

	client, err := newClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	results, err := client.Search(context.Background(), query, c.Int("limit"))
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	minScore := c.Float64("min-score")
	shown := 0
	for _, r := range results {
		if r.Score < minScore {
			continue
		}
		shown++
		fmt.Printf("%6.2f  %s  %s\n", r.Score, r.Entry.RecordID, r.Entry.Question)
		fmt.Printf("        %s\n", r.Entry.StandardAnswer)
	}
	if shown == 0 {
		fmt.Println("No matching entries. Run `answerkit sync` if the cache is empty.")
	}
	return nil
}

func tablesCommand(c *cli.Context) error {
	client, err := newClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	tables, err := client.Tables(context.Background())
	if err != nil {
		return fmt.Errorf("listing tables failed: %w", err)
	}

	for _, table := range tables {
		fmt.Printf("%s  %s\n", table.ID, table.Name)
	}
	return nil
}

func optimizeCommand(c *cli.Context) error {
	recordID := c.Args().First()
	if !core.IsValidRecordRef(recordID) {
		return fmt.Errorf("a valid record ID is required (got %q)", recordID)
	}

	client, err := newClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx := context.Background()
	result, _, err := client.OptimizeEntry(ctx, recordID)
	if err != nil {
		return fmt.Errorf("optimization failed: %w", err)
	}

	fmt.Println("Optimized answer:")
	fmt.Println(result.AnswerText)
	if result.ExplanationText != "" {
		fmt.Println()
		fmt.Println("Notes:")
		fmt.Println(result.ExplanationText)
	}

	if c.Bool("apply") {
		if err := client.UpdateAnswer(ctx, recordID, result.AnswerText); err != nil {
			return fmt.Errorf("write-back failed: %w", err)
		}
		fmt.Println()
		fmt.Println("Updated the table row.")
	}
	return nil
}

func reviewCommand(c *cli.Context) error {
	recordID := c.Args().First()
	if !core.IsValidRecordRef(recordID) {
		return fmt.Errorf("a valid record ID is required (got %q)", recordID)
	}

	client, err := newClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	result, err := client.ReviewEntry(context.Background(), recordID)
	if err != nil {
		return fmt.Errorf("review failed: %w", err)
	}

	if result.Conclusion == core.ConclusionUnknown {
		fmt.Println("The model returned no structured verdict; raw response follows.")
		fmt.Println()
		fmt.Println(result.RawText)
		return nil
	}

	fmt.Printf("Conclusion: %s\n", result.Conclusion)
	printSection("Judgment", result.JudgmentExplanation)
	printSection("Risk points", result.RiskPoints)
	printSection("Modification reason", result.ModificationReason)
	printSection("Recommended reply", result.RecommendedReply)
	printSection("Suggestion", result.Suggestion)
	printSection("Basis", result.Basis)

	if !result.IsComplete {
		fmt.Println()
		fmt.Println("Warning: the verdict asks for changes but is missing the reason or the recommended reply.")
	}
	return nil
}

func printSection(title, body string) {
	if body == "" {
		return
	}
	fmt.Printf("\n%s:\n%s\n", title, body)
}

func riskCommand(c *cli.Context) error {
	recordID := c.Args().First()
	if !core.IsValidRecordRef(recordID) {
		return fmt.Errorf("a valid record ID is required (got %q)", recordID)
	}

	client, err := newClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	result, err := client.CheckEntryRisk(context.Background(), recordID)
	if err != nil {
		return fmt.Errorf("risk check failed: %w", err)
	}

	if result.HasRisk {
		fmt.Println("RISK: yes")
	} else {
		fmt.Println("RISK: no")
	}
	if result.Reason != "" {
		fmt.Printf("Reason: %s\n", result.Reason)
	}
	return nil
}

func checkCommand(c *cli.Context) error {
	client, err := newClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx := context.Background()

	if _, err := client.Tables(ctx); err != nil {
		fmt.Println("Bitable API: FAILED")
		return err
	}
	fmt.Println("Bitable API: ok")

	if err := client.Ping(ctx); err != nil {
		fmt.Println("AI service: FAILED")
		return err
	}
	fmt.Println("AI service: ok")
	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}

// ABOUTME: CLI command to run one recommendation query without a server
// ABOUTME: Prints ranked events as a table or JSON
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/eventscout/eventscout/internal/recommend"
)

// NewRecommendCmd creates the recommend command
func NewRecommendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recommend <query>",
		Short: "Recommend events for a free-text query",
		Long: `Recommend events for a free-text query.

Runs the full pipeline once: month detection, sentiment-derived
similarity threshold, and cosine ranking over the embedded catalog.

Examples:
  eventscout recommend "something fun in December"
  eventscout recommend --format json "live music"`,
		Args: cobra.ExactArgs(1),
		RunE: runRecommend,
	}

	return cmd
}

func runRecommend(cmd *cobra.Command, args []string) error {
	query := args[0]
	if query == "" {
		return fmt.Errorf("query must not be empty")
	}

	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx := context.Background()

	engine, _, err := buildEngine(ctx, logger)
	if err != nil {
		return err
	}

	result, err := engine.Recommend(ctx, query)
	if err != nil {
		return fmt.Errorf("recommendation failed: %w", err)
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	switch result.Outcome {
	case recommend.OutcomeNoEventsForMonth:
		fmt.Fprintf(cmd.OutOrStdout(), "No events found for %s.\n", result.Context.Month)
	case recommend.OutcomeNoMatches:
		fmt.Fprintf(cmd.OutOrStdout(), "No relevant events found.\n")
	default:
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "SCORE\tMONTH\tDESCRIPTION\n")
		fmt.Fprintf(w, "-----\t-----\t-----------\n")
		for _, re := range result.Events {
			fmt.Fprintf(w, "%.4f\t%s\t%s\n",
				re.Score,
				re.Event.Month,
				truncate(re.Event.Description, 60))
		}
		w.Flush()

		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "\nSentiment: %s (threshold %.1f)\n",
				result.Context.Sentiment, result.Threshold)
		}
	}

	return nil
}

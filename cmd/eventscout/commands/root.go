// ABOUTME: Root CLI command and global flags for eventscout
// ABOUTME: Wires serve, mcp, recommend, catalog and version subcommands
package commands

import (
	"github.com/spf13/cobra"
)

var (
	verbose      bool
	quiet        bool
	outputFormat string
)

// NewRootCmd creates the root command with all subcommands attached
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eventscout",
		Short: "Semantic event recommendations from free-text queries",
		Long: `eventscout recommends catalog events for free-text queries.

Each query runs through month detection, sentiment-derived similarity
thresholding, and cosine ranking over precomputed OpenAI embeddings,
returning at most three events.

Examples:
  eventscout serve
  eventscout recommend "something fun in December"
  eventscout catalog --month November`,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.PersistentFlags().StringVar(&outputFormat, "format", "auto", "Output format (auto, text, json)")

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewMCPCmd())
	cmd.AddCommand(NewRecommendCmd())
	cmd.AddCommand(NewCatalogCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

// ABOUTME: CLI command to inspect the loaded event catalog
// ABOUTME: Lists rows and months without touching any provider
package commands

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/eventscout/eventscout/internal/catalog"
	"github.com/eventscout/eventscout/internal/config"
)

var (
	catalogMonth string
)

// NewCatalogCmd creates the catalog command
func NewCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the event catalog",
		Long: `Inspect the event catalog.

Loads the configured catalog file and lists its rows. No embeddings
are computed and no API key is needed.

Examples:
  eventscout catalog
  eventscout catalog --month December
  eventscout catalog --format json`,
		RunE: runCatalog,
	}

	cmd.Flags().StringVar(&catalogMonth, "month", "", "Only show rows whose Month contains this value")

	return cmd
}

func runCatalog(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	cat, err := catalog.LoadFile(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("loading catalog %q: %w", cfg.CatalogPath, err)
	}

	rows := cat.FilterByMonth(catalogMonth)

	if outputFormat == "json" {
		payload := make([]map[string]string, len(rows))
		for i, ev := range rows {
			payload[i] = ev.Fields
		}
		jsonData, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	if len(rows) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No catalog rows found\n")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "INDEX\tMONTH\tDESCRIPTION\n")
	fmt.Fprintf(w, "-----\t-----\t-----------\n")
	for _, ev := range rows {
		month := ev.Month
		if month == "" {
			month = "(none)"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\n", ev.Index, month, truncate(ev.Description, 60))
	}
	w.Flush()

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\nTotal: %d row(s), months: %s\n",
			len(rows), strings.Join(cat.Months(), ", "))
	}

	return nil
}

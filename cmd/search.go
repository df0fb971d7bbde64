package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/saravana87/azure-search-rest-ops/internal/azsearch"
	"github.com/saravana87/azure-search-rest-ops/internal/config"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "List document ids matching a query without deleting anything",
	Long: `
Search the configured Azure AI Search index and print the ids of the
matching documents. Nothing is modified; use this to preview what a
delete run would find.
`,
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if indexName != "" {
		cfg.Index = indexName
	}

	client := azsearch.NewClient(cfg)
	return searchFlow(context.Background(), client, bufio.NewReader(os.Stdin), os.Stdout)
}

func searchFlow(ctx context.Context, client *azsearch.Client, in *bufio.Reader, out io.Writer) error {
	query, err := promptLine(in, out, "Enter search text (leave empty for '*'): ")
	if err != nil {
		return err
	}
	filter, err := promptLine(in, out, `Enter filter expression (optional, e.g. 'category eq "books"'): `)
	if err != nil {
		return err
	}

	ids, err := client.SearchIDs(ctx, azsearch.SearchRequest{Text: query, Filter: filter, Top: searchTop})
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		fmt.Fprintln(out, "No documents found for that query/filter.")
		return nil
	}

	fmt.Fprintf(out, "Found %d documents. Showing up to %d ids:\n", len(ids), searchTop)
	for i, id := range ids {
		fmt.Fprintf(out, "%d. %s\n", i+1, id)
	}
	return nil
}

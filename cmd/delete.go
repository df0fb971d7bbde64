package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saravana87/azure-search-rest-ops/internal/azsearch"
	"github.com/saravana87/azure-search-rest-ops/internal/config"
)

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Interactively delete documents from the search index",
	Long: `
Delete documents from the configured Azure AI Search index.

The command asks for comma-separated document ids, or searches the index
for candidates when none are given. The selected ids are listed and
nothing is deleted until the deletion is confirmed with 'y'.
`,
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if indexName != "" {
		cfg.Index = indexName
	}

	client := azsearch.NewClient(cfg)
	return deleteFlow(context.Background(), client, bufio.NewReader(os.Stdin), os.Stdout)
}

// deleteFlow drives one delete run: resolve the target ids, show them,
// ask for confirmation, submit the batch and report the outcome. Every
// path that stops short of the service returns nil so the process still
// exits cleanly.
func deleteFlow(ctx context.Context, client *azsearch.Client, in *bufio.Reader, out io.Writer) error {
	direct, err := promptLine(in, out, "Enter comma-separated doc IDs to delete, or press Enter to search: ")
	if err != nil {
		return err
	}

	var docs []string
	if direct != "" {
		docs = splitIDList(direct)
	} else {
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

		selection, err := promptLine(in, out, "Enter comma-separated numbers to select ids to delete, or 'all' to delete all listed: ")
		if err != nil {
			return err
		}
		docs, err = selectByPosition(ids, selection)
		if err != nil {
			return err
		}
	}

	if len(docs) == 0 {
		fmt.Fprintln(out, "No document ids selected, exiting.")
		return nil
	}

	fmt.Fprintln(out, "About to delete the following documents:")
	for _, id := range docs {
		fmt.Fprintln(out, " -", id)
	}

	answer, err := promptLine(in, out, "Proceed? (y/N): ")
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") {
		fmt.Fprintln(out, "Aborted by user.")
		return nil
	}

	resp, err := client.DeleteDocuments(ctx, docs)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Status:", resp.StatusCode)
	printResponseBody(out, resp.Body)
	return nil
}

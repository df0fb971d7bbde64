package cmd

import (
	"github.com/spf13/cobra"
)

var indexName string

var rootCmd = &cobra.Command{
	Use:   "azsearch-ops",
	Short: "Operator tool for removing documents from an Azure AI Search index",
	Long: `azsearch-ops looks up document ids in an Azure AI Search index and
submits batch delete requests against the service REST API.

Connection settings come from AZURE_SEARCH_ENDPOINT, AZURE_SEARCH_API_KEY
and AZURE_SEARCH_INDEX (a .env file is honored when present).`,
	// Errors reach main exactly once; cobra must not print them itself.
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&indexName, "index", "i", "", "Index name to use (overrides AZURE_SEARCH_INDEX)")

	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(searchCmd)
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/edi-cli/internal/core/domain"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and the number of supported routing keys",
	Args:  cobra.NoArgs,
	Run:   runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, _ []string) {
	cmd.Printf("edi version %s\n", version)
	if capabilityCatalog == nil {
		return
	}

	counts := make(map[domain.Dialect]int)
	for _, key := range capabilityCatalog.Keys() {
		counts[key.Dialect]++
	}
	cmd.Printf("routing keys: %d X12, %d EDIFACT\n",
		counts[domain.DialectX12], counts[domain.DialectEdifact])
}

package cli

import (
	"github.com/spf13/cobra"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the supported routing keys",
	Long: `List every (dialect, version, message type) the converter supports.
The same set applies to edi2json and json2edi.`,
	Args: cobra.NoArgs,
	RunE: runFormats,
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}

func runFormats(cmd *cobra.Command, _ []string) error {
	if capabilityCatalog == nil {
		return errConversionNotConfigured
	}

	styles := newOutputStyles(cmd.OutOrStdout())
	for _, key := range capabilityCatalog.Keys() {
		cmd.Printf("%s %s\n",
			styles.dialect(key.Dialect),
			styles.render(styles.Key, key.String()))
	}
	return nil
}

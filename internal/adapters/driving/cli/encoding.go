package cli

import (
	"github.com/spf13/cobra"
)

var encodingCmd = &cobra.Command{
	Use:   "encoding <input>",
	Short: "Report the EDI dialect of a document",
	Long: `Classify a document as X12, EDIFACT or UNKNOWN from its leading marker
(ISA for X12, UNB or UNA for EDIFACT). Only the first three characters are
inspected; an unrecognised document is reported as UNKNOWN, not as an error.`,
	Args: cobra.ExactArgs(1),
	RunE: runEncoding,
}

func init() {
	rootCmd.AddCommand(encodingCmd)
}

func runEncoding(cmd *cobra.Command, args []string) error {
	if conversionService == nil {
		return errConversionNotConfigured
	}

	in, err := readInput(cmd, args[0])
	if err != nil {
		return err
	}

	dialect := conversionService.Encoding(cmd.Context(), in)
	cmd.Println(dialect.String())
	return nil
}

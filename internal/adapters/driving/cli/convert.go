package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

var edi2jsonCmd = &cobra.Command{
	Use:   "edi2json <input>",
	Short: "Convert an EDI document to JSON",
	Long: `Convert a supported X12 interchange into its structured JSON form.

The routing key read from the envelope selects the codec; run 'edi formats'
to list the supported keys. Nothing is printed when the conversion fails.`,
	Args: cobra.ExactArgs(1),
	RunE: runEDI2JSON,
}

var json2ediCmd = &cobra.Command{
	Use:   "json2edi <input>",
	Short: "Convert JSON back to an EDI document",
	Long: `Convert a structured JSON value produced by edi2json back into X12 text.

The routing key is read from functional_group[0].gs."08" and
functional_group[0].segments[0].st."01". EDIFACT values are not supported.`,
	Args: cobra.ExactArgs(1),
	RunE: runJSON2EDI,
}

func init() {
	rootCmd.AddCommand(edi2jsonCmd)
	rootCmd.AddCommand(json2ediCmd)
}

func runEDI2JSON(cmd *cobra.Command, args []string) error {
	if conversionService == nil {
		return errConversionNotConfigured
	}

	in, err := readInput(cmd, args[0])
	if err != nil {
		return err
	}

	conv, err := conversionService.ToStructured(cmd.Context(), in)
	if err != nil {
		return err
	}

	writeOutput(cmd, conv.Output)
	return nil
}

func runJSON2EDI(cmd *cobra.Command, args []string) error {
	if conversionService == nil {
		return errConversionNotConfigured
	}

	in, err := readInput(cmd, args[0])
	if err != nil {
		return err
	}

	conv, err := conversionService.ToDocument(cmd.Context(), in)
	if err != nil {
		return err
	}

	writeOutput(cmd, conv.Output)
	return nil
}

// writeOutput prints text followed by exactly one line break.
func writeOutput(cmd *cobra.Command, text string) {
	cmd.Print(text)
	if !strings.HasSuffix(text, "\n") {
		cmd.Println()
	}
}

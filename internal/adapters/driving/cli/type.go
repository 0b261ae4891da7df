package cli

import (
	"github.com/spf13/cobra"
)

var typeCmd = &cobra.Command{
	Use:   "type <input>",
	Short: "Report the version and message type of a document",
	Long: `Read the envelope headers of a document and print its routing key as
<version>/<message type>, e.g. 004010/310 for X12 or D00B/IFTSTA for EDIFACT.

X12 reads GS08 and ST01. EDIFACT reads the UNH message identifier, honouring
delimiters declared by a leading UNA segment.`,
	Args: cobra.ExactArgs(1),
	RunE: runType,
}

func init() {
	rootCmd.AddCommand(typeCmd)
}

func runType(cmd *cobra.Command, args []string) error {
	if conversionService == nil {
		return errConversionNotConfigured
	}

	in, err := readInput(cmd, args[0])
	if err != nil {
		return err
	}

	key, err := conversionService.Type(cmd.Context(), in)
	if err != nil {
		return err
	}

	cmd.Println(key.String())
	return nil
}

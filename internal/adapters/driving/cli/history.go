package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/edi-cli/internal/core/domain"
)

var errHistoryNotConfigured = errors.New("history service not configured")

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded conversions",
	Long: `List the most recent conversions, newest first.

Every encoding, type, edi2json and json2edi invocation records its terminal
state: the stage it reached, the routing key and any failure.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a recorded conversion",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 0, "number of records (default history.limit)")
	historyCmd.Flags().Bool("clear", false, "delete all records")
	historyCmd.AddCommand(historyShowCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errHistoryNotConfigured
	}

	clearAll, err := cmd.Flags().GetBool("clear")
	if err != nil {
		return err
	}
	if clearAll {
		if err := historyService.Clear(cmd.Context()); err != nil {
			return fmt.Errorf("clearing history: %w", err)
		}
		cmd.Println("History cleared.")
		return nil
	}

	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}
	if limit == 0 && settingsService != nil {
		if settings, err := settingsService.Get(); err == nil {
			limit = settings.History.Limit
		}
	}

	records, err := historyService.List(cmd.Context(), limit)
	if err != nil {
		return fmt.Errorf("listing history: %w", err)
	}
	if len(records) == 0 {
		cmd.Println("No conversions recorded.")
		return nil
	}

	styles := newOutputStyles(cmd.OutOrStdout())
	for i := range records {
		r := &records[i]
		cmd.Printf("%s  %s  %-8s  %-8s  %s  %s\n",
			styles.render(styles.Muted, r.ID),
			r.CreatedAt.Local().Format(time.DateTime),
			r.Command,
			recordKey(r),
			outcome(styles, r),
			r.Input)
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	if historyService == nil {
		return errHistoryNotConfigured
	}

	r, err := historyService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("getting record %s: %w", args[0], err)
	}

	cmd.Printf("Conversion: %s\n\n", r.ID)
	cmd.Printf("  Command:  %s\n", r.Command)
	cmd.Printf("  Input:    %s\n", r.Input)
	cmd.Printf("  Dialect:  %s\n", r.Dialect)
	cmd.Printf("  Key:      %s\n", recordKey(r))
	if r.Charset != "" {
		cmd.Printf("  Charset:  %s\n", r.Charset)
	}
	cmd.Printf("  Stage:    %s\n", r.Stage)
	cmd.Printf("  Success:  %t\n", r.Success)
	if r.Error != "" {
		cmd.Printf("  Error:    %s\n", r.Error)
	}
	cmd.Printf("  Created:  %s\n", r.CreatedAt.Local().Format(time.DateTime))
	return nil
}

func recordKey(r *domain.ConversionRecord) string {
	if r.Version == "" && r.MessageType == "" {
		return "-"
	}
	return r.Key().String()
}

func outcome(styles *outputStyles, r *domain.ConversionRecord) string {
	if r.Success {
		return styles.render(styles.Success, "ok")
	}
	return styles.render(styles.Error, "failed ("+string(r.Stage)+")")
}

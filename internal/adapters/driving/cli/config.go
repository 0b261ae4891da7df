package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var errSettingsNotConfigured = errors.New("settings service not configured")

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View and change the settings stored in config.toml.

Keys:
  output.pretty           indent edi2json output (bool)
  output.segment_newline  line break after every X12 segment (bool)
  history.enabled         record conversions (bool)
  history.limit           records listed by 'edi history' (int)
  watch.rate              files converted per second by 'edi watch' (int)
  watch.extensions        comma-separated EDI file extensions
  watch.debounce          quiet period before a file is converted (duration)`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("[output]")
	cmd.Printf("  pretty = %t\n", settings.Output.Pretty)
	cmd.Printf("  segment_newline = %t\n", settings.Output.SegmentNewline)
	cmd.Println()

	cmd.Println("[history]")
	cmd.Printf("  enabled = %t\n", settings.History.Enabled)
	cmd.Printf("  limit = %d\n", settings.History.Limit)
	cmd.Println()

	cmd.Println("[watch]")
	cmd.Printf("  rate = %d\n", settings.Watch.Rate)
	cmd.Printf("  extensions = %s\n", strings.Join(settings.Watch.Extensions, ","))
	cmd.Printf("  debounce = %s\n", settings.Watch.Debounce)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}

	cmd.Printf("%s = %s\n", key, value)
	return nil
}

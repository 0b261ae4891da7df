// Package cli provides the cobra command tree for the edi binary.
package cli

import (
	"context"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/edi-cli/internal/core/ports/driving"
	"github.com/custodia-labs/edi-cli/internal/logger"
)

// version is set by SetVersion from the build.
var version = "dev"

// Services are the driving ports the commands call.
type Services struct {
	Conversion driving.ConversionService
	Catalog    driving.CapabilityCatalog
	History    driving.HistoryService
	Settings   driving.SettingsService

	// MetricsHandler serves conversion metrics for `watch --metrics-addr`.
	MetricsHandler http.Handler

	// Close releases resources held by the services.
	Close func() error
}

// Bootstrap builds the services once flags are parsed.
type Bootstrap func(configDir string) (*Services, error)

var (
	conversionService driving.ConversionService
	capabilityCatalog driving.CapabilityCatalog
	historyService    driving.HistoryService
	settingsService   driving.SettingsService
	metricsHandler    http.Handler
	closeServices     func() error

	bootstrap Bootstrap
)

var rootCmd = &cobra.Command{
	Use:   "edi",
	Short: "Classify and convert X12 and EDIFACT documents",
	Long: `edi detects the dialect of EDI interchanges, reports their routing key
(version and message type) and converts supported X12 transaction sets to and
from a structured JSON form.

Every command takes one input: a file path, or - to read standard input.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: runRootPreRun,
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "trace each conversion stage on stderr")
	rootCmd.PersistentFlags().String("config-dir", "", "configuration directory (default ~/.edi)")
}

// SetVersion sets the version reported by `edi version`.
func SetVersion(v string) {
	version = v
}

// SetBootstrap sets the function that builds services before a command runs.
func SetBootstrap(fn Bootstrap) {
	bootstrap = fn
}

// SetServices installs the driving ports used by the commands.
func SetServices(s *Services) {
	conversionService = s.Conversion
	capabilityCatalog = s.Catalog
	historyService = s.History
	settingsService = s.Settings
	metricsHandler = s.MetricsHandler
	closeServices = s.Close
}

// Execute runs the command tree and releases services afterwards.
// Command output goes to stdout, diagnostics to stderr.
func Execute(ctx context.Context) error {
	defer func() {
		if closeServices != nil {
			if err := closeServices(); err != nil {
				logger.Warn("closing services: %v", err)
			}
		}
	}()
	rootCmd.SetOut(os.Stdout)
	return rootCmd.ExecuteContext(ctx)
}

func runRootPreRun(cmd *cobra.Command, _ []string) error {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return err
	}
	logger.SetVerbose(verbose)

	if bootstrap == nil || conversionService != nil {
		return nil
	}

	configDir, err := cmd.Flags().GetString("config-dir")
	if err != nil {
		return err
	}
	services, err := bootstrap(configDir)
	if err != nil {
		return err
	}
	SetServices(services)
	return nil
}

package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/edi-cli/internal/adapters/driven/charset"
	"github.com/custodia-labs/edi-cli/internal/adapters/driven/metrics"
	"github.com/custodia-labs/edi-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/edi-cli/internal/codecs"
	"github.com/custodia-labs/edi-cli/internal/codecs/x12"
	"github.com/custodia-labs/edi-cli/internal/core/services"
)

const (
	document310 = "ISA*00*          *00*          *ZZ*SOURCE         *02*TARGET         *220101*1449*U*00401*000011566*0*P*>~\n" +
		"GS*IO*SOURCE*TARGET*20220101*1449*61716*X*004010~\n" +
		"ST*310*35353~\n" +
		"B3**ABC123*REF*PP**20220101*1500~\n" +
		"SE*3*35353~\n" +
		"GE*1*61716~\n" +
		"IEA*1*000011566~\n"

	documentIFTSTA = "UNB+UNOC:2+SENDER:ZZZ+RECEIVER:ZZZ+220101:1021+2803570'\n" +
		"UNH+2805567+IFTSTA:D:00B:UN'"
)

// testServices holds the real services installed for a test.
type testServices struct {
	history  *memory.HistoryStore
	config   *memory.ConfigStore
	settings *services.SettingsService
}

// setupTestServices installs real services backed by memory stores and
// restores the previous ones when the test ends.
func setupTestServices(t *testing.T) *testServices {
	t.Helper()

	registry, err := services.NewCapabilityRegistry(codecs.Builtin(x12.Options{SegmentNewline: true}))
	require.NoError(t, err)

	history := memory.NewHistoryStore()
	config := memory.NewConfigStore()
	settings := services.NewSettingsService(config)

	conv := services.NewConversionService(charset.NewDecoder(), registry)
	conv.SetHistoryStore(history)
	m := metrics.New()
	conv.SetMetrics(m)

	previous := &Services{
		Conversion:     conversionService,
		Catalog:        capabilityCatalog,
		History:        historyService,
		Settings:       settingsService,
		MetricsHandler: metricsHandler,
		Close:          closeServices,
	}
	t.Cleanup(func() { SetServices(previous) })

	SetServices(&Services{
		Conversion:     conv,
		Catalog:        registry,
		History:        services.NewHistoryService(history),
		Settings:       settings,
		MetricsHandler: m.Handler(),
	})

	return &testServices{history: history, config: config, settings: settings}
}

// executeCommand runs the root command with args and stdin and returns
// what was written to stdout and stderr.
func executeCommand(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	return executeCommandContext(context.Background(), t, stdin, args...)
}

func executeCommandContext(ctx context.Context, t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
	}()

	err := rootCmd.ExecuteContext(ctx)
	return stdout.String(), stderr.String(), err
}

// writeFile writes content into a temporary directory and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

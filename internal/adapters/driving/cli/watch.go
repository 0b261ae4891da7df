package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/edi-cli/internal/adapters/driving/watch"
	"github.com/custodia-labs/edi-cli/internal/core/domain"
	"github.com/custodia-labs/edi-cli/internal/logger"
)

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Convert files as they appear in a directory",
	Long: `Watch a directory and convert every file written to it.

EDI documents (extensions from watch.extensions) are converted to JSON and
written as <out>/<name>.json. JSON files are converted back to X12 and
written as <out>/<name>.edi. Failures are reported and the watcher keeps
running until interrupted.

Examples:
  edi watch ./inbox --out ./outbox
  edi watch ./inbox --out ./outbox --existing --metrics-addr :9090`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringP("out", "o", "", "output directory (required)")
	watchCmd.Flags().Bool("existing", false, "convert files already in the directory first")
	watchCmd.Flags().String("metrics-addr", "", "serve Prometheus metrics on this address")
	_ = watchCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if conversionService == nil {
		return errConversionNotConfigured
	}

	outDir, err := cmd.Flags().GetString("out")
	if err != nil {
		return err
	}
	existing, err := cmd.Flags().GetBool("existing")
	if err != nil {
		return err
	}
	metricsAddr, err := cmd.Flags().GetString("metrics-addr")
	if err != nil {
		return err
	}

	settings := domain.DefaultAppSettings().Watch
	if settingsService != nil {
		if s, err := settingsService.Get(); err == nil {
			settings = s.Watch
		}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if metricsAddr != "" {
		stop, err := serveMetrics(ctx, metricsAddr)
		if err != nil {
			return err
		}
		defer stop()
		cmd.Printf("Metrics available on http://%s/metrics\n", metricsAddr)
	}

	w := watch.New(conversionService, outDir, settings)
	report := func(res watch.Result) {
		if res.Err != nil {
			cmd.PrintErrf("%s: %v\n", res.Source, res.Err)
			return
		}
		cmd.Printf("%s -> %s (%s)\n", res.Source, res.Target, res.Key.Qualified())
	}

	if existing {
		if err := w.ProcessExisting(ctx, args[0], report); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
	}

	cmd.Printf("Watching %s (Ctrl-C to stop)\n", args[0])
	return w.Run(ctx, args[0], report)
}

// serveMetrics starts the metrics endpoint and returns a function that
// shuts it down.
func serveMetrics(ctx context.Context, addr string) (func(), error) {
	if metricsHandler == nil {
		return nil, errors.New("metrics not configured")
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", metricsHandler)

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listening on %s: %w", addr, err)
	}

	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Warn("metrics server: %v", err)
		}
	}()

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx) //nolint:errcheck
	}, nil
}

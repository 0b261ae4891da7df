// Package watch provides a directory watcher that converts EDI documents
// and structured values as they are written.
package watch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/edi-cli/internal/core/domain"
	"github.com/custodia-labs/edi-cli/internal/core/ports/driving"
	"github.com/custodia-labs/edi-cli/internal/logger"
)

// Output extensions.
const (
	extStructured = ".json"
	extDocument   = ".edi"
)

// ErrSameDirectory is returned when the output directory is the watched one.
var ErrSameDirectory = errors.New("watch: output directory must differ from the watched directory")

// Result is the outcome of processing one file.
type Result struct {
	// Source is the processed file.
	Source string

	// Target is the written file; empty on failure.
	Target string

	// Command is the conversion that ran.
	Command domain.Command

	// Key is the resolved routing key, if any.
	Key domain.RoutingKey

	// Err is the failure, if any.
	Err error
}

// Watcher converts files appearing in a directory.
type Watcher struct {
	conv     driving.ConversionService
	settings domain.WatchSettings
	outDir   string
	limiter  *rate.Limiter

	mu      sync.Mutex
	pending map[string]*time.Timer
}

// New creates a watcher writing conversions to outDir.
func New(conv driving.ConversionService, outDir string, settings domain.WatchSettings) *Watcher {
	r := settings.Rate
	if r <= 0 {
		r = domain.DefaultAppSettings().Watch.Rate
	}

	return &Watcher{
		conv:     conv,
		settings: settings,
		outDir:   outDir,
		limiter:  rate.NewLimiter(rate.Limit(r), r),
		pending:  make(map[string]*time.Timer),
	}
}

// commandFor returns the conversion for a file name, or false if the file
// is not handled.
func (w *Watcher) commandFor(path string) (domain.Command, bool) {
	name := filepath.Base(path)
	if strings.HasPrefix(name, ".") {
		return "", false
	}
	if strings.EqualFold(filepath.Ext(name), extStructured) {
		return domain.CommandToDocument, true
	}
	if w.settings.MatchesExtension(name) {
		return domain.CommandToStructured, true
	}
	return "", false
}

// handleFsEvent reports the path to process for event, if any.
// Only creates and writes of handled regular files qualify.
func (w *Watcher) handleFsEvent(event fsnotify.Event) (string, bool) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return "", false
	}
	if _, ok := w.commandFor(event.Name); !ok {
		return "", false
	}
	info, err := os.Stat(event.Name)
	if err != nil || !info.Mode().IsRegular() {
		return "", false
	}
	return event.Name, true
}

// targetPath returns the output path for a source file.
func (w *Watcher) targetPath(source string, cmd domain.Command) string {
	base := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	ext := extStructured
	if cmd == domain.CommandToDocument {
		ext = extDocument
	}
	return filepath.Join(w.outDir, base+ext)
}

// Process converts a single file and writes the result. It waits on the
// rate limiter first, so it may block until ctx is done.
func (w *Watcher) Process(ctx context.Context, path string) Result {
	cmd, ok := w.commandFor(path)
	if !ok {
		return Result{Source: path, Err: fmt.Errorf("%s: %w: unhandled file type", path, domain.ErrInvalidInput)}
	}
	res := Result{Source: path, Command: cmd}

	if err := w.limiter.Wait(ctx); err != nil {
		res.Err = err
		return res
	}

	content, err := os.ReadFile(path)
	if err != nil {
		res.Err = fmt.Errorf("reading %s: %w", path, err)
		return res
	}

	in := domain.Input{Name: path, Content: content}
	var conv *domain.Conversion
	if cmd == domain.CommandToDocument {
		conv, err = w.conv.ToDocument(ctx, in)
	} else {
		conv, err = w.conv.ToStructured(ctx, in)
	}
	if err != nil {
		res.Err = err
		return res
	}
	res.Key = conv.Key

	target := w.targetPath(path, cmd)
	if err := os.WriteFile(target, []byte(conv.Output), 0644); err != nil {
		res.Err = fmt.Errorf("writing %s: %w", target, err)
		return res
	}
	res.Target = target
	return res
}

// backlogWorkers bounds concurrent conversions of pre-existing files.
const backlogWorkers = 4

// ProcessExisting converts every handled file already present in dir,
// up to backlogWorkers at a time. onResult calls are serialised.
func (w *Watcher) ProcessExisting(ctx context.Context, dir string, onResult func(Result)) error {
	if err := w.prepare(dir); err != nil {
		return err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading %s: %w", dir, err)
	}

	var reportMu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(backlogWorkers)

	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if _, ok := w.commandFor(path); !ok {
			continue
		}
		g.Go(func() error {
			res := w.Process(ctx, path)
			if errors.Is(res.Err, context.Canceled) {
				return res.Err
			}
			reportMu.Lock()
			onResult(res)
			reportMu.Unlock()
			return nil
		})
	}
	return g.Wait()
}

// Run watches dir until ctx is done, calling onResult for every processed file.
// A file is processed once it has been quiet for the configured debounce.
func (w *Watcher) Run(ctx context.Context, dir string, onResult func(Result)) error {
	if err := w.prepare(dir); err != nil {
		return err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	logger.Info("watching %s, writing to %s", dir, w.outDir)

	ready := make(chan string, 64)
	done := make(chan struct{})
	defer close(done)
	defer w.stopPending()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if path, ok := w.handleFsEvent(event); ok {
				w.schedule(done, path, ready)
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error: %v", err)

		case path := <-ready:
			res := w.Process(ctx, path)
			if errors.Is(res.Err, context.Canceled) {
				return nil
			}
			onResult(res)
		}
	}
}

// schedule (re)starts the debounce timer for path. A timer that fires
// after done is closed drops the path.
func (w *Watcher) schedule(done <-chan struct{}, path string, ready chan<- string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if t, ok := w.pending[path]; ok {
		t.Stop()
	}
	w.pending[path] = time.AfterFunc(w.settings.Debounce, func() {
		w.mu.Lock()
		delete(w.pending, path)
		w.mu.Unlock()

		deliver(done, path, ready)
	})
}

// deliver hands path to ready unless done is closed first.
func deliver(done <-chan struct{}, path string, ready chan<- string) bool {
	select {
	case ready <- path:
		return true
	case <-done:
		return false
	}
}

func (w *Watcher) stopPending() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for path, t := range w.pending {
		t.Stop()
		delete(w.pending, path)
	}
}

// prepare checks dir against the output directory and creates the latter.
func (w *Watcher) prepare(dir string) error {
	if err := w.checkDirs(dir); err != nil {
		return err
	}
	if err := os.MkdirAll(w.outDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	return nil
}

func (w *Watcher) checkDirs(dir string) error {
	in, err := filepath.Abs(dir)
	if err != nil {
		return err
	}
	out, err := filepath.Abs(w.outDir)
	if err != nil {
		return err
	}
	if in == out {
		return ErrSameDirectory
	}
	return nil
}

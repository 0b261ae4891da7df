package file

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/edi-cli/internal/core/domain"
	"github.com/custodia-labs/edi-cli/internal/core/ports/driven"
	"github.com/custodia-labs/edi-cli/internal/logger"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// configFile is the file name inside the config directory.
const configFile = "config.toml"

// document is the layout of config.toml. Nil fields are unset.
type document struct {
	Output  outputTable  `toml:"output,omitempty"`
	History historyTable `toml:"history,omitempty"`
	Watch   watchTable   `toml:"watch,omitempty"`
}

type outputTable struct {
	Pretty         *bool `toml:"pretty,omitempty"`
	SegmentNewline *bool `toml:"segment_newline,omitempty"`
}

type historyTable struct {
	Enabled *bool `toml:"enabled,omitempty"`
	Limit   *int  `toml:"limit,omitempty"`
}

type watchTable struct {
	Rate       *int      `toml:"rate,omitempty"`
	Extensions *[]string `toml:"extensions,omitempty"`
	Debounce   *string   `toml:"debounce,omitempty"`
}

// field binds a dotted key to its slot in the document.
type field struct {
	get func(d *document) (any, bool)
	set func(d *document, v any) error
}

func slot[T any](key string, ptr func(d *document) **T) field {
	return field{
		get: func(d *document) (any, bool) {
			p := *ptr(d)
			if p == nil {
				return nil, false
			}
			return *p, true
		},
		set: func(d *document, v any) error {
			typed, ok := v.(T)
			if !ok {
				return fmt.Errorf("%s: %T is not a %T: %w", key, v, typed, domain.ErrInvalidInput)
			}
			*ptr(d) = &typed
			return nil
		},
	}
}

var fields = map[string]field{
	"output.pretty":          slot("output.pretty", func(d *document) **bool { return &d.Output.Pretty }),
	"output.segment_newline": slot("output.segment_newline", func(d *document) **bool { return &d.Output.SegmentNewline }),
	"history.enabled":        slot("history.enabled", func(d *document) **bool { return &d.History.Enabled }),
	"history.limit":          slot("history.limit", func(d *document) **int { return &d.History.Limit }),
	"watch.rate":             slot("watch.rate", func(d *document) **int { return &d.Watch.Rate }),
	"watch.extensions":       slot("watch.extensions", func(d *document) **[]string { return &d.Watch.Extensions }),
	"watch.debounce":         slot("watch.debounce", func(d *document) **string { return &d.Watch.Debounce }),
}

// ConfigStore keeps settings in a TOML file with [output], [history]
// and [watch] tables.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
	doc      document
}

// DefaultDir returns ~/.edi.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".edi"), nil
}

// NewConfigStore opens config.toml in configDir, creating the directory
// if needed. If configDir is empty, defaults to ~/.edi.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		dir, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		configDir = dir
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	s := &ConfigStore{filePath: filepath.Join(configDir, configFile)}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// load reads the file. Unknown keys are reported and skipped.
func (s *ConfigStore) load() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var doc document
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		var strict *toml.StrictMissingError
		if !errors.As(err, &strict) {
			return fmt.Errorf("parse %s: %w", s.filePath, err)
		}
		logger.Notice("%s: ignoring unknown settings\n%s", s.filePath, strict.String())
	}
	s.doc = doc
	return nil
}

// Get returns the value of a known key if it is set.
func (s *ConfigStore) Get(key string) (any, bool) {
	f, ok := fields[key]
	if !ok {
		return nil, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return f.get(&s.doc)
}

// Keys returns every key set in the file, sorted.
func (s *ConfigStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(fields))
	for key, f := range fields {
		if _, ok := f.get(&s.doc); ok {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

// Set stores value under key and rewrites the file.
func (s *ConfigStore) Set(key string, value any) error {
	f, ok := fields[key]
	if !ok {
		return fmt.Errorf("unknown setting %q: %w", key, domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := f.set(&s.doc, value); err != nil {
		return err
	}
	return s.save()
}

// save writes the document (caller must hold lock).
func (s *ConfigStore) save() error {
	data, err := toml.Marshal(s.doc)
	if err != nil {
		return err
	}
	return os.WriteFile(s.filePath, data, 0600)
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}

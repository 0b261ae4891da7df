package driven

// ConfigStore persists explicitly configured settings.
// Keys are the dotted setting names, e.g. "output.pretty" or "watch.rate".
type ConfigStore interface {
	// Get returns the stored value and whether the key was set.
	Get(key string) (any, bool)

	// Set stores value under key and persists it.
	Set(key string, value any) error

	// Keys returns the keys that are set, sorted.
	Keys() []string

	// Path returns where the settings are persisted.
	Path() string
}

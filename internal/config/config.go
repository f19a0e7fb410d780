// Package config holds runtime settings for the TodoVault CLI.
package config

// Backend selects the persistence medium implementation.
type Backend string

const (
	BackendFile     Backend = "file"
	BackendSQLite   Backend = "sqlite"
	BackendMemory   Backend = "memory"
	BackendDisabled Backend = "disabled"
)

// Valid reports whether b names a known backend.
func (b Backend) Valid() bool {
	switch b {
	case BackendFile, BackendSQLite, BackendMemory, BackendDisabled:
		return true
	}
	return false
}

// Config holds the settings of one run.
//
// Fields:
//   - StorageBackend: which medium implementation to use.
//   - StoragePath: file path for the file and sqlite backends.
//   - SessionSecret: HMAC key signing the persisted session marker; changing
//     it invalidates any saved session (reads as logged out).
type Config struct {
	StorageBackend Backend
	StoragePath    string
	SessionSecret  string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StorageBackend = BackendFile
	c.StoragePath = "todovault.json"
	c.SessionSecret = "todovault-local-secret"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file was given), the environment, and command-line
// flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

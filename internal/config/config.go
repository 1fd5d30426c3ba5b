// Package config handles global slugr configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/aidanlsb/slugr/internal/atomicfile"
	"github.com/aidanlsb/slugr/internal/fileslug"
)

// Config represents the global slugr configuration. Every field is a
// default that the matching command-line flag overrides.
type Config struct {
	// Style is the default word separator style: "kebab", "snake",
	// "camel", or "pascal". Empty means kebab.
	Style string `toml:"style"`

	// KeepUnicode preserves unicode characters instead of
	// transliterating them to ASCII.
	KeepUnicode bool `toml:"keep_unicode"`

	// Clobber lets renames overwrite existing files instead of
	// appending numbered suffixes.
	Clobber bool `toml:"clobber"`

	// MaxFilenameBytes caps the byte length of generated names. Zero
	// uses the built-in 255-byte default.
	MaxFilenameBytes int `toml:"max_filename_bytes"`
}

// SlugOptions converts the config defaults into pipeline options.
func (c *Config) SlugOptions() (fileslug.Options, error) {
	style, err := fileslug.ParseStyle(c.Style)
	if err != nil {
		return fileslug.Options{}, fmt.Errorf("config: %w", err)
	}
	return fileslug.Options{
		Style:       style,
		KeepUnicode: c.KeepUnicode,
		MaxBytes:    c.MaxFilenameBytes,
	}, nil
}

// Load loads the configuration from the default location.
// Returns a zero config if the file doesn't exist.
func Load() (*Config, error) {
	path := DefaultPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{}, nil
	}
	return LoadFrom(path)
}

// LoadFrom loads the configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &config, nil
}

// DefaultPath returns the default config file path.
// Checks ~/.config/slugr/config.toml first (XDG style), then falls back
// to the OS-specific location.
func DefaultPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		xdgPath := filepath.Join(home, ".config", "slugr", "config.toml")
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "slugr", "config.toml")
	}

	return filepath.Join(".", "config.toml")
}

// CreateDefault writes a commented default config file if none exists,
// returning its path.
func CreateDefault() (string, error) {
	path := DefaultPath()

	if _, err := os.Stat(path); err == nil {
		return path, nil // Already exists
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	defaultConfig := `# slugr configuration

# Default word separator style: kebab, snake, camel, or pascal.
# style = "kebab"

# Preserve unicode characters instead of transliterating to ASCII.
# keep_unicode = false

# Allow renames to overwrite existing files. The default appends
# numbered suffixes (file-2.txt) instead.
# clobber = false

# Byte budget for generated filenames. 255 matches the single-name
# limit of common filesystems.
# max_filename_bytes = 255
`

	if err := atomicfile.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return path, nil
}

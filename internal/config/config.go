// Package config loads routelint settings from compiled-in defaults and an
// optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file looked up in the working directory when no
// explicit path is given.
const DefaultFile = ".routelint.yaml"

// ErrInvalidConfig is returned by Validate for unusable settings.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds every tunable of a check run.
type Config struct {
	// Root is the directory to scan.
	Root string `yaml:"root"`
	// Router is the route declaration file. Relative paths resolve
	// against Root.
	Router string `yaml:"router"`
	// ExcludeDirs are directory base names skipped at any depth.
	ExcludeDirs []string `yaml:"exclude_dirs"`
	// Extensions select the files that are scanned.
	Extensions []string `yaml:"extensions"`
	// Exemptions are raw targets always treated as reachable.
	Exemptions []string `yaml:"exemptions"`
	// MaxOccurrences bounds the occurrences printed per broken group.
	MaxOccurrences int `yaml:"max_occurrences"`
	// Parallel is the number of files extracted concurrently.
	Parallel int `yaml:"parallel"`
}

// Default returns the compiled-in defaults.
func Default() Config {
	return Config{
		Root:           "src",
		Router:         "App.tsx",
		ExcludeDirs:    []string{"node_modules", ".git", "dist", "build"},
		Extensions:     []string{".tsx", ".ts", ".jsx", ".js"},
		Exemptions:     []string{"/", "/auth", "/landing-preview"},
		MaxOccurrences: 5,
		Parallel:       1,
	}
}

// Load reads path over the defaults. Keys absent from the file keep their
// default value. When optional is true a missing file yields the defaults.
func Load(path string, optional bool) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path) // #nosec G304 - path is user-supplied config
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}

		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.Extensions = normalizeExtensions(cfg.Extensions)

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the settings a run cannot proceed without.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Router) == "" {
		return fmt.Errorf("%w: router must not be empty", ErrInvalidConfig)
	}

	if len(c.Extensions) == 0 {
		return fmt.Errorf("%w: at least one extension is required", ErrInvalidConfig)
	}

	if c.MaxOccurrences < 0 {
		return fmt.Errorf("%w: max_occurrences must be >= 0, got %d", ErrInvalidConfig, c.MaxOccurrences)
	}

	if c.Parallel < 0 {
		return fmt.Errorf("%w: parallel must be >= 0, got %d", ErrInvalidConfig, c.Parallel)
	}

	return nil
}

// WithExtensions replaces the extension list, adding a leading dot where
// it is missing.
func (c Config) WithExtensions(exts []string) Config {
	c.Extensions = normalizeExtensions(exts)
	return c
}

// WithExemptions returns a copy with extra exemptions appended.
func (c Config) WithExemptions(extra []string) Config {
	c.Exemptions = appendUnique(c.Exemptions, extra)
	return c
}

// WithExcludeDirs returns a copy with extra excluded directories appended.
func (c Config) WithExcludeDirs(extra []string) Config {
	c.ExcludeDirs = appendUnique(c.ExcludeDirs, extra)
	return c
}

func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))

	for _, ext := range exts {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}

		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}

		out = append(out, ext)
	}

	return appendUnique(nil, out)
}

func appendUnique(dst []string, extra []string) []string {
	out := make([]string, 0, len(dst)+len(extra))
	seen := make(map[string]struct{}, len(dst)+len(extra))

	for _, list := range [][]string{dst, extra} {
		for _, v := range list {
			if _, ok := seen[v]; ok {
				continue
			}

			seen[v] = struct{}{}
			out = append(out, v)
		}
	}

	return out
}

package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mahyarmirrashed/filelist/internal/matcher"
)

// DefaultConfigFilename is looked up in the working directory when no
// config path is given.
const DefaultConfigFilename = ".fl.yaml"

// Config holds the YAML configuration for the fl command.
type Config struct {
	Root          string        `yaml:"root"`          // Directory patterns are resolved from
	LogLevel      string        `yaml:"log_level"`     // Logging level: debug, info, warn, error
	Include       []string      `yaml:"include"`       // Glob patterns or paths to include
	Exclude       []string      `yaml:"exclude"`       // Exclusion rules, globs or literals
	NoCase        bool          `yaml:"nocase"`        // Case-insensitive include matching
	Dot           bool          `yaml:"dot"`           // Wildcards match dotfiles
	Engine        string        `yaml:"engine"`        // Matcher engine: doublestar or gobwas
	Quiet         bool          `yaml:"quiet"`         // Suppress unreadable directory warnings
	Format        string        `yaml:"format"`        // Output format: text, null or yaml
	Daemonize     bool          `yaml:"daemonize"`     // Watch mode runs as a daemon
	Delay         time.Duration `yaml:"delay"`         // Settle time before re-resolving in watch mode
	Notifications bool          `yaml:"notifications"` // Desktop notification when the list changes
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Root:     ".",
		LogLevel: "info",
		Format:   "text",
	}
}

// LoadConfig reads a YAML configuration file. Keys missing from the file
// keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return cfg, nil
}

// MatchOptions returns the include options described by the configuration.
func (c *Config) MatchOptions() (matcher.Options, error) {
	engine, err := matcher.ParseEngine(c.Engine)
	if err != nil {
		return matcher.Options{}, err
	}
	return matcher.Options{
		NoCase: c.NoCase,
		Dot:    c.Dot,
		Engine: engine,
	}, nil
}

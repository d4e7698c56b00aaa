package matcher

import "fmt"

// Engine names the glob implementation used to match candidate paths.
type Engine string

const (
	// EngineDoublestar matches with github.com/bmatcuk/doublestar, where "**"
	// also matches zero directories.
	EngineDoublestar Engine = "doublestar"
	// EngineGobwas matches with github.com/gobwas/glob, where "**" matches
	// any run of characters including separators.
	EngineGobwas Engine = "gobwas"
)

// ParseEngine maps a configuration value onto an Engine. The empty string
// selects the default engine.
func ParseEngine(s string) (Engine, error) {
	switch Engine(s) {
	case "", EngineDoublestar:
		return EngineDoublestar, nil
	case EngineGobwas:
		return EngineGobwas, nil
	}
	return "", fmt.Errorf("unknown matcher engine %q", s)
}

// Options configures one glob expansion.
type Options struct {
	NoCase bool   // Compare paths case-insensitively
	Dot    bool   // Let wildcards match segments starting with '.'
	Engine Engine // Matching engine, EngineDoublestar when empty
}

// Merge returns o overlaid with other. Flags are sticky once set and a
// non-empty engine replaces the current one.
func (o Options) Merge(other Options) Options {
	o.NoCase = o.NoCase || other.NoCase
	o.Dot = o.Dot || other.Dot
	if other.Engine != "" {
		o.Engine = other.Engine
	}
	return o
}

package filelist

import (
	"github.com/mahyarmirrashed/filelist/internal/excluder"
	"github.com/mahyarmirrashed/filelist/internal/matcher"
)

// Options configures the expansion of one Include call.
type Options = matcher.Options

// Engine selects the glob implementation.
type Engine = matcher.Engine

const (
	EngineDoublestar = matcher.EngineDoublestar
	EngineGobwas     = matcher.EngineGobwas
)

// Rule is a single exclusion rule.
type Rule = excluder.Rule

// Literal, Glob, Regexp, Pattern and Predicate build exclusion rules with an
// explicit kind, bypassing the classification Exclude applies to strings.
var (
	Literal   = excluder.Literal
	Glob      = excluder.Glob
	Regexp    = excluder.Regexp
	Pattern   = excluder.Pattern
	Predicate = excluder.Predicate
)

var (
	// ErrBadPattern reports glob syntax that cannot be compiled.
	ErrBadPattern = matcher.ErrBadPattern
	// ErrBadRegexp reports an exclusion expression that cannot be compiled.
	ErrBadRegexp = excluder.ErrBadRegexp
)

// SetVerbose controls whether directories that cannot be read during
// expansion are logged. It applies process-wide and defaults to true.
func SetVerbose(v bool) {
	matcher.SetVerbose(v)
}

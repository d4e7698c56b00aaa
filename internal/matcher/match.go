// Package matcher expands glob patterns into the filesystem paths they match.
package matcher

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gobwas/glob"
	log "github.com/sirupsen/logrus"

	"github.com/mahyarmirrashed/filelist/internal/walk"
)

// ErrBadPattern is returned for glob syntax neither engine can compile.
var ErrBadPattern = errors.New("bad glob pattern")

var quiet atomic.Bool

// SetVerbose toggles warnings for directories that cannot be read during
// expansion. Enabled by default.
func SetVerbose(v bool) {
	quiet.Store(!v)
}

// Verbose reports whether unreadable-directory warnings are emitted.
func Verbose() bool {
	return !quiet.Load()
}

// Lister enumerates every path below a root directory.
type Lister func(root string) ([]string, error)

// Expander resolves glob patterns against a directory tree.
type Expander struct {
	List Lister
}

// Default expands patterns against the host filesystem.
var Default = &Expander{List: walk.ListRecursive}

// Expand resolves pattern against the host filesystem.
func Expand(pattern string, opts Options) ([]string, error) {
	return Default.Expand(pattern, opts)
}

// Expand lists the tree under the pattern's base directory and returns the
// entries that match. A base directory that cannot be read yields no matches.
func (e *Expander) Expand(pattern string, opts Options) ([]string, error) {
	pattern = normalizePattern(pattern)
	if err := Validate(pattern, opts); err != nil {
		return nil, err
	}
	base := BaseDir(pattern)

	candidates, err := e.List(base)
	if err != nil {
		if errors.Is(err, walk.ErrUnreadable) {
			if Verbose() {
				log.Warnf("Cannot expand %s: %v", pattern, err)
			}
			return nil, nil
		}
		return nil, err
	}

	return Match(candidates, pattern, opts)
}

// Match returns the candidates matching pattern, in candidate order.
// Candidates are expected to use '/' as the separator.
func Match(candidates []string, pattern string, opts Options) ([]string, error) {
	pattern = normalizePattern(pattern)
	if opts.NoCase {
		pattern = strings.ToLower(pattern)
	}

	match, err := compile(pattern, opts.Engine)
	if err != nil {
		return nil, err
	}

	base := BaseDir(pattern)
	dotPattern := hasDotSegment(relative(pattern, base))

	var out []string
	for _, c := range candidates {
		subject := c
		if opts.NoCase {
			subject = strings.ToLower(subject)
		}
		if !match(subject) {
			continue
		}
		if !opts.Dot && !dotPattern && hasDotSegment(relative(subject, base)) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

// Validate reports whether pattern compiles with the engine opts selects.
func Validate(pattern string, opts Options) error {
	_, err := compile(normalizePattern(pattern), opts.Engine)
	return err
}

func compile(pattern string, engine Engine) (func(string) bool, error) {
	switch engine {
	case EngineGobwas:
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrBadPattern, pattern, err)
		}
		return g.Match, nil
	case "", EngineDoublestar:
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("%w %q", ErrBadPattern, pattern)
		}
		return func(s string) bool {
			return doublestar.MatchUnvalidated(pattern, s)
		}, nil
	}
	return nil, fmt.Errorf("unknown matcher engine %q", engine)
}

// normalizePattern drops a leading "./" and, on Windows, turns '\' into '/'.
func normalizePattern(pattern string) string {
	if filepath.Separator == '\\' {
		pattern = strings.ReplaceAll(pattern, `\`, "/")
	}
	for strings.HasPrefix(pattern, "./") && len(pattern) > 2 {
		pattern = pattern[2:]
	}
	return pattern
}

// relative strips base from p. Paths outside base are returned unchanged.
func relative(p, base string) string {
	if base == "." {
		return p
	}
	if rest, ok := strings.CutPrefix(p, base); ok {
		return strings.TrimPrefix(rest, "/")
	}
	return p
}

// hasDotSegment reports whether any segment of p starts with '.', ignoring
// "." and "..".
func hasDotSegment(p string) bool {
	for _, seg := range strings.Split(p, "/") {
		if len(seg) > 1 && seg[0] == '.' && seg != ".." {
			return true
		}
	}
	return false
}

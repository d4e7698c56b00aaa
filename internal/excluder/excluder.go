// Package excluder decides which paths a file list drops.
package excluder

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/mahyarmirrashed/filelist/internal/matcher"
)

// ErrBadRegexp wraps compile failures of the combined exclusion expression.
var ErrBadRegexp = errors.New("invalid exclusion regexp")

// ExpandFunc resolves a glob rule into the concrete paths it names.
type ExpandFunc func(pattern string, opts matcher.Options) ([]string, error)

// Excluder holds exclusion rules and the expression compiled from them.
type Excluder struct {
	patterns   []Rule
	predicates []Rule

	compiled *regexp.Regexp
	valid    bool

	expand ExpandFunc
	opts   matcher.Options
}

// New creates an Excluder seeded with the default rules. Glob rules are
// expanded with expand, or matcher.Expand when expand is nil.
func New(expand ExpandFunc) *Excluder {
	if expand == nil {
		expand = matcher.Expand
	}
	e := &Excluder{expand: expand}
	e.Add(Defaults()...)
	return e
}

// SetOptions changes the match options used when expanding glob rules.
func (e *Excluder) SetOptions(opts matcher.Options) {
	e.opts = opts
	e.valid = false
}

// Add appends rules in order.
func (e *Excluder) Add(rules ...Rule) {
	for _, r := range rules {
		if r.kind == KindPredicate {
			e.predicates = append(e.predicates, r)
			continue
		}
		e.patterns = append(e.patterns, r)
		e.valid = false
	}
}

// Clear drops every rule, the defaults included.
func (e *Excluder) Clear() {
	e.patterns = nil
	e.predicates = nil
	e.compiled = nil
	e.valid = false
}

// Len returns the number of rules held.
func (e *Excluder) Len() int {
	return len(e.patterns) + len(e.predicates)
}

// Rules returns the pattern rules followed by the predicate rules.
func (e *Excluder) Rules() []Rule {
	out := make([]Rule, 0, e.Len())
	out = append(out, e.patterns...)
	return append(out, e.predicates...)
}

// Clone returns an Excluder with its own copy of the rules.
func (e *Excluder) Clone() *Excluder {
	c := *e
	c.patterns = append([]Rule(nil), e.patterns...)
	c.predicates = append([]Rule(nil), e.predicates...)
	return &c
}

// Compile rebuilds the combined expression if the rules changed since the
// last call.
func (e *Excluder) Compile() error {
	if e.valid {
		return nil
	}

	var fragments []string
	for _, r := range e.patterns {
		switch r.kind {
		case KindGlob:
			paths, err := e.expand(r.text, e.opts)
			if err != nil {
				return fmt.Errorf("expand exclusion %q: %w", r.text, err)
			}
			for _, p := range paths {
				fragments = append(fragments, quoteLiteral(p))
			}
		case KindRegexp, KindPattern:
			fragments = append(fragments, "(?:"+r.text+")")
		default:
			fragments = append(fragments, quoteLiteral(r.text))
		}
	}

	if len(fragments) == 0 {
		e.compiled = nil
		e.valid = true
		return nil
	}

	re, err := regexp.Compile(strings.Join(fragments, "|"))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadRegexp, err)
	}
	e.compiled = re
	e.valid = true
	return nil
}

// IsExcluded reports whether path matches the combined expression or any
// predicate. Predicates run in registration order.
func (e *Excluder) IsExcluded(path string) (bool, error) {
	if err := e.Compile(); err != nil {
		return false, err
	}
	if e.compiled != nil && e.compiled.MatchString(path) {
		log.Debugf("Excluded by pattern: %s", path)
		return true, nil
	}
	for _, p := range e.predicates {
		if p.fn(path) {
			log.Debugf("Excluded by predicate: %s", path)
			return true, nil
		}
	}
	return false, nil
}

// Filter returns the paths that are not excluded, in order.
func (e *Excluder) Filter(paths []string) ([]string, error) {
	if err := e.Compile(); err != nil {
		return nil, err
	}
	out := paths[:0:0]
	for _, p := range paths {
		excluded, err := e.IsExcluded(p)
		if err != nil {
			return nil, err
		}
		if !excluded {
			out = append(out, p)
		}
	}
	return out, nil
}

// quoteLiteral escapes s for literal use and lets either separator match.
func quoteLiteral(s string) string {
	q := regexp.QuoteMeta(s)
	q = strings.ReplaceAll(q, `\\`, "\x00")
	q = strings.ReplaceAll(q, "/", "\x00")
	return strings.ReplaceAll(q, "\x00", `[\\/]`)
}

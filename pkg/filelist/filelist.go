package filelist

import (
	log "github.com/sirupsen/logrus"

	"github.com/mahyarmirrashed/filelist/internal/excluder"
	"github.com/mahyarmirrashed/filelist/internal/matcher"
)

// PendingInclude is a queued include request.
type PendingInclude struct {
	Pattern string
	Options Options
}

// FileList is a lazily resolved, deduplicated, filtered list of paths.
type FileList struct {
	pendingAdd []PendingInclude
	pending    bool
	excludes   *excluder.Excluder
	items      []string
	expander   *matcher.Expander
	err        error
}

// New returns a list with the default exclusion rules, seeded with the given
// include arguments.
func New(args ...any) *FileList {
	return NewWithExpander(matcher.Default, args...)
}

// NewWithExpander is like New but expands globs with e.
func NewWithExpander(e *matcher.Expander, args ...any) *FileList {
	if e == nil {
		e = matcher.Default
	}
	fl := &FileList{
		expander: e,
		excludes: excluder.New(e.Expand),
	}
	return fl.Include(args...)
}

// Include queues paths and glob patterns. Arguments may be strings, string
// slices and Options values, in any order; the Options of one call are merged
// and apply to every pattern of that call. Empty strings and values of other
// types are ignored. No filesystem access happens until the list is read.
func (fl *FileList) Include(args ...any) *FileList {
	var (
		opts     Options
		patterns []string
	)
	for _, arg := range args {
		switch v := arg.(type) {
		case string:
			if v != "" {
				patterns = append(patterns, v)
			}
		case []string:
			for _, s := range v {
				if s != "" {
					patterns = append(patterns, s)
				}
			}
		case Options:
			opts = opts.Merge(v)
		case *Options:
			if v != nil {
				opts = opts.Merge(*v)
			}
		default:
			log.Debugf("Ignoring include argument of type %T", arg)
		}
	}

	for _, p := range patterns {
		fl.pendingAdd = append(fl.pendingAdd, PendingInclude{Pattern: p, Options: opts})
	}
	if len(patterns) > 0 {
		fl.pending = true
	}
	return fl
}

// Exclude adds exclusion rules: strings (globs when they contain glob
// metacharacters, literals otherwise), *regexp.Regexp values, predicates of
// type func(string) bool, Rule values, or slices of these. Any other value is
// formatted as a literal. If the list is already resolved its items are
// filtered again right away.
func (fl *FileList) Exclude(args ...any) *FileList {
	rules := excluder.Rules(args...)
	if len(rules) == 0 {
		return fl
	}
	fl.excludes.Add(rules...)

	if !fl.pending && len(fl.items) > 0 {
		items, err := fl.excludes.Filter(fl.items)
		if err != nil {
			// Leave the list unresolved so the next read reports the error.
			fl.pending = true
			fl.setErr(err)
			return fl
		}
		fl.items = items
	}
	return fl
}

// SetExcludeOptions sets the options used to expand glob exclusion rules.
func (fl *FileList) SetExcludeOptions(opts Options) *FileList {
	fl.excludes.SetOptions(opts)
	return fl
}

// ShouldExclude reports whether path is dropped by the exclusion rules.
func (fl *FileList) ShouldExclude(path string) (bool, error) {
	return fl.excludes.IsExcluded(path)
}

// ClearInclusions drops the queued includes and any resolved items.
func (fl *FileList) ClearInclusions() *FileList {
	fl.pendingAdd = nil
	fl.items = nil
	fl.pending = false
	return fl
}

// ClearExclusions drops every exclusion rule, the defaults included.
func (fl *FileList) ClearExclusions() *FileList {
	fl.excludes.Clear()
	return fl
}

// Pending reports whether queued includes are waiting to be resolved.
func (fl *FileList) Pending() bool {
	return fl.pending
}

// PendingIncludes returns a copy of the queued include requests.
func (fl *FileList) PendingIncludes() []PendingInclude {
	return append([]PendingInclude(nil), fl.pendingAdd...)
}

// Rules returns a copy of the exclusion rules.
func (fl *FileList) Rules() []Rule {
	return fl.excludes.Rules()
}

// Resolve expands the queued includes, removes duplicates and applies the
// exclusion rules. It does nothing if the list is already resolved. On error
// the queue is left as it was.
func (fl *FileList) Resolve() error {
	if !fl.pending {
		return nil
	}
	fl.pending = false

	queue := fl.pendingAdd
	items := append([]string(nil), fl.items...)
	for _, inc := range queue {
		if !matcher.HasMagic(inc.Pattern) {
			items = append(items, inc.Pattern)
			continue
		}
		matches, err := fl.expander.Expand(inc.Pattern, inc.Options)
		if err != nil {
			fl.pending = true
			return err
		}
		log.Debugf("Expanded %s to %d paths", inc.Pattern, len(matches))
		items = append(items, matches...)
	}

	items, err := fl.excludes.Filter(unique(items))
	if err != nil {
		fl.pending = true
		return err
	}

	fl.pendingAdd = nil
	fl.items = items
	return nil
}

// Err returns the first error recorded by an operation that cannot return
// one, such as Len or a chained Exclude.
func (fl *FileList) Err() error {
	return fl.err
}

func (fl *FileList) setErr(err error) {
	if fl.err == nil {
		fl.err = err
	}
}

// ensure resolves the list, recording any failure on fl.
func (fl *FileList) ensure() bool {
	if err := fl.Resolve(); err != nil {
		fl.setErr(err)
		return false
	}
	return true
}

// ToArray resolves the list and returns a copy of its items.
func (fl *FileList) ToArray() ([]string, error) {
	if err := fl.Resolve(); err != nil {
		return nil, err
	}
	return append([]string{}, fl.items...), nil
}

// Clone returns an independent copy of fl, including unresolved state.
func (fl *FileList) Clone() *FileList {
	return &FileList{
		pendingAdd: append([]PendingInclude(nil), fl.pendingAdd...),
		pending:    fl.pending,
		excludes:   fl.excludes.Clone(),
		items:      append([]string(nil), fl.items...),
		expander:   fl.expander,
		err:        fl.err,
	}
}

// derive builds a resolved list holding items and a copy of fl's rules.
func (fl *FileList) derive(items []string) *FileList {
	return &FileList{
		pendingAdd: append([]PendingInclude(nil), fl.pendingAdd...),
		excludes:   fl.excludes.Clone(),
		items:      items,
		expander:   fl.expander,
	}
}

func unique(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	out := paths[:0]
	for _, p := range paths {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

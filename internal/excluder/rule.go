package excluder

import (
	"fmt"
	"regexp"

	"github.com/mahyarmirrashed/filelist/internal/matcher"
)

// Kind tags the variant held by a Rule.
type Kind int

const (
	KindLiteral Kind = iota
	KindGlob
	KindRegexp
	KindPattern
	KindPredicate
)

func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindGlob:
		return "glob"
	case KindRegexp:
		return "regexp"
	case KindPattern:
		return "pattern"
	case KindPredicate:
		return "predicate"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Rule is a single exclusion rule. Its kind is fixed on construction.
type Rule struct {
	kind Kind
	text string
	re   *regexp.Regexp
	fn   func(string) bool
}

// Literal excludes every path containing s, with '/' and '\' interchangeable.
func Literal(s string) Rule {
	return Rule{kind: KindLiteral, text: s}
}

// Glob excludes the paths the pattern expands to at compile time.
func Glob(pattern string) Rule {
	return Rule{kind: KindGlob, text: pattern}
}

// Regexp excludes paths matched by re.
func Regexp(re *regexp.Regexp) Rule {
	return Rule{kind: KindRegexp, re: re, text: re.String()}
}

// Pattern excludes paths matched by the regular expression src. The source
// is not validated until the rule set is compiled.
func Pattern(src string) Rule {
	return Rule{kind: KindPattern, text: src}
}

// Predicate excludes paths for which fn returns true.
func Predicate(fn func(string) bool) Rule {
	return Rule{kind: KindPredicate, fn: fn}
}

// String classifies a plain string rule as a glob or a literal. A string
// with glob metacharacters that does not compile as a glob is a literal.
func String(s string) Rule {
	if matcher.HasMagic(s) && matcher.Validate(s, matcher.Options{}) == nil {
		return Glob(s)
	}
	return Literal(s)
}

// Kind reports the rule variant.
func (r Rule) Kind() Kind { return r.kind }

// Text returns the literal, glob or regexp source of the rule. It is empty
// for predicates.
func (r Rule) Text() string { return r.text }

// Rules converts loosely typed values into rules. Strings are classified by
// String, slices are flattened, and values of any other type are formatted
// with fmt.Sprint and treated as literals.
func Rules(args ...any) []Rule {
	var out []Rule
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
		case Rule:
			out = append(out, v)
		case []Rule:
			out = append(out, v...)
		case string:
			if v != "" {
				out = append(out, String(v))
			}
		case []string:
			for _, s := range v {
				if s != "" {
					out = append(out, String(s))
				}
			}
		case *regexp.Regexp:
			if v != nil {
				out = append(out, Regexp(v))
			}
		case func(string) bool:
			if v != nil {
				out = append(out, Predicate(v))
			}
		case []any:
			out = append(out, Rules(v...)...)
		default:
			out = append(out, Literal(fmt.Sprint(v)))
		}
	}
	return out
}

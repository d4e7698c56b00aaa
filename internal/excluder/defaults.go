package excluder

import (
	"os"
	"regexp"
)

var (
	defaultPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(^|[\\/])CVS([\\/]|$)`),
		regexp.MustCompile(`(^|[\\/])\.svn([\\/]|$)`),
		regexp.MustCompile(`(^|[\\/])\.git([\\/]|$)`),
		regexp.MustCompile(`\.bak$`),
		regexp.MustCompile(`~$`),
	}

	corePattern = regexp.MustCompile(`(^|[\\/])core$`)
)

// isCoreFile matches a file named core. Directory-ness is checked on every
// call, and a path that cannot be stat'ed is not excluded.
func isCoreFile(path string) bool {
	if !corePattern.MatchString(path) {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// Defaults returns a fresh copy of the built-in ignore rules: VCS metadata
// directories, backup files and core dumps.
func Defaults() []Rule {
	rules := make([]Rule, 0, len(defaultPatterns)+1)
	for _, re := range defaultPatterns {
		rules = append(rules, Regexp(re))
	}
	return append(rules, Predicate(isCoreFile))
}

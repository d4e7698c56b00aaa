package matcher

import (
	"path/filepath"
	"strings"
)

const magicChars = "*?[{"

// HasMagic reports whether pattern contains a glob metacharacter.
func HasMagic(pattern string) bool {
	return strings.ContainsAny(pattern, magicChars)
}

// separators lists the bytes that split pattern segments. Outside Windows a
// backslash escapes the next character instead.
var separators = func() string {
	if filepath.Separator == '\\' {
		return `/\`
	}
	return "/"
}()

func isSep(c byte) bool {
	return strings.IndexByte(separators, c) >= 0
}

// BaseDir returns the longest prefix of pattern made of segments without
// glob metacharacters. Separators inside the prefix are kept as written and
// trailing separators are dropped. A pattern that starts with a wildcard has
// base directory ".". BaseDir(BaseDir(p)) == BaseDir(p) for every p.
func BaseDir(pattern string) string {
	if pattern == "" || HasMagic(pattern[:1]) {
		return "."
	}

	var b strings.Builder
	start := 0
	for i := 0; i <= len(pattern); i++ {
		if i < len(pattern) && !isSep(pattern[i]) {
			continue
		}
		seg := pattern[start:i]
		if HasMagic(seg) {
			break
		}
		b.WriteString(seg)
		if i < len(pattern) {
			b.WriteByte(pattern[i])
		}
		start = i + 1
	}

	bd := b.String()
	trimmed := strings.TrimRight(bd, separators)
	switch {
	case bd == "":
		return "."
	case trimmed == "":
		// Filesystem root.
		return bd[:1]
	}
	return trimmed
}

// Package filelist implements a lazily resolved list of filesystem paths built
// from include globs and exclusion rules.
//
// Include only queues patterns. The first read of the list (Len, At, All,
// ToArray and friends) expands every queued glob, drops duplicates while
// keeping first-seen order, and removes paths matched by the exclusion rules:
//
//	fl := filelist.New("src/**/*.go")
//	fl.Exclude("src/vendor", regexp.MustCompile(`_test\.go$`))
//	files, err := fl.ToArray()
//
// A new list already ignores CVS, .svn and .git directories, files ending in
// .bak or ~, and files named core. ClearExclusions removes those defaults too.
//
// Copy-style operations (Slice, Filter, Map, Concat, Sorted) return a new,
// already resolved list carrying a copy of the source's rules. A list is not
// safe for concurrent use.
package filelist

package filelist

import (
	"iter"
	"slices"
	"strings"
)

// Len resolves the list and returns the number of paths.
func (fl *FileList) Len() int {
	fl.ensure()
	return len(fl.items)
}

// At resolves the list and returns the i'th path. It panics if i is out of
// range.
func (fl *FileList) At(i int) string {
	fl.ensure()
	return fl.items[i]
}

// All resolves the list and yields each index and path.
func (fl *FileList) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		fl.ensure()
		for i, p := range fl.items {
			if !yield(i, p) {
				return
			}
		}
	}
}

// Values resolves the list and yields each path.
func (fl *FileList) Values() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, p := range fl.All() {
			if !yield(p) {
				return
			}
		}
	}
}

// Index returns the position of path in the list, or -1.
func (fl *FileList) Index(path string) int {
	fl.ensure()
	return slices.Index(fl.items, path)
}

// Contains reports whether path is in the list.
func (fl *FileList) Contains(path string) bool {
	return fl.Index(path) >= 0
}

// Join concatenates the paths with sep between them.
func (fl *FileList) Join(sep string) string {
	fl.ensure()
	return strings.Join(fl.items, sep)
}

// String returns the paths separated by spaces.
func (fl *FileList) String() string {
	return fl.Join(" ")
}

// Append adds paths to the resolved items without filtering them.
func (fl *FileList) Append(paths ...string) *FileList {
	fl.ensure()
	fl.items = append(fl.items, paths...)
	return fl
}

// Slice returns a list of the paths in [i, j).
func (fl *FileList) Slice(i, j int) *FileList {
	fl.ensure()
	return fl.derive(slices.Clone(fl.items[i:j]))
}

// Filter returns a list of the paths for which keep returns true.
func (fl *FileList) Filter(keep func(string) bool) *FileList {
	fl.ensure()
	var out []string
	for _, p := range fl.items {
		if keep(p) {
			out = append(out, p)
		}
	}
	return fl.derive(out)
}

// Map returns a list of fn applied to every path.
func (fl *FileList) Map(fn func(string) string) *FileList {
	fl.ensure()
	out := make([]string, len(fl.items))
	for i, p := range fl.items {
		out[i] = fn(p)
	}
	return fl.derive(out)
}

// Concat returns a list of fl's paths followed by the paths of others. The
// result is neither deduplicated nor filtered.
func (fl *FileList) Concat(others ...*FileList) *FileList {
	fl.ensure()
	out := slices.Clone(fl.items)
	for _, o := range others {
		if o == nil {
			continue
		}
		if err := o.Resolve(); err != nil {
			fl.setErr(err)
			continue
		}
		out = append(out, o.items...)
	}
	return fl.derive(out)
}

// Sorted returns a list of the paths in lexical order.
func (fl *FileList) Sorted() *FileList {
	fl.ensure()
	out := slices.Clone(fl.items)
	slices.Sort(out)
	return fl.derive(out)
}

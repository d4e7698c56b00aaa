// Package walk lists directory trees for glob expansion.
package walk

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// ErrUnreadable is wrapped by every error ListRecursive returns for a root it
// could not read.
var ErrUnreadable = errors.New("directory unreadable")

// Kind classifies why a root could not be read.
type Kind int

const (
	KindOther Kind = iota
	KindNotExist
	KindPermission
	KindNotDir
)

func (k Kind) String() string {
	switch k {
	case KindNotExist:
		return "not exist"
	case KindPermission:
		return "permission denied"
	case KindNotDir:
		return "not a directory"
	default:
		return "other"
	}
}

// ReadError reports a root directory that could not be enumerated.
type ReadError struct {
	Path string
	Kind Kind
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %s: %v", e.Path, e.Kind, e.Err)
}

func (e *ReadError) Unwrap() []error {
	return []error{ErrUnreadable, e.Err}
}

func classify(err error) Kind {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return KindNotExist
	case errors.Is(err, fs.ErrPermission):
		return KindPermission
	default:
		return KindOther
	}
}

// ListRecursive returns every file and directory below root in lexical walk
// order, with '/' as the separator. The root itself is not included. Entries
// are prefixed with root unless root is ".". Unreadable subdirectories are
// skipped; an unreadable root yields a *ReadError. A symlinked root is
// followed, but entries keep the root as the caller spelled it.
func ListRecursive(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, &ReadError{Path: root, Kind: classify(err), Err: err}
	}
	if !info.IsDir() {
		return nil, &ReadError{Path: root, Kind: KindNotDir, Err: fs.ErrInvalid}
	}

	// WalkDir does not descend into a symlinked root.
	dir, err := filepath.EvalSymlinks(root)
	if err != nil {
		return nil, &ReadError{Path: root, Kind: classify(err), Err: err}
	}

	prefix := filepath.ToSlash(root)
	var paths []string
	err = filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == dir {
				return err
			}
			log.Debugf("Skipping unreadable entry %s: %v", p, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if p == dir {
			return nil
		}

		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if prefix == "." {
			paths = append(paths, rel)
		} else {
			paths = append(paths, joinSlash(prefix, rel))
		}
		return nil
	})
	if err != nil {
		return nil, &ReadError{Path: root, Kind: classify(err), Err: err}
	}
	return paths, nil
}

// joinSlash joins without cleaning so the root keeps its original spelling.
func joinSlash(root, rel string) string {
	if root == "" {
		return rel
	}
	if root[len(root)-1] == '/' {
		return root + rel
	}
	return root + "/" + rel
}

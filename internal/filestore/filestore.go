// Package filestore reads the pre-fetched per-company text files that back
// the retrieval fallback stage. The data directory is treated as read-only.
package filestore

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rotisserie/eris"
)

// Store lists and reads UTF-8 text files from a single data directory.
type Store interface {
	// ListFiles returns the paths of .txt files whose base name starts
	// with the given prefix, in lexical order.
	ListFiles(prefix string) ([]string, error)
	// ReadText returns the full contents of the file at path.
	ReadText(path string) (string, error)
}

// DirStore implements Store over a local directory.
type DirStore struct {
	dir string
}

// NewDir creates a DirStore rooted at dir. The directory does not need to
// exist yet; ListFiles on a missing directory returns an empty list.
func NewDir(dir string) *DirStore {
	return &DirStore{dir: dir}
}

func (s *DirStore) ListFiles(prefix string) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, eris.Wrap(err, "filestore: read data dir")
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, prefix) && strings.HasSuffix(name, ".txt") {
			paths = append(paths, filepath.Join(s.dir, name))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

func (s *DirStore) ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", eris.Wrapf(err, "filestore: read %s", path)
	}
	return string(data), nil
}

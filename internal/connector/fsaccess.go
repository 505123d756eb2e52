package connector

import (
	"io/fs"
	"os"
	"path/filepath"
)

// OSFileAccess implements FileAccess against the real filesystem. Listing is
// restricted to the connectors namespace and returns slash-separated
// relative paths in lexical walk order, so date-stamped snapshots come back
// oldest first.
type OSFileAccess struct{}

// NewOSFileAccess creates a production FileAccess.
func NewOSFileAccess() OSFileAccess {
	return OSFileAccess{}
}

// ListFiles returns the relative paths of all regular files under
// root/connectors. A missing namespace directory yields an empty listing,
// not an error.
func (OSFileAccess) ListFiles(root string) ([]string, error) {
	base := filepath.Join(root, Namespace)
	if _, err := os.Stat(base); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var paths []string
	err := filepath.WalkDir(base, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

// ReadFile reads one artifact relative to root.
func (OSFileAccess) ReadFile(root, relativePath string) ([]byte, error) {
	return os.ReadFile(filepath.Join(root, filepath.FromSlash(relativePath)))
}

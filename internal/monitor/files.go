package monitor

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// listFiles resolves the watched path at poll time. A directory yields its
// files with the given extension, a glob is expanded, anything else is
// returned as the single file to check.
func listFiles(path, ext string) ([]string, error) {
	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		matches, err := doublestar.Glob(os.DirFS(path), "*"+ext, doublestar.WithFilesOnly())
		if err != nil {
			return nil, err
		}
		files := make([]string, 0, len(matches))
		for _, m := range matches {
			files = append(files, filepath.Join(path, m))
		}
		return files, nil

	case err == nil:
		return []string{path}, nil

	case errors.Is(err, fs.ErrNotExist) && hasMeta(path):
		return doublestar.FilepathGlob(path, doublestar.WithFilesOnly())

	case errors.Is(err, fs.ErrNotExist):
		return []string{path}, nil

	default:
		return nil, err
	}
}

func hasMeta(path string) bool {
	for _, c := range path {
		switch c {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}

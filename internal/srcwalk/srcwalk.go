// Package srcwalk provides a deterministic, filterable filesystem walker used
// by the merger to gather candidate source files. Enumeration order (sorted
// project-relative paths) is part of the merger's contract: it defines which
// entry-point candidate is "first" or "last".
package srcwalk

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileInfo is a minimal, deterministic descriptor of a collected file.
type FileInfo struct {
	RelPath string // root-relative path with forward slashes
	AbsPath string // absolute filesystem path
	Size    int64  // size in bytes
}

// DefaultExcludes are directory/file base-name prefixes skipped during the
// walk unless the caller overrides them.
var DefaultExcludes = []string{".git", ".idea", ".vscode", "build", "out", "target", "node_modules"}

// Collect walks root and returns every regular file whose extension equals
// ext (case-insensitive, leading dot expected), sorted by RelPath. Entries
// whose base name starts with an exclude prefix are skipped, directories
// recursively so. Symlinks are never followed.
func Collect(root, ext string, excludes []string) ([]FileInfo, error) {
	rootAbs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	ext = strings.ToLower(ext)
	var files []FileInfo
	err = filepath.WalkDir(rootAbs, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, rerr := filepath.Rel(rootAbs, path)
		if rerr != nil || rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if excluded(filepath.Base(rel), excludes) || d.Type()&fs.ModeSymlink != 0 {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if strings.ToLower(filepath.Ext(path)) != ext {
			return nil
		}
		info, ierr := d.Info()
		if ierr != nil || !info.Mode().IsRegular() {
			return nil
		}
		files = append(files, FileInfo{RelPath: rel, AbsPath: path, Size: info.Size()})
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(files, func(i, j int) bool { return files[i].RelPath < files[j].RelPath })
	return files, nil
}

// DirExists reports whether path names an existing directory.
func DirExists(path string) bool {
	st, err := os.Stat(path)
	return err == nil && st.IsDir()
}

func excluded(base string, excludes []string) bool {
	for _, p := range excludes {
		if p != "" && strings.HasPrefix(base, p) {
			return true
		}
	}
	return false
}

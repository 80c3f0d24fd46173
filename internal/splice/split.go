// Package splice converts class-based source text between its two on-disk
// shapes: one merged compilation unit (the form a remote judge accepts) and a
// directory with one file per top-level type (the form convenient for
// multi-file editing). Split and Merge are independent, stateless,
// file-to-file transformations; the caller serializes invocations that touch
// the same paths.
package splice

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"class-splicer/internal/javasrc"
	"class-splicer/internal/textutil"
)

// DefaultExt is the source extension used when an Options value leaves Ext
// empty.
const DefaultExt = ".java"

// SplitOptions controls Split.
type SplitOptions struct {
	// Ext is the extension (with dot) given to written files. Defaults to
	// DefaultExt.
	Ext string
}

// SplitResult reports what Split wrote.
type SplitResult struct {
	// Files holds the written paths in declaration order.
	Files []string
}

// Split reads the merged file, partitions it into one file per top-level
// type under outDir, and forces each written type public so every split file
// stands alone as a valid single-type unit. Shared import lines are copied
// into every file in their original order. Zero detected types yields an
// empty (but created) outDir and no error.
func Split(mergedPath, outDir string, opts SplitOptions) (SplitResult, error) {
	ext := opts.Ext
	if ext == "" {
		ext = DefaultExt
	}
	data, err := os.ReadFile(mergedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return SplitResult{}, fmt.Errorf("%w: %s", ErrInputNotFound, mergedPath)
		}
		return SplitResult{}, fmt.Errorf("reading %s: %w", mergedPath, err)
	}
	unit := javasrc.Parse(textutil.NormalizeLF(string(data)))

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return SplitResult{}, fmt.Errorf("%w: creating %s: %v", ErrWriteFailure, outDir, err)
	}

	var res SplitResult
	importBlock := strings.Join(unit.Imports, "\n")
	for _, t := range unit.Types {
		body := append([]string{javasrc.ForcePublic(t.Lines[0])}, t.Lines[1:]...)
		content := textutil.JoinSections(importBlock, strings.Join(body, "\n"))
		path := filepath.Join(outDir, t.Name+ext)
		if err := os.WriteFile(path, []byte(textutil.EnsureTrailingLF(content)), 0o644); err != nil {
			return res, fmt.Errorf("%w: writing %s: %v", ErrWriteFailure, path, err)
		}
		res.Files = append(res.Files, path)
	}
	return res, nil
}

// SplitDirFor derives the split directory beside a merged file: its base name
// without extension. "/work/A.java" maps to "/work/A".
func SplitDirFor(mergedPath string) string {
	base := filepath.Base(mergedPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(mergedPath), base)
}

// Package roundtrip checks that split and merge converge for a given merged
// file: after one full split+merge cycle, running a second cycle over the
// result must reproduce it byte for byte. Divergence usually means the input
// relies on constructs outside the structural heuristics (see javasrc).
package roundtrip

import (
	"fmt"
	"os"
	"path/filepath"

	"class-splicer/internal/diff"
	"class-splicer/internal/splice"
)

// Result describes one convergence check.
type Result struct {
	// Converged is true when cycle two reproduced cycle one exactly.
	Converged bool
	// Diff is a unified patch between the two cycles when not converged.
	Diff string
	// SplitFiles is the number of per-type files the first split produced.
	SplitFiles int
}

// Options carries the converter settings used for both cycles.
type Options struct {
	Ext    string
	Policy splice.EntryPolicy
}

// Check runs two split+merge cycles over mergedPath in a temp workspace and
// compares their outputs. The input file itself is never modified.
func Check(mergedPath string, opts Options) (Result, error) {
	work, err := os.MkdirTemp("", "splice-verify-*")
	if err != nil {
		return Result{}, fmt.Errorf("creating temp workspace: %w", err)
	}
	defer os.RemoveAll(work)

	first, splitFiles, err := cycle(mergedPath, filepath.Join(work, "c1"), opts)
	if err != nil {
		return Result{}, err
	}
	second, _, err := cycle(filepath.Join(work, "c1", "merged"+ext(opts)), filepath.Join(work, "c2"), opts)
	if err != nil {
		return Result{}, err
	}

	res := Result{Converged: first == second, SplitFiles: splitFiles}
	if !res.Converged {
		res.Diff = diff.Unified("cycle1", "cycle2", first, second, 3)
	}
	return res, nil
}

// cycle splits mergedPath into dir/split, merges the pieces back into
// dir/merged<ext>, and returns the merged content.
func cycle(mergedPath, dir string, opts Options) (string, int, error) {
	splitDir := filepath.Join(dir, "split")
	sres, err := splice.Split(mergedPath, splitDir, splice.SplitOptions{Ext: opts.Ext})
	if err != nil {
		return "", 0, err
	}
	outPath := filepath.Join(dir, "merged"+ext(opts))
	if _, err := splice.Merge(splitDir, outPath, splice.MergeOptions{Ext: opts.Ext, Policy: opts.Policy}); err != nil {
		return "", 0, err
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		return "", 0, fmt.Errorf("reading %s: %w", outPath, err)
	}
	return string(data), len(sres.Files), nil
}

func ext(opts Options) string {
	return firstNonEmpty(opts.Ext, splice.DefaultExt)
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

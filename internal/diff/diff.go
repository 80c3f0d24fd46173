// Package diff renders unified patches for the verify workflow. It uses
// github.com/pmezard/go-difflib/difflib to produce classic unified output
// (---/+++ headers, @@ hunks, lines prefixed with ' ', '-', '+').
package diff

import (
	"strings"

	difflib "github.com/pmezard/go-difflib/difflib"
)

// Unified produces a unified patch for a -> b with the given number of
// context lines (values < 1 default to 3). Identical inputs return "".
func Unified(aName, bName, a, b string, context int) string {
	if a == b {
		return ""
	}
	if context < 1 {
		context = 3
	}
	u := difflib.UnifiedDiff{
		A:        splitLinesKeepNL(a),
		B:        splitLinesKeepNL(b),
		FromFile: aName,
		ToFile:   bName,
		Context:  context,
	}
	s, err := difflib.GetUnifiedDiffString(u)
	if err != nil {
		return ""
	}
	return s
}

// splitLinesKeepNL splits into lines keeping the trailing newline on each
// element, which produces stabler unified hunks.
func splitLinesKeepNL(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.SplitAfter(s, "\n")
}

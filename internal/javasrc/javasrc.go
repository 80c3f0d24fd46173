// Package javasrc provides structural understanding of Java-style source text
// using line heuristics plus brace-depth tracking. It is intentionally shallow
// (not a parser) but precise enough to locate top-level type declarations,
// separate import lines from type bodies, and find the program entry point.
//
// Features:
//   - Recognizes top-level class/interface/enum headers only at brace depth 0,
//     so nested/inner types stay attached to their enclosing type's body.
//   - Masks string/char literals and // and /* */ comments before counting
//     braces, so keyword-like text inside them never opens a type.
//   - Rewrites the visibility modifier of a header line in both directions
//     (force public for split files, strip public for merged auxiliaries).
//
// Limitations:
//   - Annotations or Javadoc appearing before the first type header are
//     treated like any other pre-header line and dropped by callers.
//   - Text blocks (""") are masked only within a single line.
package javasrc

import (
	"regexp"
	"strings"
)

var (
	// package com.acme.foo;
	rePackage = regexp.MustCompile(`^\s*package\s+[A-Za-z0-9_$.]+\s*;`)

	// import [static] com.acme.Foo; | com.acme.*; | com.acme.Foo.*;
	// Groups:
	//   1: "static" when present
	//   2: imported fully-qualified name, possibly ending in ".*"
	reImport = regexp.MustCompile(`^\s*import\s+(?:(static)\s+)?([A-Za-z0-9_$.]+(?:\.\*)?)\s*;`)

	// [visibility] [abstract|final|strictfp ...] class|interface|enum Name
	// Groups:
	//   1: visibility keyword ("" when package-private)
	//   2: kind
	//   3: type name
	reTypeHeader = regexp.MustCompile(
		`^\s*(?:(public|protected|private)\s+)?(?:(?:abstract|final|strictfp)\s+)*(class|interface|enum)\s+([A-Za-z_$][A-Za-z0-9_$]*)`)

	// public static void main(  (both modifier orders are accepted)
	reMainMethod = regexp.MustCompile(
		`^\s*(?:public\s+static|static\s+public)\s+(?:final\s+)?void\s+main\s*\(`)

	reVisibility = regexp.MustCompile(`^(\s*)(public|protected|private)\s+`)
	reIndent     = regexp.MustCompile(`^\s*`)
	rePublicKw   = regexp.MustCompile(`^(\s*)public\s+`)
)

// Type is one top-level type declaration: its header line followed by every
// body line up to (but not including) the next top-level header. Trailing
// blank lines are trimmed so that repeated split/merge cycles converge.
type Type struct {
	Name   string
	Kind   string // "class" | "interface" | "enum"
	Public bool
	Lines  []string
}

// HasEntryPoint reports whether any body line matches a public static main
// method signature.
func (t Type) HasEntryPoint() bool {
	for _, ln := range t.Lines {
		if reMainMethod.MatchString(ln) {
			return true
		}
	}
	return false
}

// IsEntryPoint reports whether the type is the unit's entry point: a public
// type whose body contains a public static main signature.
func (t Type) IsEntryPoint() bool {
	return t.Public && t.HasEntryPoint()
}

// Unit is the structural view of one source text: import lines (verbatim, in
// source order) plus top-level type declarations in order of appearance.
// Package lines and any lines preceding the first type header are discarded.
type Unit struct {
	Imports []string
	Types   []Type
}

// EntryPoints returns the indexes of types satisfying IsEntryPoint.
func (u Unit) EntryPoints() []int {
	var idx []int
	for i, t := range u.Types {
		if t.IsEntryPoint() {
			idx = append(idx, i)
		}
	}
	return idx
}

// Parse scans src line by line and builds the structural Unit. A type header
// is recognized only when the line starts at brace depth 0 outside any block
// comment; everything else at depth 0 before the first header is discarded,
// and everything after a header accumulates into the open type's body.
func Parse(src string) Unit {
	var (
		unit    Unit
		open    *Type
		scanner lineScanner
	)
	closeOpen := func() {
		if open == nil {
			return
		}
		open.Lines = trimTrailingBlank(open.Lines)
		unit.Types = append(unit.Types, *open)
		open = nil
	}
	for _, line := range splitLines(src) {
		atTopLevel := scanner.depth == 0 && !scanner.inBlockComment
		masked := scanner.mask(line)

		if atTopLevel {
			if rePackage.MatchString(masked) {
				continue
			}
			if reImport.MatchString(masked) {
				unit.Imports = append(unit.Imports, strings.TrimSpace(line))
				continue
			}
			if m := reTypeHeader.FindStringSubmatch(masked); m != nil {
				closeOpen()
				open = &Type{
					Name:   m[3],
					Kind:   m[2],
					Public: m[1] == "public",
					Lines:  []string{line},
				}
				scanner.count(masked)
				continue
			}
		}
		scanner.count(masked)
		if open != nil {
			open.Lines = append(open.Lines, line)
		}
	}
	closeOpen()
	return unit
}

// CollectTypeNames returns the names of every top-level type declared across
// the given units. The merger uses the set to prune imports of types that
// became local after merging.
func CollectTypeNames(units []Unit) map[string]struct{} {
	names := make(map[string]struct{})
	for _, u := range units {
		for _, t := range u.Types {
			names[t.Name] = struct{}{}
		}
	}
	return names
}

// ImportedName extracts the simple type name an import line introduces.
// For "import a.b.C;" it is "C"; for static imports ("import static a.b.C.m;"
// or "import static a.b.C.*;") it is the enclosing class "C"; for on-demand
// package imports ("import a.b.*;") it returns "" (no single type).
func ImportedName(line string) string {
	m := reImport.FindStringSubmatch(line)
	if m == nil {
		return ""
	}
	static := m[1] != ""
	segs := strings.Split(m[2], ".")
	last := segs[len(segs)-1]
	if static {
		// Member or wildcard trails the class name.
		if len(segs) < 2 {
			return ""
		}
		return segs[len(segs)-2]
	}
	if last == "*" {
		return ""
	}
	return last
}

// IsTypeHeader reports whether the line declares a class/interface/enum.
// Callers are responsible for depth context; Parse applies it automatically.
func IsTypeHeader(line string) bool {
	return reTypeHeader.MatchString(line)
}

// ForcePublic rewrites a type header so its visibility keyword is "public",
// inserting one if the header had none. Other modifiers are untouched.
func ForcePublic(header string) string {
	if m := reVisibility.FindStringSubmatch(header); m != nil {
		return m[1] + "public " + header[len(m[0]):]
	}
	indent := reIndent.FindString(header)
	return indent + "public " + header[len(indent):]
}

// StripPublic removes a leading "public" keyword from a type header, leaving
// the type package-private. Headers without one are returned unchanged.
func StripPublic(header string) string {
	if m := rePublicKw.FindStringSubmatch(header); m != nil {
		return m[1] + header[len(m[0]):]
	}
	return header
}

func splitLines(src string) []string {
	if src == "" {
		return nil
	}
	return strings.Split(src, "\n")
}

func trimTrailingBlank(lines []string) []string {
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Package textutil normalizes source text before structural scanning and
// after reassembly. All converter code works on LF-only, valid-UTF-8 strings.
package textutil

import "strings"

// NormalizeLF converts CRLF/CR line endings to LF and replaces invalid UTF-8
// byte sequences with the Unicode replacement character.
func NormalizeLF(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.ToValidUTF8(s, "�")
}

// EnsureTrailingLF appends a single trailing newline if not already present.
// Empty input stays empty.
func EnsureTrailingLF(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}

// JoinSections joins non-empty sections with a single blank line between
// them. Empty sections are skipped so separators never stack.
func JoinSections(sections ...string) string {
	parts := make([]string, 0, len(sections))
	for _, s := range sections {
		s = strings.TrimRight(s, "\n")
		if strings.TrimSpace(s) == "" {
			continue
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, "\n\n")
}

package textutil

import "testing"

func TestNormalizeLF(t *testing.T) {
	got := NormalizeLF("a\r\nb\rc\n")
	if got != "a\nb\nc\n" {
		t.Fatalf("NormalizeLF: %q", got)
	}
}

func TestNormalizeLFInvalidUTF8(t *testing.T) {
	got := NormalizeLF("ok\xffend")
	if got != "ok�end" {
		t.Fatalf("NormalizeLF: %q", got)
	}
}

func TestEnsureTrailingLF(t *testing.T) {
	if got := EnsureTrailingLF("x"); got != "x\n" {
		t.Fatalf("got %q", got)
	}
	if got := EnsureTrailingLF("x\n"); got != "x\n" {
		t.Fatalf("got %q", got)
	}
	if got := EnsureTrailingLF(""); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestJoinSections(t *testing.T) {
	got := JoinSections("a", "", "b\n", "   ", "c")
	if got != "a\n\nb\n\nc" {
		t.Fatalf("JoinSections: %q", got)
	}
}

func TestJoinSectionsAllEmpty(t *testing.T) {
	if got := JoinSections("", "  \n"); got != "" {
		t.Fatalf("JoinSections: %q", got)
	}
}

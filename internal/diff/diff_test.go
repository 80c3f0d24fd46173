package diff

import (
	"strings"
	"testing"
)

func TestUnifiedProducesPatch(t *testing.T) {
	body := Unified("a.java", "b.java", "line1\nline2\n", "line1\nline3\n", 3)
	if !strings.Contains(body, "--- a.java") || !strings.Contains(body, "+++ b.java") {
		t.Fatalf("missing headers: %q", body)
	}
	if !strings.Contains(body, "-line2") || !strings.Contains(body, "+line3") {
		t.Fatalf("missing hunk lines: %q", body)
	}
}

func TestUnifiedIdenticalInputs(t *testing.T) {
	if body := Unified("a", "b", "same\n", "same\n", 3); body != "" {
		t.Fatalf("expected empty diff, got %q", body)
	}
}

func TestUnifiedDefaultContext(t *testing.T) {
	if body := Unified("a", "b", "x\n", "y\n", 0); body == "" {
		t.Fatalf("expected non-empty diff")
	}
}

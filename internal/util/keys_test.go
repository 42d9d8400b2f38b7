package util

import (
	"strings"
	"testing"
)

func TestEntryKeyStableAndFixedSize(t *testing.T) {
	a := EntryKey("parse:ns", "A€😀")
	b := EntryKey("parse:ns", "A€😀")
	if a != b {
		t.Fatalf("key not deterministic: %q vs %q", a, b)
	}
	if !strings.HasPrefix(a, "parse:ns:") || len(a) != len("parse:ns:")+16 {
		t.Fatalf("unexpected key shape %q", a)
	}
	long := EntryKey("parse:ns", strings.Repeat("x", 1<<16))
	if len(long) != len(a) {
		t.Fatalf("key length depends on text: %d vs %d", len(long), len(a))
	}
	if EntryKey("parse:ns", "a") == EntryKey("parse:ns", "b") {
		t.Fatalf("distinct texts share a key")
	}
}

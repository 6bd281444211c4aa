package registry

import "testing"

func TestGetOrDefault(t *testing.T) {
	table := New(map[int64]string{1: "one", 2: "two"}, "unknown")

	if got := table.GetOrDefault(1); got != "one" {
		t.Fatalf("expected one, got %q", got)
	}
	if got := table.GetOrDefault(99); got != "unknown" {
		t.Fatalf("expected fallback, got %q", got)
	}
	if _, ok := table.Get(99); ok {
		t.Fatal("expected absent key to report not found")
	}
	if table.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", table.Len())
	}
}

func TestNewCopiesEntries(t *testing.T) {
	source := map[int64]string{1: "one"}
	table := New(source, "unknown")
	source[1] = "mutated"
	if got := table.GetOrDefault(1); got != "one" {
		t.Fatalf("expected table to be isolated from source map, got %q", got)
	}
}

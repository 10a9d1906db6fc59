package idgen

import "testing"

func TestNextUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := Next()
		if id == "" {
			t.Fatal("expected non-empty id")
		}
		if seen[id] {
			t.Fatalf("id %q repeated", id)
		}
		seen[id] = true
	}
}

func TestGeneratorIsolation(t *testing.T) {
	a := New()
	b := New()

	if got := a.Next(); got != "1" {
		t.Errorf("expected first id 1, got %q", got)
	}
	if got := a.Next(); got != "2" {
		t.Errorf("expected second id 2, got %q", got)
	}

	// A fresh generator starts its own sequence.
	if got := b.Next(); got != "1" {
		t.Errorf("expected isolated generator to start at 1, got %q", got)
	}
}

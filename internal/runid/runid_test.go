package runid

import "testing"

func TestNewProducesDistinctIDs(t *testing.T) {
	a := New()
	b := New()
	if a == b {
		t.Error("two calls to New() produced the same ID")
	}
}

func TestNewStringIsNonEmpty(t *testing.T) {
	if New().String() == "" {
		t.Error("New().String() should not be empty")
	}
}

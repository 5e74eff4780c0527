package duplo_test

import (
	"testing"

	"github.com/zoobzio/duplo"
)

type cachedDoc struct {
	Name string
	Meta map[string]string
}

func TestUse_Caching(t *testing.T) {
	duplo.Reset() // Clear cache

	e1, err := duplo.Use[cachedDoc]()
	if err != nil {
		t.Fatalf("Use() error: %v", err)
	}

	e2, err := duplo.Use[cachedDoc]()
	if err != nil {
		t.Fatalf("Use() error: %v", err)
	}

	if e1 != e2 {
		t.Error("Use() should return cached engine")
	}
}

func TestUse_DistinctTypes(t *testing.T) {
	duplo.Reset()

	e1, err := duplo.Use[cachedDoc]()
	if err != nil {
		t.Fatalf("Use() error: %v", err)
	}
	e2, err := duplo.Use[map[string]any]()
	if err != nil {
		t.Fatalf("Use() error: %v", err)
	}

	if any(e1) == any(e2) {
		t.Error("distinct types should get distinct engines")
	}
}

func TestReset(t *testing.T) {
	e1, _ := duplo.Use[cachedDoc]()

	duplo.Reset()

	e2, _ := duplo.Use[cachedDoc]()

	if e1 == e2 {
		t.Error("Reset() should clear cache, new engine expected")
	}
}

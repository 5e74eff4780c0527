package yaml

import (
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	c := New()
	if c == nil {
		t.Error("New() should return non-nil codec")
	}
}

func TestContentType(t *testing.T) {
	c := New()
	if c.ContentType() != "application/yaml" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/yaml")
	}
}

func TestMarshalUnmarshal(t *testing.T) {
	c := New()

	type TestStruct struct {
		Name  string `yaml:"name"`
		Value int    `yaml:"value"`
	}

	original := TestStruct{Name: "test", Value: 42}

	data, err := c.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var restored TestStruct
	if err := c.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	if restored.Name != original.Name || restored.Value != original.Value {
		t.Errorf("round-trip failed: got %+v, want %+v", restored, original)
	}
}

func TestUnmarshal_Anchors(t *testing.T) {
	c := New()

	// YAML aliases are the wire-level cousin of aliased sub-structure.
	input := `shared: &s
  hits: 1
first: *s
second: *s`

	var v map[string]any
	if err := c.Unmarshal([]byte(input), &v); err != nil {
		t.Fatalf("Unmarshal(anchors) error: %v", err)
	}

	first, ok := v["first"].(map[string]any)
	if !ok {
		t.Fatal("first key not found or wrong type")
	}
	if first["hits"] != 1 {
		t.Errorf("first.hits = %v, want 1", first["hits"])
	}
}

func TestMarshalNil(t *testing.T) {
	c := New()

	data, err := c.Marshal(nil)
	if err != nil {
		t.Fatalf("Marshal(nil) error: %v", err)
	}
	if string(data) != "null\n" {
		t.Errorf("Marshal(nil) = %q, want %q", data, "null\n")
	}
}

func TestNewWithIndent(t *testing.T) {
	c := NewWithIndent(4)

	original := map[string]any{
		"outer": map[string]any{"inner": 1},
	}

	data, err := c.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if !strings.Contains(string(data), "\n    inner:") {
		t.Errorf("output not indented by 4: %q", data)
	}

	var restored map[string]any
	if err := c.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	outer, ok := restored["outer"].(map[string]any)
	if !ok || outer["inner"] != 1 {
		t.Errorf("round-trip failed: got %+v", restored)
	}
}

package duplo_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/zoobzio/duplo"
	"github.com/zoobzio/duplo/json"
	fixtures "github.com/zoobzio/duplo/testing"
)

func TestSnapshot_RoundTrip(t *testing.T) {
	eng, err := duplo.NewEngine[fixtures.Payload]()
	if err != nil {
		t.Fatalf("NewEngine() error: %v", err)
	}

	in := fixtures.Payload{
		Name:  "report",
		Count: 3,
		Tags:  []string{"a", "b"},
		Meta:  map[string]int{"views": 12},
	}

	data, err := eng.Snapshot(context.Background(), in, json.New())
	if err != nil {
		t.Fatalf("Snapshot() error: %v", err)
	}

	out, err := eng.Restore(context.Background(), data, json.New())
	if err != nil {
		t.Fatalf("Restore() error: %v", err)
	}

	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	// The restored value is independent of the input.
	out.Meta["views"] = 99
	if in.Meta["views"] != 12 {
		t.Error("restored value should not share state with the input")
	}
}

func TestSnapshot_RejectsCycle(t *testing.T) {
	eng, err := duplo.NewEngine[map[string]any]()
	if err != nil {
		t.Fatalf("NewEngine() error: %v", err)
	}

	m := map[string]any{}
	m["self"] = m

	_, err = eng.Snapshot(context.Background(), m, json.New())
	if !errors.Is(err, duplo.ErrCyclic) {
		t.Errorf("Snapshot() error = %v, want ErrCyclic", err)
	}
}

func TestSnapshot_RejectsKeyCycle(t *testing.T) {
	type keyNode struct {
		M map[*keyNode]int
	}

	eng, err := duplo.NewEngine[map[*keyNode]int]()
	if err != nil {
		t.Fatalf("NewEngine() error: %v", err)
	}

	k := &keyNode{}
	m := map[*keyNode]int{k: 1}
	k.M = m

	_, err = eng.Snapshot(context.Background(), m, json.New())
	if !errors.Is(err, duplo.ErrCyclic) {
		t.Errorf("Snapshot() error = %v, want ErrCyclic", err)
	}
}

func TestSnapshot_MarshalFailure(t *testing.T) {
	eng, err := duplo.NewEngine[map[string]any]()
	if err != nil {
		t.Fatalf("NewEngine() error: %v", err)
	}

	// JSON cannot encode a channel value.
	m := map[string]any{"ch": make(chan int)}
	_, err = eng.Snapshot(context.Background(), m, json.New())
	if !errors.Is(err, duplo.ErrMarshal) {
		t.Errorf("Snapshot() error = %v, want ErrMarshal", err)
	}
}

func TestRestore_UnmarshalFailure(t *testing.T) {
	eng, err := duplo.NewEngine[fixtures.Payload]()
	if err != nil {
		t.Fatalf("NewEngine() error: %v", err)
	}

	_, err = eng.Restore(context.Background(), []byte("{not json"), json.New())
	if !errors.Is(err, duplo.ErrUnmarshal) {
		t.Errorf("Restore() error = %v, want ErrUnmarshal", err)
	}
}

func TestSnapshot_SharedStructureFlattens(t *testing.T) {
	eng, err := duplo.NewEngine[map[string]any]()
	if err != nil {
		t.Fatalf("NewEngine() error: %v", err)
	}

	doc := fixtures.NewSharedDoc()
	data, err := eng.Snapshot(context.Background(), doc, json.New())
	if err != nil {
		t.Fatalf("Snapshot() error: %v", err)
	}

	out, err := eng.Restore(context.Background(), data, json.New())
	if err != nil {
		t.Fatalf("Restore() error: %v", err)
	}

	// Codecs flatten aliasing: the restored sub-maps are independent,
	// unlike Clone which preserves the sharing.
	out["first"].(map[string]any)["hits"] = 5.0
	if out["second"].(map[string]any)["hits"] == 5.0 {
		t.Error("restored aliases should be independent copies")
	}
}

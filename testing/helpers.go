// Package testing provides test fixtures for duplo.
package testing

import "strconv"

// Node is a self-referential fixture for cycle tests.
type Node struct {
	Label    string
	Children []*Node
	Parent   *Node
}

// NewRing returns the head of a ring of n nodes: each node's first child is
// the next node, and the last node points back to the head.
func NewRing(n int) *Node {
	if n <= 0 {
		return nil
	}

	head := &Node{Label: "n0"}
	prev := head
	for i := 1; i < n; i++ {
		next := &Node{Label: "n" + strconv.Itoa(i), Parent: prev}
		prev.Children = []*Node{next}
		prev = next
	}
	prev.Children = []*Node{head}
	return head
}

// NewSharedDoc returns a document in which two keys alias the same sub-map.
func NewSharedDoc() map[string]any {
	shared := map[string]any{"hits": 1}
	return map[string]any{
		"first":  shared,
		"second": shared,
		"items":  []any{"a", "b", shared},
	}
}

// Record is a fixture exercising every clone tag directive.
type Record struct {
	ID     string
	Data   map[string]int `clone:"deep"`
	Shared []string       `clone:"opaque"`
	Labels []string       `clone:"shallow"`
	Cache  map[string]int `clone:"skip"`
}

// Payload is a plain fixture with codec tags for snapshot tests.
type Payload struct {
	Name  string         `json:"name" yaml:"name" msgpack:"name" bson:"name"`
	Count int            `json:"count" yaml:"count" msgpack:"count" bson:"count"`
	Tags  []string       `json:"tags" yaml:"tags" msgpack:"tags" bson:"tags"`
	Meta  map[string]int `json:"meta" yaml:"meta" msgpack:"meta" bson:"meta"`
}

// Versioned is a fixture implementing the Cloner override.
type Versioned struct {
	Version int
	Notes   []string
}

// Clone bumps Version so tests can observe that the override ran instead of
// the reflection walk.
func (v Versioned) Clone() Versioned {
	notes := make([]string, len(v.Notes))
	copy(notes, v.Notes)
	return Versioned{Version: v.Version + 1, Notes: notes}
}

// Package duplo provides cycle-safe deep cloning of Go value graphs.
//
// The package offers a reflection-driven Clone that duplicates arbitrary
// compositions of primitives, slices, arrays, maps, pointers, interfaces,
// and structs, along with a generic Engine that adds per-type plans,
// configurable policy, codec snapshots, and structural fingerprints.
//
// # Cloning
//
// Clone produces an independent copy: mutating the copy never affects the
// original. Internal sharing is preserved, not duplicated — if two paths in
// the source reach the same node, the corresponding paths in the clone reach
// the same cloned node. Cyclic graphs are handled without infinite recursion:
//
//	type ring struct {
//	    Label string
//	    Next  *ring
//	}
//
//	r := &ring{Label: "a"}
//	r.Next = r
//
//	c := duplo.Clone(r)
//	// c.Next == c, c != r
//
// Primitives pass through unchanged. Non-container kinds that carry no
// cloneable structure (funcs, channels) are copied by reference under the
// default policy; PolicyStrict rejects them instead.
//
// # Tag Syntax
//
// Struct fields may opt out of deep traversal via the clone tag:
//
//	type Record struct {
//	    Data   map[string]any `clone:"deep"`    // default, tag optional
//	    Shared *Pool          `clone:"opaque"`  // copy by reference
//	    Labels []string       `clone:"shallow"` // copy container, share children
//	    Cache  map[string]any `clone:"skip"`    // zero in the clone
//	}
//
// # Engines
//
// Engine[T] carries a validated per-type plan and emits capitan signals
// around each operation:
//
//	eng, _ := duplo.NewEngine[Record](duplo.WithMaxDepth(64))
//	copied, _ := eng.Clone(ctx, rec)
//
// Engines also expose codec round-trip snapshots (Snapshot/Restore) and
// deterministic structural fingerprints (Fingerprint).
//
// # Override Interface
//
// Types can bypass reflection by implementing Cloner[T]:
//
//	func (o Order) Clone() Order {
//	    items := make([]Item, len(o.Items))
//	    copy(items, o.Items)
//	    return Order{ID: o.ID, Items: items}
//	}
//
// When a type provides Clone, the walk calls it instead of descending into
// the value, at any depth of the graph.
//
// # Codec Providers
//
// The following codec implementations are available as subpackages for use
// with Snapshot and Restore:
//
//   - json - JSON encoding (application/json)
//   - xml - XML encoding (application/xml)
//   - yaml - YAML encoding (application/yaml)
//   - msgpack - MessagePack encoding (application/msgpack)
//   - bson - BSON encoding (application/bson)
//
// Snapshots cannot represent cycles; Snapshot refuses cyclic inputs with
// ErrCyclic. HasCycle reports whether a value graph contains one.
package duplo

import "reflect"

// Clone returns a deep copy of v using the default policy.
//
// The copy shares no mutable container with v, preserves aliasing and cycle
// topology, and never mutates the input. Under the default policy the
// operation is total for any finite value graph; Clone panics only when a
// struct type reachable from v carries an invalid clone tag, which is a
// programming error caught by tests.
func Clone[T any](v T) T {
	opts := defaultOptions()
	st := newWalkState(&opts)

	out, err := st.clone(reflect.ValueOf(v))
	if err != nil {
		panic("duplo: " + err.Error())
	}
	if !out.IsValid() {
		var zero T
		return zero
	}
	return out.Interface().(T)
}

// HasCycle reports whether the value graph rooted at v contains a reference
// cycle. Shared acyclic sub-structure does not count as a cycle.
func HasCycle(v any) bool {
	d := cycleDetector{
		onPath: make(map[visitKey]bool),
		done:   make(map[visitKey]bool),
	}
	return d.walk(reflect.ValueOf(v))
}

// cycleDetector performs a grey-marking depth-first walk over a value graph.
// onPath holds nodes on the current traversal path; done holds nodes whose
// subtrees were fully explored without finding a cycle through them.
type cycleDetector struct {
	onPath map[visitKey]bool
	done   map[visitKey]bool
}

func (d *cycleDetector) walk(src reflect.Value) bool {
	if !src.IsValid() {
		return false
	}

	var key visitKey
	tracked := false

	switch src.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice:
		if src.IsNil() {
			return false
		}
		key = newVisitKey(src)
		if d.onPath[key] {
			return true
		}
		if d.done[key] {
			return false
		}
		d.onPath[key] = true
		tracked = true
	}

	found := false
	switch src.Kind() {
	case reflect.Pointer, reflect.Interface:
		found = d.walk(src.Elem())
	case reflect.Slice, reflect.Array:
		for i := 0; i < src.Len() && !found; i++ {
			found = d.walk(src.Index(i))
		}
	case reflect.Map:
		iter := src.MapRange()
		for iter.Next() && !found {
			found = d.walk(iter.Key()) || d.walk(iter.Value())
		}
	case reflect.Struct:
		for i := 0; i < src.NumField() && !found; i++ {
			if src.Type().Field(i).IsExported() {
				found = d.walk(src.Field(i))
			}
		}
	}

	if tracked {
		delete(d.onPath, key)
		d.done[key] = true
	}
	return found
}

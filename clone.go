package duplo

import "reflect"

// Cloner allows types to provide their own deep copy logic.
//
// The Clone method must return a deep copy where modifications to the clone
// do not affect the original value. For types containing pointers, slices, or
// maps, ensure these are also copied to achieve true isolation.
//
// For simple value types with no reference fields, Clone can simply return
// the receiver value:
//
//	func (u User) Clone() User { return u }
//
// When a type implements Cloner, the reflection walk calls Clone instead of
// descending into the value, wherever the type appears in a graph.
type Cloner[T any] interface {
	Clone() T
}

// visitKey identifies a source node by pointer identity and type. Slices
// include length so that two slices over the same backing array with
// different lengths are not conflated.
type visitKey struct {
	ptr uintptr
	typ reflect.Type
	len int
}

// newVisitKey builds the identity key for a pointer, map, or slice value.
func newVisitKey(src reflect.Value) visitKey {
	key := visitKey{ptr: src.Pointer(), typ: src.Type()}
	if src.Kind() == reflect.Slice {
		key.len = src.Len()
	}
	return key
}

// walkState carries the per-invocation memo of one clone call. It is created
// at the start of the call and discarded when the call returns; nothing here
// outlives a single traversal.
type walkState struct {
	opts    *options
	visited map[visitKey]reflect.Value
	depth   int
	nodes   int
	reused  int
}

func newWalkState(opts *options) *walkState {
	return &walkState{
		opts:    opts,
		visited: make(map[visitKey]reflect.Value),
	}
}

// clone duplicates src. Containers register their clone in the visited map
// before their children are traversed, so self-referential structures resolve
// to the clone under construction rather than recursing forever.
func (st *walkState) clone(src reflect.Value) (reflect.Value, error) {
	if !src.IsValid() {
		return src, nil
	}
	st.nodes++

	t := src.Type()
	if st.opts.opaqueTypes[t] {
		return src, nil
	}

	switch src.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.String:
		return src, nil

	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		if st.opts.policy == PolicyStrict {
			return reflect.Value{}, newCloneError(ErrUnsupportedKind, t)
		}
		return src, nil

	case reflect.Pointer:
		return st.clonePointer(src)

	case reflect.Slice:
		return st.cloneSlice(src)

	case reflect.Map:
		return st.cloneMap(src)

	case reflect.Array:
		return st.cloneArray(src)

	case reflect.Interface:
		return st.cloneInterface(src)

	case reflect.Struct:
		return st.cloneStruct(src)
	}

	return src, nil
}

// enter tracks recursion depth against the configured bound.
func (st *walkState) enter(t reflect.Type) error {
	st.depth++
	if st.opts.maxDepth > 0 && st.depth > st.opts.maxDepth {
		return newCloneError(ErrMaxDepth, t)
	}
	return nil
}

func (st *walkState) leave() {
	st.depth--
}

// cloneViaMethod dispatches to a Cloner[T]-style Clone method when src's
// type declares one returning its own type.
func (st *walkState) cloneViaMethod(src reflect.Value) (reflect.Value, bool) {
	m := src.MethodByName("Clone")
	if !m.IsValid() {
		return reflect.Value{}, false
	}
	mt := m.Type()
	if mt.NumIn() != 0 || mt.NumOut() != 1 || mt.Out(0) != src.Type() {
		return reflect.Value{}, false
	}
	return m.Call(nil)[0], true
}

func (st *walkState) clonePointer(src reflect.Value) (reflect.Value, error) {
	if src.IsNil() {
		return src, nil
	}

	key := newVisitKey(src)
	if prior, ok := st.visited[key]; ok {
		st.reused++
		return prior, nil
	}

	if out, ok := st.cloneViaMethod(src); ok {
		st.visited[key] = out
		return out, nil
	}

	if err := st.enter(src.Type()); err != nil {
		return reflect.Value{}, err
	}
	defer st.leave()

	out := reflect.New(src.Type().Elem())
	st.visited[key] = out

	elem, err := st.clone(src.Elem())
	if err != nil {
		return reflect.Value{}, err
	}
	if elem.IsValid() {
		out.Elem().Set(elem)
	}
	return out, nil
}

func (st *walkState) cloneSlice(src reflect.Value) (reflect.Value, error) {
	if src.IsNil() {
		return src, nil
	}

	key := newVisitKey(src)
	if prior, ok := st.visited[key]; ok {
		st.reused++
		return prior, nil
	}

	if out, ok := st.cloneViaMethod(src); ok {
		st.visited[key] = out
		return out, nil
	}

	if err := st.enter(src.Type()); err != nil {
		return reflect.Value{}, err
	}
	defer st.leave()

	out := reflect.MakeSlice(src.Type(), src.Len(), src.Cap())
	st.visited[key] = out

	for i := 0; i < src.Len(); i++ {
		elem, err := st.clone(src.Index(i))
		if err != nil {
			return reflect.Value{}, err
		}
		if elem.IsValid() {
			out.Index(i).Set(elem)
		}
	}
	return out, nil
}

func (st *walkState) cloneMap(src reflect.Value) (reflect.Value, error) {
	if src.IsNil() {
		return src, nil
	}

	key := newVisitKey(src)
	if prior, ok := st.visited[key]; ok {
		st.reused++
		return prior, nil
	}

	if out, ok := st.cloneViaMethod(src); ok {
		st.visited[key] = out
		return out, nil
	}

	if err := st.enter(src.Type()); err != nil {
		return reflect.Value{}, err
	}
	defer st.leave()

	out := reflect.MakeMapWithSize(src.Type(), src.Len())
	st.visited[key] = out

	iter := src.MapRange()
	for iter.Next() {
		k, err := st.clone(iter.Key())
		if err != nil {
			return reflect.Value{}, err
		}
		v, err := st.clone(iter.Value())
		if err != nil {
			return reflect.Value{}, err
		}
		if !v.IsValid() {
			v = reflect.Zero(src.Type().Elem())
		}
		out.SetMapIndex(k, v)
	}
	return out, nil
}

// cloneArray copies an array element-wise. Arrays are value kinds in Go and
// carry no identity, so they are not registered in the visited map.
func (st *walkState) cloneArray(src reflect.Value) (reflect.Value, error) {
	if err := st.enter(src.Type()); err != nil {
		return reflect.Value{}, err
	}
	defer st.leave()

	out := reflect.New(src.Type()).Elem()
	for i := 0; i < src.Len(); i++ {
		elem, err := st.clone(src.Index(i))
		if err != nil {
			return reflect.Value{}, err
		}
		if elem.IsValid() {
			out.Index(i).Set(elem)
		}
	}
	return out, nil
}

func (st *walkState) cloneInterface(src reflect.Value) (reflect.Value, error) {
	if src.IsNil() {
		return src, nil
	}

	inner, err := st.clone(src.Elem())
	if err != nil {
		return reflect.Value{}, err
	}

	out := reflect.New(src.Type()).Elem()
	if inner.IsValid() {
		out.Set(inner)
	}
	return out, nil
}

// cloneStruct copies a struct according to its field plan. The whole value is
// first copied by assignment, which carries unexported fields across
// shallowly; exported fields are then replaced per their directives.
func (st *walkState) cloneStruct(src reflect.Value) (reflect.Value, error) {
	if out, ok := st.cloneViaMethod(src); ok {
		return out, nil
	}

	plan, err := planFor(src.Type())
	if err != nil {
		return reflect.Value{}, err
	}

	if err := st.enter(src.Type()); err != nil {
		return reflect.Value{}, err
	}
	defer st.leave()

	out := reflect.New(src.Type()).Elem()
	out.Set(src)

	for _, fp := range plan.fields {
		field := src.FieldByIndex(fp.index)
		target := out.FieldByIndex(fp.index)

		switch fp.directive {
		case DirectiveOpaque:
			// already carried by the whole-value assignment

		case DirectiveSkip:
			target.SetZero()

		case DirectiveShallow:
			target.Set(shallowCopy(field))

		default: // DirectiveDeep
			cloned, err := st.clone(field)
			if err != nil {
				return reflect.Value{}, err
			}
			if cloned.IsValid() {
				target.Set(cloned)
			} else {
				target.SetZero()
			}
		}
	}
	return out, nil
}

// shallowCopy duplicates the top-level container of src, sharing children.
// Non-container kinds are returned as-is.
func shallowCopy(src reflect.Value) reflect.Value {
	switch src.Kind() {
	case reflect.Slice:
		if src.IsNil() {
			return src
		}
		out := reflect.MakeSlice(src.Type(), src.Len(), src.Cap())
		reflect.Copy(out, src)
		return out

	case reflect.Map:
		if src.IsNil() {
			return src
		}
		out := reflect.MakeMapWithSize(src.Type(), src.Len())
		iter := src.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), iter.Value())
		}
		return out

	case reflect.Pointer:
		if src.IsNil() {
			return src
		}
		out := reflect.New(src.Type().Elem())
		out.Elem().Set(src.Elem())
		return out
	}
	return src
}

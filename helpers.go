package duplo

// CloneSlice clones all the objects in a slice into a new slice.
// A nil slice stays nil.
func CloneSlice[S ~[]T, T Cloner[T]](s S) S {
	if s == nil {
		return nil
	}
	out := make(S, 0, len(s))
	for _, v := range s {
		out = append(out, v.Clone())
	}
	return out
}

// CloneMap clones a map[K]T for any cloneable value type T.
// The map keys are copied by assignment; values are cloned.
func CloneMap[M ~map[K]T, K comparable, T Cloner[T]](m M) M {
	if m == nil {
		return nil
	}
	out := make(M, len(m))
	for k, v := range m {
		out[k] = v.Clone()
	}
	return out
}

// ClonePtr clones the pointee of a cloneable value. A nil pointer stays nil.
func ClonePtr[T Cloner[T]](p *T) *T {
	if p == nil {
		return nil
	}
	out := (*p).Clone()
	return &out
}

package duplo

import (
	"encoding/hex"
	"fmt"
	"hash"
	"reflect"
	"sort"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a deterministic BLAKE2b-256 digest of v's structure
// and content, hex-encoded.
//
// The digest covers primitive values, container shape, struct type names,
// and the graph's aliasing topology: back-references are encoded by visit
// ordinal, so two graphs digest equal exactly when they are structurally
// equal including shared sub-structure and cycles. In particular
// Fingerprint(Clone(v)) == Fingerprint(v).
//
// Map entries are digested in a canonical order derived from each entry's
// own content encoding, so neither iteration order nor the runtime identity
// of the keys affects the result. Funcs and channels contribute only their
// kind; their referents carry no stable identity across runs.
func Fingerprint(v any) string {
	h, err := blake2b.New256(nil)
	if err != nil {
		panic("duplo: " + err.Error())
	}

	d := digester{
		h:        h,
		ordinals: make(map[visitKey]int),
	}
	d.write(reflect.ValueOf(v))
	return hex.EncodeToString(h.Sum(nil))
}

// digester walks a value graph writing a canonical byte encoding into h.
// Identity-carrying nodes are assigned visit ordinals; revisits emit a
// back-reference to the ordinal instead of re-encoding the subtree.
type digester struct {
	h        hash.Hash
	ordinals map[visitKey]int
	next     int
}

func (d *digester) write(src reflect.Value) {
	if !src.IsValid() {
		fmt.Fprint(d.h, "z;")
		return
	}

	switch src.Kind() {
	case reflect.Bool:
		fmt.Fprintf(d.h, "b:%t;", src.Bool())

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		fmt.Fprintf(d.h, "i:%d;", src.Int())

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		fmt.Fprintf(d.h, "u:%d;", src.Uint())

	case reflect.Float32, reflect.Float64:
		fmt.Fprintf(d.h, "f:%g;", src.Float())

	case reflect.Complex64, reflect.Complex128:
		fmt.Fprintf(d.h, "c:%v;", src.Complex())

	case reflect.String:
		s := src.String()
		fmt.Fprintf(d.h, "s:%d:%s;", len(s), s)

	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		fmt.Fprintf(d.h, "x:%s;", src.Kind())

	case reflect.Pointer:
		if src.IsNil() {
			fmt.Fprint(d.h, "z;")
			return
		}
		if d.backref(src) {
			return
		}
		fmt.Fprint(d.h, "p;")
		d.write(src.Elem())

	case reflect.Interface:
		if src.IsNil() {
			fmt.Fprint(d.h, "z;")
			return
		}
		d.write(src.Elem())

	case reflect.Slice:
		if src.IsNil() {
			fmt.Fprint(d.h, "z;")
			return
		}
		if d.backref(src) {
			return
		}
		fmt.Fprintf(d.h, "l:%d;", src.Len())
		for i := 0; i < src.Len(); i++ {
			d.write(src.Index(i))
		}

	case reflect.Array:
		fmt.Fprintf(d.h, "a:%d;", src.Len())
		for i := 0; i < src.Len(); i++ {
			d.write(src.Index(i))
		}

	case reflect.Map:
		if src.IsNil() {
			fmt.Fprint(d.h, "z;")
			return
		}
		if d.backref(src) {
			return
		}
		fmt.Fprintf(d.h, "m:%d;", src.Len())

		// Order entries by a canonical content encoding, never by the
		// rendering of the live key: pointer keys would sort by address,
		// which differs between a graph and its clone.
		type mapEntry struct {
			sortKey string
			key     reflect.Value
			value   reflect.Value
		}
		entries := make([]mapEntry, 0, src.Len())
		iter := src.MapRange()
		for iter.Next() {
			k, v := iter.Key(), iter.Value()
			entries = append(entries, mapEntry{
				sortKey: d.entrySortKey(k, v),
				key:     k,
				value:   v,
			})
		}
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].sortKey < entries[j].sortKey
		})
		for _, e := range entries {
			d.write(e.key)
			d.write(e.value)
		}

	case reflect.Struct:
		rt := src.Type()
		fmt.Fprintf(d.h, "t:%s;", rt.String())
		for i := 0; i < rt.NumField(); i++ {
			sf := rt.Field(i)
			if !sf.IsExported() {
				continue
			}
			fmt.Fprintf(d.h, "k:%s;", sf.Name)
			d.write(src.Field(i))
		}
	}
}

// entrySortKey canonically encodes one map entry with a sub-digester.
// The sub-digester inherits d's ordinal table — canonical at this point,
// since everything before was written in sorted order — so entries that
// reach back into an ancestor terminate as back-references rather than
// recursing, and the key still matches between a graph and its clone. Ties
// can only occur between entries whose content encodings are identical, for
// which either order digests the same.
func (d *digester) entrySortKey(k, v reflect.Value) string {
	h, err := blake2b.New256(nil)
	if err != nil {
		panic("duplo: " + err.Error())
	}

	sub := digester{
		h:        h,
		ordinals: make(map[visitKey]int, len(d.ordinals)),
		next:     d.next,
	}
	for key, ord := range d.ordinals {
		sub.ordinals[key] = ord
	}
	sub.write(k)
	sub.write(v)
	return string(h.Sum(nil))
}

// backref emits a back-reference when src was already visited, or assigns
// it the next ordinal and reports false.
func (d *digester) backref(src reflect.Value) bool {
	key := newVisitKey(src)
	if ord, ok := d.ordinals[key]; ok {
		fmt.Fprintf(d.h, "r:%d;", ord)
		return true
	}
	d.ordinals[key] = d.next
	d.next++
	return false
}

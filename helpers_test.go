package duplo_test

import (
	"testing"

	"github.com/zoobzio/duplo"
)

type item struct {
	Name string
	Tags []string
}

func (i item) Clone() item {
	tags := make([]string, len(i.Tags))
	copy(tags, i.Tags)
	return item{Name: i.Name, Tags: tags}
}

func TestCloneSlice(t *testing.T) {
	in := []item{{Name: "a", Tags: []string{"x"}}, {Name: "b"}}
	out := duplo.CloneSlice(in)

	if len(out) != 2 {
		t.Fatalf("CloneSlice() len = %d, want 2", len(out))
	}

	out[0].Tags[0] = "mutated"
	if in[0].Tags[0] != "x" {
		t.Error("cloned elements should be independent")
	}
}

func TestCloneSlice_Nil(t *testing.T) {
	if duplo.CloneSlice[[]item](nil) != nil {
		t.Error("CloneSlice(nil) should stay nil")
	}
}

func TestCloneMap(t *testing.T) {
	in := map[string]item{"k": {Name: "a", Tags: []string{"x"}}}
	out := duplo.CloneMap(in)

	mutated := out["k"]
	mutated.Tags[0] = "mutated"

	if in["k"].Tags[0] != "x" {
		t.Error("cloned values should be independent")
	}
}

func TestCloneMap_Nil(t *testing.T) {
	if duplo.CloneMap[map[string]item](nil) != nil {
		t.Error("CloneMap(nil) should stay nil")
	}
}

func TestClonePtr(t *testing.T) {
	v := item{Name: "a", Tags: []string{"x"}}
	out := duplo.ClonePtr(&v)

	if out == &v {
		t.Error("ClonePtr() should allocate a new pointer")
	}

	out.Tags[0] = "mutated"
	if v.Tags[0] != "x" {
		t.Error("cloned pointee should be independent")
	}
}

func TestClonePtr_Nil(t *testing.T) {
	if duplo.ClonePtr[item](nil) != nil {
		t.Error("ClonePtr(nil) should stay nil")
	}
}

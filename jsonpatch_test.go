package docptr

import (
	"testing"

	"github.com/omniform/docptr/ir"
)

// Non-wildcard pointer writes and removals agree with an RFC 6902 patch
// application of the same paths.
func TestJSONPatchAgreement(t *testing.T) {
	const src = `{"a":{"b":1},"xs":[1,2,3]}`

	t.Run("add", func(t *testing.T) {
		doc := mustDecode(t, src)
		if _, err := SetAll(doc, "/a/c", ir.FromInt(2)); err != nil {
			t.Fatal(err)
		}
		patched, err := ApplyJSONPatch(mustDecode(t, src),
			[]byte(`[{"op":"add","path":"/a/c","value":2}]`))
		if err != nil {
			t.Fatal(err)
		}
		if !ir.Equal(doc, patched) {
			t.Errorf("set gave %s, patch gave %s", ir.MustString(doc), ir.MustString(patched))
		}
	})

	t.Run("replace", func(t *testing.T) {
		doc := mustDecode(t, src)
		if _, err := SetAll(doc, "/xs/1", ir.FromInt(9)); err != nil {
			t.Fatal(err)
		}
		patched, err := ApplyJSONPatch(mustDecode(t, src),
			[]byte(`[{"op":"replace","path":"/xs/1","value":9}]`))
		if err != nil {
			t.Fatal(err)
		}
		if !ir.Equal(doc, patched) {
			t.Errorf("set gave %s, patch gave %s", ir.MustString(doc), ir.MustString(patched))
		}
	})

	t.Run("append", func(t *testing.T) {
		doc := mustDecode(t, src)
		if _, err := SetAll(doc, "/xs/-", ir.FromInt(4)); err != nil {
			t.Fatal(err)
		}
		patched, err := ApplyJSONPatch(mustDecode(t, src),
			[]byte(`[{"op":"add","path":"/xs/-","value":4}]`))
		if err != nil {
			t.Fatal(err)
		}
		if !ir.Equal(doc, patched) {
			t.Errorf("set gave %s, patch gave %s", ir.MustString(doc), ir.MustString(patched))
		}
	})

	t.Run("remove", func(t *testing.T) {
		doc := mustDecode(t, src)
		if _, err := RemoveAll(doc, "/a/b"); err != nil {
			t.Fatal(err)
		}
		patched, err := ApplyJSONPatch(mustDecode(t, src),
			[]byte(`[{"op":"remove","path":"/a/b"}]`))
		if err != nil {
			t.Fatal(err)
		}
		if !ir.Equal(doc, patched) {
			t.Errorf("remove gave %s, patch gave %s", ir.MustString(doc), ir.MustString(patched))
		}
	})
}

func TestApplyMergePatch(t *testing.T) {
	doc := mustDecode(t, `{"a":{"b":1,"c":2},"d":3}`)
	merged, err := ApplyMergePatch(doc, []byte(`{"a":{"b":null},"e":4}`))
	if err != nil {
		t.Fatal(err)
	}
	want := mustDecode(t, `{"a":{"c":2},"d":3,"e":4}`)
	if !ir.Equal(merged, want) {
		t.Errorf("got %s, want %s", ir.MustString(merged), ir.MustString(want))
	}
}

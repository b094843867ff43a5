package docptr

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/omniform/docptr/ir"
)

func mustDecode(t *testing.T, s string) *ir.Node {
	t.Helper()
	n, err := ir.Decode([]byte(s))
	if err != nil {
		t.Fatalf("decode %q: %v", s, err)
	}
	return n
}

func matchStrings(ms []Match) map[string]string {
	out := map[string]string{}
	for _, m := range ms {
		out[m.Pointer] = ir.MustString(m.Value)
	}
	return out
}

func matchPointers(ms []Match) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.Pointer
	}
	return out
}

func TestGetAll(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		ptr  string
		opts []Option
		want map[string]string
		err  error
	}{
		{
			name: "plain key path",
			doc:  `{"a":{"b":1}}`,
			ptr:  "/a/b",
			want: map[string]string{"/a/b": `1`},
		},
		{
			name: "document root",
			doc:  `{"a":1}`,
			ptr:  "/",
			want: map[string]string{"/": `{"a":1}`},
		},
		{
			name: "empty pointer is the document root",
			doc:  `[1,2]`,
			ptr:  "",
			want: map[string]string{"/": `[1,2]`},
		},
		{
			name: "index into sequence",
			doc:  `{"xs":[10,20,30]}`,
			ptr:  "/xs/1",
			want: map[string]string{"/xs/1": `20`},
		},
		{
			name: "decimal key falls back to mapping lookup",
			doc:  `{"m":{"0":"zero"}}`,
			ptr:  "/m/0",
			want: map[string]string{"/m/0": `"zero"`},
		},
		{
			name: "wildcard over mapping",
			doc:  `{"a":{"x":1,"y":2}}`,
			ptr:  "/a/*",
			want: map[string]string{"/a/x": `1`, "/a/y": `2`},
		},
		{
			name: "wildcard over sequence then key",
			doc:  `{"xs":[{"n":1},{"n":2}]}`,
			ptr:  "/xs/*/n",
			want: map[string]string{"/xs/0/n": `1`, "/xs/1/n": `2`},
		},
		{
			name: "keys of a mapping",
			doc:  `{"a":{"b":{"c":1,"d":2}}}`,
			ptr:  "/a/b#",
			want: map[string]string{"/a/b": `["c","d"]`},
		},
		{
			name: "keys of a sequence are indices",
			doc:  `{"xs":["a","b"]}`,
			ptr:  "/xs#",
			want: map[string]string{"/xs": `[0,1]`},
		},
		{
			name: "keys of the document root",
			doc:  `{"a":1,"b":2}`,
			ptr:  "#",
			want: map[string]string{"/": `["a","b"]`},
		},
		{
			name: "keys of a scalar",
			doc:  `{"a":1}`,
			ptr:  "/a#",
			err:  ErrTypeMismatch,
		},
		{
			name: "missing key",
			doc:  `{"a":1}`,
			ptr:  "/b",
			err:  ErrNotFound,
		},
		{
			name: "missing branch under wildcard",
			doc:  `{"xs":[{"n":1},{}]}`,
			ptr:  "/xs/*/n",
			err:  ErrNotFound,
		},
		{
			name: "index out of bounds",
			doc:  `{"xs":[1]}`,
			ptr:  "/xs/3",
			err:  ErrOutOfBounds,
		},
		{
			name: "traversal through a scalar",
			doc:  `{"a":1}`,
			ptr:  "/a/b",
			err:  ErrTypeMismatch,
		},
		{
			name: "wildcard over a scalar",
			doc:  `{"a":{"x":1},"b":2}`,
			ptr:  "/*/x",
			err:  ErrTypeMismatch,
		},
		{
			name: "append has nothing to read",
			doc:  `{"xs":[1]}`,
			ptr:  "/xs/-",
			err:  ErrNotFound,
		},
		{
			name: "relative sibling",
			doc:  `{"a":{"b":1,"c":2}}`,
			ptr:  "1/c",
			opts: []Option{WithRoot("/a/b")},
			want: map[string]string{"/a/c": `2`},
		},
		{
			name: "relative zero is the root itself",
			doc:  `{"a":{"b":1}}`,
			ptr:  "0",
			opts: []Option{WithRoot("/a/b")},
			want: map[string]string{"/a/b": `1`},
		},
		{
			name: "ancestor key identity",
			doc:  `{"a":{"b":{"c":1}}}`,
			ptr:  "2#",
			opts: []Option{WithRoot("/a/b/c")},
			want: map[string]string{"/a": `"a"`},
		},
		{
			name: "sequence index identity",
			doc:  `{"xs":[{"n":1},{"n":2}]}`,
			ptr:  "1#",
			opts: []Option{WithRoot("/xs/1/n")},
			want: map[string]string{"/xs/1": `1`},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc := mustDecode(t, tc.doc)
			ms, err := GetAll(doc, tc.ptr, tc.opts...)
			if tc.err != nil {
				if !errors.Is(err, tc.err) {
					t.Fatalf("got error %v, want %v", err, tc.err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(tc.want, matchStrings(ms)); d != "" {
				t.Error(d)
			}
			// the source document is never mutated by a read
			if got := ir.MustString(doc); got != tc.doc {
				t.Errorf("document changed: %s", got)
			}
		})
	}
}

func TestGetAllRootIdentity(t *testing.T) {
	// reading the contextual root's own key is fine; only the document
	// root has no key
	doc := mustDecode(t, `{"a":1}`)
	ms, err := GetAll(doc, "0#", WithRoot("/a"))
	if err != nil {
		t.Fatal(err)
	}
	if len(ms) != 1 || ir.MustString(ms[0].Value) != `"a"` {
		t.Fatalf("got %v", ms)
	}
	_, err = GetAll(doc, "0#")
	if !errors.Is(err, ErrRootIdentity) {
		t.Fatalf("got %v, want ErrRootIdentity", err)
	}
}

func TestGetAllWildcardOrder(t *testing.T) {
	doc := mustDecode(t, `{"m":{"z":1,"a":2,"k":3}}`)
	ms, err := GetAll(doc, "/m/*")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"/m/z", "/m/a", "/m/k"}
	if d := cmp.Diff(want, matchPointers(ms)); d != "" {
		t.Error(d)
	}
}

func TestGetAllClones(t *testing.T) {
	doc := mustDecode(t, `{"a":{"b":1}}`)
	ms, err := GetAll(doc, "/a")
	if err != nil {
		t.Fatal(err)
	}
	ms[0].Value.SetField("b", ir.FromInt(9))
	if got := ir.MustString(doc); got != `{"a":{"b":1}}` {
		t.Errorf("mutating a match leaked into the document: %s", got)
	}
}

func TestGetAllMatchCountEqualsWildcardProduct(t *testing.T) {
	doc := mustDecode(t, `{"rows":[{"cells":{"a":1,"b":2}},{"cells":{"c":3,"d":4}}]}`)
	ms, err := GetAll(doc, "/rows/*/cells/*")
	if err != nil {
		t.Fatal(err)
	}
	if len(ms) != 4 {
		t.Errorf("got %d matches, want 4", len(ms))
	}
}

package docptr

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/omniform/docptr/ir"
)

func TestRemoveAll(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		ptr      string
		wantDoc  string
		affected []string
		err      error
	}{
		{
			name:     "remove a field",
			doc:      `{"a":1,"b":2}`,
			ptr:      "/a",
			wantDoc:  `{"b":2}`,
			affected: []string{"/a"},
		},
		{
			name:     "missing key is a no-op",
			doc:      `{"a":1}`,
			ptr:      "/b",
			wantDoc:  `{"a":1}`,
			affected: nil,
		},
		{
			name:     "missing branch is a no-op",
			doc:      `{"a":1}`,
			ptr:      "/x/y/z",
			wantDoc:  `{"a":1}`,
			affected: nil,
		},
		{
			name:     "scalar on the path is a no-op",
			doc:      `{"a":1}`,
			ptr:      "/a/b",
			wantDoc:  `{"a":1}`,
			affected: nil,
		},
		{
			name:     "remove a sequence element",
			doc:      `{"xs":[1,2,3]}`,
			ptr:      "/xs/1",
			wantDoc:  `{"xs":[1,3]}`,
			affected: []string{"/xs/1"},
		},
		{
			name:     "out of bounds is a no-op",
			doc:      `{"xs":[1]}`,
			ptr:      "/xs/5",
			wantDoc:  `{"xs":[1]}`,
			affected: nil,
		},
		{
			name:     "append is a no-op",
			doc:      `{"xs":[1]}`,
			ptr:      "/xs/-",
			wantDoc:  `{"xs":[1]}`,
			affected: nil,
		},
		{
			name:     "wildcard empties a sequence",
			doc:      `{"xs":[1,2,3]}`,
			ptr:      "/xs/*",
			wantDoc:  `{"xs":[]}`,
			affected: []string{"/xs/0", "/xs/1", "/xs/2"},
		},
		{
			name:     "wildcard empties a mapping",
			doc:      `{"m":{"a":1,"b":2}}`,
			ptr:      "/m/*",
			wantDoc:  `{"m":{}}`,
			affected: []string{"/m/a", "/m/b"},
		},
		{
			name:     "wildcard over sparse branches",
			doc:      `{"xs":[{"n":1},{},{"n":3}]}`,
			ptr:      "/xs/*/n",
			wantDoc:  `{"xs":[{},{},{}]}`,
			affected: []string{"/xs/0/n", "/xs/2/n"},
		},
		{
			name: "document root",
			doc:  `{"a":1}`,
			ptr:  "/",
			err:  ErrRootIdentity,
		},
		{
			name: "keys modifier",
			doc:  `{"a":{}}`,
			ptr:  "/a#",
			err:  ErrParse,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc := mustDecode(t, tc.doc)
			affected, err := RemoveAll(doc, tc.ptr)
			if tc.err != nil {
				if !errors.Is(err, tc.err) {
					t.Fatalf("got error %v, want %v", err, tc.err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got := ir.MustString(doc); got != tc.wantDoc {
				t.Errorf("document: got %s, want %s", got, tc.wantDoc)
			}
			if d := cmp.Diff(tc.affected, affected); d != "" {
				t.Error(d)
			}
		})
	}
}

func TestRemoveAllIdempotent(t *testing.T) {
	doc := mustDecode(t, `{"m":{"a":1,"b":2},"xs":[1,2]}`)
	for _, ptr := range []string{"/m/a", "/xs/1", "/m/*"} {
		if _, err := RemoveAll(doc, ptr); err != nil {
			t.Fatalf("first remove %s: %v", ptr, err)
		}
		affected, err := RemoveAll(doc, ptr)
		if err != nil {
			t.Fatalf("second remove %s: %v", ptr, err)
		}
		if len(affected) != 0 {
			t.Errorf("second remove %s affected %v", ptr, affected)
		}
	}
	if got := ir.MustString(doc); got != `{"m":{},"xs":[1]}` {
		t.Errorf("got %s", got)
	}
}

func TestRemoveAllRootIdentity(t *testing.T) {
	doc := mustDecode(t, `{"a":1}`)
	_, err := RemoveAll(doc, "0#", WithRoot("/a"))
	if !errors.Is(err, ErrRootIdentity) {
		t.Fatalf("got %v, want ErrRootIdentity", err)
	}
}

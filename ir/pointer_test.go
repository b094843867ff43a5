package ir

import "testing"

func TestPointer(t *testing.T) {
	node, err := Decode([]byte(`{"a":{"x/y":[{"n":1}]},"b":2}`))
	if err != nil {
		t.Fatal(err)
	}
	if got := node.Pointer(); got != "/" {
		t.Errorf("root: %s", got)
	}
	a := Get(node, "a")
	xy := Get(a, "x/y")
	n := Get(xy.Values[0], "n")
	tests := []struct {
		node *Node
		want string
	}{
		{a, "/a"},
		{xy, "/a/x~1y"},
		{xy.Values[0], "/a/x~1y/0"},
		{n, "/a/x~1y/0/n"},
		{Get(node, "b"), "/b"},
	}
	for _, tc := range tests {
		if got := tc.node.Pointer(); got != tc.want {
			t.Errorf("got %s, want %s", got, tc.want)
		}
	}
}

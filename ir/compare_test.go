package ir

import "testing"

func TestCompare(t *testing.T) {
	lt := [][2]string{
		{`null`, `false`},
		{`false`, `true`},
		{`true`, `0`},
		{`1`, `2`},
		{`1.5`, `2.5`},
		{`2`, `1.5`}, // integers sub-rank before floats
		{`9`, `"a"`},
		{`"a"`, `"b"`},
		{`"z"`, `[]`},
		{`[1]`, `[2]`},
		{`[1]`, `[1,0]`},
		{`[9]`, `{}`},
		{`{"a":1}`, `{"a":2}`},
		{`{"a":1}`, `{"b":1}`},
		{`{"a":1}`, `{"a":1,"b":2}`},
	}
	for _, tc := range lt {
		a, err := Decode([]byte(tc[0]))
		if err != nil {
			t.Fatal(err)
		}
		b, err := Decode([]byte(tc[1]))
		if err != nil {
			t.Fatal(err)
		}
		if Compare(a, b) >= 0 {
			t.Errorf("%s should sort before %s", tc[0], tc[1])
		}
		if Compare(b, a) <= 0 {
			t.Errorf("%s should sort after %s", tc[1], tc[0])
		}
		if Compare(a, a.Clone()) != 0 || !Equal(a, a.Clone()) {
			t.Errorf("%s should equal its clone", tc[0])
		}
	}
}

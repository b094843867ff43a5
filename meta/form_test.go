package meta

import (
	"testing"

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

func TestFormRead(t *testing.T) {
	form := &Form{
		Title: "Order",
		Fields: []Field{
			{Label: "Customer", Path: "/customer/name"},
			{Label: "Phone", Path: "/customer/phone"},
			{Label: "Item", Path: "/items/*/sku"},
			{Label: "Total", Formula: "price * quantity"},
		},
	}
	entity := mustDecode(t, `{
		"customer": {"name": "Ada"},
		"items": [{"sku": "a-1"}, {"sku": "b-2"}],
		"price": 3,
		"quantity": 4
	}`)
	values, err := form.Read(entity)
	if err != nil {
		t.Fatal(err)
	}
	// Phone is absent and yields nothing; Item fans out to two values
	want := []struct {
		label string
		value string
	}{
		{"Customer", `"Ada"`},
		{"Item", `"a-1"`},
		{"Item", `"b-2"`},
		{"Total", `12`},
	}
	if len(values) != len(want) {
		t.Fatalf("got %d values", len(values))
	}
	for i, w := range want {
		if values[i].Label != w.label || ir.MustString(values[i].Value) != w.value {
			t.Errorf("value %d: %s=%s, want %s=%s",
				i, values[i].Label, ir.MustString(values[i].Value), w.label, w.value)
		}
	}
}

func TestFormApply(t *testing.T) {
	form := &Form{
		Fields: []Field{
			{Label: "Name", Path: "/customer/name"},
			{Label: "ID", Path: "/id", ReadOnly: true},
			{Label: "Total", Formula: "price * quantity"},
		},
	}
	entity := mustDecode(t, `{"id":7}`)
	affected, err := form.Apply(entity, map[string]*ir.Node{
		"Name":  ir.FromString("Grace"),
		"ID":    ir.FromInt(9),
		"Total": ir.FromInt(0),
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(affected) != 1 || affected[0] != "/customer/name" {
		t.Errorf("affected %v", affected)
	}
	if got := ir.MustString(entity); got != `{"id":7,"customer":{"name":"Grace"}}` {
		t.Errorf("got %s", got)
	}
}

func TestFormulaUndefinedVariables(t *testing.T) {
	form := &Form{Fields: []Field{{Label: "X", Formula: "missing ?? 0"}}}
	values, err := form.Read(mustDecode(t, `{}`))
	if err != nil {
		t.Fatal(err)
	}
	if len(values) != 1 || ir.MustString(values[0].Value) != `0` {
		t.Errorf("got %v", values)
	}
}

func TestTableRows(t *testing.T) {
	table := &Table{
		RowsPath: "/orders/*",
		Columns: []Column{
			{Header: "SKU", Path: "/sku"},
			{Header: "Qty", Path: "/qty"},
		},
	}
	entity := mustDecode(t, `{"orders":[{"sku":"a","qty":2},{"sku":"b"}]}`)
	rows, err := table.Rows(entity)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows", len(rows))
	}
	if rows[0].Pointer != "/orders/0" || rows[1].Pointer != "/orders/1" {
		t.Errorf("pointers %s, %s", rows[0].Pointer, rows[1].Pointer)
	}
	if ir.MustString(rows[0].Cells[1]) != `2` {
		t.Errorf("cell: %s", ir.MustString(rows[0].Cells[1]))
	}
	if rows[1].Cells[1] != nil {
		t.Error("sparse cell should stay nil")
	}
}

func TestTableRowsMissingSequence(t *testing.T) {
	table := &Table{RowsPath: "/orders/*"}
	rows, err := table.Rows(mustDecode(t, `{}`))
	if err != nil {
		t.Fatal(err)
	}
	if rows != nil {
		t.Errorf("got %v", rows)
	}
}

func TestHyperlinkExpand(t *testing.T) {
	h := &Hyperlink{Label: "Order", URLTemplate: "/orders/{region}/{id}?v={id}"}
	url, err := h.Expand(map[string]string{"region": "eu", "id": "42"})
	if err != nil {
		t.Fatal(err)
	}
	if url != "/orders/eu/42?v=42" {
		t.Errorf("got %s", url)
	}
	if _, err := h.Expand(map[string]string{"region": "eu"}); err == nil {
		t.Error("missing identity value should fail")
	}
	bad := &Hyperlink{URLTemplate: "/x/{open"}
	if _, err := bad.Expand(nil); err == nil {
		t.Error("unclosed slot should fail")
	}
}

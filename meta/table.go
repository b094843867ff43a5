package meta

import (
	"errors"
	"fmt"

	"github.com/omniform/docptr"
	"github.com/omniform/docptr/ir"
)

// Column describes one table column: a header and the pointer into a row
// entity, relative to the row root.
type Column struct {
	Header string
	Path   string
}

// Table describes tabular rendering of a sequence inside an entity.
// RowsPath usually carries a wildcard, e.g. "/orders/*".
type Table struct {
	RowsPath string
	Columns  []Column
}

// Row is one resolved table row: the row's pointer within the entity and
// one cell per column, nil where the row lacks the property.
type Row struct {
	Pointer string
	Cells   []*ir.Node
}

// Rows fans RowsPath out over the entity and resolves every column against
// each row. Missing cells stay nil; tables tolerate sparse rows.
func (t *Table) Rows(entity *ir.Node) ([]Row, error) {
	matches, err := docptr.GetAll(entity, t.RowsPath)
	if err != nil {
		if errors.Is(err, docptr.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	res := make([]Row, 0, len(matches))
	for _, m := range matches {
		row := Row{Pointer: m.Pointer, Cells: make([]*ir.Node, len(t.Columns))}
		for i := range t.Columns {
			cells, err := docptr.GetAll(m.Value, t.Columns[i].Path)
			if err != nil {
				if errors.Is(err, docptr.ErrNotFound) {
					continue
				}
				return nil, fmt.Errorf("column %q: %w", t.Columns[i].Header, err)
			}
			if len(cells) > 0 {
				row.Cells[i] = cells[0].Value
			}
		}
		res = append(res, row)
	}
	return res, nil
}

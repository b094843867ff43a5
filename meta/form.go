package meta

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/omniform/docptr"
	"github.com/omniform/docptr/ir"
)

// Field describes one form field: a label and the pointer into the entity
// it reads and writes. A Formula makes the field computed: it is evaluated
// against the entity instead of dereferencing Path, and never written back.
type Field struct {
	Label    string
	Path     string
	ReadOnly bool
	Formula  string
}

// Form describes an ordered group of fields over one entity.
type Form struct {
	Title  string
	Fields []Field
}

// FieldValue is one resolved field: wildcard paths fan a single Field out
// into several values.
type FieldValue struct {
	Label   string
	Pointer string
	Value   *ir.Node
}

// Read resolves every field against the entity. Absent field paths yield
// no value rather than an error; forms routinely describe properties the
// entity does not carry yet.
func (f *Form) Read(entity *ir.Node) ([]FieldValue, error) {
	var res []FieldValue
	for i := range f.Fields {
		field := &f.Fields[i]
		if field.Formula != "" {
			v, err := evalFormula(field.Formula, entity)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", field.Label, err)
			}
			res = append(res, FieldValue{Label: field.Label, Value: v})
			continue
		}
		matches, err := docptr.GetAll(entity, field.Path)
		if err != nil {
			if errors.Is(err, docptr.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("field %q: %w", field.Label, err)
		}
		for _, m := range matches {
			res = append(res, FieldValue{Label: field.Label, Pointer: m.Pointer, Value: m.Value})
		}
	}
	return res, nil
}

// Apply writes values keyed by field label back into the entity, skipping
// read-only and computed fields. It returns the affected pointers in field
// order.
func (f *Form) Apply(entity *ir.Node, values map[string]*ir.Node) ([]string, error) {
	var affected []string
	for i := range f.Fields {
		field := &f.Fields[i]
		if field.ReadOnly || field.Formula != "" {
			continue
		}
		v, ok := values[field.Label]
		if !ok {
			continue
		}
		ptrs, err := docptr.SetAll(entity, field.Path, v)
		if err != nil {
			return affected, fmt.Errorf("field %q: %w", field.Label, err)
		}
		affected = append(affected, ptrs...)
	}
	return affected, nil
}

func evalFormula(formula string, entity *ir.Node) (*ir.Node, error) {
	env, _ := ir.ToAny(entity).(map[string]any)
	prg, err := expr.Compile(formula, expr.Env(env), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, err
	}
	out, err := expr.Run(prg, env)
	if err != nil {
		return nil, err
	}
	return ir.FromAny(out)
}

package ir

import (
	"maps"
	"slices"
	"strconv"
)

// Node is one value in a document tree. Objects keep their fields in
// insertion order via the parallel Fields/Values slices; array elements
// live in Values. Parent, ParentIndex and ParentField are back-links
// maintained by the constructors and mutation helpers.
type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.Values = make([]*Node, len(y.Values))
	dst.Fields = make([]*Node, len(y.Fields))
	for i, yv := range y.Values {
		dstI := &Node{}
		yv.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yv.ParentField
		dst.Values[i] = dstI
	}
	for i, yf := range y.Fields {
		dstI := &Node{}
		yf.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yf.String
		dst.Fields[i] = dstI
	}

	dst.String = y.String
	dst.Number = y.Number
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	dst.Bool = y.Bool
	return dst
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

func ToMap(node *Node) map[string]*Node {
	if node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i := range node.Fields {
		res[node.Fields[i].String] = node.Values[i]
	}
	return res
}

// FromMap builds an object node with keys in sorted order. Use Object plus
// SetField when a specific insertion order matters.
func FromMap(yMap map[string]*Node) *Node {
	res := &Node{}
	res.Type = ObjectType
	res.Fields = make([]*Node, len(yMap))
	res.Values = make([]*Node, len(yMap))
	keys := slices.Sorted(maps.Keys(yMap))
	for i, key := range keys {
		y := yMap[key]
		y.Parent = res
		y.ParentIndex = i
		y.ParentField = key
		yField := &Node{
			Parent:      res,
			ParentIndex: i,
			ParentField: key,
			Type:        StringType,
			String:      key,
		}
		res.Fields[i] = yField
		res.Values[i] = y
	}
	return res
}

// Object returns an empty object node.
func Object() *Node {
	return &Node{Type: ObjectType}
}

// Array returns an empty array node.
func Array() *Node {
	return &Node{Type: ArrayType}
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type: ArrayType,
	}
	res.Values = make([]*Node, len(ySlice))
	for i, y := range ySlice {
		res.Values[i] = y
		y.Parent = res
		y.ParentIndex = i
	}
	return res
}

// Get returns the value of field in an object node, or nil when absent.
func Get(y *Node, field string) *Node {
	n := len(y.Fields)
	for i := range n {
		if y.Fields[i].String == field {
			return y.Values[i]
		}
	}
	return nil
}

// FieldIndex returns the position of field in an object node, or -1.
func (y *Node) FieldIndex(field string) int {
	for i := range y.Fields {
		if y.Fields[i].String == field {
			return i
		}
	}
	return -1
}

// Keys returns the field names of an object node in insertion order.
func (y *Node) Keys() []string {
	res := make([]string, len(y.Fields))
	for i := range y.Fields {
		res[i] = y.Fields[i].String
	}
	return res
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

// SetField assigns val to field on an object node, replacing an existing
// value in place or appending a new field at the end. Parent links on val
// are rewritten to point into y.
func (y *Node) SetField(field string, val *Node) {
	i := y.FieldIndex(field)
	if i != -1 {
		val.Parent = y
		val.ParentIndex = i
		val.ParentField = field
		y.Values[i] = val
		return
	}
	i = len(y.Fields)
	yField := &Node{
		Parent:      y,
		ParentIndex: i,
		ParentField: field,
		Type:        StringType,
		String:      field,
	}
	val.Parent = y
	val.ParentIndex = i
	val.ParentField = field
	y.Fields = append(y.Fields, yField)
	y.Values = append(y.Values, val)
}

// RemoveField removes field from an object node, reporting whether it was
// present. Later siblings are re-indexed.
func (y *Node) RemoveField(field string) bool {
	i := y.FieldIndex(field)
	if i == -1 {
		return false
	}
	y.Fields = append(y.Fields[:i], y.Fields[i+1:]...)
	y.Values = append(y.Values[:i], y.Values[i+1:]...)
	y.reindex(i)
	return true
}

// SetIndex assigns val at index i of an array node. i == len appends.
func (y *Node) SetIndex(i int, val *Node) {
	val.Parent = y
	val.ParentIndex = i
	val.ParentField = ""
	if i == len(y.Values) {
		y.Values = append(y.Values, val)
		return
	}
	y.Values[i] = val
}

// Append adds val at the tail of an array node and returns its index.
func (y *Node) Append(val *Node) int {
	i := len(y.Values)
	val.Parent = y
	val.ParentIndex = i
	y.Values = append(y.Values, val)
	return i
}

// RemoveIndex removes element i of an array node, re-indexing the tail.
func (y *Node) RemoveIndex(i int) {
	y.Values = append(y.Values[:i], y.Values[i+1:]...)
	y.reindex(i)
}

func (y *Node) reindex(from int) {
	for i := from; i < len(y.Values); i++ {
		y.Values[i].ParentIndex = i
		if i < len(y.Fields) {
			y.Fields[i].ParentIndex = i
		}
	}
}

// Key returns the key or index identity of y within its parent as a node:
// the field name for object members, the index for array elements. The
// document root has no identity.
func (y *Node) Key() *Node {
	p := y.Parent
	if p == nil {
		return Null()
	}
	switch p.Type {
	case ObjectType:
		return FromString(y.ParentField)
	case ArrayType:
		return FromInt(int64(y.ParentIndex))
	default:
		panic("parent but not in container")
	}
}

func (y *Node) IntValue() (int64, bool) {
	if y.Type != NumberType {
		return 0, false
	}
	if y.Int64 != nil {
		return *y.Int64, true
	}
	return 0, false
}

// Scalar returns the scalar value of a leaf node as a string, the form
// used when scalars become object keys.
func (y *Node) Scalar() string {
	switch y.Type {
	case StringType:
		return y.String
	case BoolType:
		return strconv.FormatBool(y.Bool)
	case NumberType:
		if y.Int64 != nil {
			return strconv.FormatInt(*y.Int64, 10)
		}
		if y.Float64 != nil {
			return strconv.FormatFloat(*y.Float64, 'g', -1, 64)
		}
		return y.Number
	case NullType:
		return "null"
	default:
		return ""
	}
}

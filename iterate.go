package docptr

import (
	"fmt"
	"strconv"

	"github.com/omniform/docptr/ir"
	"github.com/omniform/docptr/ir/jptr"
)

// leafFunc is the per-match action invoked at the terminal segment. It
// receives the resolved container, the terminal segment, and the absolute
// pointer of the container so far. It returns the affected pointer for the
// branch; an empty string records no effect.
type leafFunc func(node *ir.Node, seg jptr.Segment, at string) (string, error)

type walkOpts struct {
	// vivify creates missing intermediate containers during descent, the
	// kind chosen by one-token lookahead: a next Index or Append segment
	// implies a sequence, anything else a mapping.
	vivify bool
	// lenient terminates unresolvable branches quietly instead of failing.
	lenient bool
}

// iterate walks segs left to right from node, fanning out over wildcard
// segments in deterministic order (mapping fields in insertion order,
// sequence elements in ascending index order), and invokes leaf once per
// concrete terminal match. It returns the affected pointers in enumeration
// order.
func iterate(node *ir.Node, segs []jptr.Segment, leaf leafFunc, o walkOpts) ([]string, error) {
	return walk(node, segs, "", nil, leaf, o)
}

func walk(node *ir.Node, segs []jptr.Segment, at string, acc []string, leaf leafFunc, o walkOpts) ([]string, error) {
	seg := segs[0]
	rest := segs[1:]
	terminal := len(rest) == 0

	switch seg.Kind {
	case jptr.WildcardKind:
		return walkWildcard(node, rest, at, acc, leaf, o)

	case jptr.AppendKind:
		// parsing guarantees tail position for pointer text; pre-split
		// segment lists re-check here
		if !terminal {
			return nil, fmt.Errorf("%w: append segment '-' only allowed at the end", ErrParse)
		}
		affected, err := leaf(node, seg, at)
		return record(acc, affected, err)

	default:
		if terminal {
			if node.Type.IsLeaf() {
				if o.lenient {
					return acc, nil
				}
				return nil, fmt.Errorf("%w: %s at %q, expected a container", ErrTypeMismatch, node.Type, ptrOf(at))
			}
			affected, err := leaf(node, seg, at)
			return record(acc, affected, err)
		}
		child, childAt, err := descend(node, seg, rest, at, o)
		if err != nil {
			return nil, err
		}
		if child == nil {
			return acc, nil
		}
		return walk(child, rest, childAt, acc, leaf, o)
	}
}

func walkWildcard(node *ir.Node, rest []jptr.Segment, at string, acc []string, leaf leafFunc, o walkOpts) ([]string, error) {
	terminal := len(rest) == 0
	var err error
	switch node.Type {
	case ir.ObjectType:
		// snapshot: leaf actions may mutate the container
		fields := make([]string, len(node.Fields))
		values := make([]*ir.Node, len(node.Values))
		for i := range node.Fields {
			fields[i] = node.Fields[i].String
			values[i] = node.Values[i]
		}
		for i, field := range fields {
			if terminal {
				affected, lerr := leaf(node, jptr.KeySegment(field), at)
				acc, err = record(acc, affected, lerr)
			} else {
				child := values[i]
				if o.vivify && child.Type == ir.NullType {
					child = vivified(rest[0])
					node.SetField(field, child)
				}
				acc, err = walk(child, rest, at+"/"+jptr.Escape(field), acc, leaf, o)
			}
			if err != nil {
				return nil, err
			}
		}
		return acc, nil

	case ir.ArrayType:
		values := make([]*ir.Node, len(node.Values))
		copy(values, node.Values)
		for i, elt := range values {
			if terminal {
				affected, lerr := leaf(node, jptr.IndexSegment(i), at)
				acc, err = record(acc, affected, lerr)
			} else {
				if o.vivify && elt.Type == ir.NullType {
					elt = vivified(rest[0])
					node.SetIndex(i, elt)
				}
				acc, err = walk(elt, rest, at+"/"+strconv.Itoa(i), acc, leaf, o)
			}
			if err != nil {
				return nil, err
			}
		}
		return acc, nil

	case ir.NullType, ir.BoolType, ir.NumberType, ir.StringType:
		if o.lenient {
			return acc, nil
		}
		return nil, fmt.Errorf("%w: wildcard over %s at %q", ErrTypeMismatch, node.Type, ptrOf(at))
	default:
		panic("type")
	}
}

// descend resolves one non-terminal Key/Index segment, auto-vivifying when
// configured. A nil child with nil error means a quietly terminated lenient
// branch.
func descend(node *ir.Node, seg jptr.Segment, rest []jptr.Segment, at string, o walkOpts) (*ir.Node, string, error) {
	childAt := at + "/" + seg.String()
	switch node.Type {
	case ir.ObjectType:
		child := ir.Get(node, seg.Key)
		if child != nil && !(o.vivify && child.Type == ir.NullType) {
			return child, childAt, nil
		}
		if o.vivify {
			child = vivified(rest[0])
			node.SetField(seg.Key, child)
			return child, childAt, nil
		}
		if o.lenient {
			return nil, "", nil
		}
		return nil, "", fmt.Errorf("%w: %q", ErrNotFound, childAt)

	case ir.ArrayType:
		if seg.Kind != jptr.IndexKind {
			if o.lenient {
				return nil, "", nil
			}
			return nil, "", fmt.Errorf("%w: key %q into array at %q", ErrTypeMismatch, seg.Key, ptrOf(at))
		}
		i := seg.Index
		if i < len(node.Values) {
			child := node.Values[i]
			if o.vivify && child.Type == ir.NullType {
				child = vivified(rest[0])
				node.SetIndex(i, child)
			}
			return child, childAt, nil
		}
		if o.vivify && i == len(node.Values) {
			child := vivified(rest[0])
			node.SetIndex(i, child)
			return child, childAt, nil
		}
		if o.lenient {
			return nil, "", nil
		}
		if i > len(node.Values) {
			return nil, "", fmt.Errorf("%w: index %d at %q (len %d)", ErrOutOfBounds, i, ptrOf(at), len(node.Values))
		}
		return nil, "", fmt.Errorf("%w: %q", ErrNotFound, childAt)

	case ir.NullType, ir.BoolType, ir.NumberType, ir.StringType:
		if o.lenient {
			return nil, "", nil
		}
		return nil, "", fmt.Errorf("%w: %s at %q, expected a container", ErrTypeMismatch, node.Type, ptrOf(at))
	default:
		panic("type")
	}
}

func vivified(next jptr.Segment) *ir.Node {
	switch next.Kind {
	case jptr.IndexKind, jptr.AppendKind:
		return ir.Array()
	default:
		// a wildcard gives no usable hint; default to a mapping
		return ir.Object()
	}
}

func record(acc []string, affected string, err error) ([]string, error) {
	if err != nil {
		return nil, err
	}
	if affected == "" {
		return acc, nil
	}
	return append(acc, affected), nil
}

// childPtr is the absolute pointer of seg under the container at.
func childPtr(at string, seg jptr.Segment) string {
	return at + "/" + seg.String()
}

// ptrOf renders an accumulated pointer prefix, mapping the empty prefix to
// the document root.
func ptrOf(at string) string {
	if at == "" {
		return "/"
	}
	return at
}

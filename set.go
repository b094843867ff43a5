package docptr

import (
	"fmt"
	"strconv"

	"github.com/omniform/docptr/debug"
	"github.com/omniform/docptr/ir"
	"github.com/omniform/docptr/ir/jptr"
)

// SetAll assigns value at every location the pointer addresses, creating
// missing intermediate containers on the way down (a next index or append
// segment implies a sequence, anything else a mapping). Each fan-out target
// receives its own clone of value. SetAll is strict and fails fast: an
// out-of-bounds index or unknown non-terminal key aborts the call, leaving
// mutations from earlier wildcard branches applied.
//
// With a "#" modifier the semantics become "ensure keys exist" on the
// target mapping: a sequence value adds each element, stringified, as a key
// with an empty-mapping placeholder when absent; a scalar value adds a
// single key.
func SetAll(root *ir.Node, ptr any, value *ir.Node, opts ...Option) ([]string, error) {
	cfg := newConfig(opts...)
	p, err := parsePointer(ptr, cfg.Root)
	if err != nil {
		return nil, err
	}
	if debug.Set() {
		debug.Logf("set %s to %s\n", p, ir.MustString(value))
	}
	if p.IsRootIdentity() {
		return nil, fmt.Errorf("%w: cannot set the root's own key", ErrRootIdentity)
	}
	if p.Mod == jptr.ModIdentity {
		return nil, fmt.Errorf("%w: cannot set a key identity", ErrParse)
	}

	if len(p.Segments) == 0 {
		return setRoot(root, p, value)
	}

	var leaf leafFunc
	if p.Mod == jptr.ModKeys {
		leaf = ensureKeysLeaf(value)
	} else {
		leaf = setLeaf(value)
	}
	return iterate(root, p.Segments, leaf, walkOpts{vivify: true})
}

// setRoot handles pointers addressing the document root itself: plain
// assignment replaces the whole tree in place, the keys modifier ensures
// keys on the root mapping.
func setRoot(root *ir.Node, p *jptr.Pointer, value *ir.Node) ([]string, error) {
	if p.Mod == jptr.ModKeys {
		if err := ensureKeys(root, value, "/"); err != nil {
			return nil, err
		}
		return []string{"/"}, nil
	}
	v := value.Clone()
	v.Parent = nil
	v.ParentIndex = 0
	v.ParentField = ""
	*root = *v
	// the struct copy leaves child back-links pointing at the clone
	for _, c := range root.Values {
		c.Parent = root
	}
	for _, f := range root.Fields {
		f.Parent = root
	}
	return []string{"/"}, nil
}

func setLeaf(value *ir.Node) leafFunc {
	return func(node *ir.Node, seg jptr.Segment, at string) (string, error) {
		switch node.Type {
		case ir.ObjectType:
			if seg.Kind == jptr.AppendKind {
				return "", fmt.Errorf("%w: append into %s at %q", ErrTypeMismatch, node.Type, ptrOf(at))
			}
			node.SetField(seg.Key, value.Clone())
			return childPtr(at, seg), nil

		case ir.ArrayType:
			switch seg.Kind {
			case jptr.AppendKind:
				i := node.Append(value.Clone())
				return at + "/" + strconv.Itoa(i), nil
			case jptr.IndexKind:
				if seg.Index > len(node.Values) {
					return "", fmt.Errorf("%w: index %d at %q (len %d)", ErrOutOfBounds, seg.Index, ptrOf(at), len(node.Values))
				}
				node.SetIndex(seg.Index, value.Clone())
				return childPtr(at, seg), nil
			default:
				return "", fmt.Errorf("%w: key %q into array at %q", ErrTypeMismatch, seg.Key, ptrOf(at))
			}

		default:
			return "", fmt.Errorf("%w: %s at %q, expected a container", ErrTypeMismatch, node.Type, ptrOf(at))
		}
	}
}

// ensureKeysLeaf resolves the terminal location to a mapping (creating it
// when absent, since SetAll vivifies) and ensures the keys named by value
// exist on it.
func ensureKeysLeaf(value *ir.Node) leafFunc {
	return func(node *ir.Node, seg jptr.Segment, at string) (string, error) {
		if seg.Kind == jptr.AppendKind {
			return "", fmt.Errorf("%w: cannot ensure keys past a sequence tail", ErrParse)
		}
		target, err := resolveChild(node, seg, at, true)
		if err != nil {
			return "", err
		}
		ptr := childPtr(at, seg)
		if target == nil || target.Type == ir.NullType {
			target = ir.Object()
			switch node.Type {
			case ir.ObjectType:
				node.SetField(seg.Key, target)
			case ir.ArrayType:
				if seg.Kind != jptr.IndexKind {
					return "", fmt.Errorf("%w: key %q into array at %q", ErrTypeMismatch, seg.Key, ptrOf(at))
				}
				if seg.Index > len(node.Values) {
					return "", fmt.Errorf("%w: index %d at %q (len %d)", ErrOutOfBounds, seg.Index, ptrOf(at), len(node.Values))
				}
				node.SetIndex(seg.Index, target)
			}
		}
		if err := ensureKeys(target, value, ptr); err != nil {
			return "", err
		}
		return ptr, nil
	}
}

func ensureKeys(target, value *ir.Node, at string) error {
	if target.Type != ir.ObjectType {
		return fmt.Errorf("%w: ensure keys on %s at %q", ErrTypeMismatch, target.Type, at)
	}
	add := func(key *ir.Node) {
		name := key.Scalar()
		if ir.Get(target, name) == nil {
			target.SetField(name, ir.Object())
		}
	}
	if value.Type == ir.ArrayType {
		for _, elt := range value.Values {
			add(elt)
		}
		return nil
	}
	add(value)
	return nil
}

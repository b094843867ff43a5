package docptr

import (
	"fmt"

	"github.com/omniform/docptr/debug"
	"github.com/omniform/docptr/ir"
	"github.com/omniform/docptr/ir/jptr"
)

// Match is one concrete location produced by GetAll: its absolute
// wildcard-free pointer and the value found there.
type Match struct {
	Pointer string
	Value   *ir.Node
}

// GetAll reads every location the pointer addresses. It is strict: absence
// of any segment along a branch fails with ErrNotFound. Returned values are
// clones; the engine retains no references into root.
//
// A "#" modifier at the terminal position yields key information instead of
// the value: the key-set of a mapping, the index list of a sequence, or, for
// a relative identity pointer like "2#", the key of the resolved location
// within its own parent.
func GetAll(root *ir.Node, ptr any, opts ...Option) ([]Match, error) {
	cfg := newConfig(opts...)
	p, err := parsePointer(ptr, cfg.Root)
	if err != nil {
		return nil, err
	}
	if debug.Get() {
		debug.Logf("get %s on %s\n", p, ir.MustString(root))
	}
	return getMatches(root, p, false)
}

// getMatches drives a read traversal. CopyAll reuses it with lenient=true
// so that sparse sources short-circuit branches instead of erroring.
func getMatches(root *ir.Node, p *jptr.Pointer, lenient bool) ([]Match, error) {
	switch p.Mod {
	case jptr.ModIdentity:
		return getIdentity(root, p)
	case jptr.ModKeys:
		return getKeys(root, p, lenient)
	}

	if len(p.Segments) == 0 {
		return []Match{{Pointer: "/", Value: root.Clone()}}, nil
	}

	var matches []Match
	leaf := func(node *ir.Node, seg jptr.Segment, at string) (string, error) {
		child, err := resolveChild(node, seg, at, lenient)
		if err != nil || child == nil {
			return "", err
		}
		ptr := childPtr(at, seg)
		matches = append(matches, Match{Pointer: ptr, Value: child.Clone()})
		return ptr, nil
	}
	if _, err := iterate(root, p.Segments, leaf, walkOpts{lenient: lenient}); err != nil {
		return nil, err
	}
	return matches, nil
}

// getIdentity reports the key or index of the addressed location within its
// parent. Relative pointer segments are plain, so no fan-out happens here.
func getIdentity(root *ir.Node, p *jptr.Pointer) ([]Match, error) {
	if len(p.Segments) == 0 {
		return nil, fmt.Errorf("%w: the document root has no key", ErrRootIdentity)
	}
	var matches []Match
	leaf := func(node *ir.Node, seg jptr.Segment, at string) (string, error) {
		child, err := resolveChild(node, seg, at, false)
		if err != nil {
			return "", err
		}
		ptr := childPtr(at, seg)
		matches = append(matches, Match{Pointer: ptr, Value: child.Key()})
		return ptr, nil
	}
	if _, err := iterate(root, p.Segments, leaf, walkOpts{}); err != nil {
		return nil, err
	}
	return matches, nil
}

// getKeys yields the key-set of the mapping at each match, or the index
// list of a sequence.
func getKeys(root *ir.Node, p *jptr.Pointer, lenient bool) ([]Match, error) {
	if len(p.Segments) == 0 {
		keys, err := keysOf(root, "/")
		if err != nil {
			return nil, err
		}
		return []Match{{Pointer: "/", Value: keys}}, nil
	}
	var matches []Match
	leaf := func(node *ir.Node, seg jptr.Segment, at string) (string, error) {
		child, err := resolveChild(node, seg, at, lenient)
		if err != nil || child == nil {
			return "", err
		}
		ptr := childPtr(at, seg)
		if child.Type.IsLeaf() {
			if lenient {
				return "", nil
			}
			return "", fmt.Errorf("%w: keys of %s at %q", ErrTypeMismatch, child.Type, ptr)
		}
		keys, err := keysOf(child, ptr)
		if err != nil {
			if lenient {
				return "", nil
			}
			return "", err
		}
		matches = append(matches, Match{Pointer: ptr, Value: keys})
		return ptr, nil
	}
	if _, err := iterate(root, p.Segments, leaf, walkOpts{lenient: lenient}); err != nil {
		return nil, err
	}
	return matches, nil
}

func keysOf(node *ir.Node, at string) (*ir.Node, error) {
	switch node.Type {
	case ir.ObjectType:
		keys := make([]*ir.Node, len(node.Fields))
		for i := range node.Fields {
			keys[i] = ir.FromString(node.Fields[i].String)
		}
		return ir.FromSlice(keys), nil
	case ir.ArrayType:
		keys := make([]*ir.Node, len(node.Values))
		for i := range node.Values {
			keys[i] = ir.FromInt(int64(i))
		}
		return ir.FromSlice(keys), nil
	default:
		return nil, fmt.Errorf("%w: keys of %s at %q", ErrTypeMismatch, node.Type, at)
	}
}

// resolveChild resolves a terminal Key/Index segment to the child value for
// reading. A nil child with nil error means a quietly skipped lenient
// branch.
func resolveChild(node *ir.Node, seg jptr.Segment, at string, lenient bool) (*ir.Node, error) {
	switch node.Type {
	case ir.ObjectType:
		if seg.Kind == jptr.AppendKind {
			if lenient {
				return nil, nil
			}
			return nil, fmt.Errorf("%w: append into %s at %q", ErrTypeMismatch, node.Type, ptrOf(at))
		}
		child := ir.Get(node, seg.Key)
		if child != nil {
			return child, nil
		}
		if lenient {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %q", ErrNotFound, childPtr(at, seg))

	case ir.ArrayType:
		switch seg.Kind {
		case jptr.IndexKind:
			if seg.Index < len(node.Values) {
				return node.Values[seg.Index], nil
			}
			if lenient {
				return nil, nil
			}
			if seg.Index > len(node.Values) {
				return nil, fmt.Errorf("%w: index %d at %q (len %d)", ErrOutOfBounds, seg.Index, ptrOf(at), len(node.Values))
			}
			return nil, fmt.Errorf("%w: %q", ErrNotFound, childPtr(at, seg))
		case jptr.AppendKind:
			// "-" addresses the location past the tail; there is nothing
			// to read there
			if lenient {
				return nil, nil
			}
			return nil, fmt.Errorf("%w: %q", ErrNotFound, childPtr(at, seg))
		default:
			if lenient {
				return nil, nil
			}
			return nil, fmt.Errorf("%w: key %q into array at %q", ErrTypeMismatch, seg.Key, ptrOf(at))
		}

	default:
		if lenient {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %s at %q, expected a container", ErrTypeMismatch, node.Type, ptrOf(at))
	}
}

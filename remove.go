package docptr

import (
	"fmt"
	"strconv"

	"github.com/omniform/docptr/debug"
	"github.com/omniform/docptr/ir"
	"github.com/omniform/docptr/ir/jptr"
)

// RemoveAll deletes every location the pointer addresses. It uses the
// lenient traversal: a missing key, an out-of-bounds index or a scalar met
// where a container was expected quietly terminates that branch, so
// repeated or speculative removal is idempotent and never errors on
// structural absence. A terminal append segment is a no-op branch. Only a
// malformed pointer still raises.
func RemoveAll(root *ir.Node, ptr any, opts ...Option) ([]string, error) {
	cfg := newConfig(opts...)
	p, err := parsePointer(ptr, cfg.Root)
	if err != nil {
		return nil, err
	}
	if debug.Remove() {
		debug.Logf("remove %s\n", p)
	}
	if p.IsRootIdentity() {
		return nil, fmt.Errorf("%w: cannot remove the root's own key", ErrRootIdentity)
	}
	if p.Mod != jptr.ModNone {
		return nil, fmt.Errorf("%w: cannot remove by key modifier", ErrParse)
	}
	if len(p.Segments) == 0 {
		return nil, fmt.Errorf("%w: cannot remove the document root", ErrRootIdentity)
	}

	// a terminal wildcard over a sequence removes several elements from
	// one container; affected pointers report pre-removal indices, the
	// per-container count keeps later removals aligned
	removed := map[*ir.Node]int{}
	leaf := func(node *ir.Node, seg jptr.Segment, at string) (string, error) {
		switch node.Type {
		case ir.ObjectType:
			if seg.Kind == jptr.AppendKind {
				return "", nil
			}
			if !node.RemoveField(seg.Key) {
				return "", nil
			}
			return childPtr(at, seg), nil

		case ir.ArrayType:
			if seg.Kind != jptr.IndexKind {
				return "", nil
			}
			i := seg.Index - removed[node]
			if i < 0 || i >= len(node.Values) {
				return "", nil
			}
			node.RemoveIndex(i)
			removed[node]++
			return at + "/" + strconv.Itoa(seg.Index), nil

		default:
			return "", nil
		}
	}
	return iterate(root, p.Segments, leaf, walkOpts{lenient: true})
}

package docptr

import (
	"fmt"

	"github.com/omniform/docptr/debug"
	"github.com/omniform/docptr/ir"
	"github.com/omniform/docptr/ir/jptr"
)

// CopyAll reads every location the pointer addresses in source and writes
// each match into target at the same absolute pointer, auto-vivifying
// target containers as needed. The source side is tolerant: absent branches
// short-circuit quietly, so sparse sources copy what they have. The target
// side inherits SetAll's strictness. A nil target defaults to an empty
// mapping; the mutated target is returned.
func CopyAll(source *ir.Node, ptr any, target *ir.Node, opts ...Option) (*ir.Node, error) {
	cfg := newConfig(opts...)
	p, err := parsePointer(ptr, cfg.Root)
	if err != nil {
		return nil, err
	}
	if debug.Copy() {
		debug.Logf("copy %s\n", p)
	}
	if p.IsRootIdentity() {
		return nil, fmt.Errorf("%w: cannot copy the root's own key", ErrRootIdentity)
	}
	if p.Mod == jptr.ModIdentity {
		return nil, fmt.Errorf("%w: cannot copy a key identity", ErrParse)
	}
	if target == nil {
		target = ir.Object()
	}

	matches, err := getMatches(source, p, true)
	if err != nil {
		return nil, err
	}
	for _, m := range matches {
		dst, err := jptr.Parse(m.Pointer, "/")
		if err != nil {
			return nil, err
		}
		// a keys-modifier read produced the key-set; replay it as
		// ensure-keys on the target
		dst.Mod = p.Mod
		if _, err := SetAll(target, dst, m.Value); err != nil {
			return nil, err
		}
	}
	return target, nil
}

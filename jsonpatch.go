package docptr

import (
	"bytes"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/omniform/docptr/ir"
)

// ApplyJSONPatch applies an RFC 6902 patch document to a tree, going
// through the JSON wire form and back, and returns the patched tree.
// Wildcard and relative pointers are a docptr extension; patch documents
// use plain RFC 6901 paths.
func ApplyJSONPatch(doc *ir.Node, patch []byte) (*ir.Node, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	buf := bytes.NewBuffer(nil)
	if err := ir.Encode(doc, buf); err != nil {
		return nil, err
	}
	out, err := ops.Apply(buf.Bytes())
	if err != nil {
		return nil, err
	}
	return ir.Decode(out)
}

// ApplyMergePatch applies an RFC 7386 merge patch to a tree and returns
// the result.
func ApplyMergePatch(doc *ir.Node, patch []byte) (*ir.Node, error) {
	buf := bytes.NewBuffer(nil)
	if err := ir.Encode(doc, buf); err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(buf.Bytes(), patch)
	if err != nil {
		return nil, err
	}
	return ir.Decode(out)
}

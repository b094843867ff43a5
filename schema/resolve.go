package schema

import (
	"fmt"
	"strings"

	"github.com/omniform/docptr"
	"github.com/omniform/docptr/debug"
	"github.com/omniform/docptr/ir"
)

// Ref is a parsed "$ref" string: an optional schema name and an optional
// fragment pointer into that schema's document.
type Ref struct {
	// Schema names a registered schema document; empty means the current
	// document.
	Schema string
	// Fragment is the pointer to the sub-definition, e.g.
	// "/definitions/address"; empty means the whole document.
	Fragment string
}

// ParseRef parses "$ref" syntax: "#/definitions/x" (current document),
// "name" (whole registered schema), "name#/definitions/x" (sub-definition
// of a registered schema).
func ParseRef(ref string) (*Ref, error) {
	if ref == "" {
		return nil, fmt.Errorf("empty $ref")
	}
	name, frag, found := strings.Cut(ref, "#")
	if !found {
		return &Ref{Schema: name}, nil
	}
	if frag != "" && frag[0] != '/' {
		return nil, fmt.Errorf("invalid $ref fragment %q", frag)
	}
	return &Ref{Schema: name, Fragment: frag}, nil
}

// Resolver locates sub-definitions referenced from a schema document.
type Resolver struct {
	// Doc is the current schema document, the target of fragment-only
	// refs.
	Doc *ir.Node
	// Registry resolves named cross-document refs; may be nil.
	Registry *Registry
}

// Resolve returns the definition a "$ref" string addresses.
func (rv *Resolver) Resolve(ref string) (*ir.Node, error) {
	r, err := ParseRef(ref)
	if err != nil {
		return nil, err
	}
	doc := rv.Doc
	if r.Schema != "" {
		if rv.Registry == nil {
			return nil, fmt.Errorf("$ref %q names a schema but no registry is configured", ref)
		}
		doc = rv.Registry.Lookup(r.Schema)
		if doc == nil {
			return nil, fmt.Errorf("schema %q not registered", r.Schema)
		}
	}
	if doc == nil {
		return nil, fmt.Errorf("$ref %q has no document to resolve against", ref)
	}
	if r.Fragment == "" {
		return doc.Clone(), nil
	}
	matches, err := docptr.GetAll(doc, r.Fragment)
	if err != nil {
		return nil, fmt.Errorf("resolving $ref %q: %w", ref, err)
	}
	if debug.Schema() {
		debug.Logf("resolved $ref %q to %d match(es)\n", ref, len(matches))
	}
	// a wildcard fragment over an empty container matches nothing
	if len(matches) == 0 {
		return nil, fmt.Errorf("$ref %q resolves to no definition", ref)
	}
	return matches[0].Value, nil
}

// Expand replaces a top-level "$ref" chain in def with the referenced
// definition, guarding against reference cycles.
func (rv *Resolver) Expand(def *ir.Node) (*ir.Node, error) {
	seen := map[string]bool{}
	for def.Type == ir.ObjectType {
		refNode := ir.Get(def, "$ref")
		if refNode == nil || refNode.Type != ir.StringType {
			break
		}
		ref := refNode.String
		if seen[ref] {
			return nil, fmt.Errorf("circular $ref chain through %q", ref)
		}
		seen[ref] = true
		next, err := rv.Resolve(ref)
		if err != nil {
			return nil, err
		}
		def = next
	}
	return def, nil
}

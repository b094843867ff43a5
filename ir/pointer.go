package ir

import (
	"strconv"

	"github.com/omniform/docptr/ir/jptr"
)

// Pointer returns the RFC 6901 pointer of this node's position in its tree.
//
// Examples:
//   - root node → "/"
//   - object field "a" → "/a"
//   - array element 0 under "a" → "/a/0"
func (node *Node) Pointer() string {
	if node.Parent == nil {
		return "/"
	}
	prefix := node.Parent.Pointer()
	if prefix == "/" {
		prefix = ""
	}
	switch node.Parent.Type {
	case ObjectType:
		return prefix + "/" + jptr.Escape(node.ParentField)
	case ArrayType:
		return prefix + "/" + strconv.Itoa(node.ParentIndex)
	default:
		panic("parent but not in container")
	}
}

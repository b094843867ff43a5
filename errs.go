package docptr

import (
	"errors"

	"github.com/omniform/docptr/ir/jptr"
)

var (
	// ErrParse is jptr.ErrParse: malformed pointer text or modifier misuse.
	ErrParse = jptr.ErrParse

	// ErrRootIdentity reports an attempt to mutate the contextual root's
	// own key via a relative identity pointer.
	ErrRootIdentity = errors.New("cannot address the root's own key")

	// ErrNotFound reports an absent path segment in a strict traversal.
	ErrNotFound = errors.New("value not found")

	// ErrOutOfBounds reports a sequence index beyond tail+1.
	ErrOutOfBounds = errors.New("index out of bounds")

	// ErrTypeMismatch reports a scalar where a container was expected, or a
	// segment kind a container cannot resolve.
	ErrTypeMismatch = errors.New("type mismatch")
)

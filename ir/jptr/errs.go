package jptr

import "errors"

var (
	// ErrParse reports a malformed pointer: an unclassifiable segment, a
	// non-terminal append segment, modifier misuse, or a relative pointer
	// ascending past the document root.
	ErrParse = errors.New("pointer parse error")
)

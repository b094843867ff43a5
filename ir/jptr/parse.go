package jptr

import (
	"fmt"
	"strconv"
	"strings"
)

type Modifier int

const (
	// ModNone addresses the value at the pointer.
	ModNone Modifier = iota
	// ModKeys ("/a/b#") addresses the key-set of the container at the
	// pointer rather than its value.
	ModKeys
	// ModIdentity ("2#") addresses the key or index of the location itself
	// within its parent. Only relative pointers produce it.
	ModIdentity
)

func (m Modifier) String() string {
	switch m {
	case ModNone:
		return "None"
	case ModKeys:
		return "Keys"
	case ModIdentity:
		return "Identity"
	}
	return "<unknown modifier>"
}

// Pointer is a parsed pointer: an ordered segment sequence plus an optional
// trailing modifier. A Pointer with rootIdentity set is the marker for a
// relative pointer addressing the contextual root's own key ("0#"); mutating
// operations must reject it.
type Pointer struct {
	Segments []Segment
	Mod      Modifier

	rootIdentity bool
}

// IsRootIdentity reports whether the pointer addresses the contextual
// root's own key or index.
func (p *Pointer) IsRootIdentity() bool {
	return p.rootIdentity
}

// FromSegments wraps an already-split segment sequence. It validates the
// append-only-at-tail invariant like Parse does.
func FromSegments(segs []Segment, mod Modifier) (*Pointer, error) {
	if err := validate(segs); err != nil {
		return nil, err
	}
	return &Pointer{Segments: segs, Mod: mod}, nil
}

// FromStrings classifies a pre-split sequence of unescaped segment tokens.
func FromStrings(toks []string, mod Modifier) (*Pointer, error) {
	segs := make([]Segment, len(toks))
	for i, tok := range toks {
		segs[i] = classify(tok)
	}
	return FromSegments(segs, mod)
}

// Parse converts pointer text into a Pointer. Absolute pointers ("", "/",
// "/a/b", "/a/*#") stand alone; pointers opening with a decimal are
// relative and resolve against root, itself a plain absolute pointer
// (default document root).
func Parse(input, root string) (*Pointer, error) {
	if len(input) > 0 && input[0] >= '0' && input[0] <= '9' {
		return parseRelative(input, root)
	}
	segs, mod, err := parseAbsolute(input)
	if err != nil {
		return nil, err
	}
	return &Pointer{Segments: segs, Mod: mod}, nil
}

func parseAbsolute(s string) ([]Segment, Modifier, error) {
	mod := ModNone
	if strings.HasSuffix(s, "#") {
		mod = ModKeys
		s = s[:len(s)-1]
	}
	if s == "" || s == "/" {
		return nil, mod, nil
	}
	if s[0] != '/' {
		return nil, ModNone, fmt.Errorf("%w: pointer %q must start with '/'", ErrParse, s)
	}
	toks := strings.Split(s[1:], "/")
	segs := make([]Segment, len(toks))
	for i, tok := range toks {
		segs[i] = classify(Unescape(tok))
	}
	if err := validate(segs); err != nil {
		return nil, ModNone, err
	}
	return segs, mod, nil
}

func parseRelative(s, root string) (*Pointer, error) {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	count, err := strconv.Atoi(s[:n])
	if err != nil {
		return nil, fmt.Errorf("%w: bad ascension count in %q", ErrParse, s)
	}
	rest := s[n:]

	base, err := rootSegments(root)
	if err != nil {
		return nil, err
	}
	if count > len(base) {
		return nil, fmt.Errorf("%w: relative pointer %q ascends %d levels above root %q",
			ErrParse, s, count-len(base), root)
	}
	base = base[:len(base)-count]

	if strings.HasPrefix(rest, "#") {
		if len(rest) > 1 {
			return nil, fmt.Errorf("%w: identity modifier takes no remainder in %q", ErrParse, s)
		}
		return &Pointer{
			Segments:     base,
			Mod:          ModIdentity,
			rootIdentity: count == 0,
		}, nil
	}
	if rest != "" && rest[0] != '/' {
		return nil, fmt.Errorf("%w: relative pointer remainder %q must start with '/'", ErrParse, rest)
	}
	segs, mod, err := parseAbsolute(rest)
	if err != nil {
		return nil, err
	}
	all := append(base, segs...)
	if err := validate(all); err != nil {
		return nil, err
	}
	return &Pointer{Segments: all, Mod: mod}, nil
}

// rootSegments parses a contextual root pointer, which must be plain: no
// wildcard, append or modifier segments, and not itself relative.
func rootSegments(root string) ([]Segment, error) {
	if root == "" {
		return nil, nil
	}
	if root[0] != '/' {
		return nil, fmt.Errorf("%w: root pointer %q must be absolute", ErrParse, root)
	}
	segs, mod, err := parseAbsolute(root)
	if err != nil {
		return nil, err
	}
	if mod != ModNone {
		return nil, fmt.Errorf("%w: root pointer %q cannot carry a modifier", ErrParse, root)
	}
	for _, seg := range segs {
		switch seg.Kind {
		case WildcardKind, AppendKind:
			return nil, fmt.Errorf("%w: root pointer %q cannot contain %q", ErrParse, root, seg.String())
		}
	}
	return segs, nil
}

func validate(segs []Segment) error {
	for i, seg := range segs {
		if seg.Kind == AppendKind && i != len(segs)-1 {
			return fmt.Errorf("%w: append segment '-' only allowed at the end", ErrParse)
		}
	}
	return nil
}

// String reconstructs canonical pointer text. The document root prints as
// "/"; both modifiers print as a trailing "#".
func (p *Pointer) String() string {
	if len(p.Segments) == 0 {
		if p.Mod != ModNone {
			return "/#"
		}
		return "/"
	}
	var b strings.Builder
	for _, seg := range p.Segments {
		b.WriteByte('/')
		b.WriteString(seg.String())
	}
	if p.Mod != ModNone {
		b.WriteByte('#')
	}
	return b.String()
}

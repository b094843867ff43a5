package jptr

import (
	"strconv"
	"strings"
)

type Kind int

const (
	KeyKind Kind = iota
	IndexKind
	AppendKind
	WildcardKind
)

func (k Kind) String() string {
	switch k {
	case KeyKind:
		return "Key"
	case IndexKind:
		return "Index"
	case AppendKind:
		return "Append"
	case WildcardKind:
		return "Wildcard"
	}
	return "<unknown kind>"
}

// Segment is one step of a pointer. An IndexKind segment keeps its decimal
// text in Key so that resolution against an object can fall back to a string
// key lookup: classification is a parse-time hint, the container met during
// traversal decides.
type Segment struct {
	Kind  Kind
	Key   string
	Index int
}

func KeySegment(key string) Segment {
	return Segment{Kind: KeyKind, Key: key}
}

func IndexSegment(i int) Segment {
	return Segment{Kind: IndexKind, Key: strconv.Itoa(i), Index: i}
}

func AppendSegment() Segment {
	return Segment{Kind: AppendKind, Key: "-"}
}

func WildcardSegment() Segment {
	return Segment{Kind: WildcardKind, Key: "*"}
}

// classify maps one unescaped segment token to a Segment. Whole-token "-"
// and "*" are append and wildcard; a decimal without leading zeros is an
// index; everything else is a key.
func classify(tok string) Segment {
	switch tok {
	case "-":
		return AppendSegment()
	case "*":
		return WildcardSegment()
	}
	if isIndexToken(tok) {
		i, err := strconv.Atoi(tok)
		if err == nil {
			return Segment{Kind: IndexKind, Key: tok, Index: i}
		}
	}
	return KeySegment(tok)
}

func isIndexToken(tok string) bool {
	if len(tok) == 0 {
		return false
	}
	if tok == "0" {
		return true
	}
	if tok[0] < '1' || tok[0] > '9' {
		return false
	}
	for i := 1; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return false
		}
	}
	return true
}

// String returns the escaped text of the segment.
func (s Segment) String() string {
	switch s.Kind {
	case AppendKind:
		return "-"
	case WildcardKind:
		return "*"
	case IndexKind:
		return strconv.Itoa(s.Index)
	default:
		return Escape(s.Key)
	}
}

// Escape applies RFC 6901 escaping: "~" becomes "~0" and "/" becomes "~1".
func Escape(s string) string {
	if !strings.ContainsAny(s, "~/") {
		return s
	}
	s = strings.ReplaceAll(s, "~", "~0")
	return strings.ReplaceAll(s, "/", "~1")
}

// Unescape reverses Escape. "~1" first, then "~0", per RFC 6901.
func Unescape(s string) string {
	if !strings.Contains(s, "~") {
		return s
	}
	s = strings.ReplaceAll(s, "~1", "/")
	return strings.ReplaceAll(s, "~0", "~")
}

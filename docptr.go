package docptr

import (
	"fmt"

	"github.com/omniform/docptr/ir/jptr"
)

// Config carries per-call settings for the four operations.
type Config struct {
	// Root is the contextual root pointer relative pointers resolve
	// against. Default "/" (document root).
	Root string
}

type Option func(*Config)

// WithRoot supplies the contextual root pointer for relative resolution.
func WithRoot(root string) Option {
	return func(c *Config) { c.Root = root }
}

func newConfig(opts ...Option) *Config {
	cfg := &Config{Root: "/"}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// parsePointer accepts the pointer argument forms the operations take: raw
// pointer text, an already-parsed pointer, or a pre-split segment sequence.
func parsePointer(ptr any, root string) (*jptr.Pointer, error) {
	switch t := ptr.(type) {
	case string:
		return jptr.Parse(t, root)
	case *jptr.Pointer:
		return t, nil
	case []jptr.Segment:
		return jptr.FromSegments(t, jptr.ModNone)
	case []string:
		return jptr.FromStrings(t, jptr.ModNone)
	default:
		return nil, fmt.Errorf("%w: unsupported pointer argument type %T", ErrParse, ptr)
	}
}

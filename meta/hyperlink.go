package meta

import (
	"fmt"
	"strings"
)

// Hyperlink describes a navigation target whose URL is a template with
// "{name}" slots filled from an identity-values map (key to scalar).
type Hyperlink struct {
	Label       string
	URLTemplate string
}

// Expand fills every "{name}" slot from identity. An unknown or unclosed
// slot is an error; literal braces are not supported in templates.
func (h *Hyperlink) Expand(identity map[string]string) (string, error) {
	var b strings.Builder
	s := h.URLTemplate
	for {
		i := strings.IndexByte(s, '{')
		if i == -1 {
			b.WriteString(s)
			return b.String(), nil
		}
		b.WriteString(s[:i])
		s = s[i+1:]
		j := strings.IndexByte(s, '}')
		if j == -1 {
			return "", fmt.Errorf("unclosed slot in URL template %q", h.URLTemplate)
		}
		name := s[:j]
		v, ok := identity[name]
		if !ok {
			return "", fmt.Errorf("no identity value for slot %q", name)
		}
		b.WriteString(v)
		s = s[j+1:]
	}
}

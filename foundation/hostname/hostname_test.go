package hostname

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	valid := []string{
		"localhost",
		"example.com",
		"host.example",
		"a.b.c.d",
		"my-box",
		"0host",
		"xn--bcher-kva.example",
		strings.Repeat("a", 63),
	}

	for _, raw := range valid {
		n, ok := Parse(raw)
		if !ok {
			t.Errorf("Parse(%q): expected success", raw)
			continue
		}
		if n.String() != raw {
			t.Errorf("Parse(%q): got %q", raw, n)
		}
	}

	invalid := []string{
		"",
		"-host",
		"host-",
		"host..example",
		".example",
		"example.",
		"ex ample",
		"host_name",
		"host#tag",
		strings.Repeat("a", 64),
		strings.Repeat("a.", 127) + strings.Repeat("b", 60),
	}

	for _, raw := range invalid {
		if _, ok := Parse(raw); ok {
			t.Errorf("Parse(%q): expected failure", raw)
		}
	}
}

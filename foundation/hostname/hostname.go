// Package hostname provides a validated hostname value type. A Name is only
// ever constructed through Parse so a non-zero value is always syntactically
// valid.
package hostname

// Limits imposed on a hostname by the DNS wire format.
const (
	maxName  = 253
	maxLabel = 63
)

// Name represents a syntactically valid hostname. The zero value is not a
// valid hostname.
type Name string

// Parse validates the specified raw string against hostname label rules:
// dot separated labels of letters, digits and inner hyphens, each label at
// most 63 bytes, the whole name at most 253 bytes. It reports false for
// malformed input instead of returning a partial value.
func Parse(raw string) (Name, bool) {
	if raw == "" || len(raw) > maxName {
		return "", false
	}

	start := 0
	for i := 0; i <= len(raw); i++ {
		if i < len(raw) && raw[i] != '.' {
			continue
		}

		if !validLabel(raw[start:i]) {
			return "", false
		}
		start = i + 1
	}

	return Name(raw), true
}

// String implements the Stringer interface.
func (n Name) String() string {
	return string(n)
}

func validLabel(label string) bool {
	if len(label) == 0 || len(label) > maxLabel {
		return false
	}

	if label[0] == '-' || label[len(label)-1] == '-' {
		return false
	}

	for i := 0; i < len(label); i++ {
		c := label[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '-':
		default:
			return false
		}
	}

	return true
}

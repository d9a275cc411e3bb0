// Package textenc constructs the encoded readers and writers used for hosts
// file I/O. Two modes exist: the platform legacy encoding and Unicode
// (UTF-16LE) with an optional byte order mark.
package textenc

import (
	"fmt"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Mode selects which of the two supported encodings a codec applies.
type Mode int

// Set of supported encoding modes.
const (
	Legacy Mode = iota
	Unicode
)

// String implements the Stringer interface.
func (m Mode) String() string {
	if m == Unicode {
		return "unicode"
	}

	return "legacy"
}

// ParseMode converts the textual form of a mode back to its value.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "legacy":
		return Legacy, true
	case "unicode":
		return Unicode, true
	}

	return Legacy, false
}

// =============================================================================

// Codec describes how bytes on disk map to text. Codepage names the legacy
// 8-bit encoding by IANA name; empty means plain UTF-8. BOM controls whether
// a byte order mark is written in Unicode mode. Both values come from the
// platform profile, not from environment detection.
type Codec struct {
	Mode     Mode
	Codepage string
	BOM      bool
}

// Reader wraps the specified reader so the returned reader yields UTF-8. In
// Unicode mode an existing byte order mark is honored.
func (c Codec) Reader(r io.Reader) (io.Reader, error) {
	switch c.Mode {
	case Unicode:
		dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		return transform.NewReader(r, dec), nil

	default:
		enc, err := c.legacy()
		if err != nil {
			return nil, err
		}
		if enc == nil {
			return r, nil
		}
		return transform.NewReader(r, enc.NewDecoder()), nil
	}
}

// Writer wraps the specified writer so UTF-8 written to the returned writer
// lands on disk in the codec's encoding. The writer must be closed to flush
// any buffered transform state.
func (c Codec) Writer(w io.Writer) (io.WriteCloser, error) {
	switch c.Mode {
	case Unicode:
		bom := unicode.IgnoreBOM
		if c.BOM {
			bom = unicode.ExpectBOM
		}
		enc := unicode.UTF16(unicode.LittleEndian, bom).NewEncoder()
		return transform.NewWriter(w, enc), nil

	default:
		enc, err := c.legacy()
		if err != nil {
			return nil, err
		}
		if enc == nil {
			return nopCloser{w}, nil
		}
		return transform.NewWriter(w, enc.NewEncoder()), nil
	}
}

func (c Codec) legacy() (encoding.Encoding, error) {
	if c.Codepage == "" {
		return nil, nil
	}

	enc, err := ianaindex.IANA.Encoding(c.Codepage)
	if err != nil {
		return nil, fmt.Errorf("ianaindex.Encoding: %w", err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported codepage: %s", c.Codepage)
	}

	return enc, nil
}

// =============================================================================

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}

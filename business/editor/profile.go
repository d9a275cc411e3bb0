package editor

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/hostsmith/hostsmith/foundation/textenc"
)

// Profile describes the platform conventions the editor honors: where the
// canonical hosts file lives, which legacy codepage it uses, whether a
// descriptive header block is expected, whether loopback entries must be
// written explicitly, and whether Unicode output carries a byte order mark.
// The core only ever consumes this struct, so every platform's behavior can
// be tested on any machine.
type Profile struct {
	Path          string
	Codepage      string
	NeedsHeader   bool
	NeedsLoopback bool
	UnicodeBOM    bool
}

// DetectProfile returns the profile for the running platform. Windows keeps
// the historical header block, an ANSI codepage and a BOM on Unicode files;
// its resolver implies loopback so no explicit entry is required. Unix
// platforms are plain UTF-8 with explicit loopback entries.
func DetectProfile() Profile {
	if runtime.GOOS == "windows" {
		windir := os.Getenv("SystemRoot")
		if windir == "" {
			windir = `C:\Windows`
		}

		return Profile{
			Path:        filepath.Join(windir, "System32", "drivers", "etc", "hosts"),
			Codepage:    "windows-1252",
			NeedsHeader: true,
			UnicodeBOM:  true,
		}
	}

	return Profile{
		Path:          "/etc/hosts",
		NeedsLoopback: true,
	}
}

// Codec returns the codec that applies the profile's encoding rules under
// the specified mode.
func (p Profile) Codec(m textenc.Mode) textenc.Codec {
	return textenc.Codec{
		Mode:     m,
		Codepage: p.Codepage,
		BOM:      p.UnicodeBOM,
	}
}

package editor

import (
	"fmt"
	"strings"

	"github.com/hostsmith/hostsmith/foundation/hostsfile"
)

// defaultHeader is the descriptive block written at the top of the canonical
// hosts file on platforms that expect one. Exports never include it.
const defaultHeader = `# Hosts file
#
# Each line maps an IP address to a host name. The address and name are
# separated by whitespace; text after a '#' is a comment.
#
# For example:
#
#     102.54.94.97     rhino.acme.com     #source server
#`

// Templates supplies the externalized header block and the two line formats
// used when serializing entries. The formats take the fields in fixed order:
// address, hostname, then comment for the commented variant.
type Templates struct {
	Header      string
	Line        string
	LineComment string
}

// DefaultTemplates returns the stock header and line formats.
func DefaultTemplates() Templates {
	return Templates{
		Header:      defaultHeader,
		Line:        "%s %s",
		LineComment: "%s %s #%s",
	}
}

// Render serializes one entry using the plain format when its comment is
// empty or whitespace, and the commented format otherwise.
func (t Templates) Render(e hostsfile.Entry) string {
	if strings.TrimSpace(e.Comment) == "" {
		return fmt.Sprintf(t.Line, e.Addr, e.Host)
	}

	return fmt.Sprintf(t.LineComment, e.Addr, e.Host, e.Comment)
}

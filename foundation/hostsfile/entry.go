// Package hostsfile provides the in-memory model for hosts file records:
// the entry value, the line parser, and an ordered collection of entries.
package hostsfile

import (
	"net/netip"

	"github.com/hostsmith/hostsmith/foundation/hostname"
)

// Entry represents a single hosts file record. Fields may be reassigned
// after construction; Valid is always derived from the current field state.
type Entry struct {
	Addr    netip.Addr
	Host    hostname.Name
	Comment string
}

// NewEntry constructs an entry from raw address and hostname strings. It
// reports false when either value fails syntactic validation.
func NewEntry(addr string, host string, comment string) (Entry, bool) {
	a, ok := ParseAddr(addr)
	if !ok {
		return Entry{}, false
	}

	h, ok := hostname.Parse(host)
	if !ok {
		return Entry{}, false
	}

	return Entry{Addr: a, Host: h, Comment: comment}, true
}

// Valid reports whether the entry carries both a parseable address and a
// non-zero hostname. Entries mid-edit may be invalid; they are never
// serialized.
func (e Entry) Valid() bool {
	return e.Addr.IsValid() && e.Host != ""
}

// Equals tests that the entry is identical to the specified entry.
func (e Entry) Equals(ent Entry) bool {
	return e.Addr == ent.Addr && e.Host == ent.Host && e.Comment == ent.Comment
}

// ParseAddr validates an IPv4 or IPv6 address string. Validation is purely
// syntactic; no resolution is performed.
func ParseAddr(raw string) (netip.Addr, bool) {
	a, err := netip.ParseAddr(raw)
	if err != nil {
		return netip.Addr{}, false
	}

	return a, true
}

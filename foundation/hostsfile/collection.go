package hostsfile

import (
	"sort"
	"strings"
)

// Less orders two entries and is used by the collection's stable sort.
type Less func(a Entry, b Entry) bool

// ByAddress orders entries by IP address.
func ByAddress() Less {
	return func(a Entry, b Entry) bool {
		return a.Addr.Less(b.Addr)
	}
}

// ByHostname orders entries by hostname, case insensitively.
func ByHostname() Less {
	return func(a Entry, b Entry) bool {
		return strings.ToLower(a.Host.String()) < strings.ToLower(b.Host.String())
	}
}

// ByComment orders entries by comment text.
func ByComment() Less {
	return func(a Entry, b Entry) bool {
		return a.Comment < b.Comment
	}
}

// =============================================================================

// Collection represents an ordered, mutable sequence of entries. Insertion
// order is file order; duplicate addresses and hostnames are permitted, as
// in real hosts files. The collection performs no locking; callers serialize
// access.
type Collection struct {
	entries []Entry
}

// NewCollection constructs an empty collection.
func NewCollection() *Collection {
	return &Collection{}
}

// Len returns the number of entries.
func (c *Collection) Len() int {
	return len(c.entries)
}

// Append adds the entry at the end of the collection.
func (c *Collection) Append(e Entry) {
	c.entries = append(c.entries, e)
}

// At returns the entry at the specified position.
func (c *Collection) At(i int) Entry {
	return c.entries[i]
}

// Set replaces the entry at the specified position.
func (c *Collection) Set(i int, e Entry) {
	c.entries[i] = e
}

// Remove deletes the entry at the specified position, preserving the order
// of the remaining entries.
func (c *Collection) Remove(i int) {
	c.entries = append(c.entries[:i], c.entries[i+1:]...)
}

// Clear drops all entries.
func (c *Collection) Clear() {
	c.entries = nil
}

// Entries returns a copy of the entries in collection order.
func (c *Collection) Entries() []Entry {
	es := make([]Entry, len(c.entries))
	copy(es, c.entries)

	return es
}

// Sort performs a stable in-place sort using the specified ordering. Equal
// entries keep their relative file order.
func (c *Collection) Sort(less Less) {
	sort.SliceStable(c.entries, func(i, j int) bool {
		return less(c.entries[i], c.entries[j])
	})
}

// Equals tests that the collection holds the same entries in the same order
// as the specified collection.
func (c *Collection) Equals(col *Collection) bool {
	if len(c.entries) != len(col.entries) {
		return false
	}

	for i := range c.entries {
		if !c.entries[i].Equals(col.entries[i]) {
			return false
		}
	}

	return true
}

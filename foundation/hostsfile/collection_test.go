package hostsfile

import (
	"net/netip"
	"testing"
)

func mustEntry(t *testing.T, addr string, host string, comment string) Entry {
	t.Helper()

	e, ok := NewEntry(addr, host, comment)
	if !ok {
		t.Fatalf("NewEntry(%q, %q): expected success", addr, host)
	}

	return e
}

func TestNewEntry(t *testing.T) {
	e := mustEntry(t, "192.0.2.1", "example.com", "note")
	if !e.Valid() {
		t.Fatal("entry should be valid")
	}

	if _, ok := NewEntry("not-an-ip", "example.com", ""); ok {
		t.Error("bad address should fail")
	}
	if _, ok := NewEntry("192.0.2.1", "bad host", ""); ok {
		t.Error("bad hostname should fail")
	}
}

func TestEntryValidity(t *testing.T) {
	e := mustEntry(t, "192.0.2.1", "example.com", "")

	// Validity is derived from the current field state, never cached.
	e.Host = ""
	if e.Valid() {
		t.Error("entry with cleared hostname should be invalid")
	}

	e.Host = "example.com"
	e.Addr = netip.Addr{}
	if e.Valid() {
		t.Error("entry with zero address should be invalid")
	}
}

func TestCollectionOrderAndSort(t *testing.T) {
	c := NewCollection()
	c.Append(mustEntry(t, "10.0.0.2", "bravo.example", ""))
	c.Append(mustEntry(t, "10.0.0.1", "charlie.example", "x"))
	c.Append(mustEntry(t, "10.0.0.1", "alpha.example", "y"))

	if c.Len() != 3 {
		t.Fatalf("Len = %d, expected 3", c.Len())
	}

	c.Sort(ByHostname())
	if c.At(0).Host != "alpha.example" || c.At(2).Host != "charlie.example" {
		t.Errorf("sort by hostname: got %v", c.Entries())
	}

	c.Sort(ByAddress())
	if c.At(2).Addr.String() != "10.0.0.2" {
		t.Errorf("sort by address: got %v", c.Entries())
	}

	// Stable sort keeps the relative order of equal addresses.
	if c.At(0).Host != "alpha.example" || c.At(1).Host != "charlie.example" {
		t.Errorf("sort by address should be stable: got %v", c.Entries())
	}
}

func TestCollectionMutation(t *testing.T) {
	c := NewCollection()
	c.Append(mustEntry(t, "10.0.0.1", "a.example", ""))
	c.Append(mustEntry(t, "10.0.0.2", "b.example", ""))

	c.Remove(0)
	if c.Len() != 1 || c.At(0).Host != "b.example" {
		t.Fatalf("remove: got %v", c.Entries())
	}

	e := c.At(0)
	e.Comment = "edited"
	c.Set(0, e)
	if c.At(0).Comment != "edited" {
		t.Error("set should replace the entry")
	}

	c.Clear()
	if c.Len() != 0 {
		t.Error("clear should drop all entries")
	}
}

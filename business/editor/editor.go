// Package editor orchestrates loading and saving the hosts file against an
// in-memory entry collection, applying the platform profile's header,
// loopback and encoding conventions.
package editor

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/hostsmith/hostsmith/foundation/hostsfile"
	"github.com/hostsmith/hostsmith/foundation/notify"
	"github.com/hostsmith/hostsmith/foundation/textenc"
)

// Set of error variables.
var (
	ErrNotExist = errors.New("hosts file does not exist")
)

// Loopback entries written by Restore on platforms that need them.
const (
	loopbackV4   = "127.0.0.1"
	loopbackV6   = "::1"
	loopbackName = "localhost"
)

// Op identifies which operation a change event announces.
type Op string

// Set of operations carried by change events.
const (
	OpLoad    Op = "load"
	OpRefresh Op = "refresh"
	OpSave    Op = "save"
	OpRestore Op = "restore"
	OpEdit    Op = "edit"
)

// Event describes one change to the editor's collection. Listeners register
// through Events; the core never couples to any UI observation mechanism.
type Event struct {
	Op      Op
	Entries int
}

// =============================================================================

// Editor represents the file manager for a single hosts file: the current
// path, the current encoding mode and the entry collection. One mutex
// serializes every file operation and mutation, so a Save can never start
// while a Load is in flight.
type Editor struct {
	log     *logrus.Logger
	profile Profile
	tmpl    Templates
	events  *notify.Notifier[Event]

	mu   sync.Mutex
	path string
	mode textenc.Mode
	col  *hostsfile.Collection
}

// New constructs an editor bound to the specified profile, starting at the
// profile's canonical path in legacy encoding with an empty collection.
func New(log *logrus.Logger, profile Profile, tmpl Templates) *Editor {
	return &Editor{
		log:     log,
		profile: profile,
		tmpl:    tmpl,
		events:  notify.New[Event](),
		path:    profile.Path,
		col:     hostsfile.NewCollection(),
	}
}

// Profile returns the platform profile the editor was constructed with.
func (e *Editor) Profile() Profile {
	return e.profile
}

// Events returns the notifier that announces collection changes.
func (e *Editor) Events() *notify.Notifier[Event] {
	return e.events
}

// Path returns the current file path.
func (e *Editor) Path() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.path
}

// SetPath points the editor at a different file without touching the
// collection.
func (e *Editor) SetPath(path string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.path = path
}

// Encoding returns the current encoding mode.
func (e *Editor) Encoding() textenc.Mode {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.mode
}

// SetEncoding switches between the legacy and Unicode encodings. This is a
// pure configuration change: loaded entries are untouched and only
// subsequent Load and Save calls are affected.
func (e *Editor) SetEncoding(m textenc.Mode) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.mode = m
}

// Entries returns a copy of the collection in its current order.
func (e *Editor) Entries() []hostsfile.Entry {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.col.Entries()
}

// =============================================================================

// Load reads the specified file and appends every line that yields a valid
// entry to the collection, in file order. Malformed lines are dropped
// silently: the hosts file is best-effort, partially trustworthy input. A
// missing file reports ErrNotExist; any other I/O or encoding failure is
// returned as is. Load does not clear the collection; use Refresh to reload.
func (e *Editor) Load(path string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.load(path, OpLoad)
}

// Refresh clears the collection and reloads it from the current file path,
// discarding any in-memory edits.
func (e *Editor) Refresh() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.col.Clear()

	return e.load(e.path, OpRefresh)
}

func (e *Editor) load(path string, op Op) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotExist, path)
		}
		return fmt.Errorf("os.Open: %w", err)
	}
	defer f.Close()

	r, err := e.profile.Codec(e.mode).Reader(f)
	if err != nil {
		return fmt.Errorf("codec.Reader: %w", err)
	}

	var kept, skipped int

	scn := bufio.NewScanner(r)
	for scn.Scan() {
		line, ok := hostsfile.ParseLine(scn.Text())
		if !ok {
			continue
		}

		ent, ok := hostsfile.NewEntry(line.Addr, line.Host, line.Comment)
		if !ok {
			skipped++
			continue
		}

		e.col.Append(ent)
		kept++
	}

	if err := scn.Err(); err != nil {
		return fmt.Errorf("scanner.Err: %w", err)
	}

	e.path = path

	if skipped > 0 {
		e.log.Debugf("editor: load: %s: skipped %d malformed lines", path, skipped)
	}
	e.log.Debugf("editor: load: %s: %d entries", path, kept)

	e.events.Broadcast(Event{Op: op, Entries: e.col.Len()})

	return nil
}

// Save serializes the collection to the specified file, completely replacing
// its contents. The platform header is written only when the profile calls
// for one and skipHeader is false. Entries that are not currently valid are
// excluded from the output without failing the save. The bytes are written
// to a uniquely named temp file and renamed into place, so a failed save
// never leaves a truncated destination.
func (e *Editor) Save(path string, skipHeader bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	var buf bytes.Buffer

	w, err := e.profile.Codec(e.mode).Writer(&buf)
	if err != nil {
		return fmt.Errorf("codec.Writer: %w", err)
	}

	if e.profile.NeedsHeader && !skipHeader {
		if _, err := io.WriteString(w, e.tmpl.Header+"\n\n"); err != nil {
			return fmt.Errorf("io.WriteString: %w", err)
		}
	}

	var written int
	for _, ent := range e.col.Entries() {
		if !ent.Valid() {
			continue
		}

		if _, err := io.WriteString(w, e.tmpl.Render(ent)+"\n"); err != nil {
			return fmt.Errorf("io.WriteString: %w", err)
		}
		written++
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("codec.Close: %w", err)
	}

	if err := writeAtomic(path, buf.Bytes()); err != nil {
		return err
	}

	e.log.Debugf("editor: save: %s: %d entries", path, written)

	e.events.Broadcast(Event{Op: OpSave, Entries: written})

	return nil
}

// Export writes the collection to an arbitrary file, always without the
// platform header.
func (e *Editor) Export(path string) error {
	return e.Save(path, true)
}

// Restore resets the collection to the platform default: empty, plus the
// IPv4 and IPv6 loopback entries on platforms whose resolver does not imply
// them. Restore never writes to disk; persisting the default state requires
// an explicit Save.
func (e *Editor) Restore() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.col.Clear()

	if e.profile.NeedsLoopback {
		v4, _ := hostsfile.NewEntry(loopbackV4, loopbackName, "")
		v6, _ := hostsfile.NewEntry(loopbackV6, loopbackName, "")
		e.col.Append(v4)
		e.col.Append(v6)
	}

	e.events.Broadcast(Event{Op: OpRestore, Entries: e.col.Len()})
}

// =============================================================================

// Add validates the specified values and appends a new entry.
func (e *Editor) Add(addr string, host string, comment string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	ent, ok := hostsfile.NewEntry(addr, host, comment)
	if !ok {
		return fmt.Errorf("invalid entry: %q %q", addr, host)
	}

	e.col.Append(ent)

	e.events.Broadcast(Event{Op: OpEdit, Entries: e.col.Len()})

	return nil
}

// Append adds the entry without validation. An editing surface may park an
// incomplete row here; invalid rows stay in memory and are skipped by Save.
func (e *Editor) Append(ent hostsfile.Entry) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.col.Append(ent)

	e.events.Broadcast(Event{Op: OpEdit, Entries: e.col.Len()})
}

// RemoveHost deletes every entry whose hostname matches, case
// insensitively, and returns how many were removed.
func (e *Editor) RemoveHost(host string) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	var removed int
	for i := e.col.Len() - 1; i >= 0; i-- {
		if strings.EqualFold(e.col.At(i).Host.String(), host) {
			e.col.Remove(i)
			removed++
		}
	}

	if removed > 0 {
		e.events.Broadcast(Event{Op: OpEdit, Entries: e.col.Len()})
	}

	return removed
}

// Sort stably reorders the collection for display. Sorting is view-level;
// nothing is persisted until the next Save.
func (e *Editor) Sort(less hostsfile.Less) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.col.Sort(less)

	e.events.Broadcast(Event{Op: OpEdit, Entries: e.col.Len()})
}

// =============================================================================

func writeAtomic(path string, bs []byte) error {
	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))

	if err := os.WriteFile(tmp, bs, 0o644); err != nil {
		return fmt.Errorf("os.WriteFile: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("os.Rename: %w", err)
	}

	return nil
}

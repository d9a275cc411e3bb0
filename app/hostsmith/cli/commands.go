package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/rodaine/table"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/hostsmith/hostsmith/business/editor"
	"github.com/hostsmith/hostsmith/foundation/backup"
	"github.com/hostsmith/hostsmith/foundation/config"
	"github.com/hostsmith/hostsmith/foundation/flush"
	"github.com/hostsmith/hostsmith/foundation/hostsfile"
	"github.com/hostsmith/hostsmith/foundation/textenc"
)

// newEditor builds the editor from the detected platform profile, the
// stored preferences, and any command line overrides, plus the backup store
// that guards writes to the current file.
func newEditor(log *logrus.Logger) (*editor.Editor, *backup.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("config.Load: %w", err)
	}

	profile := editor.DetectProfile()
	switch {
	case opts.File != "":
		profile.Path = opts.File
	case cfg.HostsFile != "":
		profile.Path = cfg.HostsFile
	}

	e := editor.New(log, profile, editor.DefaultTemplates())

	switch {
	case opts.Unicode:
		e.SetEncoding(textenc.Unicode)
	default:
		if m, ok := textenc.ParseMode(cfg.Encoding); ok {
			e.SetEncoding(m)
		}
	}

	dir := cfg.BackupDir
	if dir == "" {
		dir = filepath.Join(filepath.Dir(profile.Path), "hosts_backups")
	}

	return e, backup.NewStore(dir), nil
}

// loadCurrent loads the editor's current file, treating a missing file as
// an empty one so commands can start from scratch.
func loadCurrent(e *editor.Editor) error {
	if err := e.Load(e.Path()); err != nil {
		if errors.Is(err, editor.ErrNotExist) {
			return nil
		}
		return err
	}

	return nil
}

// save backs up the destination and writes the collection to it with the
// platform header policy applied.
func save(log *logrus.Logger, e *editor.Editor, store *backup.Store, path string) error {
	if _, err := store.Create(path); err != nil {
		log.Debugf("cli: save: no backup taken: %s", err)
	}

	if err := e.Save(path, false); err != nil {
		return fmt.Errorf("editor.Save: %w", err)
	}

	return nil
}

func upperHeaders() {
	table.DefaultHeaderFormatter = func(format string, vals ...interface{}) string {
		return strings.ToUpper(fmt.Sprintf(format, vals...))
	}
}

// =============================================================================

func list(log *logrus.Logger) error {
	e, _, err := newEditor(log)
	if err != nil {
		return err
	}

	if err := e.Load(e.Path()); err != nil {
		return err
	}

	switch opts.List.Sort {
	case "address":
		e.Sort(hostsfile.ByAddress())
	case "hostname":
		e.Sort(hostsfile.ByHostname())
	case "comment":
		e.Sort(hostsfile.ByComment())
	}

	upperHeaders()

	tbl := table.New("Address", "Hostname", "Comment")
	for _, ent := range e.Entries() {
		tbl.AddRow(ent.Addr, ent.Host, ent.Comment)
	}
	tbl.Print()

	return nil
}

func add(log *logrus.Logger) error {
	e, store, err := newEditor(log)
	if err != nil {
		return err
	}

	if err := loadCurrent(e); err != nil {
		return err
	}

	if err := e.Add(opts.Add.IP, opts.Add.Host, opts.Add.Comment); err != nil {
		return err
	}

	if err := save(log, e, store, e.Path()); err != nil {
		return err
	}

	log.Infof("cli: add: %s -> %s", opts.Add.Host, opts.Add.IP)

	return nil
}

func remove(log *logrus.Logger) error {
	e, store, err := newEditor(log)
	if err != nil {
		return err
	}

	if err := e.Load(e.Path()); err != nil {
		return err
	}

	n := e.RemoveHost(opts.Remove.Host)
	if n == 0 {
		return fmt.Errorf("host not found: %s", opts.Remove.Host)
	}

	if err := save(log, e, store, e.Path()); err != nil {
		return err
	}

	log.Infof("cli: remove: %s: %d entries", opts.Remove.Host, n)

	return nil
}

func importFile(log *logrus.Logger) error {
	e, store, err := newEditor(log)
	if err != nil {
		return err
	}

	target := e.Path()

	if err := loadCurrent(e); err != nil {
		return err
	}

	before := len(e.Entries())

	// A bare Load appends, which is exactly what import wants.
	if err := e.Load(opts.Import.Fname); err != nil {
		return err
	}

	if err := save(log, e, store, target); err != nil {
		return err
	}
	e.SetPath(target)

	log.Infof("cli: import: %s: %d entries added", opts.Import.Fname, len(e.Entries())-before)

	return nil
}

func exportFile(log *logrus.Logger) error {
	e, _, err := newEditor(log)
	if err != nil {
		return err
	}

	if err := e.Load(e.Path()); err != nil {
		return err
	}

	if err := e.Export(opts.Export.Fname); err != nil {
		return fmt.Errorf("editor.Export: %w", err)
	}

	log.Infof("cli: export: %s: %d entries", opts.Export.Fname, len(e.Entries()))

	return nil
}

func restore(log *logrus.Logger) error {
	e, store, err := newEditor(log)
	if err != nil {
		return err
	}

	e.Restore()

	if !opts.Restore.Write {
		log.Infof("cli: restore: %d default entries staged, re-run with -w to write", len(e.Entries()))
		return nil
	}

	if err := save(log, e, store, e.Path()); err != nil {
		return err
	}

	log.Infof("cli: restore: defaults written to %s", e.Path())

	return nil
}

// =============================================================================

func backupCreate(log *logrus.Logger) error {
	e, store, err := newEditor(log)
	if err != nil {
		return err
	}

	info, err := store.Create(e.Path())
	if err != nil {
		return fmt.Errorf("store.Create: %w", err)
	}

	log.Infof("cli: backup: %s (%s)", info.Name, humanize.Bytes(uint64(info.Size)))

	return nil
}

func backupLs(log *logrus.Logger) error {
	_, store, err := newEditor(log)
	if err != nil {
		return err
	}

	infos, err := store.List()
	if err != nil {
		return fmt.Errorf("store.List: %w", err)
	}

	upperHeaders()

	tbl := table.New("Name", "Size", "Age", "Digest")
	for _, info := range infos {
		tbl.AddRow(info.Name, humanize.Bytes(uint64(info.Size)), humanize.Time(info.Modified), info.Digest)
	}
	tbl.Print()

	return nil
}

func backupRestore(log *logrus.Logger) error {
	e, store, err := newEditor(log)
	if err != nil {
		return err
	}

	if err := store.Restore(opts.Backup.Restore.Name, e.Path()); err != nil {
		return fmt.Errorf("store.Restore: %w", err)
	}

	log.Infof("cli: backup: restored %s over %s", opts.Backup.Restore.Name, e.Path())

	return nil
}

// =============================================================================

func configGet() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	bs, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("yaml.Marshal: %w", err)
	}

	fmt.Printf("# %s\n", cfg.Source)
	_, _ = os.Stdout.Write(bs)

	return nil
}

func configSet(log *logrus.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	key, value := opts.Config.Set.Key, opts.Config.Set.Value

	switch key {
	case "file":
		cfg.HostsFile = value
	case "encoding":
		if _, ok := textenc.ParseMode(value); !ok {
			return fmt.Errorf("unknown encoding: %s", value)
		}
		cfg.Encoding = value
	case "backup-dir":
		cfg.BackupDir = value
	default:
		return fmt.Errorf("unknown preference: %s", key)
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("cfg.Save: %w", err)
	}

	log.Infof("cli: config: %s = %s", key, value)

	return nil
}

func flushDNS(log *logrus.Logger) error {
	if err := flush.DNS(); err != nil {
		return fmt.Errorf("flush.DNS: %w", err)
	}

	log.Infof("cli: flush: resolver cache cleared")

	return nil
}

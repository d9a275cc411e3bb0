// Package backup manages timestamped copies of the hosts file so any write
// can be undone.
package backup

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"golang.org/x/crypto/blake2b"
)

// prefix names every backup file; the remainder is the creation timestamp.
const prefix = "hosts.bak."

// Info describes a single backup on disk.
type Info struct {
	Name     string
	Size     int64
	Modified time.Time
	Digest   string
}

// Store represents a directory of hosts file backups.
type Store struct {
	dir string
}

// NewStore constructs a store rooted at the specified directory. The
// directory is created lazily on the first Create call.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the directory the store writes into.
func (s *Store) Dir() string {
	return s.dir
}

// Create copies the specified source file into the store under a
// timestamped name and returns its description.
func (s *Store) Create(src string) (Info, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return Info{}, fmt.Errorf("os.MkdirAll: %w", err)
	}

	name := prefix + time.Now().Format("20060102-150405")
	dst := filepath.Join(s.dir, name)

	if err := copyFile(src, dst); err != nil {
		return Info{}, err
	}

	return s.info(name)
}

// List returns the known backups, newest first. A missing backup directory
// yields an empty list, not an error.
func (s *Store) List() ([]Info, error) {
	files, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Info{}, nil
		}
		return nil, fmt.Errorf("os.ReadDir: %w", err)
	}

	var infos []Info
	for _, file := range files {
		if !strings.HasPrefix(file.Name(), prefix) {
			continue
		}

		info, err := s.info(file.Name())
		if err != nil {
			continue
		}

		infos = append(infos, info)
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Modified.After(infos[j].Modified)
	})

	return infos, nil
}

// Restore copies the named backup over the specified destination file.
func (s *Store) Restore(name string, dst string) error {
	src := name
	if !filepath.IsAbs(name) {
		src = filepath.Join(s.dir, name)
	}

	return copyFile(src, dst)
}

// =============================================================================

func (s *Store) info(name string) (Info, error) {
	path := filepath.Join(s.dir, name)

	st, err := os.Stat(path)
	if err != nil {
		return Info{}, fmt.Errorf("os.Stat: %w", err)
	}

	bs, err := os.ReadFile(path)
	if err != nil {
		return Info{}, fmt.Errorf("os.ReadFile: %w", err)
	}

	sum := blake2b.Sum256(bs)

	return Info{
		Name:     name,
		Size:     st.Size(),
		Modified: st.ModTime(),
		Digest:   hex.EncodeToString(sum[:8]),
	}, nil
}

func copyFile(src string, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("os.Open: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("os.Create: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("io.Copy: %w", err)
	}

	return nil
}

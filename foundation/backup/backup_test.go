package backup

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCreateListRestore(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "hosts")

	content := []byte("127.0.0.1 localhost\n10.0.0.1 host.example #lab\n")
	if err := os.WriteFile(src, content, 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewStore(filepath.Join(dir, "backups"))

	info, err := s.Create(src)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if info.Size != int64(len(content)) || info.Digest == "" {
		t.Errorf("unexpected info: %+v", info)
	}

	infos, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(infos) != 1 || infos[0].Name != info.Name {
		t.Fatalf("List: got %+v", infos)
	}

	// Clobber the source, then restore the backup over it.
	if err := os.WriteFile(src, []byte("garbage"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := s.Restore(info.Name, src); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	got, err := os.ReadFile(src)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(content) {
		t.Errorf("restore mismatch: %q", got)
	}
}

func TestListMissingDir(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "never-created"))

	infos, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(infos) != 0 {
		t.Errorf("expected empty list, got %+v", infos)
	}
}

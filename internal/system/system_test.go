package system

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestExists(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, "odbcinst.ini")
	if err := os.WriteFile(present, []byte("[Driver]\n"), 0644); err != nil {
		t.Fatal(err)
	}

	s := NewSystem()

	ok, err := s.Exists(present)
	if err != nil || !ok {
		t.Fatalf("expected: true, got: %v (%v)", ok, err)
	}

	ok, err = s.Exists(filepath.Join(dir, "missing.ini"))
	if err != nil || ok {
		t.Fatalf("expected: false, got: %v (%v)", ok, err)
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := NewSystem().ReadFile(filepath.Join(t.TempDir(), "missing.ini"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got: %v", err)
	}
}

func TestWriteFileCreatesParents(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "Library", "ODBC", "odbcinst.ini")

	if err := NewSystem().WriteFile(dest, []byte("[Driver]\nA = 1\n")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	contents, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if string(contents) != "[Driver]\nA = 1\n" {
		t.Fatalf("expected: %q, got: %q", "[Driver]\nA = 1\n", contents)
	}
}

func TestWriteFileKeepsPermissions(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "odbcinst.ini")
	if err := os.WriteFile(dest, []byte("old"), 0600); err != nil {
		t.Fatal(err)
	}
	// The umask may have narrowed the initial mode.
	if err := os.Chmod(dest, 0600); err != nil {
		t.Fatal(err)
	}

	if err := NewSystem().WriteFile(dest, []byte("new")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	info, err := os.Stat(dest)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0600 {
		t.Fatalf("expected: %v, got: %v", fs.FileMode(0600), info.Mode().Perm())
	}
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "odbcinst.ini")
	dst := filepath.Join(dir, "odbcinst.ini.bak")
	if err := os.WriteFile(src, []byte("[Driver]\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := NewSystem().CopyFile(src, dst); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	contents, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(contents) != "[Driver]\n" {
		t.Fatalf("expected: %q, got: %q", "[Driver]\n", contents)
	}
}

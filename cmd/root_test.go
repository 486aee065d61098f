package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRootCommandRegisterAndUnregister(t *testing.T) {
	resourceDir := t.TempDir()
	baseDir := t.TempDir()

	source := filepath.Join(resourceDir, "Contents", "Resources", "odbcinst.ini")
	if err := os.MkdirAll(filepath.Dir(source), 0755); err != nil {
		t.Fatal(err)
	}
	bundled := "[ODBC Drivers]\nSQLite3 ODBC Driver = Installed\n\n[SQLite3 ODBC Driver]\nDriver = /usr/local/lib/libsqlite3odbc.dylib\n"
	if err := os.WriteFile(source, []byte(bundled), 0644); err != nil {
		t.Fatal(err)
	}

	dest := filepath.Join(baseDir, "Library", "ODBC", "odbcinst.ini")
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(dest, []byte("[PostgreSQL]\nDriver = /usr/lib/psqlodbcw.so\n"), 0644); err != nil {
		t.Fatal(err)
	}

	rootCmd.SetArgs([]string{resourceDir, baseDir})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	written, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range []string{"[PostgreSQL]", "[SQLite3 ODBC Driver]", "Driver = /usr/local/lib/libsqlite3odbc.dylib"} {
		if !strings.Contains(string(written), s) {
			t.Fatalf("expected merged file to contain %q, got: %q", s, written)
		}
	}

	rootCmd.SetArgs([]string{"unregister", resourceDir, baseDir})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	written, err = os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(written), "SQLite3") {
		t.Fatalf("expected driver to be removed, got: %q", written)
	}
	if !strings.Contains(string(written), "[PostgreSQL]") {
		t.Fatalf("expected other drivers to be kept, got: %q", written)
	}
}

func TestRootCommandRequiresTwoArguments(t *testing.T) {
	rootCmd.SetArgs([]string{t.TempDir()})
	if err := rootCmd.Execute(); err == nil {
		t.Fatalf("expected an error, got nil")
	}
}

func TestVersionString(t *testing.T) {
	defer func(v, c string) { version, commit = v, c }(version, commit)

	version, commit = "v0.9.0", "abc123"
	if got := versionString(); got != "v0.9.0 (abc123)" {
		t.Fatalf("expected: %v, got: %v", "v0.9.0 (abc123)", got)
	}

	// Test binaries carry no module version, so the default is kept.
	version, commit = "dev", "abc123"
	if got := versionString(); !strings.HasPrefix(got, "dev (") {
		t.Fatalf("expected version to start with 'dev (', got: %v", got)
	}
}

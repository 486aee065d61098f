package system

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// defaultFileMode is applied to files that do not exist yet.
const defaultFileMode fs.FileMode = 0644

// NewSystem constructs a new filesystem worker.
func NewSystem() *System {
	return &System{}
}

// System represents a struct that reads and writes files on the host.
type System struct{}

// Exists reports whether a file is present at the given path.
func (s *System) Exists(filePath string) (bool, error) {
	_, err := os.Stat(filePath)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat '%s': %w", filePath, err)
}

// ReadFile takes a path and reads the content from the specified file.
func (s *System) ReadFile(filePath string) ([]byte, error) {
	if _, err := os.Stat(filePath); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("file '%s' does not exist: %w", filePath, err)
	}
	return os.ReadFile(filePath)
}

// WriteFile atomically replaces the file at the given path. An existing file keeps its
// permissions, a new file is created with mode 0644.
func (s *System) WriteFile(filePath string, contents []byte) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory '%s': %w", dir, err)
	}

	return writeAtomic(filePath, contents, renameio.WithPermissions(defaultFileMode), renameio.WithExistingPermissions())
}

// CopyFile copies the file at src to dst, keeping its permissions.
func (s *System) CopyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("failed to stat '%s': %w", src, err)
	}

	contents, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("failed to read '%s': %w", src, err)
	}

	if err := writeAtomic(dst, contents, renameio.WithPermissions(info.Mode().Perm())); err != nil {
		return err
	}

	slog.Debug("File copied", "src", src, "dst", dst)
	return nil
}

// writeAtomic writes via a temporary file in the same directory which is synced and
// renamed over the destination, so readers never see a partially written file.
func writeAtomic(filePath string, contents []byte, opts ...renameio.Option) error {
	pending, err := renameio.NewPendingFile(filePath, opts...)
	if err != nil {
		return fmt.Errorf("failed to create temporary file for '%s': %w", filePath, err)
	}
	defer func() {
		if err := pending.Cleanup(); err != nil {
			slog.Debug("Failed to clean up temporary file", "path", filePath, "error", err)
		}
	}()

	if _, err := pending.Write(contents); err != nil {
		return fmt.Errorf("failed to write file '%s': %w", filePath, err)
	}

	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("failed to replace file '%s': %w", filePath, err)
	}

	slog.Debug("File written", "path", filePath, "bytes", len(contents))
	return nil
}

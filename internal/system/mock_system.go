package system

import (
	"fmt"
	"io/fs"
)

// NewMockSystem constructs a new mock filesystem worker.
func NewMockSystem() *MockSystem {
	return &MockSystem{
		CreatedFiles: map[string]string{},
		mockFiles:    map[string][]byte{},
		mockErrors:   map[string]error{},
	}
}

// MockSystem represents a struct that can emulate reading and writing files.
type MockSystem struct {
	CreatedFiles map[string]string
	CopiedFiles  [][2]string

	mockFiles  map[string][]byte
	mockErrors map[string]error
}

// MockFile sets a faked expected file contents for a given file.
func (r *MockSystem) MockFile(filePath string, contents []byte) {
	r.mockFiles[filePath] = contents
}

// MockError makes every operation on the given path fail with err.
func (r *MockSystem) MockError(filePath string, err error) {
	r.mockErrors[filePath] = err
}

// Exists reports whether a file was mocked or created at the given path.
func (r *MockSystem) Exists(filePath string) (bool, error) {
	if err, ok := r.mockErrors[filePath]; ok {
		return false, err
	}
	_, ok := r.mockFiles[filePath]
	return ok, nil
}

// ReadFile takes a path and reads the content from the specified file.
func (r *MockSystem) ReadFile(filePath string) ([]byte, error) {
	if err, ok := r.mockErrors[filePath]; ok {
		return nil, err
	}
	val, ok := r.mockFiles[filePath]
	if !ok {
		return nil, fmt.Errorf("file '%s' does not exist: %w", filePath, fs.ErrNotExist)
	}
	return val, nil
}

// WriteFile records the contents written to a file, and makes them visible to
// subsequent reads.
func (r *MockSystem) WriteFile(filePath string, contents []byte) error {
	if err, ok := r.mockErrors[filePath]; ok {
		return err
	}
	r.CreatedFiles[filePath] = string(contents)
	r.mockFiles[filePath] = contents
	return nil
}

// CopyFile records the copy and duplicates the mocked contents.
func (r *MockSystem) CopyFile(src, dst string) error {
	contents, err := r.ReadFile(src)
	if err != nil {
		return err
	}
	if err := r.WriteFile(dst, contents); err != nil {
		return err
	}
	r.CopiedFiles = append(r.CopiedFiles, [2]string{src, dst})
	return nil
}

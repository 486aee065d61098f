package system

// Worker is an interface for a struct that can read and write configuration files on the
// underlying system.
type Worker interface {
	// Exists reports whether a file is present at the given path.
	Exists(filePath string) (bool, error)
	// ReadFile takes a path and reads the content from the specified file.
	ReadFile(filePath string) ([]byte, error)
	// WriteFile replaces the file at the given path with the specified contents, creating
	// parent directories where required.
	WriteFile(filePath string, contents []byte) error
	// CopyFile copies the file at src to dst, keeping its permissions.
	CopyFile(src, dst string) error
}

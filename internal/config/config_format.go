package config

import (
	"path/filepath"

	"github.com/sqliteodbc/registerdriver/internal/odbcinst"
)

// Config represents the resolved settings for one registerdriver run.
type Config struct {
	// Positional arguments
	ResourceDir string `yaml:"resource-dir"`
	BaseDir     string `yaml:"base-dir"`

	SourcePath      string              `yaml:"source-path"`
	DestinationPath string              `yaml:"destination-path"`
	Prefer          odbcinst.Precedence `yaml:"prefer"`
	Backup          bool                `yaml:"backup"`
	DryRun          bool                `yaml:"dry-run"`
	Report          string              `yaml:"report,omitempty"`

	Verbose bool `yaml:"-"`
	Trace   bool `yaml:"-"`
}

// Source returns the path of the odbcinst.ini bundled with the installer.
func (c *Config) Source() string {
	return filepath.Join(c.ResourceDir, c.SourcePath)
}

// Destination returns the path of the system odbcinst.ini.
func (c *Config) Destination() string {
	return filepath.Join(c.BaseDir, c.DestinationPath)
}

// BackupPath returns the path the installed file is copied to before being replaced.
func (c *Config) BackupPath() string {
	return c.Destination() + ".bak"
}

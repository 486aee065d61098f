// Package registrar registers and unregisters the bundled ODBC driver configuration in
// the system odbcinst.ini.
package registrar

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/sqliteodbc/registerdriver/internal/config"
	"github.com/sqliteodbc/registerdriver/internal/odbcinst"
	"github.com/sqliteodbc/registerdriver/internal/system"
	"gopkg.in/ini.v1"
)

const (
	RegisterAction   = "register"
	UnregisterAction = "unregister"
)

// NewManager constructs a new instance of the registration manager.
func NewManager(conf *config.Config, worker system.Worker) *Manager {
	return &Manager{
		Out:    os.Stdout,
		config: conf,
		system: worker,
	}
}

// Manager is a construct for controlling a single registration run.
type Manager struct {
	// Out receives dry-run output, trace summaries and reports written to '-'.
	Out io.Writer

	config *config.Config
	system system.Worker
}

// Register merges the bundled driver configuration into the installed odbcinst.ini.
func (m *Manager) Register() error {
	return m.execute(RegisterAction)
}

// Unregister removes the bundled driver configuration from the installed odbcinst.ini.
func (m *Manager) Unregister() error {
	return m.execute(UnregisterAction)
}

// execute loads both files, computes the new installed file for the given action and
// writes it. Nothing is written until both files have been parsed successfully.
func (m *Manager) execute(action string) error {
	bundled, err := m.loadBundled()
	if err != nil {
		return err
	}

	installed, exists, err := m.loadInstalled()
	if err != nil {
		return err
	}

	var result *ini.File
	switch action {
	case RegisterAction:
		result, err = odbcinst.Merge(installed, bundled, m.config.Prefer)
		if err != nil {
			return fmt.Errorf("failed to merge driver configuration: %w", err)
		}
	case UnregisterAction:
		if !exists {
			slog.Info("No installed configuration found, nothing to unregister", "path", m.config.Destination())
			return nil
		}
		result, err = odbcinst.Remove(installed, bundled)
		if err != nil {
			return fmt.Errorf("failed to remove driver configuration: %w", err)
		}
	default:
		return fmt.Errorf("unknown action: %s", action)
	}

	changes := odbcinst.Diff(installed, result)
	m.logChanges(changes)

	rendered, err := odbcinst.Render(result)
	if err != nil {
		return err
	}

	switch {
	case m.config.DryRun:
		slog.Info("Dry run, not writing configuration", "path", m.config.Destination())
		if _, err := m.Out.Write(rendered); err != nil {
			return err
		}
	case exists && len(changes) == 0:
		slog.Info("Configuration already up to date", "path", m.config.Destination())
	default:
		if err := m.write(rendered, exists); err != nil {
			return err
		}
	}

	// Written last: a report never lists changes that were not applied.
	return m.writeReport(action, changes)
}

// loadBundled reads and parses the odbcinst.ini shipped with the installer.
func (m *Manager) loadBundled() (*ini.File, error) {
	path := m.config.Source()

	contents, err := m.system.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bundled configuration: %w", err)
	}

	f, err := odbcinst.Parse(contents)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bundled configuration '%s': %w", path, err)
	}

	slog.Debug("Loaded bundled configuration", "path", path, "sections", len(f.Sections()))
	return f, nil
}

// loadInstalled reads and parses the system odbcinst.ini. A missing file is treated
// as an empty configuration.
func (m *Manager) loadInstalled() (*ini.File, bool, error) {
	path := m.config.Destination()

	exists, err := m.system.Exists(path)
	if err != nil {
		return nil, false, fmt.Errorf("failed to check installed configuration: %w", err)
	}
	if !exists {
		slog.Debug("No installed configuration found", "path", path)
		return odbcinst.Empty(), false, nil
	}

	contents, err := m.system.ReadFile(path)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read installed configuration: %w", err)
	}

	f, err := odbcinst.Parse(contents)
	if err != nil {
		return nil, false, fmt.Errorf("failed to parse installed configuration '%s': %w", path, err)
	}

	slog.Debug("Loaded installed configuration", "path", path, "sections", len(f.Sections()))
	return f, true, nil
}

// write replaces the installed configuration, taking a backup first when requested.
func (m *Manager) write(contents []byte, exists bool) error {
	dest := m.config.Destination()

	if m.config.Backup && exists {
		if err := m.system.CopyFile(dest, m.config.BackupPath()); err != nil {
			return fmt.Errorf("failed to back up installed configuration: %w", err)
		}
		slog.Info("Backed up installed configuration", "path", m.config.BackupPath())
	}

	if err := m.system.WriteFile(dest, contents); err != nil {
		return fmt.Errorf("failed to write configuration: %w", err)
	}

	slog.Info("Configuration written", "path", dest)
	return nil
}

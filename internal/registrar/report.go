package registrar

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/fatih/color"
	"github.com/sqliteodbc/registerdriver/internal/odbcinst"
	"gopkg.in/yaml.v3"
)

// Report is the document written by `--report`.
type Report struct {
	Action      string            `yaml:"action"`
	Source      string            `yaml:"source"`
	Destination string            `yaml:"destination"`
	Prefer      string            `yaml:"prefer,omitempty"`
	DryRun      bool              `yaml:"dry-run"`
	Changes     []odbcinst.Change `yaml:"changes"`
}

// logChanges logs each change and prints the trace summary when enabled.
func (m *Manager) logChanges(changes []odbcinst.Change) {
	for _, c := range changes {
		slog.Info("Configuration change", "change", c.Kind, "section", c.Section, "key", c.Key, "old", c.Old, "new", c.New)
	}

	if m.config.Trace {
		fmt.Fprint(m.Out, generateChangeMessage(m.config.Destination(), changes))
	}
}

// writeReport writes the YAML report where configured.
func (m *Manager) writeReport(action string, changes []odbcinst.Change) error {
	if len(m.config.Report) == 0 {
		return nil
	}

	r := Report{
		Action:      action,
		Source:      m.config.Source(),
		Destination: m.config.Destination(),
		DryRun:      m.config.DryRun,
		Changes:     changes,
	}
	if action == RegisterAction {
		r.Prefer = string(m.config.Prefer)
	}

	b, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal report as yaml: %w", err)
	}

	if m.config.Report == "-" {
		_, err := m.Out.Write(b)
		return err
	}

	if err := m.system.WriteFile(m.config.Report, b); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	slog.Debug("Report written", "path", m.config.Report)
	return nil
}

// generateChangeMessage creates a formatted summary of the changes made to a
// configuration file when registerdriver is run with `--trace`.
func generateChangeMessage(path string, changes []odbcinst.Change) string {
	green := color.New(color.FgGreen, color.Bold, color.Underline)
	bold := color.New(color.Bold)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s %s\n", green.Sprintf("Configuration:"), bold.Sprint(path)))

	if len(changes) == 0 {
		sb.WriteString("  no changes\n")
		return sb.String()
	}

	added := color.New(color.FgGreen)
	changed := color.New(color.FgYellow)
	removed := color.New(color.FgRed)

	for _, c := range changes {
		switch c.Kind {
		case odbcinst.KeyAdded:
			sb.WriteString(added.Sprintf("  + [%s] %s = %s", c.Section, c.Key, c.New))
		case odbcinst.KeyChanged:
			sb.WriteString(changed.Sprintf("  ~ [%s] %s = %s (was %s)", c.Section, c.Key, c.New, c.Old))
		case odbcinst.KeyRemoved:
			sb.WriteString(removed.Sprintf("  - [%s] %s = %s", c.Section, c.Key, c.Old))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

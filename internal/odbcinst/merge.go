package odbcinst

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/ini.v1"
)

// ErrInvalidPrecedence is returned when a precedence name is not recognised.
var ErrInvalidPrecedence = errors.New("invalid merge precedence")

// Precedence decides which file wins when both define the same key in the same section.
type Precedence string

const (
	// PreferBundled overlays the bundled file onto the installed one, so the newly
	// installed driver's values replace existing ones.
	PreferBundled Precedence = "bundled"
	// PreferInstalled overlays the installed file onto the bundled one, so values
	// already on the system are kept and the bundled section order leads.
	PreferInstalled Precedence = "installed"
)

// ParsePrecedence converts a user supplied name into a Precedence.
func ParsePrecedence(s string) (Precedence, error) {
	switch p := Precedence(strings.ToLower(strings.TrimSpace(s))); p {
	case PreferBundled, PreferInstalled:
		return p, nil
	case "":
		return PreferBundled, nil
	default:
		return "", fmt.Errorf("%w: '%s' (expected '%s' or '%s')", ErrInvalidPrecedence, s, PreferBundled, PreferInstalled)
	}
}

// Merge combines the installed and bundled files into a new file containing every
// section and key of both. Neither input is modified.
func Merge(installed, bundled *ini.File, prefer Precedence) (*ini.File, error) {
	base, overlay := installed, bundled
	if prefer == PreferInstalled {
		base, overlay = bundled, installed
	}

	result, err := Clone(base)
	if err != nil {
		return nil, err
	}

	if err := Overlay(result, overlay); err != nil {
		return nil, err
	}

	return result, nil
}

// Overlay copies every section and key of src into dst. Keys already present in dst
// take the value from src; everything else is appended in src order.
func Overlay(dst, src *ini.File) error {
	for _, sec := range src.Sections() {
		target := dst.Section(sec.Name())
		if target.Comment == "" {
			target.Comment = sec.Comment
		}

		for _, key := range sec.Keys() {
			if target.HasKey(key.Name()) {
				existing := target.Key(key.Name())
				existing.SetValue(key.Value())
				if key.Comment != "" {
					existing.Comment = key.Comment
				}
				continue
			}

			k, err := target.NewKey(key.Name(), key.Value())
			if err != nil {
				return fmt.Errorf("failed to add key '%s' to section '%s': %w", key.Name(), sec.Name(), err)
			}
			k.Comment = key.Comment
		}
	}

	return nil
}

// Remove returns a copy of installed without the keys declared in bundled. Sections
// left without keys are dropped.
func Remove(installed, bundled *ini.File) (*ini.File, error) {
	result, err := Clone(installed)
	if err != nil {
		return nil, err
	}

	for _, sec := range bundled.Sections() {
		target, err := result.GetSection(sec.Name())
		if err != nil {
			continue
		}

		for _, name := range sec.KeyStrings() {
			target.DeleteKey(name)
		}

		if len(target.Keys()) == 0 && sec.Name() != ini.DefaultSection {
			result.DeleteSection(sec.Name())
		}
	}

	return result, nil
}

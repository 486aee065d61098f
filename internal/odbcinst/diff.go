package odbcinst

import "gopkg.in/ini.v1"

// ChangeKind describes what happened to a single key.
type ChangeKind string

const (
	KeyAdded   ChangeKind = "added"
	KeyChanged ChangeKind = "changed"
	KeyRemoved ChangeKind = "removed"
)

// Change is a difference in one key between two versions of a configuration file.
type Change struct {
	Kind    ChangeKind `yaml:"kind"`
	Section string     `yaml:"section"`
	Key     string     `yaml:"key"`
	Old     string     `yaml:"old,omitempty"`
	New     string     `yaml:"new,omitempty"`
}

// Diff lists the key level changes needed to turn before into after. Additions and
// modifications come first in after's order, followed by removals in before's order.
func Diff(before, after *ini.File) []Change {
	changes := []Change{}

	for _, sec := range after.Sections() {
		prev, _ := before.GetSection(sec.Name())
		for _, key := range sec.Keys() {
			if prev == nil || !prev.HasKey(key.Name()) {
				changes = append(changes, Change{Kind: KeyAdded, Section: sec.Name(), Key: key.Name(), New: key.Value()})
				continue
			}

			if old := prev.Key(key.Name()).Value(); old != key.Value() {
				changes = append(changes, Change{Kind: KeyChanged, Section: sec.Name(), Key: key.Name(), Old: old, New: key.Value()})
			}
		}
	}

	for _, sec := range before.Sections() {
		next, _ := after.GetSection(sec.Name())
		for _, key := range sec.Keys() {
			if next == nil || !next.HasKey(key.Name()) {
				changes = append(changes, Change{Kind: KeyRemoved, Section: sec.Name(), Key: key.Name(), Old: key.Value()})
			}
		}
	}

	return changes
}

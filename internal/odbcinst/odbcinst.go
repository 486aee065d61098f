// Package odbcinst loads, merges and renders odbcinst.ini style configuration files.
//
// Files are held as ordered *ini.File values so that section order, key order and
// comments survive a round trip through the merge.
package odbcinst

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/ini.v1"
)

// ErrParse is returned when a configuration file is not valid INI text.
var ErrParse = errors.New("malformed ini data")

// loadOptions keeps values verbatim: driver paths may contain characters that
// would otherwise be treated as inline comments, quoting or line continuations.
var loadOptions = ini.LoadOptions{
	KeyValueDelimiters:      "=",
	IgnoreInlineComment:     true,
	IgnoreContinuation:      true,
	PreserveSurroundedQuote: true,
}

func init() {
	// Write `key = value` without column alignment, the layout odbcinst.ini files use.
	ini.PrettyFormat = false
	ini.PrettyEqual = true
}

// Parse reads INI text into an ordered configuration file.
func Parse(data []byte) (*ini.File, error) {
	f, err := ini.LoadSources(loadOptions, protectValues(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return f, nil
}

// Empty returns a configuration file with no sections.
func Empty() *ini.File {
	return ini.Empty(loadOptions)
}

// Render serialises a configuration file back into INI text.
func Render(f *ini.File) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to render ini data: %w", err)
	}
	return restoreValues(buf.Bytes()), nil
}

// Clone returns a deep copy of f.
func Clone(f *ini.File) (*ini.File, error) {
	data, err := Render(f)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

package odbcinst

import "strings"

// ini.v1 always strips a leading backtick or triple quote from a value, even with
// PreserveSurroundedQuote, and an unterminated one swallows the following lines. On
// write it wraps any value containing a backtick in triple quotes. protectValues and
// restoreValues undo both so values round trip exactly as written in the file.
//
// Multi-line triple-quoted values are not supported: the opening line is taken
// as-is and the following lines are parsed on their own.

const tripleQuote = `"""`

// protectValues wraps values starting with a backtick or triple quote in one extra
// layer of triple quotes, which the parser then removes.
func protectValues(data []byte) []byte {
	lines := strings.SplitAfter(string(data), "\n")
	for i, line := range lines {
		body := strings.TrimRight(line, "\r\n")
		idx, ok := valueIndex(body)
		if !ok {
			continue
		}

		value := strings.TrimSpace(body[idx:])
		if strings.HasPrefix(value, "`") || strings.HasPrefix(value, tripleQuote) {
			lines[i] = body[:idx] + " " + tripleQuote + value + tripleQuote + line[len(body):]
		}
	}
	return []byte(strings.Join(lines, ""))
}

// restoreValues removes the triple quotes the writer adds around values that contain
// a backtick.
func restoreValues(data []byte) []byte {
	lines := strings.SplitAfter(string(data), "\n")
	for i, line := range lines {
		body := strings.TrimRight(line, "\r\n")
		idx, ok := valueIndex(body)
		if !ok {
			continue
		}

		value := strings.TrimSpace(body[idx:])
		if len(value) < 2*len(tripleQuote) || !strings.HasPrefix(value, tripleQuote) || !strings.HasSuffix(value, tripleQuote) {
			continue
		}

		inner := value[len(tripleQuote) : len(value)-len(tripleQuote)]
		if strings.Contains(inner, "`") {
			lines[i] = body[:idx] + " " + inner + line[len(body):]
		}
	}
	return []byte(strings.Join(lines, ""))
}

// valueIndex returns the offset just past the delimiter of a key line. Blank lines,
// comments, section headers and quoted key names are skipped.
func valueIndex(line string) (int, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.ContainsRune(";#[\"`", rune(trimmed[0])) {
		return 0, false
	}

	idx := strings.IndexByte(line, '=')
	if idx < 0 {
		return 0, false
	}
	return idx + 1, true
}

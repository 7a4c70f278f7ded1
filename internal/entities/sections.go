package entities

import (
	"regexp"
	"strings"
	"unicode"
)

var entrySplitRe = regexp.MustCompile(`\n{2,}`)

// isolateSection locates a named block by header-line matching: a line equal
// to or starting with one of the aliases (case-insensitive) opens the block,
// and any subsequent line that looks like a new header closes it. Returns ""
// when no alias line exists.
func (e *Extractor) isolateSection(text, name string) string {
	aliases := e.rules.sectionAliases[name]
	if len(aliases) == 0 {
		return ""
	}

	lines := strings.Split(text, "\n")
	start := -1
	for i, line := range lines {
		if matchesAlias(line, aliases) {
			start = i + 1
			break
		}
	}
	if start == -1 {
		return ""
	}

	var block []string
	for _, line := range lines[start:] {
		if looksLikeHeader(line) {
			break
		}
		block = append(block, line)
	}
	return strings.TrimSpace(strings.Join(block, "\n"))
}

// splitEntries breaks an isolated section into entries on blank-line runs,
// discarding fragments too short to be a real entry.
func (e *Extractor) splitEntries(section string) []string {
	var entries []string
	for _, part := range entrySplitRe.Split(section, -1) {
		part = strings.TrimSpace(part)
		if len(part) >= e.rules.minEntryLen {
			entries = append(entries, part)
		}
	}
	return entries
}

func matchesAlias(line string, aliases []string) bool {
	normalized := strings.ToLower(strings.TrimSpace(strings.TrimRight(strings.TrimSpace(line), ":")))
	for _, alias := range aliases {
		if normalized == alias || strings.HasPrefix(normalized, alias+" ") {
			return true
		}
	}
	return false
}

// looksLikeHeader reports whether a line opens a new section: entirely
// uppercase letters, or ending with a colon.
func looksLikeHeader(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if strings.HasSuffix(trimmed, ":") {
		return true
	}

	hasLetter := false
	for _, r := range trimmed {
		if unicode.IsLetter(r) {
			hasLetter = true
			if unicode.IsLower(r) {
				return false
			}
		}
	}
	return hasLetter
}

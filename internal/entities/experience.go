package entities

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	titleAtCompanyRe   = regexp.MustCompile(`^(.{2,}?)\s+at\s+(.{2,})$`)
	titleDashCompanyRe = regexp.MustCompile(`^(.{2,}?)\s+[-–]\s+(.{2,})$`)
)

func (e *Extractor) extractWorkExperience(text string) []WorkExperience {
	section := e.isolateSection(text, "experience")
	if section == "" {
		return nil
	}

	var entries []WorkExperience
	for _, raw := range e.splitEntries(section) {
		entries = append(entries, e.parseWorkEntry(raw))
	}
	return entries
}

// parseWorkEntry reads one entry block. The first two lines are probed for
// "<title> at <company>" and "<title> - <company>" shapes; failing both, the
// first non-date line becomes the title and the next one the company.
// Unresolved fields get the Unknown sentinel so the scorer can tell "entry
// found, fields unclear" from "no entry found".
func (e *Extractor) parseWorkEntry(raw string) WorkExperience {
	lines := splitLines(raw)
	consumed := map[int]bool{}

	title, company := "", ""

	probe := len(lines)
	if probe > 2 {
		probe = 2
	}
	for i := 0; i < probe; i++ {
		line := lines[i]
		if m := titleAtCompanyRe.FindStringSubmatch(line); m != nil {
			title, company = strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
			consumed[i] = true
			break
		}
		if m := titleDashCompanyRe.FindStringSubmatch(line); m != nil && !e.isDateLine(line) {
			title, company = strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
			consumed[i] = true
			break
		}
	}

	if title == "" && company == "" {
		for i := 0; i < probe; i++ {
			if e.isDateLine(lines[i]) {
				continue
			}
			if title == "" {
				title = lines[i]
				consumed[i] = true
				continue
			}
			company = lines[i]
			consumed[i] = true
			break
		}
	}

	entry := WorkExperience{
		Company: company,
		Title:   title,
		Current: e.rules.current.MatchString(raw),
	}

	dates := e.rules.date.FindAllString(raw, -1)
	if len(dates) > 0 {
		entry.StartDate = dates[0]
	}
	if len(dates) > 1 && !entry.Current {
		entry.EndDate = dates[1]
	}

	var desc []string
	for i, line := range lines {
		if !consumed[i] {
			desc = append(desc, line)
		}
	}
	entry.Description = strings.Join(desc, "\n")

	if entry.Company == "" {
		entry.Company = Unknown
		entry.Partial = true
	}
	if entry.Title == "" {
		entry.Title = Unknown
		entry.Partial = true
	}
	return entry
}

// isDateLine reports whether a line is only dates, date separators and
// current-role markers.
func (e *Extractor) isDateLine(line string) bool {
	if !e.rules.date.MatchString(line) && !e.rules.current.MatchString(line) {
		return false
	}
	stripped := e.rules.date.ReplaceAllString(line, "")
	stripped = e.rules.current.ReplaceAllString(stripped, "")
	for _, r := range stripped {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func splitLines(raw string) []string {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

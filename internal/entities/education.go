package entities

import "strings"

var institutionMarkers = []string{"university", "college", "institute", "school"}

func (e *Extractor) extractEducation(text string) []Education {
	section := e.isolateSection(text, "education")
	if section == "" {
		return nil
	}

	var entries []Education
	for _, raw := range e.splitEntries(section) {
		if entry, ok := e.parseEducationEntry(raw); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

// parseEducationEntry reads one entry block. The institution is the anchor
// field: the first line naming a university/college/institute/school, else
// the first non-empty line. An entry with no resolvable institution is
// dropped entirely rather than sentinel-filled.
func (e *Extractor) parseEducationEntry(raw string) (Education, bool) {
	lines := splitLines(raw)
	if len(lines) == 0 {
		return Education{}, false
	}

	institution := ""
	for _, line := range lines {
		lower := strings.ToLower(line)
		for _, marker := range institutionMarkers {
			if strings.Contains(lower, marker) {
				institution = line
				break
			}
		}
		if institution != "" {
			break
		}
	}
	if institution == "" {
		institution = lines[0]
	}
	if strings.TrimSpace(institution) == "" {
		return Education{}, false
	}

	entry := Education{Institution: institution}

	if m := e.rules.degree.FindStringSubmatch(raw); m != nil {
		entry.Degree = strings.TrimSpace(m[1])
		if len(m) > 2 {
			entry.Field = strings.TrimSpace(m[2])
		}
	}

	if m := e.rules.gpa.FindStringSubmatch(raw); m != nil {
		entry.GPA = m[1]
	}

	dates := e.rules.date.FindAllString(raw, -1)
	if len(dates) > 0 {
		entry.StartDate = dates[0]
	}
	if len(dates) > 1 {
		entry.EndDate = dates[1]
	}

	return entry, true
}

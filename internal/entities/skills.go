package entities

import "unicode/utf8"

// extractSkills matches the text against the skills taxonomy using
// word-boundary, case-insensitive matching. An isolated skills section is
// preferred when present, otherwise the whole document is scanned. The
// result is deduplicated and keeps taxonomy order.
func (e *Extractor) extractSkills(text string) []string {
	scope := e.isolateSection(text, "skills")
	if scope == "" {
		scope = text
	}

	var found []string
	for i, matcher := range e.rules.skillMatchers {
		if matcher.MatchString(scope) {
			found = append(found, e.rules.skillsTaxonomy[i])
		}
	}
	return found
}

// extractCertifications matches a small fixed pattern list within an
// isolated certifications section. The list is intentionally minimal;
// coverage is not expanded without a taxonomy change.
func (e *Extractor) extractCertifications(text string) []Certification {
	section := e.isolateSection(text, "certifications")
	if section == "" {
		return nil
	}

	var certs []Certification
	seen := map[string]struct{}{}
	for _, matcher := range e.rules.certMatchers {
		for _, m := range matcher.FindAllString(section, -1) {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			certs = append(certs, Certification{Name: m})
		}
	}
	return certs
}

// extractSummary isolates a summary/profile/objective/about section and
// truncates it to the configured length.
func (e *Extractor) extractSummary(text string) string {
	section := e.isolateSection(text, "summary")
	if section == "" {
		return ""
	}
	if len(section) > e.rules.summaryMaxLen {
		// Back up to a rune boundary so the cut never leaves invalid UTF-8.
		cut := e.rules.summaryMaxLen
		for cut > 0 && !utf8.RuneStart(section[cut]) {
			cut--
		}
		section = section[:cut]
	}
	return section
}

package entities

import (
	"strings"
	"unicode"
)

func (e *Extractor) extractPersonalInfo(text string) PersonalInfo {
	info := PersonalInfo{
		Email:        e.extractEmail(text),
		Phone:        e.extractPhone(text),
		LinkedInURL:  e.extractLinkedIn(text),
		GitHubURL:    e.extractGitHub(text),
		PortfolioURL: e.extractPortfolio(text),
		Location:     e.extractLocation(text),
	}
	info.FirstName, info.LastName = e.extractName(text)
	return info
}

// extractEmail returns the first email-shaped match in the text.
func (e *Extractor) extractEmail(text string) string {
	return e.rules.email.FindString(text)
}

// extractPhone returns the first phone-shaped match with inner whitespace
// collapsed to single spaces.
func (e *Extractor) extractPhone(text string) string {
	m := e.rules.phone.FindString(text)
	if m == "" {
		return ""
	}
	return strings.Join(strings.Fields(m), " ")
}

func (e *Extractor) extractLinkedIn(text string) string {
	return e.rules.linkedIn.FindString(text)
}

func (e *Extractor) extractGitHub(text string) string {
	return e.rules.gitHub.FindString(text)
}

// extractPortfolio scans generic URL-like tokens and returns the first one
// whose host is not a known social or platform domain.
func (e *Extractor) extractPortfolio(text string) string {
	for _, m := range e.rules.url.FindAllString(text, -1) {
		candidate := strings.TrimRight(m, ".,;)")
		lower := strings.ToLower(candidate)
		excluded := false
		for _, domain := range e.rules.excludedDomains {
			if strings.Contains(lower, domain) {
				excluded = true
				break
			}
		}
		if !excluded {
			return candidate
		}
	}
	return ""
}

// extractName inspects the first few lines only. Lines carrying an email, a
// phone number or a URL are skipped; the first line that tokenizes into 2-4
// words with at least two capitalized becomes the name, taking the first and
// last capitalized tokens.
func (e *Extractor) extractName(text string) (first, last string) {
	lines := strings.Split(text, "\n")
	limit := e.rules.nameScanLines
	if limit > len(lines) {
		limit = len(lines)
	}

	for _, line := range lines[:limit] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.Contains(line, "@") || strings.Contains(line, "http") || e.rules.phone.MatchString(line) {
			continue
		}

		tokens := strings.Fields(line)
		if len(tokens) < 2 || len(tokens) > 4 {
			continue
		}

		var capitalized []string
		for _, tok := range tokens {
			if isCapitalized(tok) {
				capitalized = append(capitalized, tok)
			}
		}
		if len(capitalized) < 2 {
			continue
		}
		return capitalized[0], capitalized[len(capitalized)-1]
	}
	return "", ""
}

// extractLocation matches a "City, ST" shape anywhere in the text. The
// country is hardcoded to USA by this heuristic; kept as-is, a known
// limitation for non-US résumés.
func (e *Extractor) extractLocation(text string) *Location {
	m := e.rules.location.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	return &Location{City: m[1], State: m[2], Country: "USA"}
}

func isCapitalized(tok string) bool {
	for _, r := range tok {
		return unicode.IsUpper(r)
	}
	return false
}

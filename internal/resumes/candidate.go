package resumes

// maxCandidateTags caps the number of skill tags carried onto a candidate.
const maxCandidateTags = 10

// CandidateOverrides are caller-supplied values that fill fields the parsed
// data left empty. Parsed values always win over overrides. SourceType,
// Consent, and Metadata have no parsed counterpart and always come from the
// caller; override metadata never shadows a parsed key.
type CandidateOverrides struct {
	FirstName  string         `json:"firstName,omitempty"`
	LastName   string         `json:"lastName,omitempty"`
	Email      string         `json:"email,omitempty"`
	Phone      string         `json:"phone,omitempty"`
	Company    string         `json:"company,omitempty"`
	Title      string         `json:"title,omitempty"`
	SourceType string         `json:"sourceType,omitempty"`
	Consent    bool           `json:"consent,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// CandidatePayload is the flat candidate-record shape downstream systems
// ingest. Metadata preserves the full structured parse so nothing is lost in
// the flattening.
type CandidatePayload struct {
	FirstName  string         `json:"firstName,omitempty"`
	LastName   string         `json:"lastName,omitempty"`
	Email      string         `json:"email,omitempty"`
	Phone      string         `json:"phone,omitempty"`
	Company    string         `json:"company,omitempty"`
	Title      string         `json:"title,omitempty"`
	SourceType string         `json:"sourceType,omitempty"`
	Consent    bool           `json:"consent"`
	Tags       []string       `json:"tags"`
	Metadata   map[string]any `json:"metadata"`
}

// MapToCandidatePayload flattens a parsed résumé into a candidate payload.
// The most relevant work entry is the current one, falling back to the first.
// Pure: same inputs, same payload.
func MapToCandidatePayload(parsed ParsedResume, o CandidateOverrides) CandidatePayload {
	p := CandidatePayload{
		FirstName: coalesce(parsed.PersonalInfo.FirstName, o.FirstName),
		LastName:  coalesce(parsed.PersonalInfo.LastName, o.LastName),
		Email:     coalesce(parsed.PersonalInfo.Email, o.Email),
		Phone:     coalesce(parsed.PersonalInfo.Phone, o.Phone),
	}

	var company, title string
	for _, entry := range parsed.WorkExperience {
		if entry.Current {
			company, title = entry.Company, entry.Title
			break
		}
	}
	if company == "" && title == "" && len(parsed.WorkExperience) > 0 {
		company = parsed.WorkExperience[0].Company
		title = parsed.WorkExperience[0].Title
	}
	p.Company = coalesce(company, o.Company)
	p.Title = coalesce(title, o.Title)

	p.Tags = append([]string{}, parsed.Skills...)
	if len(p.Tags) > maxCandidateTags {
		p.Tags = p.Tags[:maxCandidateTags]
	}

	p.SourceType = o.SourceType
	p.Consent = o.Consent

	p.Metadata = map[string]any{}
	for k, v := range o.Metadata {
		p.Metadata[k] = v
	}
	for k, v := range map[string]any{
		"personalInfo":      parsed.PersonalInfo,
		"workExperience":    parsed.WorkExperience,
		"education":         parsed.Education,
		"skills":            parsed.Skills,
		"certifications":    parsed.Certifications,
		"summary":           parsed.Summary,
		"confidence":        parsed.Confidence,
		"needsManualReview": parsed.NeedsManualReview,
	} {
		p.Metadata[k] = v
	}

	return p
}

func coalesce(parsed, override string) string {
	if parsed != "" {
		return parsed
	}
	return override
}

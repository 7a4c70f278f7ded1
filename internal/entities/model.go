package entities

// Unknown is the sentinel for a work entry field that could not be resolved
// even though an entry boundary was detected. It deliberately differs from an
// absent entry: the scorer treats sentinel-filled entries as weak signal, not
// as missing data.
const Unknown = "Unknown"

// Location is a best-effort parsed location. Country is hardcoded to "USA" by
// the City, ST heuristic; a known accuracy gap for non-US résumés.
type Location struct {
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
}

// PersonalInfo holds contact details. Every field is best effort; absence is
// valid and never an error.
type PersonalInfo struct {
	Email        string    `json:"email,omitempty"`
	FirstName    string    `json:"firstName,omitempty"`
	LastName     string    `json:"lastName,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	LinkedInURL  string    `json:"linkedinUrl,omitempty"`
	GitHubURL    string    `json:"githubUrl,omitempty"`
	PortfolioURL string    `json:"portfolioUrl,omitempty"`
	Location     *Location `json:"location,omitempty"`
}

// WorkExperience is one detected work history entry. Partial marks entries
// whose boundary was found but whose company or title fell back to Unknown.
type WorkExperience struct {
	Company     string `json:"company"`
	Title       string `json:"title"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
	Partial     bool   `json:"partial,omitempty"`
}

// Education is one education entry. Institution is the anchor field; entries
// without one are discarded during extraction rather than sentinel-filled.
type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree,omitempty"`
	Field       string `json:"field,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	GPA         string `json:"gpa,omitempty"`
}

// Certification is a recognized certification name.
type Certification struct {
	Name string `json:"name"`
}

// Resume is the structured output of entity extraction. All fields are
// optional; the zero value is the worst-case result of Extract.
type Resume struct {
	PersonalInfo   PersonalInfo     `json:"personalInfo"`
	WorkExperience []WorkExperience `json:"workExperience"`
	Education      []Education      `json:"education"`
	Skills         []string         `json:"skills"`
	Certifications []Certification  `json:"certifications"`
	Summary        string           `json:"summary,omitempty"`
}

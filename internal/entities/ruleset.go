package entities

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
)

// Config is the JSON-loadable form of the extraction rules. Zero-valued
// fields fall back to the corresponding DefaultConfig value, so an override
// file only needs to name what it changes.
type Config struct {
	EmailPattern     string              `json:"emailPattern,omitempty"`
	PhonePattern     string              `json:"phonePattern,omitempty"`
	LinkedInPattern  string              `json:"linkedinPattern,omitempty"`
	GitHubPattern    string              `json:"githubPattern,omitempty"`
	URLPattern       string              `json:"urlPattern,omitempty"`
	ExcludedDomains  []string            `json:"excludedDomains,omitempty"`
	LocationPattern  string              `json:"locationPattern,omitempty"`
	DatePattern      string              `json:"datePattern,omitempty"`
	CurrentPattern   string              `json:"currentPattern,omitempty"`
	DegreePattern    string              `json:"degreePattern,omitempty"`
	GPAPattern       string              `json:"gpaPattern,omitempty"`
	SectionAliases   map[string][]string `json:"sectionAliases,omitempty"`
	SkillsTaxonomy   []string            `json:"skillsTaxonomy,omitempty"`
	CertPatterns     []string            `json:"certificationPatterns,omitempty"`
	NameScanLines    int                 `json:"nameScanLines,omitempty"`
	SummaryMaxLength int                 `json:"summaryMaxLength,omitempty"`
	MinEntryLength   int                 `json:"minEntryLength,omitempty"`
}

// DefaultConfig returns the built-in extraction rules.
func DefaultConfig() Config {
	return Config{
		EmailPattern:    `[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`,
		PhonePattern:    `(?:\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`,
		LinkedInPattern: `(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[A-Za-z0-9_\-]+`,
		GitHubPattern:   `(?i)(?:https?://)?(?:www\.)?github\.com/[A-Za-z0-9_\-]+`,
		URLPattern:      `(?i)(?:https?://|www\.)[^\s]+`,
		ExcludedDomains: []string{"linkedin.", "github.", "google.", "facebook."},
		LocationPattern: `([A-Z][a-zA-Z]+(?: [A-Z][a-zA-Z]+)*), ?([A-Z]{2})\b`,
		DatePattern:     `(?i)\b(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{4}\b|\b\d{1,2}/\d{4}\b|\b(?:19|20)\d{2}\b`,
		CurrentPattern:  `(?i)\b(?:present|current|now)\b`,
		DegreePattern:   `(?i)\b(Bachelor(?:'s)?(?: of [A-Za-z]+)?|Master(?:'s)?(?: of [A-Za-z]+)?|Ph\.?D\.?|Doctor of [A-Za-z]+|Associate(?:'s)?(?: of [A-Za-z]+)?)\b(?:\s+in\s+([A-Za-z][A-Za-z ]*[A-Za-z]))?`,
		GPAPattern:      `(?i)\bGPA:?\s*([0-4](?:\.\d{1,2})?)\b`,
		SectionAliases: map[string][]string{
			"experience":     {"experience", "work history", "employment", "professional experience"},
			"education":      {"education", "academic background", "academics"},
			"skills":         {"skills", "technical skills", "technologies", "core competencies"},
			"certifications": {"certifications", "certificates", "licenses"},
			"summary":        {"summary", "professional summary", "profile", "objective", "about"},
		},
		SkillsTaxonomy: []string{
			// Programming languages.
			"JavaScript", "TypeScript", "Python", "Java", "C++", "C#", "Go", "Rust",
			"Ruby", "PHP", "Swift", "Kotlin", "Scala",
			// Web.
			"React", "Angular", "Vue", "Next.js", "HTML", "CSS", "Sass", "Redux",
			// Backend.
			"Node.js", "Express", "Django", "Flask", "Spring", "Rails", "Laravel",
			"GraphQL", "REST", "gRPC", "Microservices",
			// Cloud and infrastructure.
			"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Terraform", "Jenkins",
			"CI/CD", "Git", "Linux",
			// Data and ML.
			"SQL", "PostgreSQL", "MySQL", "MongoDB", "Redis", "Elasticsearch",
			"Kafka", "Spark", "Hadoop", "Pandas", "NumPy", "TensorFlow", "PyTorch",
			"Machine Learning",
			// Methodologies.
			"Agile", "Scrum", "Kanban", "TDD", "DevOps",
			// Mobile.
			"iOS", "Android", "React Native", "Flutter",
		},
		CertPatterns: []string{
			`AWS Certified [A-Za-z][A-Za-z \-]*`,
			`\bPMP\b`,
			`\bCISSP\b`,
			`CompTIA [A-Za-z+]+`,
			`Certified Scrum ?Master|\bCSM\b`,
			`Google Cloud (?:Professional|Certified)[A-Za-z ]*`,
			`Microsoft Certified[A-Za-z: ]*`,
			`\bCKAD?\b`,
		},
		NameScanLines:    5,
		SummaryMaxLength: 500,
		MinEntryLength:   20,
	}
}

// Ruleset is a compiled Config, passed to the Extractor at construction time
// so the heuristics can be tuned without touching the algorithm code.
type Ruleset struct {
	email           *regexp.Regexp
	phone           *regexp.Regexp
	linkedIn        *regexp.Regexp
	gitHub          *regexp.Regexp
	url             *regexp.Regexp
	excludedDomains []string
	location        *regexp.Regexp
	date            *regexp.Regexp
	current         *regexp.Regexp
	degree          *regexp.Regexp
	gpa             *regexp.Regexp
	sectionAliases  map[string][]string
	skillsTaxonomy  []string
	skillMatchers   []*regexp.Regexp
	certMatchers    []*regexp.Regexp
	nameScanLines   int
	summaryMaxLen   int
	minEntryLen     int
}

// NewRuleset compiles cfg, filling unset fields from DefaultConfig.
func NewRuleset(cfg Config) (*Ruleset, error) {
	cfg = mergeDefaults(cfg)

	rs := &Ruleset{
		excludedDomains: cfg.ExcludedDomains,
		sectionAliases:  cfg.SectionAliases,
		skillsTaxonomy:  cfg.SkillsTaxonomy,
		nameScanLines:   cfg.NameScanLines,
		summaryMaxLen:   cfg.SummaryMaxLength,
		minEntryLen:     cfg.MinEntryLength,
	}

	var err error
	compile := func(name, pattern string) *regexp.Regexp {
		if err != nil {
			return nil
		}
		re, cerr := regexp.Compile(pattern)
		if cerr != nil {
			err = fmt.Errorf("compile %s pattern: %w", name, cerr)
		}
		return re
	}

	rs.email = compile("email", cfg.EmailPattern)
	rs.phone = compile("phone", cfg.PhonePattern)
	rs.linkedIn = compile("linkedin", cfg.LinkedInPattern)
	rs.gitHub = compile("github", cfg.GitHubPattern)
	rs.url = compile("url", cfg.URLPattern)
	rs.location = compile("location", cfg.LocationPattern)
	rs.date = compile("date", cfg.DatePattern)
	rs.current = compile("current", cfg.CurrentPattern)
	rs.degree = compile("degree", cfg.DegreePattern)
	rs.gpa = compile("gpa", cfg.GPAPattern)
	if err != nil {
		return nil, err
	}

	for _, term := range cfg.SkillsTaxonomy {
		re, cerr := regexp.Compile(`(?i)(?:^|[^a-zA-Z0-9])` + regexp.QuoteMeta(term) + `(?:$|[^a-zA-Z0-9])`)
		if cerr != nil {
			return nil, fmt.Errorf("compile skill term %q: %w", term, cerr)
		}
		rs.skillMatchers = append(rs.skillMatchers, re)
	}

	for _, pattern := range cfg.CertPatterns {
		re, cerr := regexp.Compile(pattern)
		if cerr != nil {
			return nil, fmt.Errorf("compile certification pattern %q: %w", pattern, cerr)
		}
		rs.certMatchers = append(rs.certMatchers, re)
	}

	return rs, nil
}

// DefaultRuleset compiles the built-in rules. It panics only if the embedded
// defaults are themselves invalid, which is a programming error.
func DefaultRuleset() *Ruleset {
	rs, err := NewRuleset(DefaultConfig())
	if err != nil {
		panic(err)
	}
	return rs
}

// LoadConfig reads a JSON ruleset override from disk and overlays it on the
// defaults.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read ruleset %s: %w", path, err)
	}
	var cfg Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse ruleset %s: %w", path, err)
	}
	return mergeDefaults(cfg), nil
}

func mergeDefaults(cfg Config) Config {
	def := DefaultConfig()
	if cfg.EmailPattern == "" {
		cfg.EmailPattern = def.EmailPattern
	}
	if cfg.PhonePattern == "" {
		cfg.PhonePattern = def.PhonePattern
	}
	if cfg.LinkedInPattern == "" {
		cfg.LinkedInPattern = def.LinkedInPattern
	}
	if cfg.GitHubPattern == "" {
		cfg.GitHubPattern = def.GitHubPattern
	}
	if cfg.URLPattern == "" {
		cfg.URLPattern = def.URLPattern
	}
	if len(cfg.ExcludedDomains) == 0 {
		cfg.ExcludedDomains = def.ExcludedDomains
	}
	if cfg.LocationPattern == "" {
		cfg.LocationPattern = def.LocationPattern
	}
	if cfg.DatePattern == "" {
		cfg.DatePattern = def.DatePattern
	}
	if cfg.CurrentPattern == "" {
		cfg.CurrentPattern = def.CurrentPattern
	}
	if cfg.DegreePattern == "" {
		cfg.DegreePattern = def.DegreePattern
	}
	if cfg.GPAPattern == "" {
		cfg.GPAPattern = def.GPAPattern
	}
	if len(cfg.SectionAliases) == 0 {
		cfg.SectionAliases = def.SectionAliases
	}
	if len(cfg.SkillsTaxonomy) == 0 {
		cfg.SkillsTaxonomy = def.SkillsTaxonomy
	}
	if len(cfg.CertPatterns) == 0 {
		cfg.CertPatterns = def.CertPatterns
	}
	if cfg.NameScanLines <= 0 {
		cfg.NameScanLines = def.NameScanLines
	}
	if cfg.SummaryMaxLength <= 0 {
		cfg.SummaryMaxLength = def.SummaryMaxLength
	}
	if cfg.MinEntryLength <= 0 {
		cfg.MinEntryLength = def.MinEntryLength
	}
	return cfg
}

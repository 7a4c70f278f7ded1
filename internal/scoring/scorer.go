package scoring

import (
	"math"
	"regexp"

	"hireflow-backend/internal/entities"
)

// Confidence holds the per-section and overall trust scores, each in [0,1]
// and rounded to two decimals.
type Confidence struct {
	Overall        float64 `json:"overall"`
	PersonalInfo   float64 `json:"personalInfo"`
	WorkExperience float64 `json:"workExperience"`
	Education      float64 `json:"education"`
	Skills         float64 `json:"skills"`
}

// Scorer computes confidence scores for extracted résumé data. It is a pure
// function of its policy: the same input always yields the same scores.
type Scorer struct {
	policy      Policy
	emailFormat *regexp.Regexp
}

var strictEmailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9\-]+(?:\.[a-zA-Z0-9\-]+)*\.[a-zA-Z]{2,}$`)

// NewScorer constructs a Scorer with the given policy.
func NewScorer(policy Policy) *Scorer {
	return &Scorer{policy: policy, emailFormat: strictEmailRe}
}

// Score computes per-section scores and their weighted overall.
func (s *Scorer) Score(resume entities.Resume) Confidence {
	c := Confidence{
		PersonalInfo:   round2(s.scorePersonalInfo(resume.PersonalInfo)),
		WorkExperience: round2(s.scoreWorkExperience(resume.WorkExperience)),
		Education:      round2(s.scoreEducation(resume.Education)),
		Skills:         round2(s.scoreSkills(resume.Skills)),
	}
	w := s.policy.Weights
	c.Overall = round2(w.PersonalInfo*c.PersonalInfo +
		w.WorkExperience*c.WorkExperience +
		w.Education*c.Education +
		w.Skills*c.Skills)
	return c
}

// NeedsReview applies the review policy: a low overall score, or a critical
// section (personal info, work experience) below its floor.
func (s *Scorer) NeedsReview(c Confidence) bool {
	r := s.policy.Review
	return c.Overall < r.Overall ||
		c.PersonalInfo < r.PersonalInfo ||
		c.WorkExperience < r.WorkExperience
}

// scorePersonalInfo scores against a point budget: email 30 (+5 for a strict
// format match), full name 30 / partial 15, phone 20, location 10,
// LinkedIn 10, out of a 105-point maximum.
func (s *Scorer) scorePersonalInfo(info entities.PersonalInfo) float64 {
	const maxPoints = 105.0

	points := 0.0
	if info.Email != "" {
		points += 30
		if s.emailFormat.MatchString(info.Email) {
			points += 5
		}
	}
	switch {
	case info.FirstName != "" && info.LastName != "":
		points += 30
	case info.FirstName != "" || info.LastName != "":
		points += 15
	}
	if info.Phone != "" {
		points += 20
	}
	if info.Location != nil {
		points += 10
	}
	if info.LinkedInURL != "" {
		points += 10
	}
	return points / maxPoints
}

// scoreWorkExperience averages per-entry scores and adds a small volume
// bonus. An empty list scores a fixed 0.3: absent work history is plausible
// for entry-level candidates, not an extraction failure.
func (s *Scorer) scoreWorkExperience(entries []entities.WorkExperience) float64 {
	if len(entries) == 0 {
		return 0.3
	}

	total := 0.0
	for _, entry := range entries {
		points := 0.0
		if entry.Company != "" && entry.Company != entities.Unknown {
			points += 30
		}
		if entry.Title != "" && entry.Title != entities.Unknown {
			points += 30
		}
		if entry.StartDate != "" {
			points += 15
		}
		if entry.EndDate != "" || entry.Current {
			points += 10
		}
		if len(entry.Description) > 50 {
			points += 15
		} else {
			points += 7
		}
		total += points / 100.0
	}

	score := total/float64(len(entries)) + math.Min(float64(len(entries))*0.05, 0.15)
	return math.Min(score, 1.0)
}

// scoreEducation averages per-entry scores. An empty list scores a fixed
// 0.5: education is not universally required.
func (s *Scorer) scoreEducation(entries []entities.Education) float64 {
	if len(entries) == 0 {
		return 0.5
	}

	total := 0.0
	for _, entry := range entries {
		points := 0.0
		if entry.Institution != "" {
			points += 40
		}
		if entry.Degree != "" {
			points += 30
		}
		if entry.Field != "" {
			points += 20
		}
		if entry.StartDate != "" || entry.EndDate != "" {
			points += 10
		}
		total += points / 100.0
	}
	return total / float64(len(entries))
}

// scoreSkills maps the recognized-skill count onto fixed tiers.
func (s *Scorer) scoreSkills(skills []string) float64 {
	n := len(skills)
	switch {
	case n == 0:
		return 0.2
	case n >= 9:
		return 1.0
	case n >= 4:
		return 0.6 + float64(n-4)*0.08
	default:
		return 0.2 + float64(n)*0.13
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

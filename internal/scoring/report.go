package scoring

import (
	"fmt"

	"hireflow-backend/internal/entities"
)

// Report is a human-readable quality summary derived from a parsed résumé
// and its confidence scores. It is purely descriptive and never fed back
// into the pipeline.
type Report struct {
	Issues      []string `json:"issues"`
	Suggestions []string `json:"suggestions"`
	Strengths   []string `json:"strengths"`
}

// Report applies a fixed rule list in a fixed order: personal info, work
// experience, education, skills, then overall. Same input, same report.
func (s *Scorer) Report(resume entities.Resume, c Confidence) Report {
	r := Report{
		Issues:      []string{},
		Suggestions: []string{},
		Strengths:   []string{},
	}

	// Personal info.
	if resume.PersonalInfo.Email == "" {
		r.Issues = append(r.Issues, "No email address could be extracted")
		r.Suggestions = append(r.Suggestions, "Verify the resume lists a contact email address")
	} else {
		r.Strengths = append(r.Strengths, "Contact email detected")
	}
	if resume.PersonalInfo.FirstName == "" && resume.PersonalInfo.LastName == "" {
		r.Issues = append(r.Issues, "Candidate name could not be identified")
	} else {
		r.Strengths = append(r.Strengths, "Candidate name identified")
	}
	if resume.PersonalInfo.Phone == "" {
		r.Suggestions = append(r.Suggestions, "No phone number found; confirm contact details manually")
	}

	// Work experience.
	if len(resume.WorkExperience) == 0 {
		r.Issues = append(r.Issues, "No work experience entries found")
		r.Suggestions = append(r.Suggestions, "Check whether the resume uses an unusual experience section heading")
	} else {
		r.Strengths = append(r.Strengths, fmt.Sprintf("%d work experience entries extracted", len(resume.WorkExperience)))
		for _, entry := range resume.WorkExperience {
			if entry.Partial {
				r.Suggestions = append(r.Suggestions, "Some work entries are missing a company or title")
				break
			}
		}
	}

	// Education.
	if len(resume.Education) == 0 {
		r.Suggestions = append(r.Suggestions, "No education entries found")
	} else {
		r.Strengths = append(r.Strengths, fmt.Sprintf("%d education entries extracted", len(resume.Education)))
	}

	// Skills.
	if len(resume.Skills) == 0 {
		r.Issues = append(r.Issues, "No recognized skills found")
		r.Suggestions = append(r.Suggestions, "Skills may be phrased outside the recognized taxonomy")
	} else {
		r.Strengths = append(r.Strengths, fmt.Sprintf("%d skills recognized", len(resume.Skills)))
	}

	// Overall.
	if c.Overall < 0.5 {
		r.Issues = append(r.Issues, "Overall extraction confidence is low; manual review recommended")
	}

	return r
}

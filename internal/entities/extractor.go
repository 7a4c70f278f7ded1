package entities

import "golang.org/x/sync/errgroup"

// Extractor derives structured candidate data from plain résumé text. It is
// stateless aside from its compiled ruleset and safe for concurrent use.
type Extractor struct {
	rules *Ruleset
}

// NewExtractor constructs an Extractor with the given ruleset.
func NewExtractor(rules *Ruleset) *Extractor {
	if rules == nil {
		rules = DefaultRuleset()
	}
	return &Extractor{rules: rules}
}

// Extract runs every sub-extraction over the text and merges the results.
// It never fails: each heuristic degrades to absent or sentinel values, so
// the worst case is an all-empty Resume. The four independent groups run
// concurrently; each writes a distinct field set, so the merge is
// deterministic.
func (e *Extractor) Extract(text string) Resume {
	var (
		personal PersonalInfo
		work     []WorkExperience
		edu      []Education
		skills   []string
		certs    []Certification
		summary  string
	)

	g := new(errgroup.Group)
	g.Go(func() error {
		personal = e.extractPersonalInfo(text)
		return nil
	})
	g.Go(func() error {
		work = e.extractWorkExperience(text)
		return nil
	})
	g.Go(func() error {
		edu = e.extractEducation(text)
		return nil
	})
	g.Go(func() error {
		skills = e.extractSkills(text)
		certs = e.extractCertifications(text)
		summary = e.extractSummary(text)
		return nil
	})
	_ = g.Wait() // sub-extractions never return errors

	return Resume{
		PersonalInfo:   personal,
		WorkExperience: work,
		Education:      edu,
		Skills:         skills,
		Certifications: certs,
		Summary:        summary,
	}
}

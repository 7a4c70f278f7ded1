package entities

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const sampleResume = "Jane Doe\njane.doe@example.com\n555-123-4567\nEXPERIENCE\nSenior Engineer at Acme Corp\nJan 2020 - Present\nBuilt backend systems...\nEDUCATION\nState University\nBachelor of Science in Computer Science\n2016-2020\nSKILLS\nPython, React, AWS, Docker"

func TestExtractMergesAllSubExtractions(t *testing.T) {
	e := newTestExtractor(t)
	resume := e.Extract(sampleResume)

	if resume.PersonalInfo.Email != "jane.doe@example.com" {
		t.Fatalf("email = %q", resume.PersonalInfo.Email)
	}
	if resume.PersonalInfo.FirstName != "Jane" || resume.PersonalInfo.LastName != "Doe" {
		t.Fatalf("name = %q %q", resume.PersonalInfo.FirstName, resume.PersonalInfo.LastName)
	}
	if len(resume.WorkExperience) != 1 {
		t.Fatalf("expected 1 work entry, got %d", len(resume.WorkExperience))
	}
	if !resume.WorkExperience[0].Current {
		t.Fatal("expected current work entry")
	}
	if len(resume.Education) != 1 {
		t.Fatalf("expected 1 education entry, got %d", len(resume.Education))
	}
	if got := resume.Education[0].Degree; got != "Bachelor of Science" {
		t.Fatalf("degree = %q", got)
	}
	want := []string{"Python", "React", "AWS", "Docker"}
	if !reflect.DeepEqual(resume.Skills, want) {
		t.Fatalf("skills = %v, want %v", resume.Skills, want)
	}
}

func TestExtractNeverFails(t *testing.T) {
	e := newTestExtractor(t)
	for _, text := range []string{"", "   ", "complete noise 123", "@@@@\n###"} {
		resume := e.Extract(text)
		if len(resume.WorkExperience) != 0 || len(resume.Education) != 0 {
			t.Fatalf("expected empty result for %q, got %+v", text, resume)
		}
	}
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ruleset.json")
	if err := os.WriteFile(path, []byte(`{"skillsTaxonomy":["COBOL","Fortran"],"summaryMaxLength":100}`), 0o644); err != nil {
		t.Fatalf("write ruleset: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if !reflect.DeepEqual(cfg.SkillsTaxonomy, []string{"COBOL", "Fortran"}) {
		t.Fatalf("taxonomy = %v", cfg.SkillsTaxonomy)
	}
	if cfg.SummaryMaxLength != 100 {
		t.Fatalf("summaryMaxLength = %d", cfg.SummaryMaxLength)
	}
	// Untouched fields fall back to defaults.
	if cfg.EmailPattern != DefaultConfig().EmailPattern {
		t.Fatalf("emailPattern = %q", cfg.EmailPattern)
	}

	rules, err := NewRuleset(cfg)
	if err != nil {
		t.Fatalf("NewRuleset: %v", err)
	}
	e := NewExtractor(rules)
	if got := e.extractSkills("wrote COBOL for banks"); !reflect.DeepEqual(got, []string{"COBOL"}) {
		t.Fatalf("skills = %v", got)
	}
}

func TestNewRulesetRejectsBadPattern(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EmailPattern = "(["
	if _, err := NewRuleset(cfg); err == nil {
		t.Fatal("expected compile error")
	}
}

package entities

import "testing"

func TestParseEducationEntry(t *testing.T) {
	e := newTestExtractor(t)

	entry, ok := e.parseEducationEntry("State University\nBachelor of Science in Computer Science\n2016-2020\nGPA: 3.85")
	if !ok {
		t.Fatal("expected entry")
	}
	if entry.Institution != "State University" {
		t.Fatalf("institution = %q", entry.Institution)
	}
	if entry.Degree != "Bachelor of Science" {
		t.Fatalf("degree = %q", entry.Degree)
	}
	if entry.Field != "Computer Science" {
		t.Fatalf("field = %q", entry.Field)
	}
	if entry.StartDate != "2016" || entry.EndDate != "2020" {
		t.Fatalf("dates = %q - %q", entry.StartDate, entry.EndDate)
	}
	if entry.GPA != "3.85" {
		t.Fatalf("gpa = %q", entry.GPA)
	}
}

func TestParseEducationEntryInstitutionAnchor(t *testing.T) {
	e := newTestExtractor(t)

	// The line naming a school wins even when it is not first.
	entry, ok := e.parseEducationEntry("Master of Arts in History\nRiverside College\n2010")
	if !ok {
		t.Fatal("expected entry")
	}
	if entry.Institution != "Riverside College" {
		t.Fatalf("institution = %q", entry.Institution)
	}
	if entry.Degree != "Master of Arts" || entry.Field != "History" {
		t.Fatalf("degree = %q field = %q", entry.Degree, entry.Field)
	}
}

func TestExtractEducationDiscardsEmpty(t *testing.T) {
	e := newTestExtractor(t)
	if entries := e.extractEducation("no education section present"); entries != nil {
		t.Fatalf("expected nil, got %v", entries)
	}
}

func TestExtractEducationFromDocument(t *testing.T) {
	e := newTestExtractor(t)

	text := "EDUCATION\nState University\nBachelor of Science in Computer Science\n2016-2020\nSKILLS\nPython"
	entries := e.extractEducation(text)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Institution != "State University" {
		t.Fatalf("institution = %q", entries[0].Institution)
	}
}

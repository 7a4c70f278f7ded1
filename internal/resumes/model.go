package resumes

import (
	"time"

	"hireflow-backend/internal/entities"
	"hireflow-backend/internal/scoring"
)

// ParsedResume is the immutable aggregate produced by one parse run: the
// structured entities plus the raw text and confidence scores they were
// derived from. Stages never mutate it after assembly.
type ParsedResume struct {
	entities.Resume
	RawText           string             `json:"rawText"`
	PageCount         int                `json:"pageCount,omitempty"`
	Confidence        scoring.Confidence `json:"confidence"`
	NeedsManualReview bool               `json:"needsManualReview"`
}

// ParseResult bundles everything a parse produces for the caller.
type ParseResult struct {
	Parsed  ParsedResume
	FileURL string
	Report  scoring.Report
	Record  Record
}

// Record is the persisted trace of a parse, owned by an owner key.
type Record struct {
	ID          string
	OwnerKey    string
	FileName    string
	MediaType   string
	SizeBytes   int64
	StorageKey  string
	Overall     float64
	NeedsReview bool
	CreatedAt   time.Time
}

package resumes

import (
	"time"

	"hireflow-backend/internal/scoring"
)

// Envelope is the outward-facing response wrapper for parse operations.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// ParseData is the data section of a successful parse response.
type ParseData struct {
	ParsedData    ParsedResume   `json:"parsedData"`
	FileURL       string         `json:"fileUrl"`
	QualityReport scoring.Report `json:"qualityReport"`
}

// RecordResponse is the outward-facing representation of a parse record.
type RecordResponse struct {
	RecordID    string    `json:"recordId"`
	FileName    string    `json:"fileName"`
	MediaType   string    `json:"mediaType"`
	SizeBytes   int64     `json:"sizeBytes"`
	FileURL     string    `json:"fileUrl"`
	Overall     float64   `json:"overall"`
	NeedsReview bool      `json:"needsReview"`
	ParsedAt    time.Time `json:"parsedAt"`
}

func toEnvelope(result ParseResult) Envelope {
	message := "Resume parsed successfully"
	if result.Parsed.NeedsManualReview {
		message = "Resume parsed with low confidence; manual review recommended"
	}
	return Envelope{
		Success: true,
		Data: ParseData{
			ParsedData:    result.Parsed,
			FileURL:       result.FileURL,
			QualityReport: result.Report,
		},
		Message: message,
	}
}

func toRecordResponse(rec Record, fileURL string) RecordResponse {
	return RecordResponse{
		RecordID:    rec.ID,
		FileName:    rec.FileName,
		MediaType:   rec.MediaType,
		SizeBytes:   rec.SizeBytes,
		FileURL:     fileURL,
		Overall:     rec.Overall,
		NeedsReview: rec.NeedsReview,
		ParsedAt:    rec.CreatedAt,
	}
}

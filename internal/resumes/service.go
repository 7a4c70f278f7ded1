package resumes

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"hireflow-backend/internal/entities"
	"hireflow-backend/internal/extract"
	"hireflow-backend/internal/scoring"
	"hireflow-backend/internal/shared/metrics"
	"hireflow-backend/internal/shared/storage/object"
	"hireflow-backend/internal/shared/telemetry"
	"hireflow-backend/internal/shared/util"
)

// minTextLength is the minimum number of extracted characters required for a
// parse to proceed. Shorter documents carry too little signal to be worth
// structuring.
const minTextLength = 100

// extractedTextSuffix is appended to the original's storage key for the
// derived normalized-text object.
const extractedTextSuffix = ".extracted.txt"

// Service runs the parse pipeline: text extraction, entity extraction,
// confidence scoring, persistence. Stages run in a fixed order and each
// consumes only the previous stage's output.
type Service struct {
	Store     object.ObjectStore
	Repo      ParseRepo
	Extractor *entities.Extractor
	Scorer    *scoring.Scorer
}

// NewService constructs a Service.
func NewService(store object.ObjectStore, repo ParseRepo, extractor *entities.Extractor, scorer *scoring.Scorer) *Service {
	return &Service{Store: store, Repo: repo, Extractor: extractor, Scorer: scorer}
}

// Parse runs the full pipeline on an uploaded document and records the parse.
// The original bytes are stored before entity extraction; a storage failure
// fails the request rather than producing a result with no retrievable file.
func (s *Service) Parse(ctx context.Context, ownerKey, fileName, mediaType string, data []byte) (ParseResult, error) {
	if fileName == "" {
		return ParseResult{}, fmt.Errorf("%w: file name is required", ErrInvalidInput)
	}

	start := time.Now()
	metrics.IncParseStarted()

	text, err := extract.Extract(data, mediaType, fileName)
	if err != nil {
		metrics.IncParseFailed()
		return ParseResult{}, err
	}
	if len(text.Content) < minTextLength {
		metrics.IncParseFailed()
		return ParseResult{}, fmt.Errorf("%w: extracted %d characters, need %d", ErrLowSignal, len(text.Content), minTextLength)
	}

	storageKey, size, _, err := s.Store.Save(ctx, ownerKey, fileName, bytes.NewReader(data))
	if err != nil {
		metrics.IncParseFailed()
		return ParseResult{}, fmt.Errorf("%w: save original: %v", ErrStorageUnavailable, err)
	}

	result := s.run(text, storageKey)

	// The derived text object is a convenience for later inspection; losing
	// it does not invalidate the parse.
	extractedKey := storageKey + extractedTextSuffix
	if _, err := s.Store.SaveWithKey(ctx, extractedKey, "text/plain; charset=utf-8", strings.NewReader(text.Content)); err != nil {
		telemetry.Warn("resumes.extracted_text_save_failed", map[string]any{
			"storage_key": extractedKey,
			"err":         err.Error(),
		})
	}

	rec := Record{
		ID:          uuid.NewString(),
		OwnerKey:    ownerKey,
		FileName:    fileName,
		MediaType:   mediaType,
		SizeBytes:   size,
		StorageKey:  storageKey,
		Overall:     result.Parsed.Confidence.Overall,
		NeedsReview: result.Parsed.NeedsManualReview,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, rec); err != nil {
		metrics.IncParseFailed()
		// Without a record the stored objects are unreachable; remove them so
		// failed parses do not accumulate orphans.
		if delErr := s.Store.Delete(ctx, storageKey); delErr != nil {
			telemetry.Warn("resumes.orphan_cleanup_failed", map[string]any{
				"storage_key": storageKey,
				"err":         delErr.Error(),
			})
		}
		_ = s.Store.Delete(ctx, extractedKey)
		return ParseResult{}, err
	}
	result.Record = rec

	metrics.IncParseCompleted()
	if result.Parsed.NeedsManualReview {
		metrics.IncParseFlagged()
	}
	metrics.ObserveParseDurationMs(float64(time.Since(start).Milliseconds()))

	telemetry.Info("resumes.parsed", map[string]any{
		"record_id":    rec.ID,
		"file_name":    fileName,
		"media_type":   mediaType,
		"size_bytes":   size,
		"overall":      rec.Overall,
		"needs_review": rec.NeedsReview,
	})

	return result, nil
}

// Reparse re-runs extraction and scoring on an already stored document. The
// storage key is derived from the file URL; nothing is re-uploaded and no new
// record is written.
func (s *Service) Reparse(ctx context.Context, ownerKey, fileURL string) (ParseResult, error) {
	if fileURL == "" {
		return ParseResult{}, fmt.Errorf("%w: file URL is required", ErrInvalidInput)
	}

	storageKey, err := s.Store.KeyFromURL(fileURL)
	if err != nil {
		return ParseResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	// Keys are namespaced by the hashed owner; a URL pointing into another
	// owner's namespace is treated the same as a malformed one.
	if !strings.HasPrefix(storageKey, util.HashOwnerKey(ownerKey)+"/") {
		return ParseResult{}, fmt.Errorf("%w: file URL does not belong to caller", ErrInvalidInput)
	}

	rc, err := s.Store.Open(ctx, storageKey)
	if err != nil {
		return ParseResult{}, fmt.Errorf("%w: open %s: %v", ErrStorageUnavailable, storageKey, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, extract.MaxFileSize+1))
	if err != nil {
		return ParseResult{}, fmt.Errorf("%w: read %s: %v", ErrStorageUnavailable, storageKey, err)
	}

	fileName := path.Base(storageKey)
	mediaType := extract.MediaTypeForFilename(fileName)

	text, err := extract.Extract(data, mediaType, fileName)
	if err != nil {
		return ParseResult{}, err
	}
	if len(text.Content) < minTextLength {
		return ParseResult{}, fmt.Errorf("%w: extracted %d characters, need %d", ErrLowSignal, len(text.Content), minTextLength)
	}

	result := s.run(text, storageKey)

	telemetry.Info("resumes.reparsed", map[string]any{
		"owner_key":   ownerKey,
		"storage_key": storageKey,
		"overall":     result.Parsed.Confidence.Overall,
	})

	return result, nil
}

// List returns parse records for an owner, newest first.
func (s *Service) List(ctx context.Context, ownerKey string, limit, offset int) ([]Record, error) {
	if ownerKey == "" {
		return nil, fmt.Errorf("%w: owner key is required", ErrInvalidInput)
	}
	return s.Repo.ListByOwner(ctx, ownerKey, limit, offset)
}

// run executes the deterministic tail of the pipeline on extracted text.
func (s *Service) run(text extract.Text, storageKey string) ParseResult {
	resume := s.Extractor.Extract(text.Content)
	conf := s.Scorer.Score(resume)
	needsReview := s.Scorer.NeedsReview(conf)
	report := s.Scorer.Report(resume, conf)

	return ParseResult{
		Parsed: ParsedResume{
			Resume:            resume,
			RawText:           text.Content,
			PageCount:         text.PageCount,
			Confidence:        conf,
			NeedsManualReview: needsReview,
		},
		FileURL: s.Store.URL(storageKey),
		Report:  report,
	}
}

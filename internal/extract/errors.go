package extract

import "errors"

var (
	// ErrEmptyFile is returned when the upload contains no bytes.
	ErrEmptyFile = errors.New("file is empty")
	// ErrFileTooLarge is returned when the upload exceeds MaxFileSize.
	ErrFileTooLarge = errors.New("file exceeds size limit")
	// ErrUnsupportedType is returned for media types outside the supported set.
	ErrUnsupportedType = errors.New("unsupported media type")
	// ErrNoTextLayer is returned when a document carries no extractable text,
	// typically a scanned or corrupted PDF. OCR is not supported, so callers
	// should surface this as a distinct condition rather than a generic failure.
	ErrNoTextLayer = errors.New("document has no extractable text layer (scanned or corrupted; OCR is not supported)")
)

package resumes

import "errors"

var (
	// ErrInvalidInput marks bad caller input (missing file, malformed URL).
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound marks a missing parse record.
	ErrNotFound = errors.New("not found")

	// ErrLowSignal marks a document whose extracted text is too short to
	// parse meaningfully. Surfaced with the same user guidance as an
	// unreadable document.
	ErrLowSignal = errors.New("document contains too little text to parse")

	// ErrStorageUnavailable marks an object storage failure. Parse requests
	// fail outright rather than continuing without a stored original.
	ErrStorageUnavailable = errors.New("object storage unavailable")
)

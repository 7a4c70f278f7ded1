package extract

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	// MaxFileSize is the hard cap on uploaded document size.
	MaxFileSize = 10 << 20 // 10 MiB

	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeDOC  = "application/msword"
	MimeTXT  = "text/plain"
)

// Text is the output of a single extraction. It is produced once per document
// and never mutated afterwards.
type Text struct {
	Content   string
	PageCount int
	Metadata  map[string]string
}

var supported = map[string]struct{}{
	MimePDF:  {},
	MimeDOCX: {},
	MimeDOC:  {},
	MimeTXT:  {},
}

// SupportedMediaTypes returns the accepted MIME types in a stable order.
func SupportedMediaTypes() []string {
	return []string{MimePDF, MimeDOC, MimeDOCX, MimeTXT}
}

// SupportedExtensions returns the accepted file extensions in a stable order.
func SupportedExtensions() []string {
	return []string{".pdf", ".doc", ".docx", ".txt"}
}

// Extract converts a raw document buffer into normalized plain text. The
// declared media type is trusted as-is; bytes are never sniffed. Validation
// failures and unreadable documents are the only error paths.
func Extract(data []byte, mediaType string, fileName string) (Text, error) {
	if len(data) == 0 {
		return Text{}, fmt.Errorf("%w: %s", ErrEmptyFile, fileName)
	}
	if len(data) > MaxFileSize {
		return Text{}, fmt.Errorf("%w: %d bytes (limit %d bytes)", ErrFileTooLarge, len(data), MaxFileSize)
	}

	clean := cleanMediaType(mediaType)
	if _, ok := supported[clean]; !ok {
		return Text{}, fmt.Errorf("%w: %q", ErrUnsupportedType, mediaType)
	}

	var (
		text Text
		err  error
	)
	switch clean {
	case MimePDF:
		text, err = extractPDF(data)
	case MimeDOCX:
		text, err = extractDOCX(data)
	case MimeDOC:
		text, err = extractDOC(data)
	case MimeTXT:
		text, err = extractTXT(data)
	}
	if err != nil {
		return Text{}, err
	}

	text.Content = Normalize(text.Content)
	if text.Metadata == nil {
		text.Metadata = map[string]string{}
	}
	text.Metadata["mediaType"] = clean
	return text, nil
}

// MediaTypeForFilename maps a file extension to its MIME type. It exists for
// the reparse path, where the original upload media type is no longer
// available and only the stored filename suffix remains.
func MediaTypeForFilename(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return MimePDF
	case ".docx":
		return MimeDOCX
	case ".doc":
		return MimeDOC
	case ".txt":
		return MimeTXT
	default:
		return ""
	}
}

func cleanMediaType(mediaType string) string {
	return strings.ToLower(strings.TrimSpace(strings.Split(mediaType, ";")[0]))
}

package extract

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDF reads the PDF text layer. A parse failure or an empty text layer
// both map to ErrNoTextLayer: the document is either corrupted or a scan, and
// callers need to branch on that condition specifically.
func extractPDF(data []byte) (Text, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return Text{}, fmt.Errorf("%w: %v", ErrNoTextLayer, err)
	}

	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return Text{}, fmt.Errorf("%w: %v", ErrNoTextLayer, err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return Text{}, fmt.Errorf("%w: %v", ErrNoTextLayer, err)
	}

	content := buf.String()
	if strings.TrimSpace(content) == "" {
		return Text{}, ErrNoTextLayer
	}

	return Text{Content: content, PageCount: pdfReader.NumPage()}, nil
}

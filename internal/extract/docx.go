package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// extractDOCX unpacks the OOXML container and walks word/document.xml,
// emitting character data and turning paragraph/line-break ends into
// newlines.
func extractDOCX(data []byte) (Text, error) {
	readerAt := bytes.NewReader(data)
	zr, err := zip.NewReader(readerAt, int64(len(data)))
	if err != nil {
		return Text{}, fmt.Errorf("%w: not an OOXML container: %v", ErrNoTextLayer, err)
	}

	var docFile *zip.File
	for _, f := range zr.File {
		name := strings.ReplaceAll(f.Name, "\\", "/")
		if name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return Text{}, fmt.Errorf("%w: word/document.xml not found", ErrNoTextLayer)
	}

	rc, err := docFile.Open()
	if err != nil {
		return Text{}, fmt.Errorf("%w: %v", ErrNoTextLayer, err)
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return Text{}, fmt.Errorf("%w: %v", ErrNoTextLayer, err)
	}

	content := stripDocxXML(string(raw))
	if strings.TrimSpace(content) == "" {
		return Text{}, ErrNoTextLayer
	}
	return Text{Content: content}, nil
}

func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return raw
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(buf.String())
}

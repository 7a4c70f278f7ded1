package extract

import (
	"archive/zip"
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestExtractRejectsEmptyBuffer(t *testing.T) {
	_, err := Extract(nil, MimeTXT, "empty.txt")
	if !errors.Is(err, ErrEmptyFile) {
		t.Fatalf("expected ErrEmptyFile, got %v", err)
	}
}

func TestExtractRejectsOversizedBuffer(t *testing.T) {
	data := make([]byte, 11<<20) // 11 MiB
	_, err := Extract(data, MimeTXT, "big.txt")
	if !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}
	if !strings.Contains(err.Error(), "10485760") {
		t.Fatalf("expected error to quote the size limit, got %v", err)
	}
}

func TestExtractRejectsUnsupportedMediaType(t *testing.T) {
	_, err := Extract([]byte("hello"), "image/png", "photo.png")
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
	if !strings.Contains(err.Error(), "image/png") {
		t.Fatalf("expected error to name the offending type, got %v", err)
	}
}

func TestExtractPlainText(t *testing.T) {
	text, err := Extract([]byte("Jane Doe\r\nSenior   Engineer\r\n\r\n\r\n\r\nSkills"), "text/plain; charset=utf-8", "resume.txt")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	want := "Jane Doe\nSenior Engineer\n\nSkills"
	if text.Content != want {
		t.Fatalf("expected %q, got %q", want, text.Content)
	}
	if text.Metadata["mediaType"] != MimeTXT {
		t.Fatalf("expected metadata mediaType %q, got %q", MimeTXT, text.Metadata["mediaType"])
	}
}

func TestExtractPlainTextReplacesInvalidUTF8(t *testing.T) {
	text, err := Extract([]byte{'h', 'i', 0xff, 0xfe, '!'}, MimeTXT, "resume.txt")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !strings.Contains(text.Content, "�") {
		t.Fatalf("expected replacement character in %q", text.Content)
	}
}

func TestExtractDOCX(t *testing.T) {
	doc := `<?xml version="1.0"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body><w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p><w:p><w:r><w:t>Senior Engineer</w:t></w:r></w:p></w:body></w:document>`
	data := buildZip(t, map[string]string{"word/document.xml": doc})

	text, err := Extract(data, MimeDOCX, "resume.docx")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !strings.Contains(text.Content, "Jane Doe") || !strings.Contains(text.Content, "Senior Engineer") {
		t.Fatalf("unexpected docx content: %q", text.Content)
	}
}

func TestExtractDOCXWithoutDocumentXML(t *testing.T) {
	data := buildZip(t, map[string]string{"notes.txt": "hello"})
	_, err := Extract(data, MimeDOCX, "resume.docx")
	if !errors.Is(err, ErrNoTextLayer) {
		t.Fatalf("expected ErrNoTextLayer, got %v", err)
	}
}

func TestExtractScannedPDFSurfacesNoTextLayer(t *testing.T) {
	// Not a PDF at all: the parser fails, which must present as the
	// scanned/corrupted condition rather than a generic error.
	_, err := Extract([]byte("%PDF-1.4 garbage without structure"), MimePDF, "scan.pdf")
	if !errors.Is(err, ErrNoTextLayer) {
		t.Fatalf("expected ErrNoTextLayer, got %v", err)
	}
}

func TestExtractLegacyDOC(t *testing.T) {
	raw := append([]byte{0xd0, 0xcf, 0x11, 0xe0, 0x01, 0x02}, []byte("Jane Doe - Engineer")...)
	raw = append(raw, 0x00, 0x03, 'a', 'b')
	text, err := Extract(raw, MimeDOC, "resume.doc")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !strings.Contains(text.Content, "Jane Doe - Engineer") {
		t.Fatalf("unexpected doc content: %q", text.Content)
	}
	if strings.Contains(text.Content, "ab") {
		t.Fatalf("short binary runs should be dropped, got %q", text.Content)
	}
}

func TestExtractLegacyDOCWithoutText(t *testing.T) {
	_, err := Extract([]byte{0x00, 0x01, 0x02, 0x03}, MimeDOC, "resume.doc")
	if !errors.Is(err, ErrNoTextLayer) {
		t.Fatalf("expected ErrNoTextLayer, got %v", err)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	samples := []string{
		"",
		"plain text",
		"a\r\nb\rc\nd",
		"  spaced   out\t\ttext  ",
		"one\n\n\n\n\ntwo",
		"ctrl\x00chars\x07here",
		"mixed  \r\n\r\n\r\n  case\tline",
	}
	for _, s := range samples {
		once := Normalize(s)
		twice := Normalize(once)
		if once != twice {
			t.Fatalf("Normalize not idempotent for %q: %q != %q", s, once, twice)
		}
	}
}

func TestNormalizeBehavior(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"a\r\nb", "a\nb"},
		{"a  \t b", "a b"},
		{"a\n\n\n\nb", "a\n\nb"},
		{"\n\n  hi  \n\n", "hi"},
		{"keep\x01none\x02of\x03these", "keepnoneofthese"},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMediaTypeForFilename(t *testing.T) {
	cases := map[string]string{
		"resume.pdf":  MimePDF,
		"Resume.DOCX": MimeDOCX,
		"cv.doc":      MimeDOC,
		"notes.txt":   MimeTXT,
		"image.png":   "",
		"noext":       "",
	}
	for name, want := range cases {
		if got := MediaTypeForFilename(name); got != want {
			t.Fatalf("MediaTypeForFilename(%q) = %q, want %q", name, got, want)
		}
	}
}

func buildZip(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create zip entry: %v", err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("write zip entry: %v", err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

package extract

import "strings"

// minDocRun is the shortest printable run kept from a legacy .doc stream.
const minDocRun = 4

// extractDOC pulls printable text runs out of a legacy binary Word document.
// There is no maintained Go parser for the OLE2 .doc format, so this is a
// best-effort scan over the raw stream. Runs shorter than minDocRun are
// treated as binary noise and dropped.
func extractDOC(data []byte) (Text, error) {
	var b strings.Builder
	var run []byte

	flush := func() {
		if len(run) >= minDocRun {
			if b.Len() > 0 {
				b.WriteByte('\n')
			}
			b.Write(run)
		}
		run = run[:0]
	}

	for _, c := range data {
		switch {
		case c >= 0x20 && c < 0x7f:
			run = append(run, c)
		case c == '\t':
			run = append(run, ' ')
		case c == '\r' || c == '\n' || c == 0x0b:
			// 0x0b is Word's in-paragraph line break.
			flush()
		default:
			flush()
		}
	}
	flush()

	content := b.String()
	if strings.TrimSpace(content) == "" {
		return Text{}, ErrNoTextLayer
	}
	return Text{Content: content}, nil
}

package extract

import (
	"strings"
	"unicode/utf8"
)

// extractTXT treats the buffer as plain text. Invalid UTF-8 sequences are
// replaced rather than rejected so that dirty exports still parse.
func extractTXT(data []byte) (Text, error) {
	content := string(data)
	if !utf8.ValidString(content) {
		content = strings.ToValidUTF8(content, "�")
	}
	return Text{Content: content}, nil
}

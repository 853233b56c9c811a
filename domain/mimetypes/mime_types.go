package mimetypes

import (
	"mime"
	"strings"
)

type MIME string

const (
	Unknown        MIME = "unknown"
	TextHTML       MIME = "text/html"
	ApplicationZIP MIME = "application/zip"
)

func Matches(detected string, expected MIME) (MIME, bool) {
	mt, _, err := mime.ParseMediaType(detected)
	if err != nil {
		return Unknown, false
	}
	return expected, mt == string(expected)
}

// IsText accepts any text/* type. Transcripts with a comma in every line are
// commonly sniffed as CSV, so plain text alone is too strict.
func IsText(detected string) bool {
	mt, _, err := mime.ParseMediaType(detected)
	if err != nil {
		return false
	}
	return strings.HasPrefix(mt, "text/") && mt != string(TextHTML)
}

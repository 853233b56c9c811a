// Package transcript turns an exported chat transcript into ordered Message records.
// Lines are classified, timestamps normalized and continuation lines folded
// into the message they extend. Nothing here computes statistics.
package transcript

import (
	"chat-lens/domain"
	"regexp"
	"strings"
)

type LineKind int

const (
	Continuation LineKind = iota
	StartOfMessage
)

// startPattern is `<date>, <time> - <sender>: <body>`.
var startPattern = regexp.MustCompile(`^(\d{1,2}/\d{1,2}/(?:\d{4}|\d{2})), (\d{1,2}:\d{2}) - ([^:]+):(?: (.*))?$`)

// Classified is a raw line once its role is known.
// Date, Time, Sender and Body are only set for StartOfMessage, Text only for Continuation.
type Classified struct {
	Kind   LineKind
	Line   int
	Date   string
	Time   string
	Sender string
	Body   string
	Text   string
}

// Classify decides whether a line opens a new message or extends the current one.
func Classify(line domain.RawLine) Classified {
	text := strings.TrimRight(line.Text, "\r")
	match := startPattern.FindStringSubmatch(text)
	if match == nil {
		return Classified{Kind: Continuation, Line: line.Number, Text: strings.TrimSpace(text)}
	}
	return Classified{
		Kind:   StartOfMessage,
		Line:   line.Number,
		Date:   match[1],
		Time:   match[2],
		Sender: strings.TrimSpace(match[3]),
		Body:   strings.TrimSpace(match[4]),
	}
}

// Package domain contains core concepts of the chat transcript analysis.
// This file defines the Message record assembled from an exported transcript.
// Messages are immutable once assembled.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// RawLine is one line of the transcript with its 1-based position in the file.
type RawLine struct {
	Number int
	Text   string
}

// Message represents one logical chat entry, possibly spanning several lines.
type Message struct {
	ID     uuid.UUID // derived from line and content, stable across runs
	Line   int       // line that opened the message
	Seq    int       // position in file order
	SentAt time.Time
	Sender string
	Body   string
}

// Senders returns the distinct senders in first-appearance order.
func Senders(messages []Message) []string {
	seen := make(map[string]struct{}, 8)
	var out []string
	for _, m := range messages {
		if _, ok := seen[m.Sender]; ok {
			continue
		}
		seen[m.Sender] = struct{}{}
		out = append(out, m.Sender)
	}
	return out
}

//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-lens/domain"
	"context"
)

// SentimentScorer returns a polarity in [-1, 1] for a piece of text.
type SentimentScorer interface {
	Polarity(text string) float64
}

// ToneClassifier labels a piece of text. Implementations must be safe for concurrent use.
type ToneClassifier interface {
	Classify(text string) domain.ToneLabel
}

// ReportSink renders or exports a finished report.
type ReportSink interface {
	Write(ctx context.Context, report domain.Report) error
}

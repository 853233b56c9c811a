// Package graph builds sender-to-sender count graphs from assembled messages.
// Both builders shard work by message count and merge local accumulators once.
package graph

import (
	"chat-lens/domain"
	"chat-lens/errors"
	"chat-lens/projection"
	"chat-lens/runtime"
	"context"
	"time"
)

const DefaultReplyWindow = 10 * time.Minute

// ReplyBuilder credits prev.Sender -> curr.Sender for every chronologically
// adjacent pair of distinct senders at most window apart.
type ReplyBuilder struct {
	window  time.Duration
	workers int
}

func NewReplyBuilder(window time.Duration, workers int) (ReplyBuilder, error) {
	if window < 0 {
		return ReplyBuilder{}, errors.ErrInvalidWindow
	}
	return ReplyBuilder{window: window, workers: max(workers, 1)}, nil
}

// Build accepts messages in any order. They are sorted once, globally,
// before the adjacent pairs are split across shards.
func (b ReplyBuilder) Build(ctx context.Context, messages []domain.Message) (domain.Edges, error) {
	sorted := projection.Chronological(messages)
	edges := make(domain.Edges)
	if len(sorted) < 2 {
		return edges, nil
	}

	// Pair k is (sorted[k], sorted[k+1]).
	err := runtime.Reduce(ctx, len(sorted)-1, b.workers,
		func(ctx context.Context, span runtime.Span) (domain.Edges, error) {
			local := make(domain.Edges)
			for k := span.Start; k < span.End; k++ {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				prev, curr := sorted[k], sorted[k+1]
				if prev.Sender == curr.Sender {
					continue
				}
				if curr.SentAt.Sub(prev.SentAt) <= b.window {
					local[domain.Pair{From: prev.Sender, To: curr.Sender}]++
				}
			}
			return local, nil
		},
		edges.Merge)
	if err != nil {
		return nil, err
	}
	return edges, nil
}

// ReplyMatrix lays reply edges out over every sender of the transcript.
func ReplyMatrix(messages []domain.Message, edges domain.Edges) domain.Matrix {
	return domain.NewMatrix(domain.Senders(messages), edges)
}

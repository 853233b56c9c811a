package features

import (
	"chat-lens/domain"
	"chat-lens/runtime"
	"context"
)

// DeriveAll enriches every message, in input order, over at most workers shards.
func DeriveAll(ctx context.Context, d Deriver, messages []domain.Message, workers int) ([]domain.Enriched, error) {
	out := make([]domain.Enriched, len(messages))
	err := runtime.Reduce(ctx, len(messages), workers,
		func(ctx context.Context, span runtime.Span) (struct{}, error) {
			for i := span.Start; i < span.End; i++ {
				if i%512 == 0 {
					if err := ctx.Err(); err != nil {
						return struct{}{}, err
					}
				}
				out[i] = domain.Enriched{Message: messages[i], Features: d.Derive(messages[i])}
			}
			return struct{}{}, nil
		},
		func(struct{}) {})
	if err != nil {
		return nil, err
	}
	return out, nil
}

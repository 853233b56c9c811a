package graph

import (
	"chat-lens/domain"
	"chat-lens/lexicon"
	"chat-lens/runtime"
	"context"
)

// MentionOptions tunes candidate selection and counting.
type MentionOptions struct {
	TokenCap       int
	MinTokenLength int
	// Dedup credits a mentioned sender at most once per message.
	Dedup   bool
	Workers int
}

func DefaultMentionOptions() MentionOptions {
	return MentionOptions{
		TokenCap:       DefaultTokenCap,
		MinTokenLength: DefaultMinTokenLength,
		Workers:        1,
	}
}

// MentionGraph is the outcome of a mention scan.
type MentionGraph struct {
	Candidates []string
	Edges      domain.Edges
}

// Matrix lays the edges out over the candidate senders.
func (g MentionGraph) Matrix() domain.Matrix {
	return domain.NewMatrix(g.Candidates, g.Edges)
}

type MentionBuilder struct {
	opts MentionOptions
}

func NewMentionBuilder(opts MentionOptions) MentionBuilder {
	opts.Workers = max(opts.Workers, 1)
	return MentionBuilder{opts: opts}
}

// Build credits sender -> name for every body token that belongs to the
// name of another candidate. Only candidate senders can mention.
func (b MentionBuilder) Build(ctx context.Context, messages []domain.Message) (MentionGraph, error) {
	candidates := Candidates(domain.Senders(messages), b.opts.TokenCap, b.opts.MinTokenLength)
	graph := MentionGraph{Edges: make(domain.Edges)}
	mentioners := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		graph.Candidates = append(graph.Candidates, c.Sender)
		mentioners[c.Sender] = struct{}{}
	}
	index := NewNameIndex(candidates)
	if len(index) == 0 {
		return graph, nil
	}

	err := runtime.Reduce(ctx, len(messages), b.opts.Workers,
		func(ctx context.Context, span runtime.Span) (domain.Edges, error) {
			local := make(domain.Edges)
			for i := span.Start; i < span.End; i++ {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				m := messages[i]
				if _, ok := mentioners[m.Sender]; !ok {
					continue
				}
				b.scan(m, index, local)
			}
			return local, nil
		},
		graph.Edges.Merge)
	if err != nil {
		return MentionGraph{}, err
	}
	return graph, nil
}

func (b MentionBuilder) scan(m domain.Message, index NameIndex, edges domain.Edges) {
	var credited map[string]struct{}
	if b.opts.Dedup {
		credited = make(map[string]struct{})
	}
	for _, tok := range lexicon.Tokens(m.Body) {
		for _, name := range index[tok] {
			if name == m.Sender {
				continue
			}
			if credited != nil {
				if _, ok := credited[name]; ok {
					continue
				}
				credited[name] = struct{}{}
			}
			edges[domain.Pair{From: m.Sender, To: name}]++
		}
	}
}

package graph

import (
	"chat-lens/domain"
	"chat-lens/errors"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func msg(seq int, sender string, hour, minute int, body string) domain.Message {
	return domain.Message{
		Seq:    seq,
		Sender: sender,
		SentAt: time.Date(2023, 1, 1, hour, minute, 0, 0, time.UTC),
		Body:   body,
	}
}

func TestReplyBuilder_Window(t *testing.T) {
	testCases := []struct {
		name     string
		messages []domain.Message
		want     domain.Edges
	}{
		{
			name: "same sender adjacency is a continued turn",
			messages: []domain.Message{
				msg(0, "A", 10, 0, "hi"),
				msg(1, "B", 10, 9, "hey"),
				msg(2, "B", 10, 21, "still there?"),
			},
			want: domain.Edges{{From: "A", To: "B"}: 1},
		},
		{
			name: "gap above the window is not a reply",
			messages: []domain.Message{
				msg(0, "A", 10, 0, "hi"),
				msg(1, "B", 10, 9, "hey"),
				msg(2, "A", 10, 21, "sorry"),
			},
			want: domain.Edges{{From: "A", To: "B"}: 1},
		},
		{
			name: "gap equal to the window is a reply",
			messages: []domain.Message{
				msg(0, "A", 10, 0, "hi"),
				msg(1, "B", 10, 10, "hey"),
			},
			want: domain.Edges{{From: "A", To: "B"}: 1},
		},
		{
			name: "zero minute gaps qualify",
			messages: []domain.Message{
				msg(0, "A", 10, 0, "hi"),
				msg(1, "B", 10, 0, "hey"),
				msg(2, "A", 10, 0, "yo"),
			},
			want: domain.Edges{{From: "A", To: "B"}: 1, {From: "B", To: "A"}: 1},
		},
		{
			name: "input is sorted before pairing",
			messages: []domain.Message{
				msg(0, "B", 10, 5, "second"),
				msg(1, "A", 10, 0, "first"),
			},
			want: domain.Edges{{From: "A", To: "B"}: 1},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := require.New(t)
			// Given a builder with the default window
			builder, err := NewReplyBuilder(DefaultReplyWindow, 1)
			req.NoError(err)

			// When building the graph
			edges, err := builder.Build(context.Background(), tc.messages)

			// Then only the expected edges are credited
			req.NoError(err)
			req.Equal(tc.want, edges)
		})
	}
}

func TestReplyBuilder_ShardingDoesNotChangeCounts(t *testing.T) {
	req := require.New(t)
	senders := []string{"A", "B", "C", "A", "A", "C", "B"}
	var messages []domain.Message
	for i := 0; i < 700; i++ {
		messages = append(messages, msg(i, senders[i%len(senders)], 8+i/60, i%60, "x"))
	}

	single, err := NewReplyBuilder(DefaultReplyWindow, 1)
	req.NoError(err)
	sharded, err := NewReplyBuilder(DefaultReplyWindow, 8)
	req.NoError(err)

	want, err := single.Build(context.Background(), messages)
	req.NoError(err)
	got, err := sharded.Build(context.Background(), messages)
	req.NoError(err)
	req.Equal(want, got)
	req.NotEmpty(got)
}

func TestReplyBuilder_NoSelfEdges(t *testing.T) {
	req := require.New(t)
	builder, err := NewReplyBuilder(time.Hour, 2)
	req.NoError(err)

	edges, err := builder.Build(context.Background(), []domain.Message{
		msg(0, "A", 10, 0, "a"), msg(1, "A", 10, 1, "b"), msg(2, "B", 10, 2, "c"), msg(3, "B", 10, 3, "d"),
	})

	req.NoError(err)
	for p := range edges {
		req.NotEqual(p.From, p.To)
	}
}

func TestNewReplyBuilder_NegativeWindow(t *testing.T) {
	_, err := NewReplyBuilder(-time.Minute, 1)
	require.ErrorIs(t, err, errors.ErrInvalidWindow)
}

func TestReplyBuilder_Cancelled(t *testing.T) {
	req := require.New(t)
	builder, err := NewReplyBuilder(DefaultReplyWindow, 2)
	req.NoError(err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = builder.Build(ctx, []domain.Message{msg(0, "A", 10, 0, "a"), msg(1, "B", 10, 1, "b")})

	req.ErrorIs(err, context.Canceled)
}

func TestReplyMatrix_ZeroRowStaysZero(t *testing.T) {
	req := require.New(t)
	// Given C never gets replied to and never precedes a reply
	messages := []domain.Message{
		msg(0, "A", 10, 0, "hi"),
		msg(1, "B", 10, 1, "hey"),
		msg(2, "A", 10, 2, "ok"),
		msg(3, "C", 18, 0, "late"),
	}
	builder, err := NewReplyBuilder(DefaultReplyWindow, 1)
	req.NoError(err)
	edges, err := builder.Build(context.Background(), messages)
	req.NoError(err)

	// When row normalizing
	matrix := ReplyMatrix(messages, edges)
	shares := matrix.RowPercentages()

	// Then every sender has a row and C's row is all zeros
	req.Equal([]string{"A", "B", "C"}, shares.Labels)
	req.Equal([]float64{0, 0, 0}, shares.Row("C"))
	req.Equal([]float64{0, 100, 0}, shares.Row("A"))
	req.Equal(float64(1), matrix.At("B", "A"))
}

package transcript

import (
	"chat-lens/errors"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func newTestParser() Parser {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	return NewParser(log, NewNormalizer(DefaultCenturyPivot, nil))
}

func TestParser_Parse_FoldsContinuations(t *testing.T) {
	req := require.New(t)
	parser := newTestParser()

	// Given a message whose second line does not match the grammar
	result, err := parser.Parse(context.Background(), strings.NewReader("01/01/23, 10:00 - A: hello\nworld"))

	// Then the line is folded into the body
	req.NoError(err)
	req.Len(result.Messages, 1)
	req.Equal("A", result.Messages[0].Sender)
	req.Equal("hello\nworld", result.Messages[0].Body)
	req.Equal(1, result.Stats.Continuations)
}

func TestParser_Parse_DropRules(t *testing.T) {
	req := require.New(t)
	parser := newTestParser()

	input := strings.Join([]string{
		"orphan before anything",
		"1/1/23, 10:00 - Alice: first",
		"30/2/23, 10:01 - Bob: impossible date",
		"still Alice",
		"2/1/2023, 11:00 - Bob: second",
		"",
		"   ",
	}, "\r\n")

	result, err := parser.Parse(context.Background(), strings.NewReader(input))
	req.NoError(err)
	req.Len(result.Messages, 2)

	// The line with a bad date is gone and the next line still extends Alice
	req.Equal("Alice", result.Messages[0].Sender)
	req.Equal("first\nstill Alice", result.Messages[0].Body)
	req.Equal(2, result.Messages[0].Line)
	req.Equal(0, result.Messages[0].Seq)

	// Trailing blank continuations are trimmed away
	req.Equal("Bob", result.Messages[1].Sender)
	req.Equal("second", result.Messages[1].Body)
	req.Equal(time.Date(2023, 1, 2, 11, 0, 0, 0, time.UTC), result.Messages[1].SentAt)
	req.Equal(1, result.Messages[1].Seq)

	req.Equal(7, result.Stats.Lines)
	req.Equal(2, result.Stats.Messages)
	req.Equal(1, result.Stats.DroppedOrphans)
	req.Equal(1, result.Stats.DroppedBadDates)
	req.Equal(3, result.Stats.Continuations)
}

func TestParser_Parse_DateFallbackAgrees(t *testing.T) {
	req := require.New(t)
	parser := newTestParser()

	long, err := parser.Parse(context.Background(), strings.NewReader("1/1/2023, 09:05 - A: hi"))
	req.NoError(err)
	short, err := parser.Parse(context.Background(), strings.NewReader("1/1/23, 09:05 - A: hi"))
	req.NoError(err)

	req.True(long.Messages[0].SentAt.Equal(short.Messages[0].SentAt))
}

func TestParser_Parse_IsDeterministic(t *testing.T) {
	req := require.New(t)
	parser := newTestParser()
	input := "1/1/23, 10:00 - Alice: hi\n1/1/23, 10:01 - Bob: hey\nhow are you\n1/1/23, 10:01 - Bob: ?"

	first, err := parser.Parse(context.Background(), strings.NewReader(input))
	req.NoError(err)
	second, err := parser.Parse(context.Background(), strings.NewReader(input))
	req.NoError(err)

	req.Equal(first, second)
	req.NotEqual(first.Messages[1].ID, first.Messages[2].ID)
}

func TestParser_Parse_EmptyTranscript(t *testing.T) {
	req := require.New(t)
	parser := newTestParser()

	for _, input := range []string{"", "no header here\nnor here", "1/1/23, 99:00 - A: bad hour"} {
		result, err := parser.Parse(context.Background(), strings.NewReader(input))
		req.ErrorIs(err, errors.ErrEmptyTranscript)
		req.Empty(result.Messages)
	}
}

func TestParser_Parse_KeepsFileOrder(t *testing.T) {
	req := require.New(t)
	parser := newTestParser()

	result, err := parser.Parse(context.Background(), strings.NewReader(
		"2/1/23, 10:00 - Alice: later\n1/1/23, 10:00 - Bob: earlier"))
	req.NoError(err)
	req.Equal("Alice", result.Messages[0].Sender)
	req.Equal("Bob", result.Messages[1].Sender)
}

func TestParser_Parse_CanceledContext(t *testing.T) {
	parser := newTestParser()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	input := strings.Repeat("1/1/23, 10:00 - A: hi\n", 5000)
	_, err := parser.Parse(ctx, strings.NewReader(input))
	require.ErrorIs(t, err, context.Canceled)
}

package transcript

import (
	"bufio"
	"chat-lens/domain"
	"chat-lens/errors"
	"context"
	"fmt"
	"io"
	"log/slog"
)

const maxLineSize = 4 * 1024 * 1024

// Result is the outcome of one parse.
type Result struct {
	Messages []domain.Message
	Stats    domain.ParseStats
}

type Parser struct {
	log        *slog.Logger
	normalizer Normalizer
}

func NewParser(log *slog.Logger, normalizer Normalizer) Parser {
	return Parser{log: log, normalizer: normalizer}
}

// Parse reads the whole transcript. It returns errors.ErrEmptyTranscript,
// alongside the line statistics, when no message could be assembled.
func (p Parser) Parse(ctx context.Context, r io.Reader) (Result, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	assembler := NewAssembler(p.log, p.normalizer)
	number := 0
	for scanner.Scan() {
		number++
		if number%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		assembler.Feed(Classify(domain.RawLine{Number: number, Text: scanner.Text()}))
	}
	if err := scanner.Err(); err != nil {
		return Result{}, fmt.Errorf("reading transcript at line %d: %w", number+1, err)
	}

	messages, stats := assembler.Finish()
	p.log.Debug("Transcript parsed",
		"lines", stats.Lines,
		"messages", stats.Messages,
		"continuations", stats.Continuations,
		"dropped_orphans", stats.DroppedOrphans,
		"dropped_bad_dates", stats.DroppedBadDates)
	if len(messages) == 0 {
		return Result{Stats: stats}, errors.ErrEmptyTranscript
	}
	return Result{Messages: messages, Stats: stats}, nil
}

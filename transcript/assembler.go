package transcript

import (
	"chat-lens/domain"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

// messageNamespace seeds the name-based message identifiers.
var messageNamespace = uuid.MustParse("5b0f7f43-3f0e-4c8e-9a57-1d2b6c1e8f20")

type draft struct {
	line   int
	sentAt time.Time
	sender string
	body   strings.Builder
}

// Assembler folds classified lines into messages, in file order.
type Assembler struct {
	log        *slog.Logger
	normalizer Normalizer
	current    *draft
	messages   []domain.Message
	stats      domain.ParseStats
}

func NewAssembler(log *slog.Logger, normalizer Normalizer) *Assembler {
	return &Assembler{log: log, normalizer: normalizer}
}

// Feed consumes the next classified line.
func (a *Assembler) Feed(c Classified) {
	a.stats.Lines++
	switch c.Kind {
	case StartOfMessage:
		sentAt, err := a.normalizer.Normalize(c.Date, c.Time)
		if err != nil {
			// The previous message stays open for the lines that follow.
			a.stats.DroppedBadDates++
			a.log.Debug("Dropping line with unparseable date", "line", c.Line, "error", err)
			return
		}
		a.flush()
		a.current = &draft{line: c.Line, sentAt: sentAt, sender: c.Sender}
		a.current.body.WriteString(c.Body)
	case Continuation:
		if a.current == nil {
			a.stats.DroppedOrphans++
			a.log.Debug("Dropping line before first message", "line", c.Line)
			return
		}
		a.stats.Continuations++
		a.current.body.WriteByte('\n')
		a.current.body.WriteString(c.Text)
	}
}

// Finish closes the open message and returns everything assembled so far.
func (a *Assembler) Finish() ([]domain.Message, domain.ParseStats) {
	a.flush()
	a.stats.Messages = len(a.messages)
	return a.messages, a.stats
}

func (a *Assembler) flush() {
	if a.current == nil {
		return
	}
	d := a.current
	a.current = nil
	body := strings.TrimSpace(d.body.String())
	a.messages = append(a.messages, domain.Message{
		ID:     messageID(d.line, d.sentAt, d.sender, body),
		Line:   d.line,
		Seq:    len(a.messages),
		SentAt: d.sentAt,
		Sender: d.sender,
		Body:   body,
	})
}

func messageID(line int, sentAt time.Time, sender, body string) uuid.UUID {
	name := fmt.Sprintf("%d\x00%d\x00%s\x00%s", line, sentAt.Unix(), sender, body)
	return uuid.NewSHA1(messageNamespace, []byte(name))
}

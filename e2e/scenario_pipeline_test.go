package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"chat-lens/domain"

	"github.com/stretchr/testify/suite"
)

type testPipelineSuite struct {
	BasePipelineSuite
}

func TestPipelineSuite(t *testing.T) {
	suite.Run(t, &testPipelineSuite{})
}

var (
	senders = []string{"Ana María", "Bob", "Cid Campeador", "+34 612 345 678"}
	bodies  = []string{
		"good morning everyone 😀",
		"did you see www.example.com/news ?",
		"<Media omitted>",
		"ana, bob, are you coming tonight?",
		"I love this group ❤️",
		"this is terrible, I hate mondays",
		"cid sent the link https://example.org",
	}
)

// generate writes an export with continuation lines, system lines and broken dates.
func generate(n int) []byte {
	rnd := rand.New(rand.NewPCG(7, 7))
	var buf bytes.Buffer
	buf.WriteString("Messages and calls are end-to-end encrypted.\n")
	at := time.Date(2023, 3, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		at = at.Add(time.Duration(rnd.IntN(20)) * time.Minute)
		sender := senders[rnd.IntN(len(senders))]
		fmt.Fprintf(&buf, "%d/%d/%02d, %d:%02d - %s: %s\n",
			at.Day(), int(at.Month()), at.Year()%100, at.Hour(), at.Minute(), sender, bodies[rnd.IntN(len(bodies))])
		if i%50 == 0 {
			buf.WriteString("and one more line\n")
		}
		if i%97 == 0 {
			buf.WriteString("31/2/23, 10:00 - Bob: never happened\n")
		}
	}
	return buf.Bytes()
}

func (s *testPipelineSuite) TestFullPipeline() {
	content := generate(2000)

	s.WithTranscript("Analyze a generated export", content, func(ctx context.Context, path string) {
		var single, sharded domain.Report

		s.Run("Step 1: Analyze with one worker", func() {
			single = s.Analyze(ctx, path, 1).Report
			s.Require().Positive(single.Totals.Messages)
		})

		s.Run("Step 2: Sharding gives the same report", func() {
			sharded = s.Analyze(ctx, path, s.Config.Workers).Report
			s.Require().Equal(single.Replies, sharded.Replies)
			s.Require().Equal(single.Mentions, sharded.Mentions)
			s.Require().Equal(single.Totals, sharded.Totals)
			s.Require().Equal(single.Timeline, sharded.Timeline)
		})

		s.Run("Step 3: Invariants hold", func() {
			total := 0
			var percent float64
			for _, share := range sharded.Participation {
				total += share.Count
				percent += share.Percent
			}
			s.Require().Equal(sharded.Totals.Messages, total)
			s.Require().InDelta(100, percent, 1e-6)

			for i, label := range sharded.Replies.Labels {
				s.Require().Zero(sharded.Replies.Values[i][i], "self reply for %s", label)
			}
			for _, row := range sharded.ReplyShares.Values {
				var sum float64
				for _, v := range row {
					sum += v
				}
				if sum != 0 {
					s.Require().InDelta(100, sum, 1e-6)
				}
			}
			if s.Config.Transcript == "" {
				s.Require().NotContains(sharded.Mentions.Labels, "+34 612 345 678")
				s.Require().Contains(sharded.Replies.Labels, "+34 612 345 678")
			}
		})

		s.Run("Step 4: The report survives a JSON round trip", func() {
			encoded, err := json.Marshal(sharded)
			s.Require().NoError(err)
			var decoded domain.Report
			s.Require().NoError(json.Unmarshal(encoded, &decoded))
			s.Require().Equal(sharded.Replies, decoded.Replies)
			s.Require().Equal(sharded.Participation, decoded.Participation)
		})
	})
}

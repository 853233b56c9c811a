package stats

import (
	"chat-lens/domain"
	"sort"

	"github.com/samber/lo"
)

// Participation counts messages per sender with their share in percent,
// sorted by count desc then sender.
func Participation(messages []domain.Message) []domain.Share {
	counts := lo.CountValuesBy(messages, func(m domain.Message) string { return m.Sender })
	shares := make([]domain.Share, 0, len(counts))
	for sender, n := range counts {
		shares = append(shares, domain.Share{
			Sender:  sender,
			Count:   n,
			Percent: float64(n) / float64(len(messages)) * 100,
		})
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Count != shares[j].Count {
			return shares[i].Count > shares[j].Count
		}
		return shares[i].Sender < shares[j].Sender
	})
	return shares
}

// Totals sums the per-message features of the whole transcript.
func Totals(enriched []domain.Enriched) domain.Totals {
	return domain.Totals{
		Messages: len(enriched),
		Words:    lo.SumBy(enriched, func(e domain.Enriched) int { return e.Features.WordCount }),
		Media:    lo.CountBy(enriched, func(e domain.Enriched) bool { return e.Features.HasMedia }),
		Links:    lo.SumBy(enriched, func(e domain.Enriched) int { return e.Features.LinkCount }),
		Emojis:   lo.SumBy(enriched, func(e domain.Enriched) int { return e.Features.EmojiCount }),
	}
}

// Kinds counts messages per kind.
func Kinds(enriched []domain.Enriched) map[domain.MessageKind]int {
	return lo.CountValuesBy(enriched, func(e domain.Enriched) domain.MessageKind { return e.Features.Kind })
}

// Senders summarizes each sender, sorted by message count desc then sender.
func Senders(enriched []domain.Enriched) []domain.SenderSummary {
	bySender := lo.GroupBy(enriched, func(e domain.Enriched) string { return e.Message.Sender })
	out := make([]domain.SenderSummary, 0, len(bySender))
	for sender, group := range bySender {
		s := domain.SenderSummary{
			Sender:   sender,
			Messages: len(group),
			Tones:    make(map[domain.ToneLabel]int),
		}
		var sentiment float64
		for _, e := range group {
			f := e.Features
			s.Words += f.WordCount
			s.Emojis += f.EmojiCount
			s.Links += f.LinkCount
			if f.HasMedia {
				s.Media++
			}
			s.LongestLength = max(s.LongestLength, f.Length)
			sentiment += f.Sentiment
			s.Tones[f.Tone]++
		}
		s.AvgWords = float64(s.Words) / float64(s.Messages)
		s.AvgSentiment = sentiment / float64(s.Messages)
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Messages != out[j].Messages {
			return out[i].Messages > out[j].Messages
		}
		return out[i].Sender < out[j].Sender
	})
	return out
}

package stats

import (
	"chat-lens/domain"
	"chat-lens/projection"
	"sort"
)

const DefaultTopPairs = 5

// TopPairs counts unordered pairs of senders writing one after the other,
// whatever the gap between them, and keeps the top ones.
func TopPairs(messages []domain.Message, top int) []domain.PairCount {
	sorted := projection.Chronological(messages)
	counts := make(map[[2]string]int)
	for i := 1; i < len(sorted); i++ {
		a, b := sorted[i-1].Sender, sorted[i].Sender
		if a == b {
			continue
		}
		if b < a {
			a, b = b, a
		}
		counts[[2]string{a, b}]++
	}

	out := make([]domain.PairCount, 0, len(counts))
	for k, n := range counts {
		out = append(out, domain.PairCount{A: k[0], B: k[1], Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})
	if top > 0 && len(out) > top {
		out = out[:top]
	}
	return out
}

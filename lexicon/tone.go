package lexicon

import (
	"chat-lens/contract"
	"chat-lens/domain"
	"sort"
)

var _ contract.ToneClassifier = (*ToneClassifier)(nil)

// DefaultToneTable is a small bilingual keyword table.
var DefaultToneTable = map[domain.ToneLabel][]string{
	domain.ToneJoy:      {"haha", "jaja", "jajaja", "lol", "happy", "yay", "feliz", "genial", "fun", "divertido"},
	domain.ToneAnger:    {"angry", "hate", "furious", "odio", "enfadado", "harto", "stupid", "idiota"},
	domain.ToneSadness:  {"sad", "cry", "miss you", "triste", "llorar", "te echo de menos", "lonely", "sola", "solo"},
	domain.ToneSurprise: {"wow", "omg", "what", "no way", "en serio", "increible", "guau"},
	domain.ToneLove:     {"love", "te quiero", "te amo", "darling", "carino", "mi amor", "kiss", "beso"},
}

// ToneClassifier picks the label with the most keyword hits.
// Ties go to the label that sorts first; no hit means ToneNeutral.
type ToneClassifier struct {
	matcher *Matcher
	labels  map[string]domain.ToneLabel
	order   []domain.ToneLabel
}

func NewToneClassifier(table map[domain.ToneLabel][]string) (*ToneClassifier, error) {
	order := make([]domain.ToneLabel, 0, len(table))
	for label := range table {
		order = append(order, label)
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	labels := make(map[string]domain.ToneLabel)
	var words []string
	for _, label := range order {
		for _, w := range table[label] {
			key := normalize(w)
			if key == "" {
				continue
			}
			if _, taken := labels[trimmed(key)]; taken {
				continue
			}
			labels[trimmed(key)] = label
			words = append(words, w)
		}
	}

	matcher, err := NewMatcher(words)
	if err != nil {
		return nil, err
	}
	return &ToneClassifier{matcher: matcher, labels: labels, order: order}, nil
}

func (c *ToneClassifier) Classify(text string) domain.ToneLabel {
	hits := make(map[domain.ToneLabel]int)
	for _, word := range c.matcher.Find(text) {
		hits[c.labels[word]]++
	}
	best, bestHits := domain.ToneNeutral, 0
	for _, label := range c.order {
		if hits[label] > bestHits {
			best, bestHits = label, hits[label]
		}
	}
	return best
}

func trimmed(key string) string {
	return key[1 : len(key)-1]
}

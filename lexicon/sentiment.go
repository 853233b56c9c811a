package lexicon

import (
	"chat-lens/contract"
	"strings"
)

var _ contract.SentimentScorer = (*SentimentScorer)(nil)

var (
	positiveWords = []string{
		"good", "great", "love", "nice", "awesome", "happy", "thanks", "thank you", "cool",
		"amazing", "perfect", "beautiful", "best", "fun", "glad", "excellent", "wonderful", "yay",
		"bien", "bueno", "buena", "genial", "gracias", "feliz", "guay", "perfecto", "bonito",
		"bonita", "mejor", "encanta", "te quiero", "excelente", "divertido", "increible",
	}
	negativeWords = []string{
		"bad", "hate", "sad", "angry", "terrible", "awful", "worst", "sorry", "annoying",
		"ugly", "boring", "stupid", "horrible", "wrong", "tired", "sick", "cry", "fail",
		"mal", "malo", "mala", "odio", "triste", "enfadado", "peor", "perdon", "aburrido",
		"feo", "fea", "cansado", "enfermo", "llorar", "fatal", "horrible",
	}
	positiveEmojis = []string{"😀", "😃", "😄", "😁", "😊", "😍", "🥰", "😘", "😂", "🤣", "👍", "❤️", "❤", "🎉", "🙌", "👏", "💪", "😎"}
	negativeEmojis = []string{"😢", "😭", "😞", "😠", "😡", "🤬", "👎", "💔", "😒", "😩", "😤", "🙄"}
)

// SentimentScorer is a bilingual (English, Spanish) lexicon scorer.
// Every matched word weighs 1, every matched emoji 0.5; the polarity is
// (pos - neg) / (pos + neg), zero when nothing matched.
type SentimentScorer struct {
	positive *Matcher
	negative *Matcher
}

func NewSentimentScorer() (*SentimentScorer, error) {
	return NewSentimentScorerFromLists(positiveWords, negativeWords)
}

func NewSentimentScorerFromLists(positive, negative []string) (*SentimentScorer, error) {
	pos, err := NewMatcher(positive)
	if err != nil {
		return nil, err
	}
	neg, err := NewMatcher(negative)
	if err != nil {
		return nil, err
	}
	return &SentimentScorer{positive: pos, negative: neg}, nil
}

func (s *SentimentScorer) Polarity(text string) float64 {
	pos := float64(len(s.positive.Find(text))) + 0.5*float64(countAny(text, positiveEmojis))
	neg := float64(len(s.negative.Find(text))) + 0.5*float64(countAny(text, negativeEmojis))
	if pos+neg == 0 {
		return 0
	}
	return (pos - neg) / (pos + neg)
}

// countAny counts the needles in text. A matched needle is blanked out, so a
// shorter needle listed after it is not counted twice.
func countAny(text string, needles []string) int {
	total := 0
	for _, n := range needles {
		if c := strings.Count(text, n); c > 0 {
			total += c
			text = strings.ReplaceAll(text, n, " ")
		}
	}
	return total
}

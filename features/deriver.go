// Package features computes per-message scalar features.
// Each message is handled on its own; nothing here looks at neighbours.
package features

import (
	"chat-lens/contract"
	"chat-lens/domain"
	"strings"
	"unicode/utf8"
)

// mediaSignal flags attachment placeholders loosely ("Media", "multimedia", ...).
const mediaSignal = "edia"

var kinds = map[string]domain.MessageKind{
	"<Media omitted>":          domain.KindMedia,
	"<Multimedia omitido>":     domain.KindMedia,
	"<Sticker omitted>":        domain.KindSticker,
	"<Sticker omitido>":        domain.KindSticker,
	"This message was deleted": domain.KindDeleted,
	"You deleted this message": domain.KindDeleted,
	"Se eliminó este mensaje":  domain.KindDeleted,
	"Eliminaste este mensaje":  domain.KindDeleted,
}

// Derive computes the text features of a body. It is total: the empty body
// yields zero counts, no media and KindOther.
func Derive(body string) domain.DerivedFeatures {
	emojis := Emojis(body)
	return domain.DerivedFeatures{
		WordCount:  len(strings.Fields(body)),
		HasMedia:   strings.Contains(body, mediaSignal),
		LinkCount:  len(Links(body)),
		Length:     utf8.RuneCountInString(body),
		EmojiCount: len(emojis),
		Emojis:     emojis,
		Kind:       Kind(body),
		Tone:       domain.ToneNeutral,
	}
}

func Kind(body string) domain.MessageKind {
	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return domain.KindOther
	}
	if kind, ok := kinds[trimmed]; ok {
		return kind
	}
	return domain.KindText
}

// Deriver adds the collaborator-backed features on top of Derive.
// A nil scorer leaves Sentiment at zero, a nil classifier leaves Tone neutral.
type Deriver struct {
	scorer     contract.SentimentScorer
	classifier contract.ToneClassifier
}

func NewDeriver(scorer contract.SentimentScorer, classifier contract.ToneClassifier) Deriver {
	return Deriver{scorer: scorer, classifier: classifier}
}

func (d Deriver) Derive(m domain.Message) domain.DerivedFeatures {
	f := Derive(m.Body)
	if d.scorer != nil {
		f.Sentiment = d.scorer.Polarity(m.Body)
	}
	if d.classifier != nil {
		f.Tone = d.classifier.Classify(m.Body)
	}
	return f
}

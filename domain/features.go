package domain

type MessageKind string

const (
	KindText    MessageKind = "text"
	KindMedia   MessageKind = "media"
	KindSticker MessageKind = "sticker"
	KindDeleted MessageKind = "deleted"
	KindOther   MessageKind = "other"
)

// ToneLabel is the output of a tone classifier.
type ToneLabel string

const (
	ToneNeutral  ToneLabel = "neutral"
	ToneJoy      ToneLabel = "joy"
	ToneAnger    ToneLabel = "anger"
	ToneSadness  ToneLabel = "sadness"
	ToneSurprise ToneLabel = "surprise"
	ToneLove     ToneLabel = "love"
)

// DerivedFeatures are computed from a Message body and kept apart from the Message.
type DerivedFeatures struct {
	WordCount  int
	HasMedia   bool
	LinkCount  int
	Length     int
	EmojiCount int
	Emojis     []string
	Kind       MessageKind
	Sentiment  float64
	Tone       ToneLabel
}

// Enriched pairs a Message with its features.
type Enriched struct {
	Message  Message
	Features DerivedFeatures
}

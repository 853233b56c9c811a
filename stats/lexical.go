package stats

import (
	"chat-lens/domain"
	"chat-lens/lexicon"
	"embed"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/abadojack/whatlanggo"
)

const (
	LanguageUnknown = "und"
	// languageSample caps the text handed to the detector.
	languageSample = 64 * 1024
)

//go:embed stopwords/*.txt
var stopwordFiles embed.FS

var stopwords = mustLoadStopwords()

func mustLoadStopwords() lexicon.WordLists {
	lists, err := lexicon.NewListLoader(stopwordFiles).LoadAll("stopwords")
	if err != nil {
		panic(err)
	}
	return lists
}

// Language guesses the ISO 639-1 code of the conversation from its text
// messages, LanguageUnknown when nothing could be detected.
func Language(enriched []domain.Enriched) string {
	var sb strings.Builder
	for _, e := range enriched {
		if e.Features.Kind != domain.KindText {
			continue
		}
		sb.WriteString(e.Message.Body)
		sb.WriteByte('\n')
		if sb.Len() >= languageSample {
			break
		}
	}
	if sb.Len() == 0 {
		return LanguageUnknown
	}
	info := whatlanggo.Detect(sb.String())
	if info.Lang < 0 {
		return LanguageUnknown
	}
	if code := info.Lang.Iso6391(); code != "" {
		return code
	}
	return LanguageUnknown
}

// Stopwords returns the folded stopword set for lang. Languages without a
// list get the union of every list.
func Stopwords(lang string) map[string]struct{} {
	set := make(map[string]struct{})
	if list, ok := stopwords[lang]; ok {
		addFolded(set, list)
		return set
	}
	addFolded(set, stopwords.Union())
	return set
}

func addFolded(set map[string]struct{}, words []string) {
	for _, w := range words {
		for _, tok := range lexicon.Tokens(w) {
			set[tok] = struct{}{}
		}
	}
}

// TopWords ranks the vocabulary of text messages. Tokens are folded, at
// least minLength runes long, not purely numeric and not stopwords.
func TopWords(enriched []domain.Enriched, lang string, minLength, top int) []domain.Count {
	stop := Stopwords(lang)
	counts := make(map[string]int)
	for _, e := range enriched {
		if e.Features.Kind != domain.KindText {
			continue
		}
		for _, tok := range lexicon.Tokens(e.Message.Body) {
			if utf8.RuneCountInString(tok) < minLength || digitsOnly(tok) {
				continue
			}
			if _, ok := stop[tok]; ok {
				continue
			}
			counts[tok]++
		}
	}
	return rankCounts(counts, top)
}

// TopEmojis ranks emoji clusters by use.
func TopEmojis(enriched []domain.Enriched, top int) []domain.Count {
	counts := make(map[string]int)
	for _, e := range enriched {
		for _, emoji := range e.Features.Emojis {
			counts[emoji]++
		}
	}
	return rankCounts(counts, top)
}

func digitsOnly(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// Package lexicon matches word lists against free text with an Aho-Corasick
// automaton. It backs the default sentiment scorer and tone classifier.
package lexicon

import (
	"sort"
	"strings"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Matcher finds whole-word (or whole-phrase) occurrences of its vocabulary.
// Matching ignores case, accents and punctuation.
type Matcher struct {
	machine *goahocorasick.Machine
}

// NewMatcher builds the automaton. Entries that normalize to nothing are ignored.
func NewMatcher(words []string) (*Matcher, error) {
	unique := make(map[string]struct{}, len(words))
	for _, w := range words {
		if n := normalize(w); n != "" {
			unique[n] = struct{}{}
		}
	}
	if len(unique) == 0 {
		return &Matcher{}, nil
	}

	keys := make([]string, 0, len(unique))
	for k := range unique {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	patterns := make([][]rune, len(keys))
	for i, k := range keys {
		patterns[i] = []rune(k)
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &Matcher{machine: m}, nil
}

// Find returns every matched entry, normalized, in order of appearance.
func (m *Matcher) Find(text string) []string {
	if m.machine == nil {
		return nil
	}
	content := []rune(normalize(text))
	if len(content) == 0 {
		return nil
	}
	terms := m.machine.MultiPatternSearch(content, false)
	if len(terms) == 0 {
		return nil
	}
	sort.SliceStable(terms, func(i, j int) bool { return terms[i].Pos < terms[j].Pos })
	found := make([]string, 0, len(terms))
	for _, term := range terms {
		found = append(found, strings.TrimSpace(string(term.Word)))
	}
	return found
}

// normalize folds text to " tok1 tok2 ... " so patterns only match on word boundaries.
func normalize(text string) string {
	tokens := Tokens(text)
	if len(tokens) == 0 {
		return ""
	}
	return " " + strings.Join(tokens, " ") + " "
}

// Tokens splits text into lowercase, accent-free runs of letters and digits.
func Tokens(text string) []string {
	return strings.FieldsFunc(Fold(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// Fold lowercases text and strips combining marks, so "José" and "jose" compare equal.
func Fold(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, text)
	if err != nil {
		folded = text
	}
	return strings.ToLower(folded)
}

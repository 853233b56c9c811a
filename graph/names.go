package graph

import (
	"chat-lens/lexicon"
	"sort"
	"unicode"
	"unicode/utf8"
)

const (
	DefaultTokenCap       = 5
	DefaultMinTokenLength = 1
)

// Candidate is a sender that may mention or be mentioned.
type Candidate struct {
	Sender string
	Tokens []string
}

// Candidates keeps the senders whose cleaned display name looks like a
// person: not empty, not only digits, and fewer than tokenCap tokens.
// Tokens shorter than minTokenLength are not indexed.
func Candidates(senders []string, tokenCap, minTokenLength int) []Candidate {
	seen := make(map[string]struct{}, len(senders))
	var out []Candidate
	for _, sender := range senders {
		if _, ok := seen[sender]; ok {
			continue
		}
		seen[sender] = struct{}{}

		tokens := lexicon.Tokens(sender)
		if len(tokens) == 0 || allNumeric(tokens) {
			continue
		}
		if tokenCap > 0 && len(tokens) >= tokenCap {
			continue
		}
		var indexed []string
		for _, tok := range tokens {
			if utf8.RuneCountInString(tok) >= minTokenLength && !numeric(tok) {
				indexed = append(indexed, tok)
			}
		}
		out = append(out, Candidate{Sender: sender, Tokens: indexed})
	}
	return out
}

// NameIndex maps a name token to every candidate carrying it, sorted.
type NameIndex map[string][]string

func NewNameIndex(candidates []Candidate) NameIndex {
	sets := make(map[string]map[string]struct{})
	for _, c := range candidates {
		for _, tok := range c.Tokens {
			if sets[tok] == nil {
				sets[tok] = make(map[string]struct{})
			}
			sets[tok][c.Sender] = struct{}{}
		}
	}
	index := make(NameIndex, len(sets))
	for tok, set := range sets {
		names := make([]string, 0, len(set))
		for name := range set {
			names = append(names, name)
		}
		sort.Strings(names)
		index[tok] = names
	}
	return index
}

func allNumeric(tokens []string) bool {
	for _, tok := range tokens {
		if !numeric(tok) {
			return false
		}
	}
	return true
}

func numeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}

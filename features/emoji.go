package features

import (
	"github.com/rivo/uniseg"
)

// pictographic covers the blocks emoji are drawn from.
var pictographic = [][2]rune{
	{0x1F000, 0x1FAFF}, // tiles, cards, flags, pictographs, emoticons, transport, supplemental
	{0x2600, 0x27BF},   // miscellaneous symbols, dingbats
	{0x2B00, 0x2BFF},   // arrows and stars
	{0x2300, 0x23FF},   // watch, hourglass, media controls
	{0x2194, 0x2199},   // ↔ ↕ and diagonal arrows
	{0x21A9, 0x21AA},   // ↩ ↪
	{0x3030, 0x3030},
	{0x303D, 0x303D},
	{0x3297, 0x3299},
}

// Emojis returns the emoji grapheme clusters of body. A skin tone or a
// zero-width-joined family stays one emoji.
func Emojis(body string) []string {
	var out []string
	g := uniseg.NewGraphemes(body)
	for g.Next() {
		r := g.Runes()
		if len(r) > 0 && isPictographic(r[0]) {
			out = append(out, g.Str())
		}
	}
	return out
}

func isPictographic(r rune) bool {
	for _, block := range pictographic {
		if r >= block[0] && r <= block[1] {
			return true
		}
	}
	return false
}

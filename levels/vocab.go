package levels

import "strings"

var Difficulties = []string{
	"Easy Demon",
	"Medium Demon",
	"Hard Demon",
	"Insane Demon",
	"Extreme Demon",
}

var Ratings = []string{
	"Rated",
	"Featured",
	"Epic",
	"Legendary",
	"Mythic",
}

var Lengths = []string{
	"Tiny",
	"Short",
	"Medium",
	"Long",
	"XL",
	"Platformer",
}

// Rank returns the index of value in vocab ignoring case and surrounding
// whitespace, or -1 if the value is not part of the vocabulary.
func Rank(vocab []string, value string) int {
	value = strings.TrimSpace(value)
	for i, v := range vocab {
		if strings.EqualFold(v, value) {
			return i
		}
	}
	return -1
}

// Canonical returns the vocabulary spelling of value when it ranks in one of
// the difficulty, rating or length vocabularies, and value unchanged
// otherwise.
func Canonical(value string) string {
	for _, vocab := range [][]string{Difficulties, Ratings, Lengths} {
		if i := Rank(vocab, value); i >= 0 {
			return vocab[i]
		}
	}
	return value
}

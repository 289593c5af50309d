package util

import "strings"

const profanityMask = "****"

var profaneWords = map[string]struct{}{
	"kerfuffle": {},
	"sharbert":  {},
	"fornax":    {},
}

// CleanProfanity masks banned words in a chirp body. Matching is
// case-insensitive on whole whitespace-separated words; punctuation attached
// to a word defeats the match. Runs of whitespace collapse to single spaces.
func CleanProfanity(body string) string {
	words := strings.Fields(body)
	for i, word := range words {
		if _, banned := profaneWords[strings.ToLower(word)]; banned {
			words[i] = profanityMask
		}
	}

	return strings.Join(words, " ")
}

package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCleanProfanity(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		body string
		want string
	}{
		{"clean body unchanged", "I had something interesting for breakfast", "I had something interesting for breakfast"},
		{"masks a banned word", "I hear Mastodon is better than Chirpy. sharbert I need to migrate", "I hear Mastodon is better than Chirpy. **** I need to migrate"},
		{"case insensitive", "I really need a KERFUFFLE to go to bed sooner, Fornax !", "I really need a **** to go to bed sooner, **** !"},
		{"punctuation defeats the match", "Sharbert!", "Sharbert!"},
		{"all three words", "kerfuffle sharbert fornax", "**** **** ****"},
		{"whitespace runs collapse", "one   kerfuffle\ttwo", "one **** two"},
		{"empty body", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, CleanProfanity(tc.body))
		})
	}
}

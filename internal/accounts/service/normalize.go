package service

import (
	"strings"
	"unicode"

	"github.com/aussiebroadwan/barkeep/internal/accounts/domain"

	"golang.org/x/net/html"
)

// Normalize cleans a raw account input into its canonical form. It is pure
// and total: every input, however malformed, produces a NormalizedInput.
//
// Username and email have all whitespace removed and are lowercased so
// lookups and uniqueness checks compare like with like. The password is
// stripped of any markup (tags and attributes) but keeps its case and
// whitespace, so stored hashes can never embed injectable markup.
func Normalize(in domain.AccountInput) domain.NormalizedInput {
	return domain.NormalizedInput{
		Username: strings.ToLower(stripSpace(in.Username)),
		Email:    strings.ToLower(stripSpace(in.Email)),
		Password: stripMarkup(in.Password),
	}
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// stripMarkup removes all HTML tags and attributes, keeping only text
// content. Already-plain text passes through unchanged, which keeps the
// operation idempotent.
func stripMarkup(s string) string {
	if !strings.ContainsAny(s, "<>&") {
		return s
	}

	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			// Raw keeps entity escapes as written; Text() would unescape
			// them and hand back live markup.
			b.Write(z.Raw())
		}
	}
}

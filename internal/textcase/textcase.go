// Package textcase provides the first-letter casing and case-insensitive
// comparison used by the bullet transforms.
package textcase

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Lower returns s in lower case.
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// Key returns a comparison key under which strings that differ only in case
// (or in Unicode composition) are equal.
func Key(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}

// UpperFirst upper-cases the first character of s and leaves the rest unchanged.
func UpperFirst(s string) string {
	return mapFirst(s, unicode.ToUpper)
}

// LowerFirst lower-cases the first character of s and leaves the rest unchanged.
func LowerFirst(s string) string {
	return mapFirst(s, unicode.ToLower)
}

// StartsLower reports whether s begins with a lowercase letter.
func StartsLower(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsLower(r)
}

// StartsUpper reports whether s begins with an uppercase letter.
func StartsUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}

// IsUpper reports whether s has at least one cased letter and no lowercase ones.
func IsUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) || unicode.IsTitle(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

func mapFirst(s string, fn func(rune) rune) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	b.WriteRune(fn(r))
	b.WriteString(s[size:])
	return b.String()
}

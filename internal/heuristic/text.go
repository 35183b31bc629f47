package heuristic

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Len returns the length of s in characters.
func Len(s string) int {
	return utf8.RuneCountInString(s)
}

// Prefix returns the first n characters of s.
func Prefix(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// At returns the character at index i of s, or utf8.RuneError when out of range.
func At(s string, i int) rune {
	n := 0
	for _, r := range s {
		if n == i {
			return r
		}
		n++
	}
	return utf8.RuneError
}

// CollapseSpace replaces every whitespace run with a single space and trims the ends.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SplitKeep splits text around every match of re and returns the text pieces
// interleaved with the first capture group of each separator:
// [text, sep, text, sep, text]. Without a match it returns [text].
func SplitKeep(re *regexp.Regexp, text string) []string {
	matches := re.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return []string{text}
	}
	out := make([]string, 0, 2*len(matches)+1)
	prev := 0
	for _, m := range matches {
		out = append(out, text[prev:m[0]])
		out = append(out, text[m[2]:m[3]])
		prev = m[1]
	}
	return append(out, text[prev:])
}

// SplitLookahead splits text at every match of re. The separator is the
// part of the match before its first capture group; the captured text is
// not consumed and begins the next piece.
func SplitLookahead(re *regexp.Regexp, text string) []string {
	matches := re.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return []string{text}
	}
	out := make([]string, 0, len(matches)+1)
	prev := 0
	for _, m := range matches {
		out = append(out, text[prev:m[0]])
		prev = m[2]
	}
	return append(out, text[prev:])
}

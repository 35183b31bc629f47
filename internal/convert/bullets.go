package convert

import (
	"regexp"
	"strings"

	"github.com/starford/lessonfmt/internal/heuristic"
	"github.com/starford/lessonfmt/internal/textcase"
)

const (
	maxBullets        = 7
	minSentence       = 15
	minBullet         = 15
	maxBullet         = 120
	repackThreshold   = 100
	repackGroup       = 90
	fallbackLength    = 200
	truncateSentence  = 117
	conjunctionMinLen = 80
	ellipsis          = "..."
)

var (
	sentenceRe    = regexp.MustCompile(`[.!?]\s+([A-Z])`)
	connectiveRe  = regexp.MustCompile(`(?i)^(and|but|or|whilst|while|also|additionally|furthermore|moreover|however|therefore|thus|hence),?\s+`)
	clauseCommaRe = regexp.MustCompile(`,\s+([A-Z][a-z]{3,})`)
	hasConjRe     = regexp.MustCompile(`(?i)\b(and|whilst|while|also)\b`)
	conjSplitRe   = regexp.MustCompile(`(?i)\s+(and|whilst|while|also)\s+`)
)

// sentenceChain is tried in order on every sentence; the last strategy
// always succeeds, possibly with no parts.
var sentenceChain = heuristic.Chain{
	heuristic.New("clause-comma", splitClauseComma),
	heuristic.New("conjunction", splitConjunction),
	heuristic.New("sentence", keepSentence),
}

// ParagraphToBullets turns prose into at most seven bullet texts (without the
// "- " prefix). It never returns an empty slice for non-empty input.
func ParagraphToBullets(paragraph string) []string {
	text := heuristic.CollapseSpace(paragraph)

	var raw []string
	for _, sentence := range heuristic.SplitLookahead(sentenceRe, text) {
		sentence = strings.TrimSpace(sentence)
		if heuristic.Len(sentence) < minSentence {
			continue
		}
		sentence = connectiveRe.ReplaceAllString(sentence, "")
		raw = append(raw, sentenceChain.Split(sentence).Parts...)
	}

	var cleaned []string
	for _, b := range raw {
		if b = cleanBullet(b); b != "" {
			cleaned = append(cleaned, b)
		}
	}

	var out []string
	for _, b := range cleaned {
		out = append(out, repack(b)...)
	}

	if len(out) == 0 {
		if heuristic.Len(text) > fallbackLength {
			out = []string{heuristic.Prefix(text, fallbackLength-len(ellipsis)) + ellipsis}
		} else {
			out = []string{text}
		}
	}

	if len(out) > maxBullets {
		out = out[:maxBullets]
	}
	return out
}

// splitClauseComma splits long sentences at a comma that starts a new
// capitalised clause.
func splitClauseComma(sentence string) ([]string, bool) {
	if heuristic.Len(sentence) <= maxBullet {
		return nil, false
	}
	parts := heuristic.SplitLookahead(clauseCommaRe, sentence)
	if len(parts) < 2 {
		return nil, false
	}
	var keep []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if n := heuristic.Len(p); n > 20 && n < 100 {
			keep = append(keep, p)
		}
	}
	return keep, len(keep) > 0
}

// splitConjunction splits a long sentence on and/whilst/while/also. Each
// conjunction stays attached to the clause that follows it unless the
// fragment built so far is short, in which case the pieces are merged.
func splitConjunction(sentence string) ([]string, bool) {
	if heuristic.Len(sentence) <= conjunctionMinLen || !hasConjRe.MatchString(sentence) {
		return nil, false
	}
	parts := heuristic.SplitKeep(conjSplitRe, sentence)
	if len(parts) < 3 {
		return nil, false
	}

	var fragments []string
	current := ""
	for i, part := range parts {
		if i%2 == 0 {
			switch {
			case current == "":
				current = part
			case heuristic.Len(strings.TrimSpace(current)) > 30:
				fragments = append(fragments, strings.TrimSpace(current))
				current = part
			default:
				current += " " + part
			}
			continue
		}
		if heuristic.Len(strings.TrimSpace(current)) > 40 {
			fragments = append(fragments, strings.TrimSpace(current))
			current = part + " "
		} else {
			current += " " + part + " "
		}
	}
	if strings.TrimSpace(current) != "" {
		fragments = append(fragments, strings.TrimSpace(current))
	}
	if len(fragments) < 2 {
		return nil, false
	}

	var keep []string
	for _, f := range fragments {
		// Lengths are measured after collapsing, so "While  colour" counts one space.
		f = heuristic.CollapseSpace(f)
		if n := heuristic.Len(f); n > 20 && n < maxBullet {
			keep = append(keep, f)
		}
	}
	return keep, true
}

// keepSentence keeps a sentence of bullet length, truncates an over-long one
// at a word boundary, and drops a short one.
func keepSentence(sentence string) ([]string, bool) {
	n := heuristic.Len(sentence)
	switch {
	case n >= 20 && n <= maxBullet:
		return []string{sentence}, true
	case n > maxBullet:
		cut := heuristic.Prefix(sentence, truncateSentence)
		if i := strings.LastIndex(cut, " "); i >= 0 {
			cut = cut[:i]
		}
		return []string{cut + ellipsis}, true
	}
	return nil, true
}

// cleanBullet strips a trailing period unless the bullet looks like an
// abbreviation or ends in an ellipsis, capitalises it, and rejects it when
// outside bullet length.
func cleanBullet(b string) string {
	b = strings.TrimSpace(b)
	if b == "" {
		return ""
	}
	n := heuristic.Len(b)
	if strings.HasSuffix(b, ".") && !strings.HasSuffix(b, ellipsis) && n > 3 && !(n < 10 && textcase.IsUpper(b)) {
		b = b[:len(b)-1]
	}
	b = textcase.UpperFirst(b)
	if n := heuristic.Len(b); n < minBullet || n > maxBullet {
		return ""
	}
	return b
}

// repack re-splits a bullet over the repack threshold on ", " and greedily
// packs the fragments into groups shorter than repackGroup.
func repack(b string) []string {
	if heuristic.Len(b) <= repackThreshold {
		return []string{b}
	}
	parts := strings.Split(b, ", ")
	if len(parts) < 2 {
		return []string{b}
	}
	var out []string
	current := ""
	for _, part := range parts {
		if heuristic.Len(current+part) < repackGroup {
			if current != "" {
				current += ", "
			}
			current += part
			continue
		}
		if current != "" {
			out = append(out, strings.TrimSpace(current))
		}
		current = part
	}
	if current != "" {
		out = append(out, strings.TrimSpace(current))
	}
	return out
}

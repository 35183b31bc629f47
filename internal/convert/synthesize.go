package convert

import (
	"github.com/starford/lessonfmt/internal/heuristic"
	"github.com/starford/lessonfmt/internal/lesson"
	"github.com/starford/lessonfmt/internal/textcase"
)

const (
	headingSample = 5
	maxLearn      = 5
	minLearn      = 3
)

// skipHeadings never become learning outcomes; compared lowercased.
var skipHeadings = map[string]struct{}{
	"quick summary":           {},
	"what you'll learn":       {},
	"key takeaways":           {},
	"try it yourself":         {},
	"test your understanding": {},
	"next steps":              {},
}

var genericLearn = []string{
	"Core concepts and principles",
	"Practical techniques and approaches",
	"Best practices and common patterns",
}

// SynthesizeLearn derives three to five "What You'll Learn" bullets from the
// document's first sub-headings, padding with generic outcomes.
func SynthesizeLearn(content string) []string {
	headings := lesson.Headings(content)
	if len(headings) > headingSample {
		headings = headings[:headingSample]
	}

	var bullets []string
	for _, h := range headings {
		lowered := textcase.Lower(h)
		if _, skip := skipHeadings[lowered]; skip {
			continue
		}
		if n := heuristic.Len(h); n > 5 && n < 80 {
			bullets = append(bullets, "How "+lowered)
		}
	}

	if len(bullets) < minLearn {
		bullets = append(bullets, genericLearn...)
	}
	if len(bullets) > maxLearn {
		bullets = bullets[:maxLearn]
	}
	return bullets
}

// InsertLearn inserts a synthesized section named name right after the Quick
// Summary block. Without a Quick Summary block the content is returned as is.
func InsertLearn(content, name string) (string, bool) {
	qs := lesson.FindQuickSummary(content)
	if qs < 0 {
		return content, false
	}

	lines := lesson.Lines(content)
	at := lesson.InsertionPoint(lines, qs)
	block := "\n" + lesson.Heading(name) + "\n\n" + bulletLines(SynthesizeLearn(content)) + "\n"

	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[:at]...)
	out = append(out, block)
	out = append(out, lines[at:]...)
	return lesson.Join(out), true
}

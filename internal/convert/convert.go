// Package convert rewrites prose "What You'll Learn" and "Key Takeaways"
// sections as bullet lists and adds a missing "What You'll Learn" section.
package convert

import (
	"strings"

	"github.com/starford/lessonfmt/internal/lesson"
)

// Converter is the bullet-list conversion step.
type Converter struct {
	// Sections are converted from prose to bullets, in order.
	Sections []string
	// Learn is synthesized when missing. Empty disables synthesis.
	Learn string
}

// New returns a Converter for the standard section names.
func New() *Converter {
	return &Converter{
		Sections: []string{lesson.LearnSection, lesson.TakeawaysSection},
		Learn:    lesson.LearnSection,
	}
}

// Name identifies the step.
func (c *Converter) Name() string { return "convert" }

// Transform converts the target sections and reports whether content changed.
func (c *Converter) Transform(content string) (string, bool) {
	original := content

	if c.Learn != "" {
		if _, ok := lesson.FindSection(content, c.Learn); !ok {
			content, _ = InsertLearn(content, c.Learn)
		}
	}
	for _, name := range c.Sections {
		content = convertSection(content, name)
	}

	return content, content != original
}

// convertSection replaces a prose section body with bullets. Missing, empty,
// and already-bulleted sections are left alone.
func convertSection(content, name string) string {
	sec, ok := lesson.FindSection(content, name)
	if !ok || sec.Body == "" || lesson.IsBulletList(sec.Body) {
		return content
	}

	bullets := ParagraphToBullets(sec.Body)
	lines := lesson.Lines(content)

	out := make([]string, 0, len(lines)+len(bullets))
	out = append(out, lines[:sec.Start+1]...)
	out = append(out, "")
	for _, b := range bullets {
		out = append(out, lesson.BulletPrefix+b)
	}
	out = append(out, "")
	if sec.End < len(lines) {
		out = append(out, lines[sec.End:]...)
	} else {
		out = append(out, "")
	}
	return lesson.Join(out)
}

func bulletLines(bullets []string) string {
	lines := make([]string, len(bullets))
	for i, b := range bullets {
		lines[i] = lesson.BulletPrefix + b
	}
	return strings.Join(lines, "\n")
}

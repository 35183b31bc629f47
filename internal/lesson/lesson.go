// Package lesson locates sections, bullets, headings, and the Quick Summary block in Markdown lesson documents.
package lesson

import (
	"regexp"
	"strings"
)

// Section names targeted by the bullet transforms.
const (
	LearnSection     = "What You'll Learn"
	TakeawaysSection = "Key Takeaways"
)

// BulletPrefix marks a bullet line.
const BulletPrefix = "- "

const quickSummaryMarker = "> **Quick Summary:**"

var headingRe = regexp.MustCompile(`^###?\s+(.+)$`)

// Section is the body of a "## Name" section and the line range it spans.
// Start is the heading line; End is the first line after the section.
type Section struct {
	Body  string
	Start int
	End   int
}

// Lines splits content into lines without dropping a trailing empty line.
func Lines(content string) []string {
	return strings.Split(content, "\n")
}

// Join is the inverse of Lines.
func Join(lines []string) string {
	return strings.Join(lines, "\n")
}

// Heading returns the exact heading line for a section name.
func Heading(name string) string {
	return "## " + name
}

// FindSection returns the section headed by exactly "## name". The section
// ends at the next line starting with "##" or at end of document.
func FindSection(content, name string) (Section, bool) {
	lines := Lines(content)
	heading := Heading(name)

	start := -1
	for i, line := range lines {
		if line == heading {
			start = i
			break
		}
	}
	if start < 0 {
		return Section{Start: -1, End: -1}, false
	}

	end := len(lines)
	for i := start + 1; i < len(lines); i++ {
		if strings.HasPrefix(lines[i], "##") {
			end = i
			break
		}
	}

	body := lines[start+1 : end]
	for len(body) > 0 && isBlank(body[0]) {
		body = body[1:]
	}
	for len(body) > 0 && isBlank(body[len(body)-1]) {
		body = body[:len(body)-1]
	}

	return Section{
		Body:  strings.TrimSpace(Join(body)),
		Start: start,
		End:   end,
	}, true
}

// IsBulletList reports whether text already reads as a bullet list. Only the
// first five non-blank lines are inspected: prose before the first bullet
// makes it prose, and at least one bullet is required.
func IsBulletList(text string) bool {
	const inspect = 5

	bullets, seen := 0, 0
	for _, line := range Lines(strings.TrimSpace(text)) {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			continue
		}
		if seen == inspect {
			break
		}
		seen++
		if strings.HasPrefix(stripped, BulletPrefix) {
			bullets++
		} else if bullets == 0 {
			return false
		}
	}
	return bullets > 0
}

// IsBullet reports whether line is a bullet line.
func IsBullet(line string) bool {
	return strings.HasPrefix(line, BulletPrefix)
}

// FindQuickSummary returns the line index of the Quick Summary block-quote, or -1.
func FindQuickSummary(content string) int {
	for i, line := range Lines(content) {
		if strings.Contains(line, quickSummaryMarker) {
			return i
		}
	}
	return -1
}

// InsertionPoint returns the line index right after the Quick Summary block
// starting at line qs, skipping block-quote continuation and blank lines.
func InsertionPoint(lines []string, qs int) int {
	i := qs + 1
	for i < len(lines) && (strings.HasPrefix(lines[i], ">") || isBlank(lines[i])) {
		i++
	}
	return i
}

// Headings returns the text of every "##" and "###" heading in document order.
func Headings(content string) []string {
	var out []string
	for _, line := range Lines(content) {
		m := headingRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		out = append(out, strings.TrimSpace(m[1]))
	}
	return out
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

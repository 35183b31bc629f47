// Package casefix normalizes the first letter of bullets in the "What You'll
// Learn" and "Key Takeaways" sections.
//
// Two policies exist and they disagree: PolicySentence capitalizes and drops
// case-insensitive duplicates, PolicyLower lowercases and keeps duplicates.
// PolicySentence is the default.
package casefix

import (
	"fmt"
	"strings"

	"github.com/starford/lessonfmt/internal/apperr"
	"github.com/starford/lessonfmt/internal/lesson"
	"github.com/starford/lessonfmt/internal/textcase"
)

// Policy selects the first-letter convention.
type Policy string

const (
	PolicySentence Policy = "sentence"
	PolicyLower    Policy = "lower"
)

// ParsePolicy validates a policy name.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(s); p {
	case PolicySentence, PolicyLower:
		return p, nil
	}
	return "", fmt.Errorf("casefix: %q: %w", s, apperr.ErrInvalidPolicy)
}

// Normalizer is the bullet case step.
type Normalizer struct {
	Policy   Policy
	Sections []string
}

// New returns a Normalizer over the standard sections.
func New(p Policy) *Normalizer {
	return &Normalizer{
		Policy:   p,
		Sections: []string{lesson.LearnSection, lesson.TakeawaysSection},
	}
}

// Name identifies the step.
func (n *Normalizer) Name() string { return "fix-case" }

// Transform applies the policy and reports whether content changed.
func (n *Normalizer) Transform(content string) (string, bool) {
	var out string
	if n.Policy == PolicyLower {
		out = n.lower(content)
	} else {
		out = n.sentence(content)
	}
	return out, out != content
}

// sentence capitalizes bullets and drops repeats within each section.
func (n *Normalizer) sentence(content string) string {
	lines := lesson.Lines(content)
	out := make([]string, 0, len(lines))

	var seen map[string]struct{}
	inside := false
	for _, line := range lines {
		if n.isTarget(line) {
			inside = true
			seen = make(map[string]struct{})
			out = append(out, line)
			continue
		}
		if inside && leavesSection(line) {
			inside = false
		}

		if inside && lesson.IsBullet(line) {
			text := strings.TrimSpace(line[len(lesson.BulletPrefix):])
			key := textcase.Key(text)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			if textcase.StartsLower(text) {
				rest := line[len(lesson.BulletPrefix):]
				indent := len(rest) - len(strings.TrimLeft(rest, " \t"))
				line = lesson.BulletPrefix + rest[:indent] + textcase.UpperFirst(rest[indent:])
			}
		}
		out = append(out, line)
	}
	return lesson.Join(out)
}

// lower lowercases the first letter of each bullet.
func (n *Normalizer) lower(content string) string {
	lines := lesson.Lines(content)
	inside := false
	for i, line := range lines {
		if n.isTarget(line) {
			inside = true
			continue
		}
		if inside && leavesSection(line) {
			inside = false
		}
		if !inside || !lesson.IsBullet(line) {
			continue
		}
		if rest := line[len(lesson.BulletPrefix):]; textcase.StartsUpper(rest) {
			lines[i] = lesson.BulletPrefix + textcase.LowerFirst(rest)
		}
	}
	return lesson.Join(lines)
}

func (n *Normalizer) isTarget(line string) bool {
	for _, s := range n.Sections {
		if line == lesson.Heading(s) {
			return true
		}
	}
	return false
}

// leavesSection reports whether line is a "##" heading. Deeper headings stay
// inside the current section.
func leavesSection(line string) bool {
	return strings.HasPrefix(line, "##") && !strings.HasPrefix(line, "###")
}

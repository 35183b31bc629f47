// Package refine splits over-long bullets in the target sections into
// shorter ones.
package refine

import (
	"regexp"
	"strings"

	"github.com/starford/lessonfmt/internal/heuristic"
	"github.com/starford/lessonfmt/internal/lesson"
)

// DefaultMaxLength is the longest bullet text kept as is, excluding "- ".
const DefaultMaxLength = 100

const (
	minFragment = 15
	minFlush    = 20
	ellipsis    = "..."
)

var (
	commaConjRe = regexp.MustCompile(`(?i),\s+(and|whilst|while|also|additionally|furthermore|moreover)\s+`)
	bareConjRe  = regexp.MustCompile(`(?i)\s+(and|whilst|while|also)\s+`)
)

// Refiner is the long-bullet step.
type Refiner struct {
	MaxLength int
	Sections  []string

	chain heuristic.Chain
}

// New returns a Refiner over the standard sections. maxLength <= 0 selects
// DefaultMaxLength.
func New(maxLength int) *Refiner {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	r := &Refiner{
		MaxLength: maxLength,
		Sections:  []string{lesson.LearnSection, lesson.TakeawaysSection},
	}
	r.chain = heuristic.Chain{
		heuristic.New("comma-conjunction", func(s string) ([]string, bool) {
			return r.recombine(heuristic.SplitKeep(commaConjRe, s), ", ")
		}),
		heuristic.New("semicolon", r.splitSemicolons),
		heuristic.New("conjunction", func(s string) ([]string, bool) {
			return r.recombine(heuristic.SplitKeep(bareConjRe, s), " ")
		}),
		heuristic.New("truncate", r.truncate),
	}
	return r
}

// Name identifies the step.
func (r *Refiner) Name() string { return "refine" }

// Transform refines every target section and reports whether any bullet was split.
func (r *Refiner) Transform(content string) (string, bool) {
	modified := false
	for _, name := range r.Sections {
		var changed bool
		content, changed = r.refineSection(content, name)
		modified = modified || changed
	}
	return content, modified
}

// SplitBullet splits a bullet line longer than MaxLength. The result always
// carries the "- " prefix; a line that is not a bullet or is short enough is
// returned trimmed and alone.
func (r *Refiner) SplitBullet(line string) []string {
	line = strings.TrimSpace(line)
	if !lesson.IsBullet(line) {
		return []string{line}
	}
	text := strings.TrimSpace(line[len(lesson.BulletPrefix):])
	if heuristic.Len(text) <= r.MaxLength {
		return []string{line}
	}

	parts := r.chain.Split(text).Parts
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = lesson.BulletPrefix + p
	}
	return out
}

func (r *Refiner) refineSection(content, name string) (string, bool) {
	heading := lesson.Heading(name)
	lines := lesson.Lines(content)
	out := make([]string, 0, len(lines))
	modified := false

	for i := 0; i < len(lines); {
		if lines[i] != heading {
			out = append(out, lines[i])
			i++
			continue
		}
		out = append(out, lines[i])
		i++
		if i < len(lines) && strings.TrimSpace(lines[i]) == "" {
			out = append(out, lines[i])
			i++
		}
		for ; i < len(lines) && !strings.HasPrefix(lines[i], "##"); i++ {
			line := lines[i]
			stripped := strings.TrimSpace(line)
			if !lesson.IsBullet(stripped) || heuristic.Len(stripped) <= r.MaxLength+len(lesson.BulletPrefix) {
				out = append(out, line)
				continue
			}
			split := r.SplitBullet(stripped)
			if len(split) < 2 {
				out = append(out, line)
				continue
			}
			out = append(out, split...)
			modified = true
		}
	}
	return lesson.Join(out), modified
}

// recombine rebuilds fragments from [text, conj, text, ...]. A conjunction and
// its clause join the current fragment while the result fits MaxLength;
// otherwise the current fragment is flushed and the clause starts a new one.
func (r *Refiner) recombine(parts []string, sep string) ([]string, bool) {
	if len(parts) < 3 {
		return nil, false
	}

	var fragments []string
	flush := func(s string) {
		if s = strings.TrimSpace(s); heuristic.Len(s) > minFlush {
			fragments = append(fragments, s)
		}
	}

	current := parts[0]
	for i := 1; i+1 < len(parts); i += 2 {
		conj, clause := parts[i], parts[i+1]
		if joined := current + sep + conj + " " + clause; heuristic.Len(joined) <= r.MaxLength {
			current = joined
			continue
		}
		flush(current)
		current = clause
	}
	if strings.TrimSpace(current) != "" {
		fragments = append(fragments, strings.TrimSpace(current))
	}
	if len(fragments) < 2 {
		return nil, false
	}
	return r.keep(fragments)
}

func (r *Refiner) splitSemicolons(text string) ([]string, bool) {
	if !strings.Contains(text, ";") {
		return nil, false
	}
	var parts []string
	for _, p := range strings.Split(text, ";") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) < 2 {
		return nil, false
	}
	return r.keep(parts)
}

// keep filters fragments to bullet length and succeeds with at least two.
func (r *Refiner) keep(fragments []string) ([]string, bool) {
	var out []string
	for _, f := range fragments {
		if n := heuristic.Len(f); n >= minFragment && n <= r.MaxLength {
			out = append(out, f)
		}
	}
	return out, len(out) > 1
}

// truncate cuts at the last comma or period between MaxLength-69 and
// MaxLength-20, or hard-truncates with an ellipsis.
func (r *Refiner) truncate(text string) ([]string, bool) {
	from := r.MaxLength - 20
	to := max(0, from-50)
	for i := from; i > to; i-- {
		if c := heuristic.At(text, i); c == ',' || c == '.' {
			return []string{strings.TrimSpace(heuristic.Prefix(text, i+1))}, true
		}
	}
	return []string{strings.TrimSpace(heuristic.Prefix(text, r.MaxLength-len(ellipsis))) + ellipsis}, true
}

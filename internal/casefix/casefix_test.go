package casefix

import (
	"errors"
	"testing"

	"github.com/starford/lessonfmt/internal/apperr"
)

func TestSentence_Dedup(t *testing.T) {
	in := "## What You'll Learn\n\n- Learn X\n- learn x\n- Learn Y\n"
	want := "## What You'll Learn\n\n- Learn X\n- Learn Y\n"
	got, changed := New(PolicySentence).Transform(in)
	if !changed || got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSentence_Capitalizes(t *testing.T) {
	in := "## Key Takeaways\n- apply patterns\n- Keep this As Is\n"
	want := "## Key Takeaways\n- Apply patterns\n- Keep this As Is\n"
	got, _ := New(PolicySentence).Transform(in)
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSentence_SeenSetResetsPerSection(t *testing.T) {
	in := "## What You'll Learn\n- Grids\n## Key Takeaways\n- grids\n"
	want := "## What You'll Learn\n- Grids\n## Key Takeaways\n- Grids\n"
	got, _ := New(PolicySentence).Transform(in)
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSentence_OutsideSectionsUntouched(t *testing.T) {
	in := "## Intro\n- lower\n- lower\n## What You'll Learn\n- a one\n### Detail\n- b two\n## Outro\n- lower\n"
	want := "## Intro\n- lower\n- lower\n## What You'll Learn\n- A one\n### Detail\n- B two\n## Outro\n- lower\n"
	got, _ := New(PolicySentence).Transform(in)
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSentence_NoChange(t *testing.T) {
	in := "## What You'll Learn\n\n- Already fine\n- `code` first\n"
	got, changed := New(PolicySentence).Transform(in)
	if changed || got != in {
		t.Errorf("unexpected change: %q", got)
	}
}

func TestLower_LowercasesWithoutDedup(t *testing.T) {
	in := "## What You'll Learn\n- Apply patterns\n- Apply patterns\n- already lower\n## Notes\n- Keep\n"
	want := "## What You'll Learn\n- apply patterns\n- apply patterns\n- already lower\n## Notes\n- Keep\n"
	got, changed := New(PolicyLower).Transform(in)
	if !changed || got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPoliciesDisagree(t *testing.T) {
	in := "## Key Takeaways\n- apply patterns\n"
	up, _ := New(PolicySentence).Transform(in)
	down, _ := New(PolicyLower).Transform(up)
	if up != "## Key Takeaways\n- Apply patterns\n" || down != in {
		t.Errorf("sentence = %q, lower = %q", up, down)
	}
}

func TestParsePolicy(t *testing.T) {
	for _, s := range []string{"sentence", "lower"} {
		if _, err := ParsePolicy(s); err != nil {
			t.Errorf("ParsePolicy(%q): %v", s, err)
		}
	}
	if _, err := ParsePolicy("title"); !errors.Is(err, apperr.ErrInvalidPolicy) {
		t.Errorf("ParsePolicy(title) error = %v", err)
	}
}

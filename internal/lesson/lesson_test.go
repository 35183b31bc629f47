package lesson

import (
	"testing"
)

const sample = "# Colour Theory\n" +
	"\n" +
	"> **Quick Summary:** Colour basics.\n" +
	"> More summary.\n" +
	"\n" +
	"## What You'll Learn\n" +
	"\n" +
	"You will learn about hue and saturation.\n" +
	"\n" +
	"## Hue\n" +
	"Body.\n" +
	"### Warm and cool\n" +
	"## Key Takeaways\n" +
	"- One\n"

func TestFindSection_Basic(t *testing.T) {
	sec, ok := FindSection(sample, LearnSection)
	if !ok {
		t.Fatal("section not found")
	}
	if sec.Body != "You will learn about hue and saturation." {
		t.Errorf("body = %q", sec.Body)
	}
	if sec.Start != 5 || sec.End != 9 {
		t.Errorf("range = [%d,%d), want [5,9)", sec.Start, sec.End)
	}
}

func TestFindSection_RunsToEOF(t *testing.T) {
	sec, ok := FindSection(sample, TakeawaysSection)
	if !ok {
		t.Fatal("section not found")
	}
	if sec.Body != "- One" {
		t.Errorf("body = %q", sec.Body)
	}
	if sec.End != len(Lines(sample)) {
		t.Errorf("end = %d, want %d", sec.End, len(Lines(sample)))
	}
}

func TestFindSection_ExactHeadingOnly(t *testing.T) {
	cases := []string{
		"## What you'll learn\ntext\n",
		"## What You'll Learn Today\ntext\n",
		"### What You'll Learn\ntext\n",
		" ## What You'll Learn\ntext\n",
	}
	for _, c := range cases {
		if _, ok := FindSection(c, LearnSection); ok {
			t.Errorf("unexpected match in %q", c)
		}
	}
}

func TestFindSection_EndsAtSubheading(t *testing.T) {
	doc := "## Key Takeaways\nProse here.\n### Detail\nMore.\n"
	sec, ok := FindSection(doc, TakeawaysSection)
	if !ok {
		t.Fatal("section not found")
	}
	if sec.Body != "Prose here." || sec.End != 2 {
		t.Errorf("body = %q end = %d", sec.Body, sec.End)
	}
}

func TestIsBulletList(t *testing.T) {
	cases := []struct {
		name string
		text string
		want bool
	}{
		{"empty", "", false},
		{"blank lines", "\n  \n", false},
		{"bullets", "- a\n- b", true},
		{"prose", "Some prose.", false},
		{"prose then bullets", "Intro line\n- a\n- b", false},
		{"bullets then prose", "- a\nTrailing note", true},
		{"indented bullets", "  - a\n  - b", true},
		{"blank lines between", "- a\n\n\n- b", true},
	}
	for _, c := range cases {
		if got := IsBulletList(c.text); got != c.want {
			t.Errorf("%s: IsBulletList = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestFindQuickSummaryAndInsertionPoint(t *testing.T) {
	qs := FindQuickSummary(sample)
	if qs != 2 {
		t.Fatalf("quick summary line = %d, want 2", qs)
	}
	if got := InsertionPoint(Lines(sample), qs); got != 5 {
		t.Errorf("insertion point = %d, want 5", got)
	}
	if FindQuickSummary("# No summary\n") != -1 {
		t.Error("expected -1 without a Quick Summary block")
	}
}

func TestInsertionPoint_UnterminatedBlock(t *testing.T) {
	lines := Lines("> **Quick Summary:** x\n> y\n")
	if got := InsertionPoint(lines, 0); got != len(lines) {
		t.Errorf("insertion point = %d, want %d", got, len(lines))
	}
}

func TestHeadings(t *testing.T) {
	got := Headings(sample + "#### Too deep\n##NoSpace\n")
	want := []string{"What You'll Learn", "Hue", "Warm and cool", "Key Takeaways"}
	if len(got) != len(want) {
		t.Fatalf("headings = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("headings[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

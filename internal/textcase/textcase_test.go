package textcase

import "testing"

func TestFirstLetter(t *testing.T) {
	if got := UpperFirst("apply patterns"); got != "Apply patterns" {
		t.Errorf("UpperFirst = %q", got)
	}
	if got := LowerFirst("Apply Patterns"); got != "apply Patterns" {
		t.Errorf("LowerFirst = %q", got)
	}
	if got := UpperFirst("élan vital"); got != "Élan vital" {
		t.Errorf("UpperFirst non-ASCII = %q", got)
	}
	if UpperFirst("") != "" || LowerFirst("") != "" {
		t.Error("empty input should stay empty")
	}
	if got := UpperFirst("3D transforms"); got != "3D transforms" {
		t.Errorf("UpperFirst digit = %q", got)
	}
}

func TestStartsLowerUpper(t *testing.T) {
	if !StartsLower("learn") || StartsLower("Learn") || StartsLower("") || StartsLower("`code`") {
		t.Error("StartsLower")
	}
	if !StartsUpper("Learn") || StartsUpper("learn") || StartsUpper("") {
		t.Error("StartsUpper")
	}
}

func TestKey_CaseInsensitive(t *testing.T) {
	if Key("Learn X") != Key("learn x") {
		t.Error("keys should match across case")
	}
	if Key("Learn X") == Key("Learn Y") {
		t.Error("different text should not share a key")
	}
	// Precomposed vs combining acute accent.
	if Key("Cafe\u0301") != Key("caf\u00e9") {
		t.Error("keys should match across composition")
	}
}

func TestIsUpper(t *testing.T) {
	cases := map[string]bool{
		"CSS.":   true,
		"HTML5":  true,
		"Css.":   false,
		"123.":   false,
		"":       false,
		"A B C.": true,
	}
	for in, want := range cases {
		if got := IsUpper(in); got != want {
			t.Errorf("IsUpper(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestLower(t *testing.T) {
	if got := Lower("Grid Systems"); got != "grid systems" {
		t.Errorf("Lower = %q", got)
	}
}

package workorder_test

import (
	"strings"
	"testing"

	"github.com/angelglnd-coder/cler-vision-app/internal/workorder"
)

func TestFormat(t *testing.T) {
	got, err := workorder.Format("003", 4, 1)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if want := "003-000004 01"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestParseCurrentGrammar(t *testing.T) {
	n, err := workorder.Parse("003-000004 02")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if n.Account != "003" || n.Sequence != 4 || n.PrintCount != 2 || n.PrintWidth != 2 {
		t.Fatalf("got %+v", n)
	}
	if got, want := n.BaseNumber(), "003-000004"; got != want {
		t.Fatalf("BaseNumber = %q, want %q", got, want)
	}
	if !n.IsReprint() {
		t.Fatal("IsReprint = false, want true")
	}
}

func TestParseLegacyGrammar(t *testing.T) {
	n, err := workorder.Parse("108-000412 0")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if n.PrintCount != 0 || n.PrintWidth != 1 {
		t.Fatalf("got %+v", n)
	}
	if n.IsReprint() {
		t.Fatal("IsReprint = true for legacy original")
	}
}

func TestRoundTrip(t *testing.T) {
	for _, text := range []string{"003-000004 01", "003-000004 99", "108-000412 0", "108-000412 9"} {
		n, err := workorder.Parse(text)
		if err != nil {
			t.Fatalf("Parse(%q): %v", text, err)
		}
		if got := n.String(); got != text {
			t.Fatalf("round trip %q -> %q", text, got)
		}
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	for _, text := range []string{
		"03-000004 01",
		"003-00004 01",
		"003-000004",
		"003-000004 001",
		"003-000004  01",
		"003-000000 01",
		"abc-000004 01",
	} {
		if _, err := workorder.Parse(text); err == nil {
			t.Fatalf("Parse(%q) succeeded, want error", text)
		}
	}
}

func TestGenerateNew(t *testing.T) {
	got, err := workorder.GenerateNew("003", 4)
	if err != nil {
		t.Fatalf("GenerateNew: %v", err)
	}
	if want := "003-000004 01"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestGenerateReprintKeepsWidth(t *testing.T) {
	cases := []struct {
		previous string
		want     string
	}{
		{"003-000004 01", "003-000004 02"},
		{"003-000004 10", "003-000004 11"},
		{"108-000412 0", "108-000412 1"},
		{"108-000412 8", "108-000412 9"},
	}
	for _, tc := range cases {
		got, err := workorder.GenerateReprint(tc.previous)
		if err != nil {
			t.Fatalf("GenerateReprint(%q): %v", tc.previous, err)
		}
		if got != tc.want {
			t.Fatalf("GenerateReprint(%q) = %q, want %q", tc.previous, got, tc.want)
		}
	}
}

func TestGenerateReprintLimits(t *testing.T) {
	for _, previous := range []string{"003-000004 99", "108-000412 9"} {
		if _, err := workorder.GenerateReprint(previous); err == nil {
			t.Fatalf("GenerateReprint(%q) succeeded, want limit error", previous)
		}
	}
}

func TestNextSequenceCap(t *testing.T) {
	next, err := workorder.NextSequence(4)
	if err != nil || next != 5 {
		t.Fatalf("NextSequence(4) = %d, %v", next, err)
	}
	if _, err := workorder.NextSequence(workorder.MaxSequence); err == nil {
		t.Fatal("NextSequence at cap succeeded, want error")
	}
}

func TestIsValid(t *testing.T) {
	if !workorder.IsValid("003-000004 01") {
		t.Fatal("IsValid rejected a valid number")
	}
	if workorder.IsValid("003/000004 01") {
		t.Fatal("IsValid accepted a malformed number")
	}
}

func TestFormatRejectsBadAccount(t *testing.T) {
	_, err := workorder.Format("3", 4, 1)
	if err == nil || !strings.Contains(err.Error(), "account") {
		t.Fatalf("got %v, want account validation error", err)
	}
}

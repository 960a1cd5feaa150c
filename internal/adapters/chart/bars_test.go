package chart

import (
	"strings"
	"testing"

	"github.com/ogurasousui/codex-workforce-synth/internal/core/workforce"
)

func TestBars_ScalesToWidth(t *testing.T) {
	t.Parallel()

	out := Bars("Mean salary", []Bar{
		{Label: "18-25", Value: 500000},
		{Label: "26-35", Value: 1000000},
		{Label: "out-of-range", Value: 0},
	}, 10)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	var barLines []string
	for _, l := range lines {
		if strings.Contains(l, "-") && (strings.Contains(l, "18-25") || strings.Contains(l, "26-35") || strings.Contains(l, "out-of-range")) {
			barLines = append(barLines, l)
		}
	}
	if len(barLines) != 3 {
		t.Fatalf("expected 3 bar lines, got %d in %q", len(barLines), out)
	}

	want := []int{5, 10, 0}
	for i, l := range barLines {
		if got := strings.Count(l, barRune); got != want[i] {
			t.Errorf("line %d: expected %d cells, got %d (%q)", i, want[i], got, l)
		}
	}
	if !strings.Contains(barLines[1], "10000.00") {
		t.Errorf("expected value label, got %q", barLines[1])
	}
	if !strings.Contains(out, "Mean salary") {
		t.Errorf("expected title in %q", out)
	}
}

func TestBars_Empty(t *testing.T) {
	t.Parallel()

	out := Bars("Empty", nil, 0)
	if !strings.Contains(out, "(no data)") {
		t.Fatalf("expected placeholder, got %q", out)
	}
}

func TestBarLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value, max workforce.Money
		width      int
		want       int
	}{
		{value: 0, max: 0, width: 10, want: 0},
		{value: 1, max: 3, width: 10, want: 3},
		{value: 2, max: 3, width: 10, want: 7},
		{value: 3, max: 3, width: 10, want: 10},
	}
	for _, tt := range tests {
		if got := barLength(tt.value, tt.max, tt.width); got != tt.want {
			t.Errorf("barLength(%d, %d, %d) = %d, want %d", tt.value, tt.max, tt.width, got, tt.want)
		}
	}
}

func TestReport_RendersSections(t *testing.T) {
	t.Parallel()

	report := &workforce.Report{
		AgeBrackets: []workforce.AgeBracketMean{
			{Bracket: workforce.AgeBracket18to25, Count: 1, Mean: 500000},
		},
		GenderAge: []workforce.GenderAgeMean{
			{Gender: workforce.GenderFemale, Bracket: workforce.AgeBracket18to25, Count: 1, Mean: 500000},
		},
		GenderTenure: []workforce.GenderTenureMean{
			{Gender: workforce.GenderFemale, Tenure: workforce.TenureBracket11Plus, Count: 1, Mean: 500000},
		},
	}

	out := Report(report, 20)
	for _, want := range []string{
		"Mean salary by age bracket",
		"Mean salary by age bracket (female)",
		"female 11+",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "(male)") {
		t.Errorf("male section should be skipped when empty:\n%s", out)
	}
	if Report(nil, 20) != "" {
		t.Error("expected empty output for nil report")
	}
}

package bom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitFused(t *testing.T) {
	table := []struct {
		in   string
		want []string
	}{
		{"TU1413", []string{"TU", "1413"}},
		{"MON0612", []string{"MON", "0612"}},
		{"1413", []string{"1413"}},
		{"1.12", []string{"1.12"}},
		{"TU", []string{"TU"}},
		{"TU141", []string{"TU141"}}, // three digits is not a time
		{"T1413", []string{"T1413"}}, // one letter is not a weekday
		{"TUES1413", []string{"TUES1413"}},
		{"tu1413", []string{"tu1413"}}, // lower case never appears in the chart
	}

	for _, tc := range table {
		t.Run(tc.in, func(t *testing.T) {
			if diff := cmp.Diff(splitFused(tc.in), tc.want); diff != "" {
				t.Errorf("incorrect split (-got,+want): %s", diff)
			}
		})
	}
}

func TestAssembleWords(t *testing.T) {
	// Two rows of text. The top row (larger Y) holds "TU" hard against
	// "1413"; the bottom row holds "0.92" split into two touching runs
	// and a separate word further right.
	runs := []textRun{
		{s: "92", x: 46, y: 700, w: 8},
		{s: "0.", x: 40, y: 700, w: 6},
		{s: "1413", x: 52, y: 710.2, w: 16},
		{s: "TU", x: 40, y: 710, w: 11.5},
		{s: "5", x: 90, y: 700, w: 4},
	}

	got := assembleWords(runs)

	want := []Word{
		{Text: "TU1413", X: 40, Y: 710},
		{Text: "0.92", X: 40, Y: 700},
		{Text: "5", X: 90, Y: 700},
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("incorrect words (-got,+want): %s", diff)
	}
}

func TestAssembleWordsKeepsSeparateRows(t *testing.T) {
	// Identical x ranges on clearly different baselines never merge.
	runs := []textRun{
		{s: "0612", x: 40, y: 690, w: 16},
		{s: "1205", x: 40, y: 680, w: 16},
	}
	got := assembleWords(runs)
	want := []Word{
		{Text: "0612", X: 40, Y: 690},
		{Text: "1205", X: 40, Y: 680},
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("incorrect words (-got,+want): %s", diff)
	}
}

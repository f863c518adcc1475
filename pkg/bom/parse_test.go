package bom

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/patrick-morrison/swantides/pkg/tides"
)

func testLayout() Layout {
	return DefaultLayout(2026, time.UTC)
}

// column lays tokens out top to bottom in one column so that reading
// order matches slice order.
func column(texts ...string) []Word {
	words := make([]Word, len(texts))
	y := 800.0
	for i, s := range texts {
		words[i] = Word{Text: s, X: 40, Y: y}
		y -= 10
	}
	return words
}

func jan(day, hour, min int) time.Time {
	return time.Date(2026, time.January, day, hour, min, 0, 0, time.UTC)
}

func TestParseColumn(t *testing.T) {
	table := []struct {
		name  string
		words []Word
		want  tides.Entries
	}{{
		name:  "two entries for one day",
		words: column("5", "MO", "0612", "0.15", "1205", "1.62"),
		want: tides.Entries{
			{Time: jan(5, 6, 12), Height: 0.15},
			{Time: jan(5, 12, 5), Height: 1.62},
		},
	}, {
		name:  "fused weekday and time",
		words: column("14", "TU1413", "0.92"),
		want: tides.Entries{
			{Time: jan(14, 14, 13), Height: 0.92},
		},
	}, {
		name:  "time without height is dropped",
		words: column("5", "0612", "MO", "1205", "1.62"),
		want: tides.Entries{
			{Time: jan(5, 12, 5), Height: 1.62},
		},
	}, {
		name:  "height without day is dropped",
		words: column("0612", "0.15"),
		want:  nil,
	}, {
		name:  "height out of range is not a height",
		words: column("5", "0612", "3.40"),
		want:  nil,
	}, {
		name: "malformed height does not hide a following time",
		// "1205" is a number, but 1205.0 is no tide height. It must be
		// re-read as the next time, not consumed as a height.
		words: column("5", "0612", "1205", "1.62"),
		want: tides.Entries{
			{Time: jan(5, 12, 5), Height: 1.62},
		},
	}, {
		name:  "day refreshes mid column",
		words: column("5", "0612", "0.15", "6", "0701", "0.22"),
		want: tides.Entries{
			{Time: jan(5, 6, 12), Height: 0.15},
			{Time: jan(6, 7, 1), Height: 0.22},
		},
	}, {
		name:  "orphan decimal is noise",
		words: column("5", "0.15", "1205", "1.62"),
		want: tides.Entries{
			{Time: jan(5, 12, 5), Height: 1.62},
		},
	}, {
		name:  "weekday noise everywhere",
		words: column("MO", "TU", "WED", "5", "SA", "0612", "0.15"),
		want: tides.Entries{
			{Time: jan(5, 6, 12), Height: 0.15},
		},
	}, {
		name:  "empty column",
		words: nil,
		want:  nil,
	}}

	for _, tc := range table {
		t.Run(tc.name, func(t *testing.T) {
			got := parseColumn(tc.words, time.January, testLayout())
			if diff := cmp.Diff(got, tc.want); diff != "" {
				t.Errorf("incorrect entries (-got,+want): %s", diff)
			}
		})
	}
}

func TestParseColumnRejectsImpossibleDates(t *testing.T) {
	// February 30 looks fine to the tokenizer but is not a real day.
	got := parseColumn(column("30", "0612", "0.15"), time.February, testLayout())
	if len(got) != 0 {
		t.Errorf("got %d entries for February 30, wanted none", len(got))
	}
}

func TestParseColumnRejectsImpossibleClocks(t *testing.T) {
	got := parseColumn(column("5", "2961", "0.15"), time.January, testLayout())
	if len(got) != 0 {
		t.Errorf("got %d entries for clock 29:61, wanted none", len(got))
	}
}

func TestParseColumnReadingOrder(t *testing.T) {
	// Tokens arrive unsorted; the parser must order them by rounded
	// baseline, top of page first, before walking.
	words := []Word{
		{Text: "0.15", X: 48, Y: 780},
		{Text: "5", X: 40, Y: 800},
		{Text: "0612", X: 40, Y: 780},
		{Text: "MO", X: 52, Y: 800},
	}
	got := parseColumn(words, time.January, testLayout())
	want := tides.Entries{{Time: jan(5, 6, 12), Height: 0.15}}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("incorrect entries (-got,+want): %s", diff)
	}
}

func TestDayNumber(t *testing.T) {
	table := []struct {
		in   string
		want int
		ok   bool
	}{
		{"1", 1, true},
		{"31", 31, true},
		{"0", 0, false},
		{"32", 0, false},
		{"05", 5, true},
		{"123", 0, false},
		{"0026", 0, false}, // a time, not a day
		{"5a", 0, false},
		{"", 0, false},
	}
	for _, tc := range table {
		got, ok := dayNumber(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("dayNumber(%q) = (%d, %t), wanted (%d, %t)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestIsClock(t *testing.T) {
	table := []struct {
		in   string
		want bool
	}{
		{"0000", true},
		{"2359", true},
		{"2400", false},
		{"1260", false},
		{"613", false},
		{"06123", false},
		{"12:05", false},
	}
	for _, tc := range table {
		if got := isClock(tc.in); got != tc.want {
			t.Errorf("isClock(%q) = %t, wanted %t", tc.in, got, tc.want)
		}
	}
}

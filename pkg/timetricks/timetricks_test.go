package timetricks

import (
	"testing"
	"time"
)

func TestSameDay(t *testing.T) {
	a := time.Date(2026, time.March, 14, 6, 0, 0, 0, time.Local)
	b := time.Date(2026, time.March, 14, 23, 59, 0, 0, time.Local)
	c := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.Local)

	if !SameDay(a, b) {
		t.Errorf("%s and %s should be the same day", a, b)
	}
	if SameDay(b, c) {
		t.Errorf("%s and %s should not be the same day", b, c)
	}
}

func TestTrimAndSetClock(t *testing.T) {
	in := time.Date(2026, time.March, 14, 6, 45, 12, 0, time.Local)

	trimmed := TrimClock(in)
	if h, m, s := trimmed.Clock(); h != 0 || m != 0 || s != 0 {
		t.Errorf("TrimClock left %02d:%02d:%02d on the clock", h, m, s)
	}

	set := SetClock(in, 14, 30)
	if h, m, _ := set.Clock(); h != 14 || m != 30 {
		t.Errorf("SetClock got %02d:%02d, wanted 14:30", h, m)
	}
	if !SameDay(set, in) {
		t.Errorf("SetClock moved the calendar day")
	}
}

func TestDay(t *testing.T) {
	table := []struct {
		in   time.Time
		want string
	}{
		{time.Now(), "today"},
		{time.Now().Add(24 * time.Hour), "tomorrow"},
		{time.Date(1999, time.January, 5, 12, 0, 0, 0, time.Local), "05/01"},
	}
	for _, tc := range table {
		if got := Day(tc.in); got != tc.want {
			t.Errorf("Day(%s) = %q, wanted %q", tc.in, got, tc.want)
		}
	}
}

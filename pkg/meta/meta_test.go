package meta

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/patrick-morrison/swantides/pkg/sunset"
	"github.com/patrick-morrison/swantides/pkg/tides"
)

func at(day, hour, min int) time.Time {
	return time.Date(2026, time.January, day, hour, min, 0, 0, time.Local)
}

func TestGoodTimes(t *testing.T) {
	sunEvents := sunset.SunEvents{
		{Time: at(5, 6, 0), Event: sunset.Sunrise},
		{Time: at(5, 19, 0), Event: sunset.Sunset},
		{Time: at(6, 6, 0), Event: sunset.Sunrise},
		{Time: at(6, 19, 0), Event: sunset.Sunset},
	}

	entries := tides.Entries{
		// Daytime low: good.
		{Time: at(5, 10, 0), Height: 0.4, Type: tides.LowTide},
		// Low tide but not low enough.
		{Time: at(5, 13, 0), Height: 0.9, Type: tides.LowTide},
		// High tide never qualifies, even when shallow.
		{Time: at(5, 15, 0), Height: 0.5, Type: tides.HighTide},
		// Deep in the night, hours from sunrise.
		{Time: at(5, 23, 0), Height: 0.3, Type: tides.LowTide},
		// Fifteen minutes before sunrise: dawn patrol.
		{Time: at(6, 5, 45), Height: 0.2, Type: tides.LowTide},
	}

	got := GoodTimes(Conditions{Tides: entries, SunEvents: sunEvents})

	want := []GoodTime{{
		Time:    at(5, 10, 0),
		Reasons: []string{"tide is low at 0.40m"},
	}, {
		Time:    at(6, 5, 45),
		Reasons: []string{"tide is low at 0.20m", "only 15 minutes before sunrise"},
	}}

	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("incorrect good times (-got,+want): %s", diff)
	}
}

func TestGoodTimesEmptyConditions(t *testing.T) {
	got := GoodTimes(Conditions{})
	if len(got) != 0 {
		t.Errorf("got %d good times from no data", len(got))
	}
}

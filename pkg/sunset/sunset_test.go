package sunset

import (
	"testing"
	"time"

	"github.com/patrick-morrison/swantides/pkg/timetricks"
)

func TestGetSunEvents(t *testing.T) {
	start := time.Date(2026, time.January, 5, 0, 0, 0, 0, Fremantle.Location)
	dur := 3 * 24 * time.Hour

	events := GetSunEvents(start, dur, Fremantle)

	if got, want := len(events), 6; got != want {
		t.Fatalf("got %d events, wanted %d", got, want)
	}
	if events[0].Event != Sunrise {
		t.Errorf("first event must be a sunrise, got %s", events[0].String())
	}
	if !timetricks.SameDay(events[0].Time, start) {
		t.Errorf("first sunrise %s not on start day %s", events[0].Time, start)
	}
	for i := range events {
		wantEvent := Sunrise
		if i%2 == 1 {
			wantEvent = Sunset
		}
		if events[i].Event != wantEvent {
			t.Errorf("event %d: got %v, wanted %v", i, events[i].Event, wantEvent)
		}
		if i > 0 && !events[i].Time.After(events[i-1].Time) {
			t.Errorf("event %d at %s not after event %d at %s",
				i, events[i].Time, i-1, events[i-1].Time)
		}
	}

	// Midsummer in Fremantle: the sun must be up well before 7 and set
	// well after 18 local time.
	if h := events[0].Time.In(Fremantle.Location).Hour(); h >= 7 {
		t.Errorf("January sunrise at hour %d, expected before 7", h)
	}
	if h := events[1].Time.In(Fremantle.Location).Hour(); h < 18 {
		t.Errorf("January sunset at hour %d, expected 18 or later", h)
	}
}

func TestPlaceFor(t *testing.T) {
	for _, name := range []string{"Fremantle", "Barrack Street"} {
		p, ok := PlaceFor(name)
		if !ok {
			t.Errorf("no place for %q", name)
			continue
		}
		if p.Location.String() != "Australia/Perth" {
			t.Errorf("%q in %s, wanted Australia/Perth", name, p.Location)
		}
	}
	if _, ok := PlaceFor("Atlantis"); ok {
		t.Errorf("found a place for Atlantis")
	}
}

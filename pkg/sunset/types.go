package sunset

import (
	"fmt"
	"time"
)

// Place is a lat/long coordinate on the Earth matched with its time zone.
type Place struct {
	Lat, Long float64
	Location  *time.Location
}

var (
	Fremantle = Place{
		-32.0569, 115.7439,
		locationOrPanic("Australia/Perth"),
	}
	BarrackStreet = Place{
		-31.9592, 115.8571,
		locationOrPanic("Australia/Perth"),
	}

	places = map[string]Place{
		"Fremantle":      Fremantle,
		"Barrack Street": BarrackStreet,
	}
)

// PlaceFor looks up the coordinates for a configured location name.
func PlaceFor(name string) (Place, bool) {
	p, ok := places[name]
	return p, ok
}

// SunEvents is a time series of SunEvent.
type SunEvents []SunEvent

// SunEvent is a sunrise or sunset event.
type SunEvent struct {
	Time  time.Time
	Event Event
}

func (s *SunEvent) String() string {
	return fmt.Sprintf("%s %s",
		s.Time.Format(time.RFC822),
		func() string {
			if s.Event == Sunrise {
				return "Sunrise"
			} else {
				return "Sunset"
			}
		}())
}

// Event encodes a sunrise or sunset event.
type Event bool

const (
	Sunrise Event = true
	Sunset        = false
)

func locationOrPanic(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

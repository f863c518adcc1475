// Package visualize renders an extracted tide series as a daily SVG chart:
// the tide curve for one calendar day with daylight shading and depth
// bands.
package visualize

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/patrick-morrison/swantides/pkg/splines"
	"github.com/patrick-morrison/swantides/pkg/sunset"
	"github.com/patrick-morrison/swantides/pkg/tides"
	"github.com/patrick-morrison/swantides/pkg/timetricks"
)

const (
	width  = 1200
	height = 300

	// Vertical scale: the chart maps minHeight..maxHeight metres onto
	// the full image height. Swan River charts never leave this window.
	minHeight = -0.5
	maxHeight = 2.5
)

type Tidal struct {
	date      time.Time
	entries   tides.Entries
	sunEvents sunset.SunEvents
}

func NewTidal(entries tides.Entries, sunEvents sunset.SunEvents) *Tidal {
	return &Tidal{
		entries:   entries,
		sunEvents: sunEvents,
	}
}

func (img *Tidal) SetDate(t time.Time) {
	img.date = timetricks.TrimClock(t)
}

func (img *Tidal) Encode(w io.Writer) (int, error) {
	// An extraction can legitimately produce an empty series; there is
	// nothing to draw from it.
	if len(img.entries) == 0 {
		return 0, fmt.Errorf("no tide entries to draw")
	}

	var n int
	var err error
	io := func(nextn int, nexterr error) {
		n += nextn
		if nexterr != nil {
			err = nexterr
		}
	}

	io(fmt.Fprintf(w, `<svg viewBox="0 0 %d %d" xmlns="http://www.w3.org/2000/svg">`, width, height))

	// Calculate dawn/dusk and draw the sunshine.
	sunupIndex, ok := img.sunup(img.date)
	if !ok || sunupIndex+1 >= len(img.sunEvents) {
		return n, fmt.Errorf("not enough sun data")
	}
	sunup := img.sunEvents[sunupIndex]
	sundown := img.sunEvents[sunupIndex+1]
	risex := img.timeToX(sunup.Time)
	setx := img.timeToX(sundown.Time)
	io(fmt.Fprintf(w, `<rect class="daytime" fill="lightyellow" x="%d" y="%d" width="%d" height="%d"/>`,
		risex, 0,
		setx-risex, height))

	// Draw markers for tide levels.
	io(fmt.Fprintf(w, `<rect class="one_metre" fill="#e76f51" x="%d" y="%d" width="%d" height="%d"/>`,
		0, tideHeightToY(1.0),
		width, tideHeightToY(0.5)-tideHeightToY(1.0)+1))
	io(fmt.Fprintf(w, `<rect class="half_metre" fill="#f4a261" x="%d" y="%d" width="%d" height="%d"/>`,
		0, tideHeightToY(0.5),
		width, tideHeightToY(0.0)-tideHeightToY(0.5)+1))
	io(fmt.Fprintf(w, `<rect class="datum" fill="#e9c46a" x="%d" y="%d" width="%d" height="%d"/>`,
		0, tideHeightToY(0.0),
		width, tideHeightToY(minHeight)-tideHeightToY(0.0)+1))

	// Choose the first tide entry to start from. Should be off screen;
	// if not, just start at the beginning.
	i, ok := img.indexEntryPreceding(img.date)
	if !ok {
		i = 0
	}
	startI, endI := i, i

	for ; i+1 < len(img.entries); i++ {
		x1 := img.timeToX(img.entries[i].Time)
		y1 := tideHeightToY(img.entries[i].Height)
		if x1 > width {
			break
		}
		endI = i + 1

		x2 := img.timeToX(img.entries[i+1].Time) + 1 // +1 to create overlap
		y2 := tideHeightToY(img.entries[i+1].Height)

		io(fmt.Fprintf(w, `<path class="tide" fill="#2a9d8f" d="M %d,%d `, x1, y1))

		cx1, cy1 := (x1+x2)/2, y1
		cx2, cy2 := cx1, y2

		io(fmt.Fprintf(w, `C %d,%d %d,%d %d,%d `,
			cx1, cy1,
			cx2, cy2,
			x2, y2))

		io(fmt.Fprintf(w, `L %d,%d L %d,%d z"/>`, x2, height, x1, height))
	}

	// Draw the night time shadows.
	io(fmt.Fprintf(w, `<rect class="night" fill="blue" fill-opacity="25%%" x="%d" y="%d" width="%d" height="%d"/>`,
		0, 0,
		risex, height))
	io(fmt.Fprintf(w, `<rect class="night" fill="blue" fill-opacity="25%%" x="%d" y="%d" width="%d" height="%d"/>`,
		setx, 0,
		width-setx, height))

	// Insert spline data as JSON.
	splineEntries := img.entries[startI : endI+1]
	spline := splines.CurvesBetween(splineEntries)
	io(fmt.Fprintf(w, `<text class="spline" visibility="hidden">`))
	json.NewEncoder(w).Encode(spline)
	io(fmt.Fprintf(w, `</text>`))

	// Insert date of this graph as unix.
	io(fmt.Fprintf(w, `<text class="unixtime" visibility="hidden">%d</text>`, img.date.Unix()))

	io(fmt.Fprintf(w, `</svg>`))

	return n, err
}

func (img *Tidal) indexEntryPreceding(t time.Time) (int, bool) {
	left, right := 0, len(img.entries)
	for right-left > 1 {
		mid := (left + right) / 2
		midt := img.entries[mid].Time
		if midt.Before(t) {
			left = mid
		} else if midt.After(t) {
			right = mid
		} else {
			return mid, true
		}
	}
	ok := left < len(img.entries)
	return left, ok
}

func (img *Tidal) sunup(t time.Time) (int, bool) {
	for i := 0; i < len(img.sunEvents); i++ {
		if img.sunEvents[i].Time.After(t) {
			return i, true
		}
	}
	return 0, false
}

func tideHeightToY(h float64) int {
	return height - int((h-minHeight)*(height/(maxHeight-minHeight)))
}

func (img *Tidal) timeToX(t time.Time) int {
	return int(t.Unix()-img.date.Unix()) * width / (60 * 60 * 24)
}

package bom

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"time"

	"github.com/patrick-morrison/swantides/pkg/tides"
)

// The column parser is a three state machine walking tokens in reading
// order:
//
//	awaitDay:    nothing usable seen yet.
//	awaitTime:   a current day is (usually) set; waiting for a time.
//	awaitHeight: a four digit time is pending; the very next token must
//	             be a plausible height or the time is dropped.
//
// Transitions:
//   - a bare 1-2 digit number in [1,31] sets the current day in awaitDay
//     and awaitTime and moves to awaitTime;
//   - a four digit clock moves awaitDay/awaitTime to awaitHeight;
//   - in awaitHeight, a decimal within the layout's height range consumes
//     the pair. An entry is emitted only if a current day is set and the
//     (year, month, day) triple is a real calendar date. Either way the
//     machine returns to awaitTime;
//   - any other token in awaitHeight drops the pending time and is
//     immediately re-read as a day or time. A four digit number is never
//     taken as the height of the time preceding it;
//   - everything else (weekday names, stray decimals with no time) is
//     noise and skipped.
type parseState int

const (
	awaitDay parseState = iota
	awaitTime
	awaitHeight
)

type token struct {
	text string
	x, y float64
}

var clockPattern = regexp.MustCompile(`^\d{4}$`)

// parseColumn reconstructs tide entries from the words of a single column,
// which covers half of the given month.
func parseColumn(words []Word, month time.Month, layout Layout) tides.Entries {
	toks := tokenize(words)

	var out tides.Entries
	state := awaitDay
	day := 0
	pendingTime := ""

	for _, tok := range toks {
		if state == awaitHeight {
			if h, ok := parseHeight(tok.text, layout); ok {
				if day != 0 {
					if t, valid := eventTime(layout, month, day, pendingTime); valid {
						out = append(out, tides.Entry{Time: t, Height: h})
					}
				}
				pendingTime = ""
				state = awaitTime
				continue
			}
			// The tentative time had no height after it; drop it and
			// re-read this token from scratch.
			pendingTime = ""
			state = awaitTime
		}

		if d, ok := dayNumber(tok.text); ok {
			day = d
			state = awaitTime
			continue
		}
		if isClock(tok.text) {
			pendingTime = tok.text
			state = awaitHeight
			continue
		}
		// Noise: weekday abbreviations, header text, orphan decimals.
	}

	return out
}

// tokenize orders a column's words into reading order and splits fused
// weekday+time words.
func tokenize(words []Word) []token {
	sorted := make([]Word, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool {
		yi, yj := math.Round(sorted[i].Y), math.Round(sorted[j].Y)
		if yi != yj {
			return yi > yj
		}
		return sorted[i].X < sorted[j].X
	})

	var toks []token
	for _, w := range sorted {
		for _, t := range splitFused(w.Text) {
			toks = append(toks, token{text: t, x: w.X, y: w.Y})
		}
	}
	return toks
}

// dayNumber reports whether text is a bare day-of-month number. Only one
// and two digit forms qualify, so a four digit time is never mistaken for
// a day.
func dayNumber(text string) (int, bool) {
	if len(text) == 0 || len(text) > 2 {
		return 0, false
	}
	for _, c := range text {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	d, err := strconv.Atoi(text)
	if err != nil || d < 1 || d > 31 {
		return 0, false
	}
	return d, true
}

// isClock reports whether text is a four digit 24h clock reading.
func isClock(text string) bool {
	if !clockPattern.MatchString(text) {
		return false
	}
	hh, _ := strconv.Atoi(text[:2])
	mm, _ := strconv.Atoi(text[2:])
	return hh < 24 && mm < 60
}

// parseHeight reports whether text is a tide height within the layout's
// plausible range.
func parseHeight(text string, layout Layout) (float64, bool) {
	h, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}
	if h < layout.MinHeight || h > layout.MaxHeight {
		return 0, false
	}
	return h, true
}

// eventTime builds the local event time for a parsed (day, clock) pair.
// valid is false for impossible calendar dates such as February 30, which
// time.Date would otherwise normalize into March.
func eventTime(layout Layout, month time.Month, day int, clock string) (time.Time, bool) {
	hh, _ := strconv.Atoi(clock[:2])
	mm, _ := strconv.Atoi(clock[2:])
	t := time.Date(layout.Year, month, day, hh, mm, 0, 0, layout.Location)
	if t.Month() != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

package tides

import (
	"fmt"
	"time"
)

// Expected bounds on tide events per calendar day. The Swan River sees one
// to four tides a day depending on the season; anything outside that is a
// parsing artefact worth flagging.
const (
	DefaultMinPerDay = 1
	DefaultMaxPerDay = 4
)

// expectedDays is the calendar coverage a full chart should yield. The
// source charts print exactly 365 day columns, leap year or not.
const expectedDays = 365

// Validator checks a whole extracted dataset against expected calendar
// coverage. It reports problems as human-readable issue strings and never
// rejects data; the caller decides what to do with a bad extraction.
type Validator struct {
	// Year the dataset is expected to cover.
	Year int
	// Per-day entry count bounds. Zero values select the defaults.
	MinPerDay, MaxPerDay int
}

// Check returns a list of dataset-level issues. An empty list means the
// dataset has plausible coverage, not that every entry is correct.
func (v Validator) Check(es Entries) []string {
	minPerDay, maxPerDay := v.MinPerDay, v.MaxPerDay
	if minPerDay == 0 {
		minPerDay = DefaultMinPerDay
	}
	if maxPerDay == 0 {
		maxPerDay = DefaultMaxPerDay
	}

	var issues []string

	days := es.Dates()
	if len(days) != expectedDays {
		issues = append(issues, fmt.Sprintf("day count mismatch: found %d, expected %d", len(days), expectedDays))
		if missing := v.missingDates(days); len(missing) > 0 {
			show := missing
			if len(show) > 5 {
				show = show[:5]
			}
			issues = append(issues, fmt.Sprintf("missing %d dates, starting with %v", len(missing), show))
		}
	}

	counts := make(map[string]int)
	for _, e := range es {
		counts[e.Date()]++
	}
	var suspicious []string
	for _, d := range days {
		if c := counts[d]; c < minPerDay || c > maxPerDay {
			suspicious = append(suspicious, d)
		}
	}
	if len(suspicious) > 0 {
		show := suspicious
		if len(show) > 3 {
			show = show[:3]
		}
		issues = append(issues, fmt.Sprintf("suspicious tide counts (<%d or >%d) on %d days: %v",
			minPerDay, maxPerDay, len(suspicious), show))
	}

	return issues
}

// OneTideDays returns the days carrying exactly one entry. These are
// legitimate on the Swan River and worth a note rather than an issue.
func (v Validator) OneTideDays(es Entries) []string {
	counts := make(map[string]int)
	for _, e := range es {
		counts[e.Date()]++
	}
	var days []string
	for _, d := range es.Dates() {
		if counts[d] == 1 {
			days = append(days, d)
		}
	}
	return days
}

// missingDates walks the whole target year and collects days absent from
// the sorted date list.
func (v Validator) missingDates(have []string) []string {
	present := make(map[string]bool, len(have))
	for _, d := range have {
		present[d] = true
	}
	var missing []string
	for d := time.Date(v.Year, time.January, 1, 0, 0, 0, 0, time.UTC); d.Year() == v.Year; d = d.AddDate(0, 0, 1) {
		if s := d.Format(dateFormat); !present[s] {
			missing = append(missing, s)
		}
	}
	return missing
}

package bom

import "time"

// Band is a horizontal slice of the page in PDF points. A word belongs to
// the band if Min <= x < Max.
type Band struct {
	Min, Max float64
}

// Contains reports whether x falls inside the band.
func (b Band) Contains(x float64) bool {
	return b.Min <= x && x < b.Max
}

// Layout describes the geometry and calendar of one chart edition. The
// zero value is not usable; start from DefaultLayout.
type Layout struct {
	// Year the chart covers. Used both to resolve day numbers to dates
	// and to reject impossible ones (Feb 30).
	Year int

	// Location the printed local times belong to.
	Location *time.Location

	// Columns are the x-ranges of the day columns on each table page,
	// left to right. Adjacent pairs of columns cover one month: the
	// first of the pair holds days 1-15, the second days 16-31.
	Columns []Band

	// PageMonths maps 1-indexed PDF page numbers to the months printed
	// on that page, in column order. Pages absent from the map carry no
	// table. Short documents simply skip the missing pages.
	PageMonths map[int][]time.Month

	// MinHeight and MaxHeight bound a plausible tide height in metres.
	// A candidate height outside the range is not a height.
	MinHeight, MaxHeight float64
}

// DefaultLayout describes the 2026 Western Australia tide chart
// (IDO59001). Column bands were measured off the rendered pages; the gaps
// between bands are gutters that never carry table text.
func DefaultLayout(year int, loc *time.Location) Layout {
	if loc == nil {
		loc = time.Local
	}
	return Layout{
		Year:     year,
		Location: loc,
		Columns: []Band{
			{30, 92},   // Jan 1-15
			{92, 155},  // Jan 16-31
			{155, 222}, // Feb 1-15
			{222, 293}, // Feb 16-28
			{293, 357}, // Mar 1-15
			{357, 428}, // Mar 16-31
			{428, 492}, // Apr 1-15
			{492, 600}, // Apr 16-30
		},
		PageMonths: map[int][]time.Month{
			2: {time.January, time.February, time.March, time.April},
			3: {time.May, time.June, time.July, time.August},
			4: {time.September, time.October, time.November, time.December},
		},
		MinHeight: 0.0,
		MaxHeight: 2.5,
	}
}

// ColumnIndex returns the index of the column band containing x, or -1 if
// x falls in a gutter or margin.
func (l Layout) ColumnIndex(x float64) int {
	for i, band := range l.Columns {
		if band.Contains(x) {
			return i
		}
	}
	return -1
}

// ColumnMonth resolves a column index on a given page to the month it
// covers. ok is false when the page has no table or the column pair runs
// past the page's month list.
func (l Layout) ColumnMonth(page, col int) (time.Month, bool) {
	months, found := l.PageMonths[page]
	if !found {
		return 0, false
	}
	pair := col / 2
	if pair < 0 || pair >= len(months) {
		return 0, false
	}
	return months[pair], true
}

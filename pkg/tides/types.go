package tides

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

const (
	dateFormat  = "2006-01-02"
	clockFormat = "15:04"
)

// Entry holds a single predicted tide event.
type Entry struct {
	// Local time of the tide event, to minute precision.
	Time time.Time
	// Height in metres above chart datum.
	Height float64
	// High or Low tide. Zero value is HighTide; entries fresh from
	// extraction carry no meaningful type until Classify has run.
	Type Tide
}

// Verify the JSON round trip is implemented.
var _ json.Marshaler = Entry{}
var _ json.Unmarshaler = &Entry{}

// Entries is a time series of Entry.
type Entries []Entry

// Tide encodes a high or low tide event.
type Tide uint

const (
	HighTide Tide = iota
	LowTide
)

func (t Tide) Valid() bool {
	return t == HighTide || t == LowTide
}

func (t Tide) String() string {
	switch t {
	case HighTide:
		return "high"
	case LowTide:
		return "low"
	default:
		return "invalid"
	}
}

func (t Tide) MarshalJSON() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid tide type %d", uint(t))
	}
	return json.Marshal(t.String())
}

func (t *Tide) UnmarshalJSON(buf []byte) error {
	var s string
	if err := json.Unmarshal(buf, &s); err != nil {
		return fmt.Errorf("tide %q not a string: %w", buf, err)
	}
	switch s {
	case "high":
		*t = HighTide
	case "low":
		*t = LowTide
	default:
		return fmt.Errorf("invalid tide type %q", s)
	}
	return nil
}

// entryJSON is the wire form of an Entry, splitting the event time into
// separate date and clock fields.
type entryJSON struct {
	Date   string  `json:"date"`
	Time   string  `json:"time"`
	Height float64 `json:"height"`
	Type   Tide    `json:"type"`
}

func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(entryJSON{
		Date:   e.Time.Format(dateFormat),
		Time:   e.Time.Format(clockFormat),
		Height: e.Height,
		Type:   e.Type,
	})
}

func (e *Entry) UnmarshalJSON(buf []byte) error {
	var w entryJSON
	if err := json.Unmarshal(buf, &w); err != nil {
		return err
	}
	t, err := time.ParseInLocation(dateFormat+" "+clockFormat, w.Date+" "+w.Time, time.Local)
	if err != nil {
		return fmt.Errorf("tide entry time %q %q: %w", w.Date, w.Time, err)
	}
	e.Time = t
	e.Height = w.Height
	e.Type = w.Type
	return nil
}

// Key returns the (date, time) composite key used for deduplication.
func (e Entry) Key() string {
	return e.Time.Format(dateFormat + "_" + clockFormat)
}

// Date returns the calendar day portion of the entry in YYYY-MM-DD form.
func (e Entry) Date() string {
	return e.Time.Format(dateFormat)
}

func (e Entry) String() string {
	return fmt.Sprintf("{t: %s %s, v: %.2f, type: %s}",
		e.Time.Format(dateFormat),
		e.Time.Format(clockFormat),
		e.Height,
		e.Type.String())
}

// Sort orders the entries by (date, time) ascending, in place.
func (es Entries) Sort() {
	sort.Slice(es, func(i, j int) bool {
		return es[i].Time.Before(es[j].Time)
	})
}

// Dedup collapses entries sharing a (date, time) key. The last entry seen
// for a key wins. The result is sorted; the input is not modified.
// Dedup is idempotent: applying it to its own output is a no-op.
func (es Entries) Dedup() Entries {
	unique := make(map[string]Entry, len(es))
	for _, e := range es {
		unique[e.Key()] = e
	}
	out := make(Entries, 0, len(unique))
	for _, e := range unique {
		out = append(out, e)
	}
	out.Sort()
	return out
}

// Rebase reinterprets each entry's wall clock in loc, in place. The JSON
// form carries no zone and decodes in local time; readers that reason
// about absolute instants pin the series back to the zone it was
// extracted in with this.
func (es Entries) Rebase(loc *time.Location) {
	if loc == nil {
		return
	}
	for i := range es {
		t := es[i].Time
		es[i].Time = time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, loc)
	}
}

// Dates returns the distinct calendar days present, sorted.
func (es Entries) Dates() []string {
	seen := make(map[string]bool)
	for _, e := range es {
		seen[e.Date()] = true
	}
	out := make([]string, 0, len(seen))
	for d := range seen {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

package tides

// DefaultHighThreshold is the height in metres above which an entry is
// assumed to be a high tide when local extremum detection is inconclusive.
// Heuristic, tuned to Swan River charts.
const DefaultHighThreshold = 0.8

// Classify assigns a Tide type to every entry by comparing its height to
// its immediate neighbors in (date, time) order. A strict local maximum is
// high and a strict local minimum is low. At the sequence boundaries, and on
// plateaus, the entry is its own neighbor, so neither comparison is strict
// and the height threshold decides instead.
//
// The entries are sorted in place. highThresh <= 0 selects
// DefaultHighThreshold.
func Classify(es Entries, highThresh float64) {
	if highThresh <= 0 {
		highThresh = DefaultHighThreshold
	}
	es.Sort()

	for i := range es {
		curr := es[i].Height
		prev, next := curr, curr
		if i > 0 {
			prev = es[i-1].Height
		}
		if i < len(es)-1 {
			next = es[i+1].Height
		}

		switch {
		case curr > prev && curr > next:
			es[i].Type = HighTide
		case curr < prev && curr < next:
			es[i].Type = LowTide
		case curr > highThresh:
			es[i].Type = HighTide
		default:
			es[i].Type = LowTide
		}
	}
}

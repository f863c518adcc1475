package bom

import (
	"math"
	"regexp"
	"sort"
)

// glueGap is the widest horizontal gap, in points, that still joins two
// text runs into one word. Table cells on the chart are separated by at
// least a few points, while the runs inside a word butt up against each
// other.
const glueGap = 1.0

// Word is a positioned fragment of page text. Y is the PDF baseline
// coordinate, which grows towards the top of the page.
type Word struct {
	Text string
	X, Y float64
}

// textRun mirrors the fields of a raw pdf text run that extraction needs.
type textRun struct {
	s       string
	x, y, w float64
}

// assembleWords merges raw text runs into words. Runs are row-grouped by
// rounded baseline, ordered left to right, and glued together while the
// horizontal gap between them stays under glueGap.
func assembleWords(runs []textRun) []Word {
	sort.SliceStable(runs, func(i, j int) bool {
		yi, yj := math.Round(runs[i].y), math.Round(runs[j].y)
		if yi != yj {
			// Larger Y is higher on the page, so it reads first.
			return yi > yj
		}
		return runs[i].x < runs[j].x
	})

	var words []Word
	var curr *Word
	var currEnd float64
	for _, r := range runs {
		if r.s == "" {
			continue
		}
		sameRow := curr != nil && math.Round(curr.Y) == math.Round(r.y)
		if sameRow && r.x-currEnd < glueGap {
			curr.Text += r.s
			currEnd = r.x + r.w
			continue
		}
		words = append(words, Word{Text: r.s, X: r.x, Y: r.y})
		curr = &words[len(words)-1]
		currEnd = r.x + r.w
	}
	return words
}

// fusedDayTime matches a weekday abbreviation welded onto a four digit
// time, e.g. "TU1413". The chart sets the two in different faces but some
// extractions collapse the kerning between them.
var fusedDayTime = regexp.MustCompile(`^([A-Z]{2,3})(\d{4})$`)

// splitFused breaks a fused weekday+time word into its two tokens. Any
// other text passes through as a single token.
func splitFused(text string) []string {
	if m := fusedDayTime.FindStringSubmatch(text); m != nil {
		return []string{m[1], m[2]}
	}
	return []string{text}
}

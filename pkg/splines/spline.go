// Package splines finds a continuous curve of tide from single points.
// Tide charts only print the extrema; a cubic between consecutive extrema
// with zero slope at both ends is a close match for the real water level.
package splines

import (
	"bytes"
	"fmt"
	"math"
	"time"

	"github.com/patrick-morrison/swantides/pkg/tides"
)

// Curve represents a curve that links a tide event to another smoothly.
// Its derivative at Start and End is zero and it is undefined outside
// Start and End.
type Curve struct {
	Start, End time.Time
	a, b, c, d float64
}

// A Spline is a slice of curves linked together to form a full picture.
type Spline []Curve

// CurvesBetween links consecutive tide entries with curves. The entries
// must be sorted by time.
func CurvesBetween(entries tides.Entries) Spline {
	if len(entries) < 2 {
		return nil
	}

	curves := make([]Curve, len(entries)-1)
	for i := 0; i < len(entries)-1; i++ {
		curves[i] = curveBetween(
			entries[i].Time,
			entries[i].Height,
			entries[i+1].Time,
			entries[i+1].Height)
	}
	return curves
}

// Discrete samples n evenly spaced heights across the whole spline.
func Discrete(spline Spline, n int) []float64 {
	if len(spline) < 1 || n < 2 {
		return nil
	}
	start := spline[0].Start
	end := spline[len(spline)-1].End
	dur := end.Sub(start)
	step := time.Duration(float64(dur) / float64(n-1))

	result := make([]float64, n)
	for i := range result {
		result[i] = spline.Eval(start.Add(step * time.Duration(i)))
	}
	return result
}

func curveBetween(time1 time.Time, h1 float64, time2 time.Time, h2 float64) Curve {
	t1 := 0.0
	t2 := xrel(time1, time2)
	denominator := math.Pow(t1-t2, 3.0)
	a := (-2 * (h1 - h2)) / denominator
	b := (3 * (h1 - h2) * (t1 + t2)) / denominator
	c := (-6 * (h1 - h2) * t1 * t2) / denominator
	d := -1 * (-1*h2*math.Pow(t1, 3) + 3*h2*math.Pow(t1, 2)*t2 - 3*h1*t1*math.Pow(t2, 2) + h1*math.Pow(t2, 3)) / denominator
	return Curve{
		Start: time1,
		End:   time2,
		a:     a,
		b:     b,
		c:     c,
		d:     d,
	}
}

// Eval computes the interpolated height at t, or NaN outside the spline.
func (s Spline) Eval(t time.Time) float64 {
	left, right := 0, len(s)
	for left < right {
		mid := left + (right-left)/2
		switch {
		case t.Before(s[mid].Start):
			right = mid
		case t.After(s[mid].End):
			left = mid + 1
		default:
			return s[mid].Eval(t)
		}
	}
	// Function not defined.
	return math.NaN()
}

func (c Curve) Eval(t time.Time) float64 {
	if t.Before(c.Start) || t.After(c.End) {
		return math.NaN()
	}
	x := xrel(c.Start, t)
	return c.a*x*x*x + c.b*x*x + c.c*x + c.d
}

func (c Curve) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	_, err := fmt.Fprintf(&buf, `{"start":%d,"end":%d,"a":%g,"b":%g,"c":%g,"d":%g}`,
		c.Start.Unix(), c.End.Unix(),
		c.a, c.b, c.c, c.d)
	return buf.Bytes(), err
}

// xrel computes an x coordinate for t that is relative to origin.
// This reduces large floating point errors by moving x coordinates closer
// to the "origin" (just the start of a particular curve).
func xrel(origin time.Time, t time.Time) float64 {
	return float64(t.Unix() - origin.Unix())
}

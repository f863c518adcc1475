// Package bom extracts tide predictions from the Bureau of Meteorology's
// fixed-layout yearly tide chart PDFs. The chart prints each month as a pair
// of columns (days 1-15 and 16-31) with four months to a page; extraction
// reconstructs (day, time, height) rows from loosely positioned text
// fragments by binning words into the known column bands and walking each
// column's token stream with a small state machine. All geometry and
// calendar constants live in a Layout so a differently ruled chart can be
// described without touching the parser.
package bom

package bom

import (
	"fmt"
	"sort"

	"github.com/ledongthuc/pdf"

	"github.com/patrick-morrison/swantides/pkg/tides"
)

// Extract pulls every tide entry it can find out of the chart at path,
// following the given layout. Entries are returned raw: unclassified,
// unsorted, and possibly containing duplicates where column bands overlap.
//
// The pdf library panics on malformed content streams; Extract converts
// such panics into errors so one broken file cannot take down a batch run.
func Extract(path string, layout Layout) (entries tides.Entries, err error) {
	defer func() {
		if r := recover(); r != nil {
			entries = nil
			err = fmt.Errorf("reading %s: %v", path, r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	// Walk table pages in order for deterministic output.
	pages := make([]int, 0, len(layout.PageMonths))
	for n := range layout.PageMonths {
		pages = append(pages, n)
	}
	sort.Ints(pages)

	for _, pageNum := range pages {
		if pageNum > reader.NumPage() {
			continue
		}
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		entries = append(entries, extractPage(page, pageNum, layout)...)
	}

	return entries, nil
}

// extractPage runs the column pipeline over one table page: raw text runs
// are assembled into words, binned into column bands by x-coordinate, and
// each column is parsed against the month it covers.
func extractPage(page pdf.Page, pageNum int, layout Layout) tides.Entries {
	content := page.Content()
	runs := make([]textRun, 0, len(content.Text))
	for _, t := range content.Text {
		runs = append(runs, textRun{s: t.S, x: t.X, y: t.Y, w: t.W})
	}
	words := assembleWords(runs)

	columns := make(map[int][]Word)
	for _, w := range words {
		if col := layout.ColumnIndex(w.X); col != -1 {
			columns[col] = append(columns[col], w)
		}
	}

	var entries tides.Entries
	for col := range layout.Columns {
		month, ok := layout.ColumnMonth(pageNum, col)
		if !ok {
			continue
		}
		entries = append(entries, parseColumn(columns[col], month, layout)...)
	}
	return entries
}

// Package report defines the JSON document emitted for each extracted
// location and helpers to write and re-read it.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/patrick-morrison/swantides/pkg/tides"
)

// Source credited in every document.
const Source = "Bureau of Meteorology"

// Document is the output for one location: extraction metadata plus the
// cleaned tide series.
type Document struct {
	Location  string        `json:"location"`
	Year      int           `json:"year"`
	Source    string        `json:"source"`
	Extracted time.Time     `json:"extracted"`
	Tides     tides.Entries `json:"tides"`
}

// New assembles a Document stamped with the current time. A nil entry list
// still yields a valid document with an empty tides array.
func New(location string, year int, entries tides.Entries) Document {
	if entries == nil {
		entries = tides.Entries{}
	}
	return Document{
		Location:  location,
		Year:      year,
		Source:    Source,
		Extracted: time.Now(),
		Tides:     entries,
	}
}

// Write encodes the document as indented JSON.
func (d Document) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

// WriteFile writes the document to path, truncating any previous file.
func (d Document) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := d.Write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// ReadFile loads a previously written document.
func ReadFile(path string) (Document, error) {
	var d Document
	buf, err := os.ReadFile(path)
	if err != nil {
		return d, fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(buf, &d); err != nil {
		return d, fmt.Errorf("decode %s: %w", path, err)
	}
	return d, nil
}

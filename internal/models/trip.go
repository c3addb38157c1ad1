package models

import "time"

// TripRecord is one bike trip read from a city's source file.
type TripRecord struct {
	StartTime    time.Time
	EndTime      time.Time
	StartStation string
	EndStation   string
	UserType     string  // empty when not recorded
	Gender       string  // empty when not recorded or not in the schema
	Duration     float64 // seconds
	BirthYear    int     // 0 when not recorded or not in the schema
	Row          int     // zero-based position in the source file
}

// HasBirthYear reports whether the record carries a birth year.
func (r TripRecord) HasBirthYear() bool {
	return r.BirthYear != 0
}

// Schema describes which optional columns a dataset carries.
// It is fixed once the source header has been read.
type Schema struct {
	HasGender    bool
	HasBirthYear bool
}

// Dataset is the filtered set of trips for one query.
type Dataset struct {
	City    City
	Source  string
	Filter  Filter
	Schema  Schema
	Records []TripRecord
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Records)
}

// IsEmpty returns true if the filter matched no rows.
func (d *Dataset) IsEmpty() bool {
	return d.Len() == 0
}

// Page returns up to size records starting at offset.
func (d *Dataset) Page(offset, size int) []TripRecord {
	if offset < 0 || size <= 0 || offset >= d.Len() {
		return nil
	}
	end := min(offset+size, d.Len())
	return d.Records[offset:end]
}

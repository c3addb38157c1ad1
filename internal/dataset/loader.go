// Package dataset loads per-city trip files and applies the month and day
// filters.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/j-veylop/bikeshare-explorer/internal/logger"
	"github.com/j-veylop/bikeshare-explorer/internal/models"
)

// Source column names.
const (
	ColStartTime    = "Start Time"
	ColEndTime      = "End Time"
	ColTripDuration = "Trip Duration"
	ColStartStation = "Start Station"
	ColEndStation   = "End Station"
	ColUserType     = "User Type"
	ColGender       = "Gender"
	ColBirthYear    = "Birth Year"
)

var requiredColumns = []string{
	ColStartTime,
	ColEndTime,
	ColTripDuration,
	ColStartStation,
	ColEndStation,
	ColUserType,
}

var errMissingColumn = errors.New("required column missing")

// Sources maps each city to the path of its trip file.
type Sources map[models.City]string

// Loader reads trip files for a fixed set of city sources.
type Loader struct {
	sources Sources
}

// NewLoader creates a loader over a copy of sources.
func NewLoader(sources Sources) *Loader {
	return &Loader{sources: maps.Clone(sources)}
}

// Path returns the source path configured for city.
func (l *Loader) Path(city models.City) (string, bool) {
	path, ok := l.sources[city]
	return path, ok
}

// Load reads the filter's city file and returns the rows that match the
// filter. A filter that matches nothing yields an empty dataset, not an error.
func (l *Loader) Load(filter models.Filter) (*models.Dataset, error) {
	path, ok := l.sources[filter.City]
	if !ok || path == "" {
		return nil, &DataSourceError{City: filter.City, Err: ErrUnknownCity}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &DataSourceError{City: filter.City, Path: path, Err: err}
	}
	defer f.Close()

	start := time.Now()
	ds, err := read(f, path, filter)
	if err != nil {
		return nil, err
	}
	ds.City = filter.City

	logger.Debug("dataset loaded",
		"city", string(filter.City),
		"path", path,
		"filter", filter.String(),
		"rows", ds.Len(),
		"elapsed", time.Since(start))

	return ds, nil
}

// columns holds header positions; optional columns are -1 when absent.
type columns struct {
	startTime, endTime, duration   int
	startStation, endStation, user int
	gender, birthYear              int
}

func (c columns) schema() models.Schema {
	return models.Schema{
		HasGender:    c.gender >= 0,
		HasBirthYear: c.birthYear >= 0,
	}
}

func indexHeader(header []string, path string) (columns, error) {
	idx := func(col string) int {
		for i, h := range header {
			h = strings.TrimPrefix(h, "\ufeff")
			if strings.EqualFold(strings.TrimSpace(h), col) {
				return i
			}
		}
		return -1
	}

	for _, col := range requiredColumns {
		if idx(col) < 0 {
			return columns{}, &ParseError{Path: path, Column: col, Err: errMissingColumn}
		}
	}

	return columns{
		startTime:    idx(ColStartTime),
		endTime:      idx(ColEndTime),
		duration:     idx(ColTripDuration),
		startStation: idx(ColStartStation),
		endStation:   idx(ColEndStation),
		user:         idx(ColUserType),
		gender:       idx(ColGender),
		birthYear:    idx(ColBirthYear),
	}, nil
}

func read(r io.Reader, path string, filter models.Filter) (*models.Dataset, error) {
	csvr := csv.NewReader(r)
	csvr.ReuseRecord = true

	header, err := csvr.Read()
	if errors.Is(err, io.EOF) {
		return nil, &ParseError{Path: path, Line: 1, Err: errors.New("empty file")}
	}
	if err != nil {
		return nil, csvError(path, err)
	}

	cols, err := indexHeader(header, path)
	if err != nil {
		return nil, err
	}

	ds := &models.Dataset{
		Source: path,
		Filter: filter,
		Schema: cols.schema(),
	}

	for row := 0; ; row++ {
		rec, err := csvr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, csvError(path, err)
		}
		line, _ := csvr.FieldPos(0)

		trip, err := parseRecord(rec, cols, line, path)
		if err != nil {
			return nil, err
		}
		if !filter.Matches(trip.StartTime) {
			continue
		}
		trip.Row = row
		ds.Records = append(ds.Records, trip)
	}

	return ds, nil
}

func parseRecord(rec []string, cols columns, line int, path string) (models.TripRecord, error) {
	fail := func(col, value string, err error) (models.TripRecord, error) {
		return models.TripRecord{}, &ParseError{Path: path, Line: line, Column: col, Value: value, Err: err}
	}

	var trip models.TripRecord
	var err error

	if trip.StartTime, err = parseTimestamp(rec[cols.startTime]); err != nil {
		return fail(ColStartTime, rec[cols.startTime], err)
	}
	if trip.EndTime, err = parseTimestamp(rec[cols.endTime]); err != nil {
		return fail(ColEndTime, rec[cols.endTime], err)
	}
	if trip.Duration, err = strconv.ParseFloat(strings.TrimSpace(rec[cols.duration]), 64); err != nil {
		return fail(ColTripDuration, rec[cols.duration], err)
	}

	trip.StartStation = strings.TrimSpace(rec[cols.startStation])
	trip.EndStation = strings.TrimSpace(rec[cols.endStation])
	trip.UserType = strings.TrimSpace(rec[cols.user])

	if cols.gender >= 0 {
		trip.Gender = strings.TrimSpace(rec[cols.gender])
	}
	if cols.birthYear >= 0 {
		if trip.BirthYear, err = parseYear(rec[cols.birthYear]); err != nil {
			return fail(ColBirthYear, rec[cols.birthYear], err)
		}
	}

	return trip, nil
}

func csvError(path string, err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &ParseError{Path: path, Line: pe.Line, Err: pe.Err}
	}
	return &ParseError{Path: path, Err: fmt.Errorf("failed to read csv: %w", err)}
}

package dataset

import (
	"errors"
	"fmt"

	"github.com/j-veylop/bikeshare-explorer/internal/models"
)

// ErrUnknownCity is wrapped by DataSourceError when a city has no source.
var ErrUnknownCity = errors.New("no data source configured for city")

// DataSourceError reports a city source that cannot be resolved or read.
type DataSourceError struct {
	City models.City
	Path string
	Err  error
}

func (e *DataSourceError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("data source for %q: %v", string(e.City), e.Err)
	}
	return fmt.Sprintf("data source for %q (%s): %v", string(e.City), e.Path, e.Err)
}

func (e *DataSourceError) Unwrap() error {
	return e.Err
}

// ParseError reports source content that cannot be interpreted.
// Line is 1-based and counts the header; it is 0 for header-level problems.
type ParseError struct {
	Path   string
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	switch {
	case e.Line == 0 && e.Column != "":
		return fmt.Sprintf("%s: column %q: %v", e.Path, e.Column, e.Err)
	case e.Column == "":
		return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
	default:
		return fmt.Sprintf("%s:%d: column %q value %q: %v", e.Path, e.Line, e.Column, e.Value, e.Err)
	}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

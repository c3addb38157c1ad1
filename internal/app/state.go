// Package app provides the interactive Bubble Tea session and its state.
package app

import (
	"github.com/j-veylop/bikeshare-explorer/internal/models"
)

// Stage is the step of the session currently waiting for input.
type Stage int

const (
	// StageCity asks which city to explore.
	StageCity Stage = iota
	// StageMonth asks for a month filter.
	StageMonth
	// StageDay asks for a day of week filter.
	StageDay
	// StageLoading waits for the query to finish.
	StageLoading
	// StageRawData offers pages of raw trip rows.
	StageRawData
	// StageRestart asks whether to run another query.
	StageRestart
	// StageDone means the session has ended.
	StageDone
)

// String returns the string representation of a Stage.
func (s Stage) String() string {
	switch s {
	case StageCity:
		return "city"
	case StageMonth:
		return "month"
	case StageDay:
		return "day"
	case StageLoading:
		return "loading"
	case StageRawData:
		return "raw data"
	case StageRestart:
		return "restart"
	case StageDone:
		return "done"
	default:
		return "unknown"
	}
}

// AcceptsInput returns true if the stage shows a prompt.
func (s Stage) AcceptsInput() bool {
	switch s {
	case StageCity, StageMonth, StageDay, StageRawData, StageRestart:
		return true
	}
	return false
}

// Session holds the filter being built and the result of the last query.
// The raw data offset belongs to one query and starts over with the next.
type Session struct {
	Filter   models.Filter
	Result   *models.QueryResult
	Offset   int
	PageSize int
}

// NewSession creates a session that pages pageSize rows at a time.
func NewSession(pageSize int) *Session {
	if pageSize <= 0 {
		pageSize = 5
	}
	return &Session{PageSize: pageSize}
}

// Reset clears the filter, result and paging position.
func (s *Session) Reset() {
	s.Filter = models.Filter{}
	s.Result = nil
	s.Offset = 0
}

// SetResult stores a query result and rewinds paging to the first row.
func (s *Session) SetResult(r *models.QueryResult) {
	s.Result = r
	s.Offset = 0
}

// NextPage returns the rows at the current offset and advances past them.
// It returns nil once every row has been shown.
func (s *Session) NextPage() []models.TripRecord {
	if s.Result == nil {
		return nil
	}
	page := s.Result.Dataset.Page(s.Offset, s.PageSize)
	s.Offset += len(page)
	return page
}

// HasMoreRows returns true if NextPage would return rows.
func (s *Session) HasMoreRows() bool {
	return s.Result != nil && s.Offset < s.Result.Dataset.Len()
}

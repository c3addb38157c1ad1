// Package explorer runs a bikeshare query: load the filtered dataset, then
// compute the time, station, duration and user statistics in that order.
package explorer

import (
	"fmt"
	"time"

	"github.com/j-veylop/bikeshare-explorer/internal/logger"
	"github.com/j-veylop/bikeshare-explorer/internal/models"
	"github.com/j-veylop/bikeshare-explorer/internal/stats"
)

// DatasetLoader loads the trips matching a filter.
type DatasetLoader interface {
	Load(filter models.Filter) (*models.Dataset, error)
}

// Service answers queries against a loader.
type Service struct {
	loader DatasetLoader
	now    func() time.Time
}

// New creates a query service.
func New(loader DatasetLoader) *Service {
	return &Service{loader: loader, now: time.Now}
}

// Query loads the dataset for filter and aggregates it. When the filter
// matches no trips the result is Empty and no statistics are computed.
// Load errors are returned unchanged in the chain so callers can inspect
// them with errors.As.
func (s *Service) Query(filter models.Filter) (*models.QueryResult, error) {
	started := s.now()
	ds, err := s.loader.Load(filter)
	if err != nil {
		logger.Error("query failed", "filter", filter.String(), "error", err)
		return nil, fmt.Errorf("failed to load %s data: %w", filter.City, err)
	}

	result := &models.QueryResult{Dataset: ds, LoadTime: s.now().Sub(started)}
	if ds.IsEmpty() {
		logger.Info("query matched no trips", "filter", filter.String())
		return result, nil
	}

	if err := s.aggregate(result); err != nil {
		return nil, err
	}

	logger.Info("query complete",
		"filter", filter.String(),
		"trips", ds.Len(),
		"load", result.LoadTime)

	return result, nil
}

func (s *Service) aggregate(r *models.QueryResult) error {
	var err error

	mark := s.now()
	if r.Time, err = stats.TimeStats(r.Dataset); err != nil {
		return fmt.Errorf("failed to compute time stats: %w", err)
	}
	r.Timings.Time, mark = s.since(mark)

	if r.Station, err = stats.StationStats(r.Dataset); err != nil {
		return fmt.Errorf("failed to compute station stats: %w", err)
	}
	r.Timings.Station, mark = s.since(mark)

	if r.Duration, err = stats.DurationStats(r.Dataset); err != nil {
		return fmt.Errorf("failed to compute duration stats: %w", err)
	}
	r.Timings.Duration, mark = s.since(mark)

	if r.User, err = stats.UserStats(r.Dataset); err != nil {
		return fmt.Errorf("failed to compute user stats: %w", err)
	}
	r.Timings.User, _ = s.since(mark)

	return nil
}

// since returns the time elapsed from mark and the new mark.
func (s *Service) since(mark time.Time) (time.Duration, time.Time) {
	now := s.now()
	return now.Sub(mark), now
}

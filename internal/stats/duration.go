package stats

import "github.com/j-veylop/bikeshare-explorer/internal/models"

const (
	secondsPerHour   = 3600
	secondsPerMinute = 60
)

// DurationStats returns total travel time in hours and mean travel time in
// minutes. Durations are summed as recorded, including zero or negative ones.
func DurationStats(ds *models.Dataset) (models.DurationStats, error) {
	if ds.IsEmpty() {
		return models.DurationStats{}, ErrEmptyDataset
	}

	var total float64
	for _, r := range ds.Records {
		total += r.Duration
	}
	mean := total / float64(ds.Len())

	return models.DurationStats{
		Trips:        ds.Len(),
		TotalSeconds: total,
		TotalHours:   total / secondsPerHour,
		MeanMinutes:  mean / secondsPerMinute,
	}, nil
}

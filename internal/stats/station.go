package stats

import "github.com/j-veylop/bikeshare-explorer/internal/models"

// StationStats returns the most used start station, end station and
// (start, end) combination. Empty station names are not counted, and a trip
// missing either end is left out of the combinations.
func StationStats(ds *models.Dataset) (models.StationStats, error) {
	if ds.IsEmpty() {
		return models.StationStats{}, ErrEmptyDataset
	}

	starts := newFrequency[string]()
	ends := newFrequency[string]()
	pairs := newFrequency[models.StationPair]()

	for _, r := range ds.Records {
		if r.StartStation != "" {
			starts.add(r.StartStation)
		}
		if r.EndStation != "" {
			ends.add(r.EndStation)
		}
		if r.StartStation != "" && r.EndStation != "" {
			pairs.add(models.StationPair{Start: r.StartStation, End: r.EndStation})
		}
	}

	var result models.StationStats
	result.CommonStart, result.CommonStartCount, _ = starts.mode()
	result.CommonEnd, result.CommonEndCount, _ = ends.mode()
	result.CommonPair, result.CommonPairCount, _ = pairs.mode()

	return result, nil
}

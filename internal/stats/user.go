package stats

import "github.com/j-veylop/bikeshare-explorer/internal/models"

// UserStats returns rider demographics. Gender counts and birth year stats
// are only computed when the dataset schema has those columns. Missing
// values are left out of every count.
func UserStats(ds *models.Dataset) (models.UserStats, error) {
	if ds.IsEmpty() {
		return models.UserStats{}, ErrEmptyDataset
	}

	types := newFrequency[string]()
	genders := newFrequency[string]()
	for _, r := range ds.Records {
		if r.UserType != "" {
			types.add(r.UserType)
		}
		if ds.Schema.HasGender && r.Gender != "" {
			genders.add(r.Gender)
		}
	}

	result := models.UserStats{TypeCounts: categoryCounts(types)}
	if ds.Schema.HasGender {
		result.GenderCounts = categoryCounts(genders)
	}
	if ds.Schema.HasBirthYear {
		result.Birth = birthStats(ds.Records)
	}

	return result, nil
}

func categoryCounts(f *frequency[string]) []models.CategoryCount {
	counts := make([]models.CategoryCount, 0, f.len())
	for _, v := range f.sorted() {
		counts = append(counts, models.CategoryCount{Value: v, Count: f.count(v)})
	}
	return counts
}

// birthStats returns nil when no record has a birth year.
// The most recent year belongs to the first record, in row order, whose
// start time equals the latest start time.
func birthStats(records []models.TripRecord) *models.BirthStats {
	years := newFrequency[int]()
	var b models.BirthStats
	latest := -1

	for i, r := range records {
		if latest < 0 || r.StartTime.After(records[latest].StartTime) {
			latest = i
		}
		if !r.HasBirthYear() {
			continue
		}
		if years.len() == 0 || r.BirthYear < b.Earliest {
			b.Earliest = r.BirthYear
		}
		years.add(r.BirthYear)
	}

	if years.len() == 0 {
		return nil
	}

	b.MostCommon, b.MostCommonN, _ = years.mode()
	if latest >= 0 && records[latest].HasBirthYear() {
		b.MostRecent = records[latest].BirthYear
		b.HasMostRecent = true
	}

	return &b
}

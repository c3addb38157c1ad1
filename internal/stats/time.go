package stats

import (
	"time"

	"github.com/j-veylop/bikeshare-explorer/internal/models"
)

// TimeStats returns the most common month, weekday and hour of trip starts,
// plus the number of trips starting in each hour of the day and on each
// day of the week.
func TimeStats(ds *models.Dataset) (models.TimeStats, error) {
	if ds.IsEmpty() {
		return models.TimeStats{}, ErrEmptyDataset
	}

	months := newFrequency[time.Month]()
	weekdays := newFrequency[time.Weekday]()
	hours := newFrequency[int]()

	result := models.TimeStats{Trips: ds.Len()}
	for _, r := range ds.Records {
		months.add(r.StartTime.Month())
		weekdays.add(r.StartTime.Weekday())
		hours.add(r.StartTime.Hour())
		result.HourlyCounts[r.StartTime.Hour()]++
		result.WeekdayCounts[r.StartTime.Weekday()]++
	}

	result.CommonMonth, result.MonthCount, _ = months.mode()
	result.CommonWeekday, result.WeekdayCount, _ = weekdays.mode()
	result.CommonHour, result.HourCount, _ = hours.mode()

	return result, nil
}

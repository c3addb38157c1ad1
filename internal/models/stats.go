package models

import "time"

// CategoryCount is the number of trips sharing one categorical value.
type CategoryCount struct {
	Value string
	Count int
}

// StationPair is a (start, end) station combination.
type StationPair struct {
	Start string
	End   string
}

// TimeStats holds the most frequent times of travel.
type TimeStats struct {
	Trips         int
	CommonMonth   time.Month
	MonthCount    int
	CommonWeekday time.Weekday
	WeekdayCount  int
	CommonHour    int // 0-23
	HourCount     int
	HourlyCounts  [24]int
	WeekdayCounts [7]int // indexed by time.Weekday
}

// StationStats holds the most popular stations and trip.
type StationStats struct {
	CommonStart      string
	CommonStartCount int
	CommonEnd        string
	CommonEndCount   int
	CommonPair       StationPair
	CommonPairCount  int
}

// DurationStats holds total and mean trip duration.
type DurationStats struct {
	Trips        int
	TotalSeconds float64
	TotalHours   float64
	MeanMinutes  float64
}

// BirthStats holds birth year statistics for datasets that record them.
type BirthStats struct {
	Earliest      int
	MostRecent    int
	HasMostRecent bool // false when the latest trip has no birth year
	MostCommon    int
	MostCommonN   int
}

// UserStats holds user demographics. GenderCounts is nil and Birth is nil
// when the dataset schema lacks those columns.
type UserStats struct {
	TypeCounts   []CategoryCount
	GenderCounts []CategoryCount
	Birth        *BirthStats
}

// SectionTimings records how long each aggregation took.
type SectionTimings struct {
	Time     time.Duration
	Station  time.Duration
	Duration time.Duration
	User     time.Duration
}

// QueryResult is the outcome of one query. Stats are only populated when
// the dataset is non-empty.
type QueryResult struct {
	Dataset  *Dataset
	Time     TimeStats
	Station  StationStats
	Duration DurationStats
	User     UserStats
	Timings  SectionTimings
	LoadTime time.Duration
}

// Empty returns true if no trips matched the filter.
func (q *QueryResult) Empty() bool {
	return q == nil || q.Dataset.IsEmpty()
}

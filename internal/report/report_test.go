package report

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/j-veylop/bikeshare-explorer/internal/models"
)

func TestNewRenderer_MinWidth(t *testing.T) {
	if got := NewRenderer(10).Width(); got != minWidth {
		t.Errorf("Width() = %d, want %d", got, minWidth)
	}
	if got := NewRenderer(100).Width(); got != 100 {
		t.Errorf("Width() = %d, want 100", got)
	}
}

func TestSeparator(t *testing.T) {
	if got := Separator(); got != strings.Repeat("-", 40) {
		t.Errorf("Separator() = %q, want 40 dashes", got)
	}
}

func TestRenderer_Time(t *testing.T) {
	s := models.TimeStats{
		Trips:         12345,
		CommonMonth:   time.June,
		CommonWeekday: time.Monday,
		CommonHour:    17,
	}
	s.HourlyCounts[17] = 3
	s.HourlyCounts[8] = 1
	s.WeekdayCounts[time.Monday] = 3
	s.WeekdayCounts[time.Sunday] = 1

	out := NewRenderer(80).Time(s, 1500*time.Millisecond)

	for _, want := range []string{
		"Number of trips - 12,345",
		"Calculating The Most Frequent Times of Travel...",
		"The most common month is June",
		"The most common day of the week is Monday",
		"The most common hour of the day is 17:00",
		HourlyChartCaption,
		"Mon │",
		"Sun │",
		"This took 1.50 seconds.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Time() missing %q in:\n%s", want, out)
		}
	}
	if !strings.HasSuffix(out, Separator()) {
		t.Error("Time() should end with the separator")
	}
	if strings.Index(out, "Mon │") > strings.Index(out, "Sun │") {
		t.Error("weekday chart should start on Monday")
	}
	if strings.Index(out, "Number of trips") > strings.Index(out, "Calculating") {
		t.Error("trip count should come before the statistics")
	}
}

func TestRenderer_TimeWithoutTrips(t *testing.T) {
	out := NewRenderer(80).Time(models.TimeStats{}, 0)
	if strings.Contains(out, HourlyChartCaption) {
		t.Error("no chart should be drawn without trips")
	}
}

func TestRenderer_Station(t *testing.T) {
	s := models.StationStats{
		CommonStart: "Streeter Dr & Grand Ave",
		CommonEnd:   "Lake Shore Dr & Monroe St",
		CommonPair:  models.StationPair{Start: "A", End: "B"},
	}

	out := NewRenderer(80).Station(s, 0)

	for _, want := range []string{
		"Calculating The Most Popular Stations and Trip...",
		"Most Common Start Station - Streeter Dr & Grand Ave",
		"Most Common End Station - Lake Shore Dr & Monroe St",
		"Most Common Start and End Stations - Start A and End B",
		"This took 0.00 seconds.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Station() missing %q in:\n%s", want, out)
		}
	}
}

func TestRenderer_Duration(t *testing.T) {
	s := models.DurationStats{Trips: 2, TotalSeconds: 9000, TotalHours: 2.5, MeanMinutes: 75}

	out := NewRenderer(80).Duration(s, 0)

	for _, want := range []string{
		"Calculating Trip Duration...",
		"The total travel time is 2.50 hours",
		"The mean travel time is 75.00 minutes",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Duration() missing %q in:\n%s", want, out)
		}
	}
}

func TestRenderer_User(t *testing.T) {
	s := models.UserStats{
		TypeCounts:   []models.CategoryCount{{Value: "Subscriber", Count: 1500}, {Value: "Customer", Count: 2}},
		GenderCounts: []models.CategoryCount{{Value: "Male", Count: 3}, {Value: "Female", Count: 1}},
		Birth: &models.BirthStats{
			Earliest:      1899,
			MostRecent:    2001,
			HasMostRecent: true,
			MostCommon:    1989,
			MostCommonN:   10,
		},
	}
	schema := models.Schema{HasGender: true, HasBirthYear: true}

	out := NewRenderer(80).User(s, schema, 0)

	for _, want := range []string{
		"Calculating User Stats...",
		"User Type Count",
		"Subscriber  1,500",
		"Customer    2",
		"Gender Count",
		"Male    3",
		"Interesting Stats",
		"The earliest traveller was born in 1899",
		"The most recent traveller was born in 2001",
		"The most common birth year is 1989",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("User() missing %q in:\n%s", want, out)
		}
	}
	if strings.Index(out, "Subscriber") > strings.Index(out, "Customer") {
		t.Error("user types should keep the given order")
	}
}

func TestRenderer_UserWithoutOptionalColumns(t *testing.T) {
	s := models.UserStats{
		TypeCounts: []models.CategoryCount{{Value: "Subscriber", Count: 2}, {Value: "Customer", Count: 1}},
	}

	out := NewRenderer(80).User(s, models.Schema{}, 0)

	if !strings.Contains(out, "User Type Count") {
		t.Error("User() should always list user types")
	}
	for _, unwanted := range []string{"Gender Count", "Interesting Stats"} {
		if strings.Contains(out, unwanted) {
			t.Errorf("User() should not contain %q without the column", unwanted)
		}
	}
}

func TestRenderer_UserMostRecentUnknown(t *testing.T) {
	s := models.UserStats{
		TypeCounts: []models.CategoryCount{{Value: "Subscriber", Count: 1}},
		Birth:      &models.BirthStats{Earliest: 1970, MostCommon: 1970},
	}

	out := NewRenderer(80).User(s, models.Schema{HasBirthYear: true}, 0)
	if !strings.Contains(out, "did not record a birth year") {
		t.Errorf("User() should say the latest traveller has no birth year:\n%s", out)
	}
}

func TestRenderer_Summary(t *testing.T) {
	r := NewRenderer(80)

	if got := r.Summary(&models.QueryResult{Dataset: &models.Dataset{}}); !strings.Contains(got, NoDataMessage) {
		t.Errorf("Summary() of an empty result = %q, want %q", got, NoDataMessage)
	}

	res := &models.QueryResult{
		Dataset:  &models.Dataset{Records: []models.TripRecord{{}}},
		Time:     models.TimeStats{Trips: 1, CommonMonth: time.March},
		Duration: models.DurationStats{Trips: 1},
		User:     models.UserStats{TypeCounts: []models.CategoryCount{{Value: "Customer", Count: 1}}},
	}
	out := r.Summary(res)

	sections := []string{
		"Most Frequent Times of Travel",
		"Most Popular Stations",
		"Trip Duration",
		"User Stats",
	}
	last := -1
	for _, s := range sections {
		idx := strings.Index(out, s)
		if idx < 0 {
			t.Fatalf("Summary() missing section %q", s)
		}
		if idx < last {
			t.Errorf("section %q out of order", s)
		}
		last = idx
	}
	if got := strings.Count(out, "This took"); got != 4 {
		t.Errorf("Summary() has %d timing lines, want 4", got)
	}
}

func TestRenderer_Error(t *testing.T) {
	out := NewRenderer(80).Error(errors.New("chicago.csv: no such file"))
	if !strings.Contains(out, "Error: chicago.csv: no such file") {
		t.Errorf("Error() = %q", out)
	}
}

func TestRenderer_RawPage(t *testing.T) {
	start := time.Date(2017, time.June, 5, 17, 0, 0, 0, time.UTC)
	records := []models.TripRecord{
		{Row: 0, StartTime: start, EndTime: start.Add(time.Hour), Duration: 3600,
			StartStation: "A", EndStation: "B", UserType: "Subscriber", Gender: "Male", BirthYear: 1990},
		{Row: 1, StartTime: start, EndTime: start.Add(time.Minute), Duration: 60.5,
			StartStation: "B", EndStation: "C", UserType: "Customer"},
	}
	schema := models.Schema{HasGender: true, HasBirthYear: true}

	out := NewRenderer(200).RawPage(records, schema)

	for _, want := range []string{
		"Start Time", "Gender", "Birth Year",
		"2017-06-05 17:00:00", "60.5", "Subscriber", "1990",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("RawPage() missing %q in:\n%s", want, out)
		}
	}
}

func TestRenderer_RawPageSchemaColumns(t *testing.T) {
	records := []models.TripRecord{{StartStation: "A", EndStation: "B", UserType: "Customer"}}

	out := NewRenderer(200).RawPage(records, models.Schema{})
	if strings.Contains(out, "Gender") || strings.Contains(out, "Birth Year") {
		t.Errorf("RawPage() should omit columns missing from the schema:\n%s", out)
	}
}

func TestRenderer_RawPageTruncates(t *testing.T) {
	records := []models.TripRecord{{
		StartStation: strings.Repeat("Very Long Station Name ", 10),
		EndStation:   "B",
		UserType:     "Customer",
	}}

	r := NewRenderer(50)
	for i, line := range strings.Split(r.RawPage(records, models.Schema{}), "\n") {
		if w := ansi.StringWidth(line); w > 50 {
			t.Errorf("line %d is %d columns wide, want at most 50", i, w)
		}
	}
}

func TestRenderer_RawPageEmpty(t *testing.T) {
	if out := NewRenderer(80).RawPage(nil, models.Schema{}); !strings.Contains(out, "No more rows") {
		t.Errorf("RawPage(nil) = %q", out)
	}
}

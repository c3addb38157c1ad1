// Package report renders query results as styled terminal text.
package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/j-veylop/bikeshare-explorer/internal/models"
	"github.com/j-veylop/bikeshare-explorer/internal/ui/styles"
)

// SeparatorWidth is the length of the rule printed after each section.
const SeparatorWidth = 40

// NoDataMessage is shown when a filter matches no trips.
const NoDataMessage = "No data available"

const minWidth = 40

// Renderer formats results for a terminal of a given width.
type Renderer struct {
	width int
}

// NewRenderer creates a renderer. A width below 40 columns is raised to 40.
func NewRenderer(width int) *Renderer {
	r := &Renderer{}
	r.SetWidth(width)
	return r
}

// SetWidth updates the terminal width used for truncation and charts.
func (r *Renderer) SetWidth(width int) {
	r.width = max(width, minWidth)
}

// Width returns the effective terminal width.
func (r *Renderer) Width() int {
	return r.width
}

// Summary renders all four sections in order: time, station, duration, user.
// An empty result renders the no-data message instead.
func (r *Renderer) Summary(res *models.QueryResult) string {
	if res.Empty() {
		return r.NoData()
	}

	return strings.Join([]string{
		r.Time(res.Time, res.Timings.Time),
		r.Station(res.Station, res.Timings.Station),
		r.Duration(res.Duration, res.Timings.Duration),
		r.User(res.User, res.Dataset.Schema, res.Timings.User),
	}, "\n")
}

// Time renders the trip count and the most frequent times of travel.
func (r *Renderer) Time(s models.TimeStats, took time.Duration) string {
	var b strings.Builder

	b.WriteString(line("Number of trips", humanize.Comma(int64(s.Trips))))
	b.WriteString("\n\n")
	b.WriteString(heading("Calculating The Most Frequent Times of Travel..."))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "The most common month is %s\n", value(s.CommonMonth.String()))
	fmt.Fprintf(&b, "The most common day of the week is %s\n", value(s.CommonWeekday.String()))
	fmt.Fprintf(&b, "The most common hour of the day is %s\n", value(fmt.Sprintf("%d:00", s.CommonHour)))

	if chart := r.hourlyChart(s.HourlyCounts); chart != "" {
		b.WriteString("\n")
		b.WriteString(chart)
		b.WriteString("\n")
	}
	if chart := r.weekdayChart(s.WeekdayCounts); chart != "" {
		b.WriteString("\n")
		b.WriteString(chart)
		b.WriteString("\n")
	}

	b.WriteString(footer(took))
	return b.String()
}

// Station renders the most popular stations and trip.
func (r *Renderer) Station(s models.StationStats, took time.Duration) string {
	var b strings.Builder

	b.WriteString(heading("Calculating The Most Popular Stations and Trip..."))
	b.WriteString("\n\n")
	b.WriteString(line("Most Common Start Station", s.CommonStart))
	b.WriteString("\n")
	b.WriteString(line("Most Common End Station", s.CommonEnd))
	b.WriteString("\n")
	b.WriteString(line("Most Common Start and End Stations",
		fmt.Sprintf("Start %s and End %s", s.CommonPair.Start, s.CommonPair.End)))
	b.WriteString("\n")

	b.WriteString(footer(took))
	return b.String()
}

// Duration renders total and mean travel time.
func (r *Renderer) Duration(s models.DurationStats, took time.Duration) string {
	var b strings.Builder

	b.WriteString(heading("Calculating Trip Duration..."))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "The total travel time is %s hours\n", value(fmt.Sprintf("%.2f", s.TotalHours)))
	fmt.Fprintf(&b, "The mean travel time is %s minutes\n", value(fmt.Sprintf("%.2f", s.MeanMinutes)))

	b.WriteString(footer(took))
	return b.String()
}

// User renders user type, gender and birth year statistics. Gender and birth
// year blocks only appear when the dataset schema has those columns.
func (r *Renderer) User(s models.UserStats, schema models.Schema, took time.Duration) string {
	var b strings.Builder

	b.WriteString(heading("Calculating User Stats..."))
	b.WriteString("\n\n")
	b.WriteString(underlined("User Type Count"))
	b.WriteString("\n")
	b.WriteString(counts(s.TypeCounts))

	if schema.HasGender {
		b.WriteString("\n")
		b.WriteString(underlined("Gender Count"))
		b.WriteString("\n")
		b.WriteString(counts(s.GenderCounts))
	}

	if s.Birth != nil {
		b.WriteString("\n")
		b.WriteString(underlined("Interesting Stats"))
		b.WriteString("\n")
		fmt.Fprintf(&b, "The earliest traveller was born in %s\n", value(strconv.Itoa(s.Birth.Earliest)))
		if s.Birth.HasMostRecent {
			fmt.Fprintf(&b, "The most recent traveller was born in %s\n", value(strconv.Itoa(s.Birth.MostRecent)))
		} else {
			b.WriteString("The most recent traveller did not record a birth year\n")
		}
		fmt.Fprintf(&b, "The most common birth year is %s\n", value(strconv.Itoa(s.Birth.MostCommon)))
	}

	b.WriteString(footer(took))
	return b.String()
}

// NoData renders the message for an empty result.
func (r *Renderer) NoData() string {
	return styles.WarningTextStyle.Render(NoDataMessage)
}

// Error renders a fatal error.
func (r *Renderer) Error(err error) string {
	return styles.ErrorTextStyle.Render("Error: " + err.Error())
}

// Separator returns the dashed rule closing a section.
func Separator() string {
	return styles.SeparatorStyle.Render(strings.Repeat("-", SeparatorWidth))
}

func footer(took time.Duration) string {
	return fmt.Sprintf("\nThis took %.2f seconds.\n%s", took.Seconds(), Separator())
}

func heading(s string) string {
	return styles.SubTitleStyle.Render(s)
}

func underlined(s string) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		styles.LabelStyle.Render(s),
		styles.SeparatorStyle.Render(strings.Repeat("=", ansi.StringWidth(s))),
	)
}

func line(label, v string) string {
	return styles.LabelStyle.Render(label) + " - " + value(v)
}

func value(s string) string {
	return styles.ValueStyle.Render(s)
}

func counts(cc []models.CategoryCount) string {
	if len(cc) == 0 {
		return styles.HelpStyle.Render("(none recorded)") + "\n"
	}

	width := 0
	for _, c := range cc {
		width = max(width, ansi.StringWidth(c.Value))
	}

	var b strings.Builder
	for _, c := range cc {
		pad := strings.Repeat(" ", width-ansi.StringWidth(c.Value))
		fmt.Fprintf(&b, "%s%s  %s\n", c.Value, pad, value(humanize.Comma(int64(c.Count))))
	}
	return b.String()
}

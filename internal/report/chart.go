package report

import (
	"time"

	"github.com/j-veylop/bikeshare-explorer/internal/ui/components"
	"github.com/j-veylop/bikeshare-explorer/internal/ui/styles"
)

// HourlyChartCaption labels the trips-per-hour chart.
const HourlyChartCaption = "Trips by hour of day (00-23)"

const (
	chartHeight   = 6
	chartMaxWidth = 72
	// room for the y-axis labels drawn left of the plot
	chartAxisWidth = 12
)

// hourlyChart plots trip counts per hour. It returns an empty string when
// there are no trips to plot.
func (r *Renderer) hourlyChart(hourly [24]int) string {
	data := make([]float64, len(hourly))
	total := 0
	for h, n := range hourly {
		data[h] = float64(n)
		total += n
	}
	if total == 0 {
		return ""
	}

	width := min(r.width-chartAxisWidth, chartMaxWidth)
	width = max(width, len(data))

	graph := components.RenderLineChart(data, width, chartHeight, HourlyChartCaption)
	return styles.ChartStyle.Render(graph)
}

// weekdayChart draws one bar per day, Monday first. It returns an empty
// string when there are no trips.
func (r *Renderer) weekdayChart(weekdays [7]int) string {
	values := make([]int, 0, len(weekdays))
	labels := make([]string, 0, len(weekdays))
	total := 0
	for i := range weekdays {
		d := time.Weekday((i + 1) % 7)
		values = append(values, weekdays[d])
		labels = append(labels, d.String()[:3])
		total += weekdays[d]
	}
	if total == 0 {
		return ""
	}

	return components.RenderBarChart(values, labels, min(r.width, chartMaxWidth))
}

package report

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"

	"github.com/j-veylop/bikeshare-explorer/internal/models"
	"github.com/j-veylop/bikeshare-explorer/internal/ui/styles"
)

const timestampLayout = "2006-01-02 15:04:05"

// RawPage renders a page of trip rows as a table. Columns follow the
// dataset schema and every line is truncated to the terminal width.
func (r *Renderer) RawPage(records []models.TripRecord, schema models.Schema) string {
	if len(records) == 0 {
		return styles.HelpStyle.Render("No more rows to show")
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styles.SeparatorStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.TableHeaderStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers(rawHeaders(schema)...)

	for _, rec := range records {
		t.Row(rawRow(rec, schema)...)
	}

	return r.truncate(t.Render())
}

func rawHeaders(schema models.Schema) []string {
	headers := []string{"#", "Start Time", "End Time", "Trip Duration",
		"Start Station", "End Station", "User Type"}
	if schema.HasGender {
		headers = append(headers, "Gender")
	}
	if schema.HasBirthYear {
		headers = append(headers, "Birth Year")
	}
	return headers
}

func rawRow(rec models.TripRecord, schema models.Schema) []string {
	row := []string{
		strconv.Itoa(rec.Row),
		rec.StartTime.Format(timestampLayout),
		rec.EndTime.Format(timestampLayout),
		strconv.FormatFloat(rec.Duration, 'f', -1, 64),
		rec.StartStation,
		rec.EndStation,
		rec.UserType,
	}
	if schema.HasGender {
		row = append(row, rec.Gender)
	}
	if schema.HasBirthYear {
		year := ""
		if rec.HasBirthYear() {
			year = strconv.Itoa(rec.BirthYear)
		}
		row = append(row, year)
	}
	return row
}

func (r *Renderer) truncate(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, r.width, "…")
	}
	return strings.Join(lines, "\n")
}

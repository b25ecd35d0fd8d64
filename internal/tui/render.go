package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/balkashynov/bikeshare/internal/engine"
)

var titleCaser = cases.Title(language.English)

// CityTitle formats a city name for display, e.g. "New York City"
func CityTitle(city string) string {
	return titleCaser.String(city)
}

// RenderSummary renders the four reports as styled sections
func RenderSummary(s *engine.Summary) string {
	header := titleStyle.Render(fmt.Sprintf("Bikeshare statistics for %s", CityTitle(s.City)))
	filter := labelStyle.Render(fmt.Sprintf("month: %s • day: %s • %d trips",
		s.Filter.Month, s.Filter.Day, s.Trips))

	sections := []string{
		header + "\n" + filter,
		section("Most Frequent Times of Travel", s.Time.Elapsed, s.Time.Err, func() []string {
			r := s.Time.Report
			return []string{
				line("Most common month", engine.MonthName(r.Month), r.MonthTrips),
				line("Most common day", r.Weekday.String(), r.WeekdayTrips),
				line("Most common start hour", engine.ClockHour(r.Hour), r.HourTrips),
			}
		}),
		section("Most Popular Stations and Trip", s.Stations.Elapsed, s.Stations.Err, func() []string {
			r := s.Stations.Report
			return []string{
				line("Most commonly used start station", r.StartStation, r.StartTrips),
				line("Most commonly used end station", r.EndStation, r.EndTrips),
				line("Most frequent trip", r.Trip, r.TripCount),
			}
		}),
		section("Trip Duration", s.Duration.Elapsed, s.Duration.Err, func() []string {
			r := s.Duration.Report
			return []string{
				field("Total travel time", r.Total.String()) + labelStyle.Render(fmt.Sprintf(" over %d trips", r.Trips)),
				field("Mean travel time", r.Mean.String()),
			}
		}),
		section("User Stats", s.Users.Elapsed, s.Users.Err, func() []string {
			return userLines(s.City, s.Columns, s.Users.Report)
		}),
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func userLines(city string, cols engine.Columns, r *engine.UserReport) []string {
	var lines []string

	counts := func(title, column string, present bool, values []engine.Count) {
		switch {
		case !present:
			lines = append(lines, mutedStyle.Render(fmt.Sprintf("No %s data is available for %s.", column, CityTitle(city))))
		case len(values) == 0:
			lines = append(lines, mutedStyle.Render(fmt.Sprintf("No trips in this selection have a %s.", column)))
		default:
			lines = append(lines, labelStyle.Render(title))
			for _, c := range values {
				lines = append(lines, "  "+field(c.Value, strconv.Itoa(c.Count)))
			}
		}
	}

	counts("Counts of user types", "user type", cols.UserType, r.UserTypes)
	counts("Counts of gender", "gender", cols.Gender, r.Genders)

	switch {
	case !cols.BirthYear:
		lines = append(lines, mutedStyle.Render(fmt.Sprintf("No birth year data is available for %s.", CityTitle(city))))
	case r.BirthYears == nil:
		lines = append(lines, mutedStyle.Render("No trips in this selection have a birth year."))
	default:
		lines = append(lines,
			field("Earliest year of birth", strconv.Itoa(r.BirthYears.Earliest)),
			field("Most recent year of birth", strconv.Itoa(r.BirthYears.MostRecent)),
			field("Most common year of birth", strconv.Itoa(r.BirthYears.MostCommon)),
		)
	}
	return lines
}

// section renders one report card. body is only called when err is nil.
func section(title string, elapsed time.Duration, err error, body func() []string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	if err != nil {
		if errors.Is(err, engine.ErrEmptyTable) {
			b.WriteString(warningStyle.Render("No trips to report on for this selection."))
		} else {
			b.WriteString(errorStyle.Render("Error: " + err.Error()))
		}
	} else {
		b.WriteString(strings.Join(body(), "\n"))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("This took %.6f seconds.", elapsed.Seconds())))
	return cardStyle.Render(b.String())
}

func field(label, value string) string {
	return labelStyle.Render(label+": ") + valueStyle.Render(value)
}

func line(label, value string, trips int) string {
	return field(label, value) + labelStyle.Render(fmt.Sprintf(" (%d trips)", trips))
}

// RenderRecords renders raw records as a table. offset numbers the rows;
// optional columns are shown only when the source has them.
func RenderRecords(cols engine.Columns, records []*engine.TripRecord, offset, width int) string {
	headers := []string{"#", "Start Time", "Duration", "Start Station", "End Station"}
	if cols.UserType {
		headers = append(headers, "User Type")
	}
	if cols.Gender {
		headers = append(headers, "Gender")
	}
	if cols.BirthYear {
		headers = append(headers, "Birth Year")
	}

	rows := make([][]string, len(records))
	for i, r := range records {
		row := []string{
			strconv.Itoa(offset + i + 1),
			r.StartTime.Format("2006-01-02 15:04:05"),
			formatDuration(r.DurationSeconds),
			r.StartStation,
			r.EndStation,
		}
		if cols.UserType {
			row = append(row, r.UserType)
		}
		if cols.Gender {
			row = append(row, r.Gender)
		}
		if cols.BirthYear {
			row = append(row, formatYear(r.BirthYear))
		}
		rows[i] = row
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBorder))).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return titleStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText)).Padding(0, 1)
		})
	if width > 0 {
		t = t.Width(width)
	}
	return t.Render()
}

func formatDuration(seconds *int64) string {
	if seconds == nil {
		return "-"
	}
	return strconv.FormatInt(*seconds, 10) + "s"
}

func formatYear(year *int) string {
	if year == nil {
		return "-"
	}
	return strconv.Itoa(*year)
}

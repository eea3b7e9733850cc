package calendar

import (
	"sort"
	"strconv"
	"strings"

	"github.com/appdate/appdate/internal/models"
)

// UpcomingItem is one entry of the upcoming-events projection, with the
// display strings already derived.
type UpcomingItem struct {
	Event models.Event `json:"event"`
	Color string       `json:"color"`
	Time  string       `json:"time"` // 12-hour range or "Time not Included"
}

// Upcoming derives the sorted upcoming list: all events with a title and a
// date, ascending by (date, time). The time tiebreak is a plain string
// comparison, so an event with no time (empty string) sorts before any timed
// event on the same date. The order is total and reproducible.
func Upcoming(events []models.Event) []UpcomingItem {
	valid := make([]models.Event, 0, len(events))
	for _, ev := range events {
		if ev.Title != "" && ev.Date != "" {
			valid = append(valid, ev)
		}
	}

	sort.SliceStable(valid, func(i, j int) bool {
		if valid[i].Date == valid[j].Date {
			return valid[i].Time < valid[j].Time
		}
		return valid[i].Date < valid[j].Date
	})

	items := make([]UpcomingItem, 0, len(valid))
	for _, ev := range valid {
		items = append(items, UpcomingItem{
			Event: ev,
			Color: ev.Category.Color(),
			Time:  FormatTimeRange(ev.Time),
		})
	}
	return items
}

// FormatTime12Hour converts "HH:MM" to a 12-hour clock string like "9:05 AM".
func FormatTime12Hour(time24 string) string {
	if time24 == "" {
		return ""
	}
	parts := strings.SplitN(time24, ":", 2)
	if len(parts) != 2 {
		return time24
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return time24
	}
	minute := parts[1]

	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}
	hour = hour % 12
	if hour == 0 {
		hour = 12
	}
	return strconv.Itoa(hour) + ":" + minute + " " + ampm
}

// FormatTimeRange renders a stored "HH:MM - HH:MM" range for display.
func FormatTimeRange(timeRange string) string {
	if timeRange == "" {
		return "Time not Included"
	}
	parts := strings.SplitN(timeRange, " - ", 2)
	if len(parts) != 2 {
		return timeRange
	}
	return FormatTime12Hour(parts[0]) + " - " + FormatTime12Hour(parts[1])
}

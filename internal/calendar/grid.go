// Package calendar derives the display model of the month view: the fixed
// 42-cell grid and the sorted upcoming-events projection. Everything here is
// a pure function of (year, month, today, events); the caller re-derives the
// whole model on every navigation action.
package calendar

import (
	"fmt"
	"time"

	"github.com/appdate/appdate/internal/models"
)

// GridCells is the fixed cell count of the month grid. Some months only need
// five displayed weeks, but the grid always reserves six so the layout height
// stays constant.
const GridCells = 42

// Cell is a single day cell of the grid. Filler cells (InMonth false) carry
// only a day number from the adjacent month.
type Cell struct {
	Day     int            `json:"day"`
	Date    string         `json:"date,omitempty"` // ISO date, in-month cells only
	InMonth bool           `json:"in_month"`
	IsToday bool           `json:"is_today"`
	Events  []models.Event `json:"events,omitempty"`
}

// Grid is the full month display model.
type Grid struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Title string     `json:"title"`
	Cells []Cell     `json:"cells"`
}

// BuildGrid computes the 42-cell grid for (year, month). Weeks start on
// Sunday. Each in-month cell is annotated with the events whose date matches
// (a full scan per day; the collection carries no index) and flagged when it
// is the real current date.
func BuildGrid(year int, month time.Month, today time.Time, events []models.Event) Grid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	firstWeekday := int(first.Weekday())
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	daysInPrev := time.Date(year, month, 0, 0, 0, 0, 0, time.UTC).Day()

	cells := make([]Cell, 0, GridCells)

	// Tail of the previous month.
	for i := firstWeekday - 1; i >= 0; i-- {
		cells = append(cells, Cell{Day: daysInPrev - i})
	}

	for d := 1; d <= daysInMonth; d++ {
		iso := ISODate(year, month, d)
		cell := Cell{
			Day:     d,
			Date:    iso,
			InMonth: true,
			IsToday: d == today.Day() && month == today.Month() && year == today.Year(),
		}
		for _, ev := range events {
			if ev.Date == iso {
				cell.Events = append(cell.Events, ev)
			}
		}
		cells = append(cells, cell)
	}

	// Head of the next month, padding to the fixed height.
	for d := 1; len(cells) < GridCells; d++ {
		cells = append(cells, Cell{Day: d})
	}

	return Grid{
		Year:  year,
		Month: month,
		Title: fmt.Sprintf("%s %d", month, year),
		Cells: cells,
	}
}

// ISODate formats (year, month, day) as YYYY-MM-DD.
func ISODate(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

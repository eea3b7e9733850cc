package calendar

import (
	"errors"
	"time"

	"github.com/appdate/appdate/internal/models"
)

// ErrDayNotVisible is reported when a requested highlight day falls outside
// the rebuilt grid. It should be unreachable once the month is set from the
// same date, but the controller reports it rather than crashing.
var ErrDayNotVisible = errors.New("the selected day is not visible in this month view")

// View holds the currently displayed (year, month). It owns no event data:
// the grid is a transient projection recomputed on every render.
type View struct {
	Year  int
	Month time.Month

	clock func() time.Time
}

// NewView creates a view initialized to the real current month. A nil clock
// defaults to time.Now; tests inject a fixed one.
func NewView(clock func() time.Time) *View {
	if clock == nil {
		clock = time.Now
	}
	now := clock()
	return &View{
		Year:  now.Year(),
		Month: now.Month(),
		clock: clock,
	}
}

// PrevMonth moves the view one month back, rolling the year.
func (v *View) PrevMonth() {
	v.Month--
	if v.Month < time.January {
		v.Month = time.December
		v.Year--
	}
}

// NextMonth moves the view one month forward, rolling the year.
func (v *View) NextMonth() {
	v.Month++
	if v.Month > time.December {
		v.Month = time.January
		v.Year++
	}
}

// Today resets the view to the real current month.
func (v *View) Today() {
	now := v.clock()
	v.Year = now.Year()
	v.Month = now.Month()
}

// Render derives the full grid for the current view.
func (v *View) Render(events []models.Event) Grid {
	return BuildGrid(v.Year, v.Month, v.clock(), events)
}

// GoToDate moves the view to the month containing the ISO date, renders, and
// returns the cell index to highlight. The grid is returned even when the
// day is not visible.
func (v *View) GoToDate(date string, events []models.Event) (Grid, int, error) {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return Grid{}, -1, err
	}

	v.Year = parsed.Year()
	v.Month = parsed.Month()
	grid := v.Render(events)

	for i, cell := range grid.Cells {
		if cell.InMonth && cell.Day == parsed.Day() {
			return grid, i, nil
		}
	}
	return grid, -1, ErrDayNotVisible
}

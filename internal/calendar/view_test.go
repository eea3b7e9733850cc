package calendar

import (
	"testing"
	"time"
)

func fixedClock(year int, month time.Month, day int) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, day, 9, 0, 0, 0, time.UTC)
	}
}

func TestViewStartsOnCurrentMonth(t *testing.T) {
	v := NewView(fixedClock(2025, time.March, 10))
	if v.Year != 2025 || v.Month != time.March {
		t.Errorf("expected 2025 March, got %d %s", v.Year, v.Month)
	}
}

func TestViewMonthRollover(t *testing.T) {
	v := NewView(fixedClock(2025, time.January, 1))

	v.PrevMonth()
	if v.Year != 2024 || v.Month != time.December {
		t.Errorf("expected 2024 December, got %d %s", v.Year, v.Month)
	}

	v.NextMonth()
	if v.Year != 2025 || v.Month != time.January {
		t.Errorf("expected 2025 January, got %d %s", v.Year, v.Month)
	}

	for i := 0; i < 12; i++ {
		v.NextMonth()
	}
	if v.Year != 2026 || v.Month != time.January {
		t.Errorf("expected 2026 January after 12 steps, got %d %s", v.Year, v.Month)
	}
}

func TestViewToday(t *testing.T) {
	v := NewView(fixedClock(2025, time.March, 10))
	v.NextMonth()
	v.NextMonth()
	v.Today()
	if v.Year != 2025 || v.Month != time.March {
		t.Errorf("expected view back on 2025 March, got %d %s", v.Year, v.Month)
	}
}

func TestViewGoToDate(t *testing.T) {
	v := NewView(fixedClock(2025, time.March, 10))

	grid, highlight, err := v.GoToDate("2025-07-04", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Year != 2025 || v.Month != time.July {
		t.Errorf("expected view on 2025 July, got %d %s", v.Year, v.Month)
	}
	if highlight < 0 || highlight >= len(grid.Cells) {
		t.Fatalf("highlight index %d out of range", highlight)
	}
	cell := grid.Cells[highlight]
	if !cell.InMonth || cell.Day != 4 {
		t.Errorf("highlighted cell is day %d (in-month %v), want 4", cell.Day, cell.InMonth)
	}
}

func TestViewGoToDateInvalid(t *testing.T) {
	v := NewView(fixedClock(2025, time.March, 10))
	if _, _, err := v.GoToDate("not-a-date", nil); err == nil {
		t.Error("expected error for malformed date")
	}
}

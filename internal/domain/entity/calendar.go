package entity

import (
	"strconv"
	"time"
)

// Month identifies a calendar month. Month uses Go's 1-based time.Month.
type Month struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// MonthOf returns the month containing t, in t's location.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// First returns midnight of the first day of the month in loc.
func (m Month) First(loc *time.Location) time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, loc)
}

// Days returns the number of days in the month.
func (m Month) Days() int {
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Add returns the month n months away (negative n goes back).
func (m Month) Add(n int) Month {
	return MonthOf(time.Date(m.Year, m.Month+time.Month(n), 1, 0, 0, 0, 0, time.UTC))
}

// Title formats the month as "January 2024".
func (m Month) Title() string {
	return m.Month.String() + " " + strconv.Itoa(m.Year)
}

// DayCell is one cell of the calendar grid. Blank cells pad the first week
// so day 1 lands under its weekday.
type DayCell struct {
	Blank    bool   `json:"blank"`
	Day      int    `json:"day,omitempty"`
	Key      string `json:"key,omitempty"` // YYYY-MM-DD of the cell.
	Today    bool   `json:"today"`
	Games    []Game `json:"games,omitempty"`
	Total    int    `json:"total"`
	Overflow int    `json:"overflow"` // Total minus the games shown.
}

// OverflowLabel renders the overflow marker, e.g. "+2", or "" when nothing is hidden.
func (c DayCell) OverflowLabel() string {
	if c.Overflow <= 0 {
		return ""
	}

	return "+" + strconv.Itoa(c.Overflow)
}

// CalendarGrid is the projected month.
type CalendarGrid struct {
	Month    Month     `json:"month"`
	Title    string    `json:"title"`
	Weekdays []string  `json:"weekdays"`
	Cells    []DayCell `json:"cells"`
}

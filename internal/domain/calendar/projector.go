// Package calendar projects a list of games onto a month grid.
package calendar

import (
	"slices"
	"time"

	"vgb/internal/domain/constants"
	"vgb/internal/domain/entity"
)

// Weekdays are the grid's column headers; weeks start on Sunday.
var Weekdays = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Project buckets games by release day and lays the month out as a grid:
// leading blank cells up to the weekday of the 1st, then one cell per day.
// Each cell lists at most limit games and reports the rest as overflow.
// now decides which cell is "today", compared in now's location.
func Project(month entity.Month, games []entity.Game, now time.Time, limit int) entity.CalendarGrid {
	if limit <= 0 {
		limit = constants.CalendarDayLimit
	}

	buckets := Bucket(games)

	first := month.First(now.Location())
	blanks := int(first.Weekday())
	days := month.Days()

	cells := make([]entity.DayCell, 0, blanks+days)
	for range blanks {
		cells = append(cells, entity.DayCell{Blank: true})
	}

	ny, nm, nd := now.Date()
	for day := 1; day <= days; day++ {
		key := DayKey(month.Year, month.Month, day)
		items := buckets[key]
		shown := items[:min(limit, len(items))]

		cells = append(cells, entity.DayCell{
			Day:      day,
			Key:      key,
			Today:    ny == month.Year && nm == month.Month && nd == day,
			Games:    slices.Clone(shown),
			Total:    len(items),
			Overflow: len(items) - len(shown),
		})
	}

	return entity.CalendarGrid{
		Month:    month,
		Title:    month.Title(),
		Weekdays: slices.Clone(Weekdays),
		Cells:    cells,
	}
}

// Bucket groups games by the UTC calendar day of their release. Games without
// a release date are left out.
func Bucket(games []entity.Game) map[string][]entity.Game {
	buckets := make(map[string][]entity.Game)
	for _, g := range games {
		key := g.ReleaseKey()
		if key == "" {
			continue
		}
		buckets[key] = append(buckets[key], g)
	}

	return buckets
}

// DayKey formats a civil date as YYYY-MM-DD, the bucket key format.
func DayKey(year int, month time.Month, day int) string {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format(time.DateOnly)
}

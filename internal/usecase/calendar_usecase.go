package usecase

import "vgb/internal/domain/entity"

// CalendarUsecase owns the displayed month. Navigation re-projects the
// already computed catalog list and never fetches.
type CalendarUsecase interface {
	Month() entity.Month
	Grid() entity.CalendarGrid
	Recompute() entity.CalendarGrid
	Previous() entity.CalendarGrid
	Next() entity.CalendarGrid
	Today() entity.CalendarGrid
}

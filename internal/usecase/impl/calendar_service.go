package impl

import (
	"sync"
	"time"

	"vgb/config"
	"vgb/internal/domain/calendar"
	"vgb/internal/domain/entity"
	"vgb/internal/usecase"
)

// calendarService implements the CalendarUsecase interface.
type calendarService struct {
	catalog usecase.CatalogUsecase
	limit   int
	now     func() time.Time

	mu    sync.Mutex
	month entity.Month
	grid  *entity.CalendarGrid
}

// NewCalendarService starts on the current month.
func NewCalendarService(catalog usecase.CatalogUsecase, cfg *config.Config) usecase.CalendarUsecase {
	return newCalendarService(catalog, cfg.Engine.CalendarDayLimit, time.Now)
}

func newCalendarService(catalog usecase.CatalogUsecase, limit int, now func() time.Time) *calendarService {
	return &calendarService{
		catalog: catalog,
		limit:   limit,
		now:     now,
		month:   entity.MonthOf(now()),
	}
}

func (srv *calendarService) Month() entity.Month {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.month
}

// Grid returns the last projection, projecting first if there is none.
func (srv *calendarService) Grid() entity.CalendarGrid {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.grid == nil {
		return srv.project()
	}

	return *srv.grid
}

func (srv *calendarService) Recompute() entity.CalendarGrid {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.project()
}

func (srv *calendarService) Previous() entity.CalendarGrid {
	return srv.move(func(m entity.Month) entity.Month { return m.Add(-1) })
}

func (srv *calendarService) Next() entity.CalendarGrid {
	return srv.move(func(m entity.Month) entity.Month { return m.Add(1) })
}

func (srv *calendarService) Today() entity.CalendarGrid {
	return srv.move(func(entity.Month) entity.Month { return entity.MonthOf(srv.now()) })
}

func (srv *calendarService) move(to func(entity.Month) entity.Month) entity.CalendarGrid {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.month = to(srv.month)

	return srv.project()
}

// project runs the projector over the catalog's current list. Callers hold mu.
func (srv *calendarService) project() entity.CalendarGrid {
	grid := calendar.Project(srv.month, srv.catalog.CalendarSource(), srv.now(), srv.limit)
	srv.grid = &grid

	return grid
}

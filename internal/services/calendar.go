package services

import (
	"context"
	"sync"
	"time"

	"github.com/humosaic/calendar/internal/metrics"
	"github.com/humosaic/calendar/internal/models"
	"github.com/humosaic/calendar/internal/repositories"
	"github.com/humosaic/calendar/pkg/monthgrid"
)

// CalendarService owns the navigation cursor and turns the cursor's month
// into a renderable grid. The cursor is an explicit per-app value, not a
// package global, so tests can run several instances side by side.
type CalendarService struct {
	events        *repositories.EventRepository
	collector     *metrics.Collector
	clock         func() time.Time
	eventsPerCell int
	cacheTTL      time.Duration

	mu    sync.Mutex
	year  int
	month time.Month
	cache map[monthKey]cachedMonth
}

type monthKey struct {
	year  int
	month time.Month
}

type cachedMonth struct {
	events    []models.Event
	fetchedAt time.Time
}

// Current returns the cursor position.
func (service *CalendarService) Current() (int, time.Month) {
	service.mu.Lock()
	defer service.mu.Unlock()

	return service.year, service.month
}

// PrevMonth moves the cursor one month back, wrapping across years.
func (service *CalendarService) PrevMonth() {
	service.mu.Lock()
	defer service.mu.Unlock()

	service.year, service.month = monthgrid.Prev(service.year, service.month)
}

// NextMonth moves the cursor one month forward, wrapping across years.
func (service *CalendarService) NextMonth() {
	service.mu.Lock()
	defer service.mu.Unlock()

	service.year, service.month = monthgrid.Next(service.year, service.month)
}

// GoToToday resets the cursor to the clock's current month.
func (service *CalendarService) GoToToday() {
	service.mu.Lock()
	defer service.mu.Unlock()

	now := service.clock()
	service.year = now.Year()
	service.month = now.Month()
}

// MonthView computes the grid for the cursor's month.
func (service *CalendarService) MonthView(ctx context.Context) models.MonthGrid {
	year, month := service.Current()
	return service.Grid(ctx, year, month)
}

// Grid computes the full month view for any (year, month): day cells with
// their events capped at the display limit, plus the event-free mini grid.
func (service *CalendarService) Grid(
	ctx context.Context,
	year int,
	month time.Month,
) models.MonthGrid {
	today := service.clock()
	cells := monthgrid.Build(year, month, today)
	monthEvents := service.monthEvents(ctx, year, month)

	dayCells := make([]models.DayCell, 0, len(cells))
	miniCells := make([]models.MiniCell, 0, len(cells))

	for _, cell := range cells {
		date := models.NewDate(cell.Year, cell.Month, cell.Day)

		dayCell := models.DayCell{
			Date:         date,
			IsOtherMonth: cell.OtherMonth,
			IsToday:      cell.Today,
			Events:       []models.Event{},
		}

		// Other-month cells never carry event content.
		if !cell.OtherMonth {
			for _, event := range monthEvents {
				if event.Date != date {
					continue
				}
				if len(dayCell.Events) < service.eventsPerCell {
					dayCell.Events = append(dayCell.Events, event)
				} else {
					dayCell.OverflowCount++
				}
			}
		}

		dayCells = append(dayCells, dayCell)
		miniCells = append(miniCells, models.MiniCell{
			Day:          cell.Day,
			IsOtherMonth: cell.OtherMonth,
			IsToday:      cell.Today,
		})
	}

	service.collector.RecordGridRender()

	return models.MonthGrid{
		Year:      year,
		Month:     month,
		Label:     monthgrid.Label(year, month),
		Weekdays:  monthgrid.Weekdays(),
		Cells:     dayCells,
		MiniCells: miniCells,
	}
}

// Invalidate drops all cached month lookups. Every mutation calls this so
// the next render sees the change immediately.
func (service *CalendarService) Invalidate() {
	service.mu.Lock()
	defer service.mu.Unlock()

	service.cache = make(map[monthKey]cachedMonth)
}

// monthEvents reads the month's events through a short TTL cache so
// repeated renders don't re-read the blob store.
func (service *CalendarService) monthEvents(
	ctx context.Context,
	year int,
	month time.Month,
) []models.Event {
	key := monthKey{year: year, month: month}
	now := service.clock()

	service.mu.Lock()
	cached, ok := service.cache[key]
	service.mu.Unlock()

	if ok && now.Sub(cached.fetchedAt) < service.cacheTTL {
		return cached.events
	}

	events := service.events.GetByMonth(ctx, year, month)

	service.mu.Lock()
	service.cache[key] = cachedMonth{events: events, fetchedAt: now}
	service.mu.Unlock()

	return events
}

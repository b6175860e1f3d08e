package services

import (
	"context"
	"time"

	"github.com/humosaic/calendar/internal/dtos"
	"github.com/humosaic/calendar/internal/metrics"
	"github.com/humosaic/calendar/internal/models"
	"github.com/humosaic/calendar/internal/repositories"
)

// EventService wraps the repository with the side effects every mutation
// carries: cache invalidation, live-refresh fanout and metrics.
type EventService struct {
	events    *repositories.EventRepository
	calendar  *CalendarService
	refresh   *RefreshService
	collector *metrics.Collector
}

func (service *EventService) Create(
	ctx context.Context,
	form *dtos.EventForm,
) models.Event {
	created := service.events.Create(ctx, form.Event())

	service.mutated(ctx, "create")

	return created
}

func (service *EventService) Update(
	ctx context.Context,
	id string,
	form *dtos.EventForm,
) (*models.Event, error) {
	updated, err := service.events.Update(ctx, id, form.Event())
	if err != nil {
		return nil, err
	}

	service.mutated(ctx, "update")

	return updated, nil
}

func (service *EventService) Delete(ctx context.Context, id string) bool {
	deleted := service.events.Delete(ctx, id)
	if deleted {
		service.mutated(ctx, "delete")
	}

	return deleted
}

func (service *EventService) GetByID(
	ctx context.Context,
	id string,
) (*models.Event, error) {
	return service.events.GetByID(ctx, id)
}

func (service *EventService) GetByDate(
	ctx context.Context,
	date models.Date,
) []models.Event {
	return service.events.GetByDate(ctx, date)
}

func (service *EventService) GetByMonth(
	ctx context.Context,
	year int,
	month time.Month,
) []models.Event {
	return service.events.GetByMonth(ctx, year, month)
}

func (service *EventService) GetAll(ctx context.Context) []models.Event {
	return service.events.GetAll(ctx)
}

func (service *EventService) mutated(ctx context.Context, operation string) {
	service.collector.RecordEventMutation(operation)
	service.calendar.Invalidate()
	service.refresh.Broadcast(ctx)
}

package repositories

import (
	"log/slog"
	"time"

	"github.com/humosaic/calendar/internal/metrics"
)

type Repositories struct {
	Events *EventRepository
}

func New(
	logger *slog.Logger,
	store BlobStore,
	collector *metrics.Collector,
	clock func() time.Time,
) *Repositories {
	events := &EventRepository{
		logger:    logger,
		store:     store,
		collector: collector,
		clock:     clock,
	}

	return &Repositories{
		Events: events,
	}
}

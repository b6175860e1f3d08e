package services

import (
	"log/slog"
	"time"

	"github.com/coder/websocket"
	str2duration "github.com/xhit/go-str2duration/v2"

	"github.com/humosaic/calendar/internal/config"
	"github.com/humosaic/calendar/internal/metrics"
	"github.com/humosaic/calendar/internal/repositories"
)

type Services struct {
	Events   *EventService
	Calendar *CalendarService
	Refresh  *RefreshService
}

func New(
	logger *slog.Logger,
	cfg config.Config,
	repositories *repositories.Repositories,
	collector *metrics.Collector,
	clock func() time.Time,
) *Services {
	cacheTTL, err := str2duration.ParseDuration(cfg.GridCacheTTL)
	if err != nil {
		panic(err)
	}

	now := clock()
	calendar := &CalendarService{
		events:        repositories.Events,
		collector:     collector,
		clock:         clock,
		eventsPerCell: cfg.EventsPerCell,
		cacheTTL:      cacheTTL,
		year:          now.Year(),
		month:         now.Month(),
		cache:         make(map[monthKey]cachedMonth),
	}
	refresh := &RefreshService{
		logger:      logger,
		subscribers: make(map[*websocket.Conn]struct{}),
	}
	events := &EventService{
		events:    repositories.Events,
		calendar:  calendar,
		refresh:   refresh,
		collector: collector,
	}

	return &Services{
		Events:   events,
		Calendar: calendar,
		Refresh:  refresh,
	}
}

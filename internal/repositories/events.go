package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/xdoubleu/essentia/v2/pkg/database"
	"github.com/xdoubleu/essentia/v2/pkg/logging"

	"github.com/humosaic/calendar/internal/metrics"
	"github.com/humosaic/calendar/internal/models"
)

// EventsBlobKey names the single blob holding the whole event store.
const EventsBlobKey = "calendar_events"

// storedEvent is the persisted wire shape: every field a string, dates as
// "YYYY-MM-DD" and times as "HH:MM" or empty.
type storedEvent struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Description string `json:"description"`
}

// EventRepository owns the ordered event list. The in-memory copy is
// authoritative; every mutation rewrites the full blob. A failed write is
// logged but never rolls the in-memory change back, and a corrupt blob
// degrades to an empty store on load.
type EventRepository struct {
	logger    *slog.Logger
	store     BlobStore
	collector *metrics.Collector
	clock     func() time.Time

	mu     sync.Mutex
	events []models.Event
	loaded bool
}

func (repo *EventRepository) Create(
	ctx context.Context,
	data models.Event,
) models.Event {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.load(ctx)

	data.ID = repo.newEventID()
	repo.events = append(repo.events, data)
	repo.persist(ctx)

	return data
}

func (repo *EventRepository) Update(
	ctx context.Context,
	id string,
	data models.Event,
) (*models.Event, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.load(ctx)

	for i := range repo.events {
		if repo.events[i].ID != id {
			continue
		}

		data.ID = id
		repo.events[i] = data
		repo.persist(ctx)

		return &data, nil
	}

	return nil, database.ErrResourceNotFound
}

// Delete reports whether an event was removed. It only rewrites the
// blob when something actually changed.
func (repo *EventRepository) Delete(ctx context.Context, id string) bool {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.load(ctx)

	for i := range repo.events {
		if repo.events[i].ID != id {
			continue
		}

		repo.events = append(repo.events[:i], repo.events[i+1:]...)
		repo.persist(ctx)

		return true
	}

	return false
}

func (repo *EventRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.Event, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.load(ctx)

	for i := range repo.events {
		if repo.events[i].ID == id {
			event := repo.events[i]
			return &event, nil
		}
	}

	return nil, database.ErrResourceNotFound
}

// GetByDate returns the events on one calendar date, insertion order kept.
func (repo *EventRepository) GetByDate(
	ctx context.Context,
	date models.Date,
) []models.Event {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.load(ctx)

	events := []models.Event{}
	for _, event := range repo.events {
		if event.Date == date {
			events = append(events, event)
		}
	}

	return events
}

// GetByMonth returns the events falling in (year, month), insertion order kept.
func (repo *EventRepository) GetByMonth(
	ctx context.Context,
	year int,
	month time.Month,
) []models.Event {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.load(ctx)

	events := []models.Event{}
	for _, event := range repo.events {
		if event.Date.Year == year && event.Date.Month == month {
			events = append(events, event)
		}
	}

	return events
}

// GetAll returns the full store, insertion order kept.
func (repo *EventRepository) GetAll(ctx context.Context) []models.Event {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.load(ctx)

	events := make([]models.Event, len(repo.events))
	copy(events, repo.events)

	return events
}

// load reads the blob once per repository lifetime. Callers hold repo.mu.
func (repo *EventRepository) load(ctx context.Context) {
	if repo.loaded {
		return
	}
	repo.loaded = true
	repo.events = []models.Event{}

	value, err := repo.store.Get(ctx, EventsBlobKey)
	if err != nil {
		repo.logger.Warn(
			"failed to read event store, starting empty",
			logging.ErrAttr(err),
		)
		return
	}
	if len(value) == 0 {
		return
	}

	var stored []storedEvent
	if err = json.Unmarshal(value, &stored); err != nil {
		repo.logger.Warn(
			"corrupt event store blob, starting empty",
			logging.ErrAttr(err),
		)
		return
	}

	for _, s := range stored {
		event, convErr := s.toEvent()
		if convErr != nil {
			repo.logger.Warn(
				"dropping unreadable stored event",
				slog.String("id", s.ID),
				logging.ErrAttr(convErr),
			)
			continue
		}
		repo.events = append(repo.events, event)
	}
}

// persist rewrites the full blob. Callers hold repo.mu.
func (repo *EventRepository) persist(ctx context.Context) {
	stored := make([]storedEvent, 0, len(repo.events))
	for _, event := range repo.events {
		stored = append(stored, toStored(event))
	}

	value, err := json.Marshal(stored)
	if err != nil {
		repo.logger.Error("failed to encode event store", logging.ErrAttr(err))
		return
	}

	if err = repo.store.Set(ctx, EventsBlobKey, value); err != nil {
		// Best-effort durability: the in-memory mutation stands.
		repo.logger.Error("failed to persist event store", logging.ErrAttr(err))
		repo.collector.RecordStoreWriteFailure()
	}
}

// newEventID combines a millisecond timestamp with a random component so
// collisions stay negligible without any coordination.
func (repo *EventRepository) newEventID() string {
	return fmt.Sprintf(
		"evt_%d_%s",
		repo.clock().UnixMilli(),
		uuid.NewString()[:8],
	)
}

func toStored(event models.Event) storedEvent {
	s := storedEvent{
		ID:          event.ID,
		Title:       event.Title,
		Date:        event.Date.String(),
		Description: event.Description,
	}
	if event.Start != nil {
		s.StartTime = event.Start.String()
	}
	if event.End != nil {
		s.EndTime = event.End.String()
	}
	return s
}

func (s storedEvent) toEvent() (models.Event, error) {
	date, err := models.ParseDate(s.Date)
	if err != nil {
		return models.Event{}, err
	}

	event := models.Event{
		ID:          s.ID,
		Title:       s.Title,
		Date:        date,
		Description: s.Description,
	}

	if s.StartTime != "" {
		t, timeErr := models.ParseTimeOfDay(s.StartTime)
		if timeErr != nil {
			return models.Event{}, timeErr
		}
		event.Start = &t
	}
	if s.EndTime != "" {
		t, timeErr := models.ParseTimeOfDay(s.EndTime)
		if timeErr != nil {
			return models.Event{}, timeErr
		}
		event.End = &t
	}

	return event, nil
}

package app

import (
	"context"
	"fmt"
	"log/slog"

	coreevent "github.com/example/gamify/internal/core/event"
	"github.com/example/gamify/internal/ports/primary"
	"github.com/example/gamify/internal/ports/secondary"
)

// EventServiceImpl implements the EventService interface.
type EventServiceImpl struct {
	eventRepo secondary.SystemEventRepository
	logger    *slog.Logger
}

// NewEventService creates a new EventService with injected dependencies.
func NewEventService(eventRepo secondary.SystemEventRepository, logger *slog.Logger) *EventServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &EventServiceImpl{
		eventRepo: eventRepo,
		logger:    logger,
	}
}

// LogEvent appends an event to the system log.
func (s *EventServiceImpl) LogEvent(ctx context.Context, req primary.LogEventRequest) error {
	data, ok, err := coreevent.EncodeData(req.Data)
	if err != nil {
		return err
	}

	record := &secondary.SystemEventRecord{
		EventType:   req.EventType,
		Description: req.Description,
	}
	if ok {
		record.DataJSON = data
	}
	if req.HeroID != nil {
		heroID := *req.HeroID
		record.HeroID = &heroID
	}

	if err := s.eventRepo.Create(ctx, record); err != nil {
		return fmt.Errorf("failed to log event: %w", err)
	}
	return nil
}

// ListRecentEvents returns the newest events first. A non-positive limit
// falls back to the stats default.
func (s *EventServiceImpl) ListRecentEvents(ctx context.Context, limit int) ([]*primary.SystemEvent, error) {
	if limit <= 0 {
		limit = coreevent.DefaultRecentLimit
	}

	records, err := s.eventRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	events := make([]*primary.SystemEvent, 0, len(records))
	for _, r := range records {
		event := &primary.SystemEvent{
			ID:          r.ID,
			EventType:   r.EventType,
			Description: r.Description,
			HeroID:      r.HeroID,
			CreatedAt:   r.CreatedAt,
		}

		// Other writers of the table may store text that is not JSON.
		data, err := coreevent.DecodeData(r.DataJSON)
		if err != nil {
			s.logger.WarnContext(ctx, "event data is not valid JSON", "event_id", r.ID, "error", err)
			event.Data = r.DataJSON
		} else {
			event.Data = data
		}

		events = append(events, event)
	}
	return events, nil
}

// Ensure EventServiceImpl implements the interface
var _ primary.EventService = (*EventServiceImpl)(nil)

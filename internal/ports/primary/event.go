package primary

import "context"

// EventService defines the primary port for the system event log.
type EventService interface {
	// LogEvent appends an event. Any event type string is accepted, including "".
	LogEvent(ctx context.Context, req LogEventRequest) error

	// ListRecentEvents returns the newest events first.
	ListRecentEvents(ctx context.Context, limit int) ([]*SystemEvent, error)
}

// LogEventRequest contains parameters for logging an event.
type LogEventRequest struct {
	EventType   string
	Description string
	HeroID      *int64         // nil when the event is not about a hero
	Data        map[string]any // JSON-encoded; nil or empty stores NULL
}

// SystemEvent represents a logged event at the port boundary.
type SystemEvent struct {
	ID          int64
	EventType   string
	Description string
	HeroID      *int64
	Data        any // decoded JSON; the raw text when the stored value is not JSON
	CreatedAt   string
}

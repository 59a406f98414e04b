package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	coreevent "github.com/example/gamify/internal/core/event"
	corehero "github.com/example/gamify/internal/core/hero"
	"github.com/example/gamify/internal/ports/primary"
)

// EventAdapter translates CLI operations to EventService calls.
type EventAdapter struct {
	service primary.EventService
	out     io.Writer
}

// NewEventAdapter creates a new EventAdapter with the given service.
func NewEventAdapter(service primary.EventService, out io.Writer) *EventAdapter {
	return &EventAdapter{
		service: service,
		out:     out,
	}
}

// Log records an event. heroID 0 means no hero; pairs are key=value payload entries.
func (a *EventAdapter) Log(ctx context.Context, eventType, description string, heroID int64, pairs []string) error {
	data, err := coreevent.ParseDataPairs(pairs)
	if err != nil {
		return err
	}

	req := primary.LogEventRequest{
		EventType:   eventType,
		Description: description,
		Data:        data,
	}
	if heroID > 0 {
		req.HeroID = &heroID
	}

	if err := a.service.LogEvent(ctx, req); err != nil {
		return fmt.Errorf("failed to log event: %w", err)
	}

	fmt.Fprintf(a.out, "%s Logged %s event\n", color.GreenString("✓"), eventType)
	return nil
}

// Recent prints the newest events.
func (a *EventAdapter) Recent(ctx context.Context, limit int) error {
	events, err := a.service.ListRecentEvents(ctx, limit)
	if err != nil {
		return fmt.Errorf("failed to list events: %w", err)
	}

	if len(events) == 0 {
		fmt.Fprintln(a.out, "No events found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-19s %-20s %-10s %s\n", "CREATED", "TYPE", "HERO", "DESCRIPTION")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────")
	for _, e := range events {
		hero := "-"
		if e.HeroID != nil {
			hero = corehero.FormatHeroID(*e.HeroID)
		}
		fmt.Fprintf(a.out, "%-19s %-20s %-10s %s\n", e.CreatedAt, e.EventType, hero, e.Description)
	}
	fmt.Fprintln(a.out)

	return nil
}

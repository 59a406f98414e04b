// Package event contains the pure rules for system audit events.
// This is part of the Functional Core - no I/O, only pure functions.
package event

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Known event types. The log itself accepts any type string.
const (
	TypeAchievementEarned = "achievement_earned"
)

// Payload keys for achievement_earned events.
const (
	KeyAchievementName = "achievement_name"
	KeyAchievementIcon = "achievement_icon"
)

// DefaultRecentLimit is how many events the stats view shows.
const DefaultRecentLimit = 5

// ValidateEventType rejects blank event types typed on the command line.
// It is not applied to the log: programmatic callers may store any string.
func ValidateEventType(eventType string) error {
	if strings.TrimSpace(eventType) == "" {
		return fmt.Errorf("event type must not be empty")
	}
	return nil
}

// EncodeData serializes an event payload to JSON.
// A nil or empty payload returns ok=false and is stored as NULL.
func EncodeData(data map[string]any) (encoded string, ok bool, err error) {
	if len(data) == 0 {
		return "", false, nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(data); err != nil {
		return "", false, fmt.Errorf("failed to encode event data: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), true, nil
}

// DecodeData parses a stored payload of any JSON shape. Payloads written by
// this module are objects; other writers of the same database may store
// arrays or scalars. An empty string yields nil.
func DecodeData(encoded string) (any, error) {
	if encoded == "" {
		return nil, nil
	}
	var data any
	if err := json.Unmarshal([]byte(encoded), &data); err != nil {
		return nil, fmt.Errorf("failed to decode event data: %w", err)
	}
	return data, nil
}

// AchievementEarnedDescription is the human-readable line for a grant.
func AchievementEarnedDescription(name string) string {
	return fmt.Sprintf("Conquista '%s' obtida", name)
}

// AchievementEarnedData is the structured payload for a grant.
func AchievementEarnedData(name, icon string) map[string]any {
	return map[string]any{
		KeyAchievementName: name,
		KeyAchievementIcon: icon,
	}
}

// ParseDataPairs turns key=value arguments into a payload map.
// Values that parse as JSON literals (numbers, booleans, null, quoted strings,
// arrays, objects) keep their type; anything else is stored as a string.
func ParseDataPairs(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	data := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !found || key == "" {
			return nil, fmt.Errorf("invalid data pair %q: expected key=value", pair)
		}
		var decoded any
		if err := json.Unmarshal([]byte(value), &decoded); err == nil {
			data[key] = decoded
		} else {
			data[key] = value
		}
	}
	return data, nil
}

// Package hero contains pure rules about hero references.
// Heroes themselves are owned by the host application; this module only reads them.
package hero

import (
	"fmt"
	"strconv"
	"strings"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string // Human-readable reason (populated when not allowed)
}

// Error returns the guard result as an error if not allowed, nil otherwise.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// CanReferenceHero evaluates whether an ID can name a hero row.
// Rule: hero IDs are positive integers (SQLite rowids).
func CanReferenceHero(heroID int64) GuardResult {
	if heroID <= 0 {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("invalid hero id %d: must be a positive integer", heroID),
		}
	}
	return GuardResult{Allowed: true}
}

// ParseHeroID parses a user-supplied hero ID such as "7" or "HERO-7".
func ParseHeroID(input string) (int64, error) {
	raw := strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(input)), "HERO-")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid hero id %q", input)
	}
	if err := CanReferenceHero(id).Error(); err != nil {
		return 0, err
	}
	return id, nil
}

// FormatHeroID renders a hero ID for display.
func FormatHeroID(id int64) string {
	return fmt.Sprintf("HERO-%03d", id)
}

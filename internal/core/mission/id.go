package mission

import "fmt"

// FormatMissionID renders a mission row ID for display.
// The format is MISSION-XXX where XXX is a zero-padded 3-digit number.
func FormatMissionID(id int64) string {
	return fmt.Sprintf("MISSION-%03d", id)
}

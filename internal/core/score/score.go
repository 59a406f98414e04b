// Package score computes the composite hero score.
// This is part of the Functional Core - no I/O, only pure functions.
package score

// Weights applied to each score component.
const (
	PointsWeight           = 1
	LevelWeight            = 10
	ExperiencePerPoint     = 50
	AchievementWeight      = 25
	CompletedMissionWeight = 15
)

// Inputs are the pre-fetched hero values a score is derived from.
type Inputs struct {
	Points            int
	Level             int
	Experience        int
	Achievements      int
	CompletedMissions int
}

// Breakdown holds each weighted contribution to the score.
type Breakdown struct {
	Points           int
	LevelBonus       int
	ExperienceBonus  int
	AchievementBonus int
	MissionBonus     int
}

// Total returns the sum of all contributions.
func (b Breakdown) Total() int {
	return b.Points + b.LevelBonus + b.ExperienceBonus + b.AchievementBonus + b.MissionBonus
}

// Calculate derives the weighted score components. Values are not clamped:
// negative stored stats yield negative contributions, and experience uses Go's
// truncating integer division.
func Calculate(in Inputs) Breakdown {
	return Breakdown{
		Points:           in.Points * PointsWeight,
		LevelBonus:       in.Level * LevelWeight,
		ExperienceBonus:  in.Experience / ExperiencePerPoint,
		AchievementBonus: in.Achievements * AchievementWeight,
		MissionBonus:     in.CompletedMissions * CompletedMissionWeight,
	}
}

// Package mission contains the pure business logic for mission operations.
// This is part of the Functional Core - no I/O, only pure functions.
package mission

import "strings"

// DailyMarker tags persisted daily missions in their difficulty column.
const DailyMarker = "Diária"

// TypeDaily is the template type for daily missions.
const TypeDaily = "daily"

const (
	minDailyMissions = 2
	maxDailyMissions = 3
)

// Template is a mission blueprint that can be persisted as a mission row.
type Template struct {
	Title        string
	Description  string
	RewardXP     int
	RewardPoints int
	Difficulty   string
	Type         string
}

var dailyPool = []Template{
	{Title: "Treino Matinal", Description: "Complete 3 ações antes do meio-dia", RewardXP: 150, RewardPoints: 15, Difficulty: "Normal", Type: TypeDaily},
	{Title: "Explorador Corajoso", Description: "Ganhe 200 XP em uma única sessão", RewardXP: 100, RewardPoints: 20, Difficulty: "Normal", Type: TypeDaily},
	{Title: "Mestre da Persistência", Description: "Faça login por 3 dias consecutivos", RewardXP: 300, RewardPoints: 30, Difficulty: "Difícil", Type: TypeDaily},
	{Title: "Colecionador de Pontos", Description: "Acumule 50 pontos em um dia", RewardXP: 200, RewardPoints: 25, Difficulty: "Normal", Type: TypeDaily},
}

// DailyPool returns a copy of the daily mission template pool.
func DailyPool() []Template {
	out := make([]Template, len(dailyPool))
	copy(out, dailyPool)
	return out
}

// Picker supplies uniform random integers in [0, n).
// math/rand/v2's *Rand satisfies it.
type Picker interface {
	IntN(n int) int
}

// SelectDaily picks 2 or 3 templates from pool (count chosen uniformly),
// sampled uniformly without replacement. The pool is not modified.
// If the pool holds fewer templates than the chosen count, all are returned.
func SelectDaily(pool []Template, p Picker) []Template {
	count := minDailyMissions + p.IntN(maxDailyMissions-minDailyMissions+1)
	if count > len(pool) {
		count = len(pool)
	}

	// Partial Fisher-Yates over a copy.
	work := make([]Template, len(pool))
	copy(work, pool)
	for i := 0; i < count; i++ {
		j := i + p.IntN(len(work)-i)
		work[i], work[j] = work[j], work[i]
	}
	return work[:count]
}

// AsDaily returns the persisted form of a template: the title gains
// " (Diária)" and the difficulty gains " - Diária".
func AsDaily(t Template) Template {
	t.Title += " (" + DailyMarker + ")"
	t.Difficulty += " - " + DailyMarker
	return t
}

// IsDailyDifficulty reports whether a stored difficulty carries the daily marker.
func IsDailyDifficulty(difficulty string) bool {
	return strings.Contains(difficulty, DailyMarker)
}

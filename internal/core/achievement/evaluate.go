package achievement

// Qualifies reports whether the hero's stats satisfy the definition's threshold.
// Unknown stats never qualify.
func Qualifies(def Definition, stats HeroStats) bool {
	switch def.Stat {
	case StatLevel:
		return stats.Level >= def.Threshold
	case StatPoints:
		return stats.Points >= def.Threshold
	}
	return false
}

// Evaluate returns the definitions the hero newly qualifies for, in catalog order.
// Names in owned are skipped whether or not they still qualify.
func Evaluate(defs []Definition, stats HeroStats, owned map[string]bool) []Definition {
	var granted []Definition
	for _, def := range defs {
		if owned[def.Name] {
			continue
		}
		if Qualifies(def, stats) {
			granted = append(granted, def)
		}
	}
	return granted
}

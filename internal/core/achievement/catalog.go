// Package achievement contains the pure business logic for achievement unlocks.
// This is part of the Functional Core - no I/O, only pure functions.
package achievement

// Stat names the hero attribute a threshold is compared against.
type Stat string

const (
	// StatLevel compares against the hero's level.
	StatLevel Stat = "level"
	// StatPoints compares against the hero's points.
	StatPoints Stat = "points"
)

// Definition is one unlockable achievement: a name, its presentation, and
// the minimum value the hero's stat must reach.
type Definition struct {
	Name        string
	Description string
	Icon        string
	Stat        Stat
	Threshold   int
}

// HeroStats carries the hero attributes achievements are evaluated against.
type HeroStats struct {
	Level  int
	Points int
}

// catalog is evaluated in order; grant order follows it.
var catalog = []Definition{
	{Name: "Primeiro Passo", Description: "Cadastrou seu primeiro herói", Icon: "🎯", Stat: StatLevel, Threshold: 1},
	{Name: "Aprendiz Dedicado", Description: "Alcançou o nível 3", Icon: "📚", Stat: StatLevel, Threshold: 3},
	{Name: "Guerreiro Experiente", Description: "Alcançou o nível 5", Icon: "⚔️", Stat: StatLevel, Threshold: 5},
	{Name: "Veterano de Guerra", Description: "Alcançou o nível 10", Icon: "🛡️", Stat: StatLevel, Threshold: 10},
	{Name: "Colecionador", Description: "Acumulou 100 pontos", Icon: "💎", Stat: StatPoints, Threshold: 100},
	{Name: "Mestre dos Pontos", Description: "Acumulou 500 pontos", Icon: "👑", Stat: StatPoints, Threshold: 500},
	{Name: "Lenda Viva", Description: "Acumulou 1000 pontos", Icon: "🌟", Stat: StatPoints, Threshold: 1000},
}

// Catalog returns a copy of the ordered achievement catalog.
func Catalog() []Definition {
	out := make([]Definition, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the definition with the given name.
func Lookup(name string) (Definition, bool) {
	for _, def := range catalog {
		if def.Name == name {
			return def, true
		}
	}
	return Definition{}, false
}

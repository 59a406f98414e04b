package achievement

import (
	"reflect"
	"testing"
)

func names(defs []Definition) []string {
	out := make([]string, 0, len(defs))
	for _, d := range defs {
		out = append(out, d.Name)
	}
	return out
}

func TestCatalog_Order(t *testing.T) {
	want := []string{
		"Primeiro Passo",
		"Aprendiz Dedicado",
		"Guerreiro Experiente",
		"Veterano de Guerra",
		"Colecionador",
		"Mestre dos Pontos",
		"Lenda Viva",
	}
	if got := names(Catalog()); !reflect.DeepEqual(got, want) {
		t.Errorf("Catalog() = %v, want %v", got, want)
	}
}

func TestCatalog_ReturnsCopy(t *testing.T) {
	defs := Catalog()
	defs[0].Threshold = 99

	if Catalog()[0].Threshold != 1 {
		t.Error("mutating the returned slice changed the catalog")
	}
}

func TestQualifies(t *testing.T) {
	tests := []struct {
		name  string
		def   Definition
		stats HeroStats
		want  bool
	}{
		{"level exactly at threshold", Definition{Stat: StatLevel, Threshold: 3}, HeroStats{Level: 3}, true},
		{"level below threshold", Definition{Stat: StatLevel, Threshold: 3}, HeroStats{Level: 2, Points: 5000}, false},
		{"points exactly at threshold", Definition{Stat: StatPoints, Threshold: 100}, HeroStats{Points: 100}, true},
		{"points below threshold", Definition{Stat: StatPoints, Threshold: 100}, HeroStats{Level: 50, Points: 99}, false},
		{"level zero fails first step", Definition{Stat: StatLevel, Threshold: 1}, HeroStats{}, false},
		{"unknown stat never qualifies", Definition{Stat: Stat("mana"), Threshold: 0}, HeroStats{Level: 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Qualifies(tt.def, tt.stats); got != tt.want {
				t.Errorf("Qualifies() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name  string
		stats HeroStats
		owned map[string]bool
		want  []string
	}{
		{
			name:  "fresh level 1 hero",
			stats: HeroStats{Level: 1, Points: 0},
			want:  []string{"Primeiro Passo"},
		},
		{
			name:  "max hero gets everything in catalog order",
			stats: HeroStats{Level: 10, Points: 1000},
			want: []string{
				"Primeiro Passo", "Aprendiz Dedicado", "Guerreiro Experiente", "Veterano de Guerra",
				"Colecionador", "Mestre dos Pontos", "Lenda Viva",
			},
		},
		{
			name:  "owned achievements are skipped",
			stats: HeroStats{Level: 5, Points: 120},
			owned: map[string]bool{"Primeiro Passo": true, "Colecionador": true},
			want:  []string{"Aprendiz Dedicado", "Guerreiro Experiente"},
		},
		{
			name:  "everything owned",
			stats: HeroStats{Level: 10, Points: 1000},
			owned: map[string]bool{
				"Primeiro Passo": true, "Aprendiz Dedicado": true, "Guerreiro Experiente": true,
				"Veterano de Guerra": true, "Colecionador": true, "Mestre dos Pontos": true, "Lenda Viva": true,
			},
			want: []string{},
		},
		{
			name:  "negative stats qualify for nothing",
			stats: HeroStats{Level: -3, Points: -100},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(Evaluate(Catalog(), tt.stats, tt.owned))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Evaluate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	def, ok := Lookup("Lenda Viva")
	if !ok {
		t.Fatal("expected Lenda Viva to exist")
	}
	if def.Icon != "🌟" || def.Threshold != 1000 || def.Stat != StatPoints {
		t.Errorf("unexpected definition: %+v", def)
	}

	if _, ok := Lookup("Unknown"); ok {
		t.Error("expected unknown achievement lookup to fail")
	}
}

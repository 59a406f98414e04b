package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// SeedFixtures populates a development database with heroes and the host
// application's default missions. Expects the host tables to exist.
func SeedFixtures(ctx context.Context, database *sqlx.DB) error {
	heroes := []struct {
		name, class               string
		experience, level, points int
	}{
		{"Aria", "Guerreira", 120, 2, 50},
		{"Borin", "Mago", 950, 10, 1200},
		{"Caelum", "Arqueiro", 0, 1, 0},
	}
	for _, h := range heroes {
		if _, err := database.ExecContext(ctx,
			"INSERT INTO heroes (name, class, experience, level, points) VALUES (?, ?, ?, ?, ?)",
			h.name, h.class, h.experience, h.level, h.points,
		); err != nil {
			return fmt.Errorf("seed heroes: %w", err)
		}
	}

	missions := []struct {
		title, description, difficulty string
		rewardXP, rewardPoints         int
	}{
		{"Primeira Aventura", "Complete seu primeiro cadastro na academia", "Fácil", 50, 5},
		{"Guerreiro Experiente", "Alcance o nível 5", "Normal", 200, 20},
		{"Mestre dos Pontos", "Acumule 100 pontos", "Difícil", 300, 30},
		{"Lenda Viva", "Alcance o nível 10", "Épico", 500, 50},
	}
	for _, m := range missions {
		if _, err := database.ExecContext(ctx,
			"INSERT INTO missions (title, description, reward_xp, reward_points, difficulty) VALUES (?, ?, ?, ?, ?)",
			m.title, m.description, m.rewardXP, m.rewardPoints, m.difficulty,
		); err != nil {
			return fmt.Errorf("seed missions: %w", err)
		}
	}

	return nil
}

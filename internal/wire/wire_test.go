package wire

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/example/gamify/internal/config"
	"github.com/example/gamify/internal/db"
)

func TestNewContainer_EndToEnd(t *testing.T) {
	color.NoColor = true
	ctx := context.Background()
	cfg := &config.Config{
		DBPath:    filepath.Join(t.TempDir(), "nested", "gamify.sqlite"),
		LogLevel:  "info",
		LogFormat: "text",
	}

	c, err := NewContainer(ctx, cfg, nil)
	if err != nil {
		t.Fatalf("NewContainer failed: %v", err)
	}
	defer c.Close()

	if err := db.CreateHostTables(ctx, c.DB()); err != nil {
		t.Fatalf("CreateHostTables failed: %v", err)
	}
	if err := db.SeedFixtures(ctx, c.DB()); err != nil {
		t.Fatalf("SeedFixtures failed: %v", err)
	}

	backfill, err := c.AchievementService().BackfillAchievements(ctx)
	if err != nil {
		t.Fatalf("BackfillAchievements failed: %v", err)
	}
	if backfill.HeroesChecked != 3 {
		t.Errorf("expected 3 heroes checked, got %d", backfill.HeroesChecked)
	}

	var buf bytes.Buffer
	if err := c.SelfTestAdapter(&buf).Run(ctx); err != nil {
		t.Fatalf("selftest failed: %v", err)
	}
	output := buf.String()
	if !strings.Contains(output, `"name": "Borin"`) {
		t.Errorf("expected Borin as top hero, got: %s", output)
	}
	if !strings.Contains(output, "Conquista 'Lenda Viva' obtida") && !strings.Contains(output, "achievement_earned") {
		t.Errorf("expected achievement events in stats, got: %s", output)
	}
}

func TestNewContainer_BadPath(t *testing.T) {
	cfg := &config.Config{DBPath: ""}

	if _, err := NewContainer(context.Background(), cfg, nil); err == nil {
		t.Fatal("expected error for empty path")
	}
}

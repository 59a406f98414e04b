// Package wire provides dependency injection for the gamify application.
// A Container owns the database handle and the services built on it.
package wire

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"

	cliadapter "github.com/example/gamify/internal/adapters/cli"
	"github.com/example/gamify/internal/adapters/sqlite"
	"github.com/example/gamify/internal/app"
	"github.com/example/gamify/internal/config"
	"github.com/example/gamify/internal/db"
	"github.com/example/gamify/internal/ports/primary"
)

// Container holds the services for one database.
type Container struct {
	db     *sqlx.DB
	logger *slog.Logger

	missionService     primary.MissionService
	achievementService primary.AchievementService
	eventService       primary.EventService
	statsService       primary.StatsService
}

// NewContainer opens the configured database, brings the schema up to date,
// and builds every service. The caller must Close the container.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	if logger == nil {
		logger = slog.Default()
	}

	database, err := db.Open(ctx, cfg.DBPath, logger)
	if err != nil {
		return nil, err
	}
	logger.DebugContext(ctx, "database ready", "path", cfg.DBPath)

	// Create repository adapters (secondary ports) - sqlite adapters with injected DB
	heroRepo := sqlite.NewHeroRepository(database)
	missionRepo := sqlite.NewMissionRepository(database)
	achievementRepo := sqlite.NewAchievementRepository(database)
	eventRepo := sqlite.NewSystemEventRepository(database)

	// Create services (primary ports implementation)
	eventService := app.NewEventService(eventRepo, logger)
	picker := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))

	return &Container{
		db:                 database,
		logger:             logger,
		missionService:     app.NewMissionService(missionRepo, picker, time.Now, logger),
		achievementService: app.NewAchievementService(heroRepo, achievementRepo, eventService, logger),
		eventService:       eventService,
		statsService:       app.NewStatsService(heroRepo, missionRepo, achievementRepo, eventRepo),
	}, nil
}

// Close releases the database handle.
func (c *Container) Close() error {
	if err := c.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}

// DB returns the underlying database handle for maintenance commands.
func (c *Container) DB() *sqlx.DB { return c.db }

// MissionService returns the MissionService.
func (c *Container) MissionService() primary.MissionService { return c.missionService }

// AchievementService returns the AchievementService.
func (c *Container) AchievementService() primary.AchievementService { return c.achievementService }

// EventService returns the EventService.
func (c *Container) EventService() primary.EventService { return c.eventService }

// StatsService returns the StatsService.
func (c *Container) StatsService() primary.StatsService { return c.statsService }

// MissionAdapter returns a new MissionAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func (c *Container) MissionAdapter() *cliadapter.MissionAdapter {
	return c.MissionAdapterWithOutput(os.Stdout)
}

// MissionAdapterWithOutput returns a new MissionAdapter writing to the given output.
func (c *Container) MissionAdapterWithOutput(out io.Writer) *cliadapter.MissionAdapter {
	return cliadapter.NewMissionAdapter(c.missionService, out)
}

// AchievementAdapter returns a new AchievementAdapter writing to stdout.
func (c *Container) AchievementAdapter() *cliadapter.AchievementAdapter {
	return cliadapter.NewAchievementAdapter(c.achievementService, os.Stdout)
}

// EventAdapter returns a new EventAdapter writing to stdout.
func (c *Container) EventAdapter() *cliadapter.EventAdapter {
	return cliadapter.NewEventAdapter(c.eventService, os.Stdout)
}

// StatsAdapter returns a new StatsAdapter writing to stdout.
func (c *Container) StatsAdapter() *cliadapter.StatsAdapter {
	return c.StatsAdapterWithOutput(os.Stdout)
}

// StatsAdapterWithOutput returns a new StatsAdapter writing to the given output.
func (c *Container) StatsAdapterWithOutput(out io.Writer) *cliadapter.StatsAdapter {
	return cliadapter.NewStatsAdapter(c.statsService, out)
}

// SelfTestAdapter returns a new SelfTestAdapter writing to the given output.
func (c *Container) SelfTestAdapter(out io.Writer) *cliadapter.SelfTestAdapter {
	return cliadapter.NewSelfTestAdapter(c.missionService, c.statsService, out)
}

// Process-wide container for CLI commands. Configure must run before Default.
var (
	settings   *config.Config
	rootLogger *slog.Logger

	current *Container
	initErr error
	once    sync.Once
	mu      sync.Mutex
)

// Configure sets the configuration used by Default.
func Configure(cfg *config.Config, logger *slog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	settings = cfg
	rootLogger = logger
}

// Default returns the process-wide container, creating it on first use.
func Default(ctx context.Context) (*Container, error) {
	once.Do(func() {
		mu.Lock()
		cfg, logger := settings, rootLogger
		mu.Unlock()

		if cfg == nil {
			initErr = fmt.Errorf("wire: Configure was not called")
			return
		}
		c, err := NewContainer(ctx, cfg, logger)
		mu.Lock()
		current, initErr = c, err
		mu.Unlock()
	})
	if initErr != nil {
		return nil, initErr
	}

	mu.Lock()
	defer mu.Unlock()
	if current == nil {
		return nil, fmt.Errorf("wire: container already shut down")
	}
	return current, nil
}

// Shutdown closes the process-wide container if it was created.
func Shutdown() error {
	mu.Lock()
	defer mu.Unlock()
	if current == nil {
		return nil
	}
	err := current.Close()
	current = nil
	return err
}

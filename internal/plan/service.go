package plan

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/marcosoliveira78/v0-personal-workout-generator/internal/sqlite"
)

// Service generates workout plans from the catalog database.
type Service struct {
	repo   *sqliteRepository
	logger *slog.Logger
}

// NewService creates a new plan service.
func NewService(db *sqlite.Database, logger *slog.Logger) *Service {
	return &Service{
		repo:   newSQLiteRepository(db, logger),
		logger: logger,
	}
}

// GeneratePlan builds a complete nine-week plan for the profile.
func (s *Service) GeneratePlan(ctx context.Context, profile Profile) (Plan, error) {
	return s.GeneratePlanWithRand(ctx, profile, nil)
}

// GeneratePlanWithRand is GeneratePlan with an injectable random source. A nil
// rng uses a system-seeded source. Tests and the CLI pass a seeded one for
// reproducible plans.
func (s *Service) GeneratePlanWithRand(ctx context.Context, profile Profile, rng *rand.Rand) (Plan, error) {
	catalog, err := s.repo.loadCatalog(ctx)
	if err != nil {
		return Plan{}, fmt.Errorf("load catalog: %w", err)
	}

	g, err := newGenerator(profile, catalog, rng)
	if err != nil {
		return Plan{}, fmt.Errorf("new generator: %w", err)
	}

	p := g.Generate()
	s.logger.LogAttrs(ctx, slog.LevelInfo, "generated plan",
		slog.String("plan_id", p.ID.String()),
		slog.String("goal", string(profile.Goal)),
		slog.String("focus_area", string(profile.FocusArea)),
		slog.Int("days_per_week", p.DaysPerWeek))
	return p, nil
}

// ActivityOptions returns the selectable rest-activity options for building
// preference forms.
func (s *Service) ActivityOptions(ctx context.Context) (map[string]RestActivityOption, error) {
	catalog, err := s.repo.loadCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return catalog.ActivityOptions, nil
}

package plan

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/marcosoliveira78/v0-personal-workout-generator/internal/errors"
	"github.com/marcosoliveira78/v0-personal-workout-generator/internal/sqlite"
	"golang.org/x/sync/errgroup"
)

// ErrEmptyCatalog is returned when the database holds no usable exercise pool.
var ErrEmptyCatalog = errors.NewSentinel("exercise catalog is empty")

// sqliteRepository loads the generation catalog from the database.
type sqliteRepository struct {
	db     *sqlite.Database
	logger *slog.Logger
}

func newSQLiteRepository(db *sqlite.Database, logger *slog.Logger) *sqliteRepository {
	return &sqliteRepository{
		db:     db,
		logger: logger,
	}
}

// loadCatalog reads the full generation catalog: exercise pools, rest-day
// activities, activity options and supplements. The reads are independent and
// run concurrently on the read-only pool.
func (r *sqliteRepository) loadCatalog(ctx context.Context) (Catalog, error) {
	var catalog Catalog
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		exercises, err := r.fetchExercises(ctx, false)
		if err != nil {
			return fmt.Errorf("fetch exercises: %w", err)
		}
		catalog.Exercises = exercises
		return nil
	})
	g.Go(func() error {
		deload, err := r.fetchExercises(ctx, true)
		if err != nil {
			return fmt.Errorf("fetch deload exercises: %w", err)
		}
		catalog.DeloadExercises = deload
		return nil
	})
	g.Go(func() error {
		activities, err := r.fetchRestActivities(ctx)
		if err != nil {
			return fmt.Errorf("fetch rest activities: %w", err)
		}
		catalog.RestActivities = activities
		return nil
	})
	g.Go(func() error {
		options, err := r.fetchActivityOptions(ctx)
		if err != nil {
			return fmt.Errorf("fetch activity options: %w", err)
		}
		catalog.ActivityOptions = options
		return nil
	})
	g.Go(func() error {
		goalSupplements, general, err := r.fetchSupplements(ctx)
		if err != nil {
			return fmt.Errorf("fetch supplements: %w", err)
		}
		catalog.GoalSupplements = goalSupplements
		catalog.GeneralSupplements = general
		return nil
	})

	if err := g.Wait(); err != nil {
		return Catalog{}, err
	}
	if len(catalog.Exercises[FocusFullBody]) == 0 || len(catalog.DeloadExercises[FocusFullBody]) == 0 {
		return Catalog{}, ErrEmptyCatalog
	}
	return catalog, nil
}

// fetchExercises loads one exercise pool keyed by focus area.
func (r *sqliteRepository) fetchExercises(ctx context.Context, deload bool) (_ map[FocusArea][]Exercise, err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT id, name, description_markdown, focus_area, difficulty,
		       sets, reps_count, reps_text, rest_between_sets, tempo, equipment, tips
		FROM exercises
		WHERE is_deload = ?
		ORDER BY id`, deload)
	if err != nil {
		return nil, fmt.Errorf("query exercises: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close rows: %w", closeErr))
		}
	}()

	pools := make(map[FocusArea][]Exercise)
	ids := make(map[int]struct {
		area  FocusArea
		index int
	})
	for rows.Next() {
		var (
			id       int
			area     string
			tipsJSON string
			ex       Exercise
		)
		if err = rows.Scan(&id, &ex.Name, &ex.DescriptionMarkdown, &area, &ex.Difficulty,
			&ex.Sets, &ex.Reps.Count, &ex.Reps.Text, &ex.RestBetweenSets, &ex.Tempo,
			&ex.Equipment, &tipsJSON); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		if err = json.Unmarshal([]byte(tipsJSON), &ex.Tips); err != nil {
			return nil, fmt.Errorf("decode tips for exercise %q: %w", ex.Name, err)
		}

		focusArea := FocusArea(area)
		pools[focusArea] = append(pools[focusArea], ex)
		ids[id] = struct {
			area  FocusArea
			index int
		}{focusArea, len(pools[focusArea]) - 1}
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exercise rows: %w", err)
	}

	if err = r.attachMuscles(ctx, pools, ids); err != nil {
		return nil, fmt.Errorf("attach muscles: %w", err)
	}
	return pools, nil
}

// attachMuscles fills in the target muscles for every loaded exercise.
func (r *sqliteRepository) attachMuscles(
	ctx context.Context,
	pools map[FocusArea][]Exercise,
	ids map[int]struct {
		area  FocusArea
		index int
	},
) (err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT exercise_id, muscle
		FROM exercise_muscles
		ORDER BY exercise_id, position`)
	if err != nil {
		return fmt.Errorf("query exercise muscles: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close rows: %w", closeErr))
		}
	}()

	for rows.Next() {
		var (
			exerciseID int
			muscle     string
		)
		if err = rows.Scan(&exerciseID, &muscle); err != nil {
			return fmt.Errorf("scan muscle row: %w", err)
		}
		loc, ok := ids[exerciseID]
		if !ok {
			continue
		}
		ex := &pools[loc.area][loc.index]
		ex.TargetMuscles = append(ex.TargetMuscles, muscle)
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("iterate muscle rows: %w", err)
	}
	return nil
}

// fetchRestActivities loads the default rest-day activity pool.
func (r *sqliteRepository) fetchRestActivities(ctx context.Context) (_ []RestDayActivity, err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT name, description, duration, intensity, benefits, notes
		FROM rest_day_activities
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query rest activities: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close rows: %w", closeErr))
		}
	}()

	var activities []RestDayActivity
	for rows.Next() {
		var (
			a            RestDayActivity
			benefitsJSON string
		)
		if err = rows.Scan(&a.Name, &a.Description, &a.Duration, &a.Intensity, &benefitsJSON, &a.Notes); err != nil {
			return nil, fmt.Errorf("scan rest activity: %w", err)
		}
		if err = json.Unmarshal([]byte(benefitsJSON), &a.Benefits); err != nil {
			return nil, fmt.Errorf("decode benefits for activity %q: %w", a.Name, err)
		}
		activities = append(activities, a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rest activity rows: %w", err)
	}
	return activities, nil
}

// fetchActivityOptions loads the selectable rest-activity options keyed by id.
func (r *sqliteRepository) fetchActivityOptions(ctx context.Context) (_ map[string]RestActivityOption, err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT id, label, description, has_duration, has_distance,
		       default_min_duration, default_max_duration,
		       default_min_distance, default_max_distance,
		       unit, intensity_range, benefits
		FROM rest_activity_options`)
	if err != nil {
		return nil, fmt.Errorf("query activity options: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close rows: %w", closeErr))
		}
	}()

	options := make(map[string]RestActivityOption)
	for rows.Next() {
		var (
			o            RestActivityOption
			benefitsJSON string
		)
		if err = rows.Scan(&o.ID, &o.Label, &o.Description, &o.HasDuration, &o.HasDistance,
			&o.DefaultMinDuration, &o.DefaultMaxDuration,
			&o.DefaultMinDistance, &o.DefaultMaxDistance,
			&o.Unit, &o.IntensityRange, &benefitsJSON); err != nil {
			return nil, fmt.Errorf("scan activity option: %w", err)
		}
		if err = json.Unmarshal([]byte(benefitsJSON), &o.Benefits); err != nil {
			return nil, fmt.Errorf("decode benefits for option %q: %w", o.ID, err)
		}
		options[o.ID] = o
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activity option rows: %w", err)
	}
	return options, nil
}

// fetchSupplements loads goal-specific supplement lists and the general list.
func (r *sqliteRepository) fetchSupplements(
	ctx context.Context,
) (_ map[Goal][]SupplementRecommendation, _ []SupplementRecommendation, err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT name, goal, description, dosage, timing, benefits, priority
		FROM supplements
		ORDER BY id`)
	if err != nil {
		return nil, nil, fmt.Errorf("query supplements: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close rows: %w", closeErr))
		}
	}()

	byGoal := make(map[Goal][]SupplementRecommendation)
	var general []SupplementRecommendation
	for rows.Next() {
		var (
			s            SupplementRecommendation
			goal         string
			benefitsJSON string
		)
		if err = rows.Scan(&s.Name, &goal, &s.Description, &s.Dosage, &s.Timing, &benefitsJSON, &s.Priority); err != nil {
			return nil, nil, fmt.Errorf("scan supplement: %w", err)
		}
		if err = json.Unmarshal([]byte(benefitsJSON), &s.Benefits); err != nil {
			return nil, nil, fmt.Errorf("decode benefits for supplement %q: %w", s.Name, err)
		}
		if goal == "" {
			general = append(general, s)
		} else {
			byGoal[Goal(goal)] = append(byGoal[Goal(goal)], s)
		}
	}
	if err = rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterate supplement rows: %w", err)
	}
	return byGoal, general, nil
}

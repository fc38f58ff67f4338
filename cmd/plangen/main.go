// Command plangen generates a workout plan from a profile JSON document and
// writes the plan JSON to stdout. It is meant for scripting and for inspecting
// generator output without running the web server.
//
// Usage:
//
//	plangen [-seed N] [profile.json]
//
// The profile is read from the named file, or from stdin when no file is
// given. A fixed seed makes the output reproducible.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/marcosoliveira78/v0-personal-workout-generator/internal/errors"
	"github.com/marcosoliveira78/v0-personal-workout-generator/internal/plan"
	"github.com/marcosoliveira78/v0-personal-workout-generator/internal/sqlite"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	if err := run(context.Background(), logger, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		logger.LogAttrs(context.Background(), slog.LevelError, "plan generation failed", errors.SlogError(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, args []string, stdin io.Reader, stdout io.Writer) error {
	flags := flag.NewFlagSet("plangen", flag.ContinueOnError)
	seed := flags.Int64("seed", 0, "fixed random seed for reproducible output (0 = random)")
	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	input := stdin
	if flags.NArg() > 0 {
		f, err := os.Open(flags.Arg(0))
		if err != nil {
			return fmt.Errorf("open profile: %w", err)
		}
		defer f.Close()
		input = f
	}

	var profile plan.Profile
	decoder := json.NewDecoder(input)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&profile); err != nil {
		return fmt.Errorf("decode profile: %w", err)
	}

	db, err := sqlite.NewDatabase(ctx, ":memory:", logger)
	if err != nil {
		return errors.Wrap(err, "open catalog database")
	}
	defer db.Close()

	service := plan.NewService(db, logger)

	var rng *rand.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewPCG(uint64(*seed), uint64(*seed)))
	}
	generated, err := service.GeneratePlanWithRand(ctx, profile, rng)
	if err != nil {
		return errors.Wrap(err, "generate plan")
	}

	encoder := json.NewEncoder(stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(generated); err != nil {
		return fmt.Errorf("encode plan: %w", err)
	}
	return nil
}

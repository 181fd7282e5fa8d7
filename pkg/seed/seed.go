package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/flowboardhq/flowboard/pkg/observability"
	"github.com/flowboardhq/flowboard/pkg/scene"
)

// SkipReason explains why a seeding pass was a no-op. Skips are expected
// precondition-not-met states, never errors.
type SkipReason string

const (
	// SkipNone means the pass was not skipped.
	SkipNone SkipReason = ""

	// SkipNoFrame means no reference-frame handle was supplied
	// (e.g. the board is not initialized yet).
	SkipNoFrame SkipReason = "no_frame"

	// SkipAlreadySeeded means a shape on the board already carries the
	// seed marker.
	SkipAlreadySeeded SkipReason = "already_seeded"

	// SkipBadFrame means the handle did not resolve, or resolved to a
	// shape that is not a container frame.
	SkipBadFrame SkipReason = "bad_frame"
)

// Result reports the outcome of one seeding pass.
type Result struct {
	// Seeded is true when the onboarding batch was committed by this pass.
	Seeded bool `json:"seeded"`

	// Skipped carries the skip reason when Seeded is false and no error
	// occurred.
	Skipped SkipReason `json:"skipped,omitempty"`

	// ShapeCount is the number of descriptors committed by this pass.
	ShapeCount int `json:"shape_count"`
}

// Seeder populates a fresh board with the onboarding layout, at most once
// per board. It holds no state of its own beyond the engine handle - the
// idempotency signal is re-derived from the board's shapes on every run,
// so the seeder is safe to invoke on every mount, render, or reload.
type Seeder struct {
	Engine scene.Engine
	Steps  []Step
	Logger *log.Logger
}

// NewSeeder creates a seeder for the given engine.
// If steps is nil, DefaultSteps is used. If logger is nil, log.Default().
func NewSeeder(engine scene.Engine, logger *log.Logger) *Seeder {
	if logger == nil {
		logger = log.Default()
	}
	return &Seeder{
		Engine: engine,
		Steps:  DefaultSteps,
		Logger: logger,
	}
}

// Run performs one seeding pass against the board:
// one snapshot read, one pure layout computation, one batched write.
//
// Preconditions checked in order, each aborting silently:
//  1. frameID must be non-empty,
//  2. no shape on the board may carry the seed marker,
//  3. frameID must resolve to an existing container frame.
//
// A commit failure from the engine is propagated unchanged; the engine's
// batch atomicity guarantees no partial layout is left behind.
func (s *Seeder) Run(ctx context.Context, frameID string) (Result, error) {
	start := time.Now()
	observability.Seed().OnSeedStart(ctx, frameID)

	if frameID == "" {
		s.Logger.Debug("seed skipped", "reason", SkipNoFrame)
		observability.Seed().OnSeedSkipped(ctx, string(SkipNoFrame))
		return Result{Skipped: SkipNoFrame}, nil
	}

	shapes, err := s.Engine.Shapes(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("list shapes: %w", err)
	}
	if AlreadySeeded(shapes) {
		s.Logger.Debug("seed skipped", "reason", SkipAlreadySeeded)
		observability.Seed().OnSeedSkipped(ctx, string(SkipAlreadySeeded))
		return Result{Skipped: SkipAlreadySeeded}, nil
	}

	frame, ok, err := s.Engine.Shape(ctx, frameID)
	if err != nil {
		return Result{}, fmt.Errorf("resolve frame %s: %w", frameID, err)
	}
	if !ok || !frame.IsFrame() {
		s.Logger.Debug("seed skipped", "reason", SkipBadFrame, "frame", frameID)
		observability.Seed().OnSeedSkipped(ctx, string(SkipBadFrame))
		return Result{Skipped: SkipBadFrame}, nil
	}

	steps := s.Steps
	if steps == nil {
		steps = DefaultSteps
	}
	batch := Plan(DefaultOrigin, steps)

	if err := s.Engine.CreateShapes(ctx, batch); err != nil {
		observability.Seed().OnSeedComplete(ctx, 0, time.Since(start), err)
		return Result{}, err
	}

	s.Logger.Info("seeded onboarding layout",
		"shapes", len(batch),
		"steps", len(steps),
		"duration", time.Since(start))
	observability.Seed().OnSeedComplete(ctx, len(batch), time.Since(start), nil)

	return Result{Seeded: true, ShapeCount: len(batch)}, nil
}

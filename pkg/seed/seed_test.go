package seed

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/flowboardhq/flowboard/pkg/scene"
)

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

// newBoardWithFrame creates an engine holding a single frame and returns
// the engine and the frame's ID.
func newBoardWithFrame(t *testing.T) (*scene.MemoryEngine, string) {
	t.Helper()
	frame := scene.NewFrame(0, 0, scene.FrameProps{Width: 1400, Height: 900})
	e, err := scene.NewMemoryEngineWith([]scene.Shape{frame})
	if err != nil {
		t.Fatalf("NewMemoryEngineWith() error = %v", err)
	}
	return e, frame.ID
}

func TestSeederRunSeedsFreshBoard(t *testing.T) {
	ctx := context.Background()
	e, frameID := newBoardWithFrame(t)

	seeder := NewSeeder(e, testLogger())
	result, err := seeder.Run(ctx, frameID)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !result.Seeded {
		t.Error("Seeded = false, want true")
	}
	if result.Skipped != SkipNone {
		t.Errorf("Skipped = %q, want none", result.Skipped)
	}
	if result.ShapeCount != 10 {
		t.Errorf("ShapeCount = %d, want 10", result.ShapeCount)
	}

	// Frame plus the committed batch.
	if e.Len() != 11 {
		t.Errorf("board has %d shapes, want 11", e.Len())
	}

	shapes, err := e.Shapes(ctx)
	if err != nil {
		t.Fatalf("Shapes() error = %v", err)
	}
	if !AlreadySeeded(shapes) {
		t.Error("board does not carry the seed marker after seeding")
	}
}

func TestSeederRunIsIdempotent(t *testing.T) {
	ctx := context.Background()
	e, frameID := newBoardWithFrame(t)
	seeder := NewSeeder(e, testLogger())

	if _, err := seeder.Run(ctx, frameID); err != nil {
		t.Fatalf("first Run() error = %v", err)
	}
	countAfterFirst := e.Len()

	result, err := seeder.Run(ctx, frameID)
	if err != nil {
		t.Fatalf("second Run() error = %v", err)
	}
	if result.Seeded {
		t.Error("second Run() seeded again")
	}
	if result.Skipped != SkipAlreadySeeded {
		t.Errorf("Skipped = %q, want %q", result.Skipped, SkipAlreadySeeded)
	}
	if e.Len() != countAfterFirst {
		t.Errorf("board grew from %d to %d shapes on second run", countAfterFirst, e.Len())
	}
}

func TestSeederRunSkips(t *testing.T) {
	textID := ""
	tests := []struct {
		name    string
		frameID func(e *scene.MemoryEngine, frameID string) string
		want    SkipReason
	}{
		{
			name:    "empty frame handle",
			frameID: func(e *scene.MemoryEngine, frameID string) string { return "" },
			want:    SkipNoFrame,
		},
		{
			name:    "unknown frame handle",
			frameID: func(e *scene.MemoryEngine, frameID string) string { return "shape:missing" },
			want:    SkipBadFrame,
		},
		{
			name:    "handle resolves to a non-frame shape",
			frameID: func(e *scene.MemoryEngine, frameID string) string { return textID },
			want:    SkipBadFrame,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			e, frameID := newBoardWithFrame(t)

			text := scene.NewTextBlock(0, 0, scene.TextProps{Body: "note"})
			textID = text.ID
			if err := e.CreateShapes(ctx, []scene.Shape{text}); err != nil {
				t.Fatalf("CreateShapes() error = %v", err)
			}
			before := e.Len()

			seeder := NewSeeder(e, testLogger())
			result, err := seeder.Run(ctx, tt.frameID(e, frameID))
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}

			if result.Seeded {
				t.Error("Seeded = true, want false")
			}
			if result.Skipped != tt.want {
				t.Errorf("Skipped = %q, want %q", result.Skipped, tt.want)
			}
			if e.Len() != before {
				t.Errorf("skip mutated the board: %d -> %d shapes", before, e.Len())
			}
		})
	}
}

// failingEngine wraps a MemoryEngine and fails every commit.
type failingEngine struct {
	*scene.MemoryEngine
	commitErr error
}

func (f *failingEngine) CreateShapes(ctx context.Context, batch []scene.Shape) error {
	return f.commitErr
}

func TestSeederRunPropagatesCommitError(t *testing.T) {
	ctx := context.Background()
	e, frameID := newBoardWithFrame(t)

	commitErr := errors.New("backend unavailable")
	seeder := NewSeeder(&failingEngine{MemoryEngine: e, commitErr: commitErr}, testLogger())

	result, err := seeder.Run(ctx, frameID)
	if !errors.Is(err, commitErr) {
		t.Fatalf("Run() error = %v, want the engine's commit error", err)
	}
	if result.Seeded {
		t.Error("Seeded = true despite commit failure")
	}

	// The engine never committed, so a retry seeds normally.
	retry, err := NewSeeder(e, testLogger()).Run(ctx, frameID)
	if err != nil {
		t.Fatalf("retry Run() error = %v", err)
	}
	if !retry.Seeded {
		t.Error("retry did not seed after failed commit")
	}
}

func TestSeederCustomSteps(t *testing.T) {
	ctx := context.Background()
	e, frameID := newBoardWithFrame(t)

	seeder := NewSeeder(e, testLogger())
	seeder.Steps = []Step{{Label: "Only Step", Color: "green"}}

	result, err := seeder.Run(ctx, frameID)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	// 5 text blocks, 1 card, no connectors.
	if result.ShapeCount != 6 {
		t.Errorf("ShapeCount = %d, want 6", result.ShapeCount)
	}
}

package scene

import (
	"context"
	"errors"
)

var (
	// ErrInvalidShapeID is returned by [Engine.CreateShapes] implementations
	// when a descriptor has an empty identifier.
	ErrInvalidShapeID = errors.New("shape ID must not be empty")

	// ErrDuplicateShapeID is returned by [Engine.CreateShapes] implementations
	// when a descriptor's identifier already exists on the board or appears
	// twice in the same batch. Shape IDs must be unique per board.
	ErrDuplicateShapeID = errors.New("duplicate shape ID")
)

// Engine is the query/insert contract of the external scene-graph engine.
//
// The seeding subsystem consumes the engine exclusively through this
// interface: one snapshot read, one handle resolution, one batched write.
// Implementations must make CreateShapes atomic from the caller's point of
// view - either every descriptor in the batch is committed or none are.
type Engine interface {
	// Shapes returns a snapshot of all shapes currently on the board.
	Shapes(ctx context.Context) ([]Shape, error)

	// Shape resolves a shape handle. The second return value reports
	// whether the handle resolved to an existing shape.
	Shape(ctx context.Context, id string) (Shape, bool, error)

	// CreateShapes inserts the batch atomically. Descriptors with empty
	// or duplicate identifiers reject the whole batch.
	CreateShapes(ctx context.Context, batch []Shape) error
}

package scene

import (
	"context"
	"fmt"
	"sync"
)

// MemoryEngine is an in-memory scene engine for tests and file-based boards.
// It enforces the Engine contract: unique shape IDs and all-or-nothing
// batch inserts. Safe for concurrent use.
type MemoryEngine struct {
	mu     sync.RWMutex
	shapes []Shape
	byID   map[string]int // shape ID -> index into shapes
}

// NewMemoryEngine creates an empty in-memory engine.
func NewMemoryEngine() *MemoryEngine {
	return &MemoryEngine{byID: make(map[string]int)}
}

// NewMemoryEngineWith creates an in-memory engine pre-populated with shapes.
// Returns an error if the initial shapes violate the ID uniqueness invariant.
func NewMemoryEngineWith(shapes []Shape) (*MemoryEngine, error) {
	e := NewMemoryEngine()
	if err := e.CreateShapes(context.Background(), shapes); err != nil {
		return nil, err
	}
	return e, nil
}

// Shapes returns a snapshot copy of all shapes in insertion order.
func (e *MemoryEngine) Shapes(ctx context.Context) ([]Shape, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]Shape, len(e.shapes))
	copy(out, e.shapes)
	return out, nil
}

// Shape resolves a shape by ID.
func (e *MemoryEngine) Shape(ctx context.Context, id string) (Shape, bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	i, ok := e.byID[id]
	if !ok {
		return Shape{}, false, nil
	}
	return e.shapes[i], true, nil
}

// CreateShapes inserts the batch atomically. The whole batch is validated
// against the board and against itself before anything is committed, so a
// rejected batch leaves the board unchanged.
func (e *MemoryEngine) CreateShapes(ctx context.Context, batch []Shape) error {
	if len(batch) == 0 {
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	seen := make(map[string]bool, len(batch))
	for _, s := range batch {
		if s.ID == "" {
			return ErrInvalidShapeID
		}
		if _, exists := e.byID[s.ID]; exists || seen[s.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateShapeID, s.ID)
		}
		seen[s.ID] = true
	}

	for _, s := range batch {
		e.byID[s.ID] = len(e.shapes)
		e.shapes = append(e.shapes, s)
	}
	return nil
}

// Len returns the number of shapes on the board.
func (e *MemoryEngine) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.shapes)
}

// Ensure MemoryEngine implements Engine.
var _ Engine = (*MemoryEngine)(nil)

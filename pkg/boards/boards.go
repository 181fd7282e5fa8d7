// Package boards provides board registries backed by different stores.
//
// A board is a persistent canvas owned by a scene engine. The Store
// interface hands out a [scene.Engine] per board, creating boards on
// first use:
//   - memory: in-process storage for tests, the CLI, and standalone serving
//   - mongo: MongoDB-backed storage for multi-instance deployments
//
// Stores never interpret shape contents; seeding and editing go through
// the engine contract.
package boards

import (
	"context"
	"slices"
	"sync"

	"github.com/flowboardhq/flowboard/pkg/scene"
)

// Store is the interface for board registries.
type Store interface {
	// Board returns the scene engine for the given board,
	// creating an empty board on first use.
	Board(ctx context.Context, boardID string) (scene.Engine, error)

	// List returns the IDs of all known boards in sorted order.
	List(ctx context.Context) ([]string, error)

	// Close releases store resources.
	Close(ctx context.Context) error
}

// MemoryStore is an in-process board registry.
// Safe for concurrent use.
type MemoryStore struct {
	mu     sync.Mutex
	boards map[string]*scene.MemoryEngine
}

// NewMemoryStore creates an empty in-memory board registry.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{boards: make(map[string]*scene.MemoryEngine)}
}

// Board returns the engine for boardID, creating an empty board on first use.
func (s *MemoryStore) Board(ctx context.Context, boardID string) (scene.Engine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.boards[boardID]
	if !ok {
		e = scene.NewMemoryEngine()
		s.boards[boardID] = e
	}
	return e, nil
}

// List returns all board IDs in sorted order.
func (s *MemoryStore) List(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.boards))
	for id := range s.boards {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids, nil
}

// Close does nothing for the memory store.
func (s *MemoryStore) Close(ctx context.Context) error { return nil }

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)

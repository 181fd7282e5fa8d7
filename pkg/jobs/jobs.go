// Package jobs implements the clip-generation job lifecycle.
//
// A job turns one storyboard frame (a board plus selected shapes) into a
// video clip. Submission returns a job ID immediately; generation runs in
// the background and the job moves through
// pending → running → done | error.
//
// Job state lives in a [Store]: in-memory for single-instance use, Redis
// for deployments where API instances share job state. The generation
// backend itself is an external collaborator behind the [Generator]
// interface.
package jobs

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for job operations.
var (
	// ErrNotFound is returned when a job does not exist.
	ErrNotFound = errors.New("job not found")
)

// Job statuses.
const (
	StatusPending = "pending"
	StatusRunning = "running"
	StatusDone    = "done"
	StatusError   = "error"
)

// DefaultTTL is how long finished jobs remain queryable in TTL-based stores.
const DefaultTTL = 24 * time.Hour

// Job is one clip-generation request and its current state.
type Job struct {
	ID        string            `json:"id"`
	BoardID   string            `json:"board_id"`
	ShapeIDs  []string          `json:"shape_ids,omitempty"`
	Status    string            `json:"status"`
	ClipURL   string            `json:"clip_url,omitempty"`
	Error     string            `json:"error,omitempty"`
	StartedAt time.Time         `json:"started_at"`
	EndedAt   *time.Time        `json:"ended_at,omitempty"`
	Meta      map[string]string `json:"meta,omitempty"`
}

// Finished reports whether the job reached a terminal status.
func (j *Job) Finished() bool {
	return j.Status == StatusDone || j.Status == StatusError
}

// Store is the interface for job state backends.
type Store interface {
	// Create stores a new job. The job must be stored before any
	// background processing starts so status polls never miss it.
	Create(ctx context.Context, job *Job) error

	// Get retrieves a job by ID. Returns ErrNotFound if absent.
	Get(ctx context.Context, id string) (*Job, error)

	// Update overwrites a job's state.
	Update(ctx context.Context, job *Job) error

	// Close releases store resources.
	Close() error
}

package jobs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/flowboardhq/flowboard/pkg/observability"
)

// Request describes one clip-generation submission.
type Request struct {
	BoardID  string   `json:"board_id"`
	ShapeIDs []string `json:"shape_ids,omitempty"`
	Prompt   string   `json:"prompt,omitempty"`
	Context  string   `json:"context,omitempty"`
}

// Generator produces a clip for a request and returns its URL.
// The real model backend is an external collaborator; the repo ships
// [StubGenerator] for local development and tests.
type Generator interface {
	GenerateClip(ctx context.Context, req Request) (string, error)
}

// StubGenerator returns a deterministic placeholder clip URL without
// contacting any model backend.
type StubGenerator struct {
	BaseURL string
}

// GenerateClip returns a placeholder URL derived from the request.
func (g StubGenerator) GenerateClip(ctx context.Context, req Request) (string, error) {
	base := g.BaseURL
	if base == "" {
		base = "https://storage.googleapis.com/flowboard-clips"
	}
	return fmt.Sprintf("%s/%s/clip.mp4", base, req.BoardID), nil
}

// Service submits clip jobs and processes them in the background.
// The job is stored before the background task starts so a status poll
// issued right after submission never sees a missing job.
type Service struct {
	store  Store
	gen    Generator
	logger *log.Logger
	wg     sync.WaitGroup
}

// NewService creates a job service.
// If gen is nil, a StubGenerator is used. If logger is nil, log.Default().
func NewService(store Store, gen Generator, logger *log.Logger) *Service {
	if gen == nil {
		gen = StubGenerator{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Service{store: store, gen: gen, logger: logger}
}

// Submit creates a pending job and returns its ID immediately.
// Generation continues in the background, detached from the caller's
// cancellation (an aborted HTTP request must not kill the job).
func (s *Service) Submit(ctx context.Context, req Request) (string, error) {
	job := &Job{
		ID:        uuid.NewString(),
		BoardID:   req.BoardID,
		ShapeIDs:  req.ShapeIDs,
		Status:    StatusPending,
		StartedAt: time.Now(),
	}
	if err := s.store.Create(ctx, job); err != nil {
		return "", fmt.Errorf("create job: %w", err)
	}
	observability.Store().OnWrite(ctx, "jobs", job.ID, 1)

	s.wg.Add(1)
	go s.process(context.WithoutCancel(ctx), *job, req)

	return job.ID, nil
}

// Status returns the current state of a job.
func (s *Service) Status(ctx context.Context, id string) (*Job, error) {
	observability.Store().OnRead(ctx, "jobs", id)
	return s.store.Get(ctx, id)
}

// Wait blocks until all background jobs have finished.
// Used for graceful shutdown and tests.
func (s *Service) Wait() {
	s.wg.Wait()
}

func (s *Service) process(ctx context.Context, job Job, req Request) {
	defer s.wg.Done()

	job.Status = StatusRunning
	if err := s.store.Update(ctx, &job); err != nil {
		s.logger.Error("update job", "job", job.ID, "err", err)
	}

	url, err := s.gen.GenerateClip(ctx, req)
	now := time.Now()
	job.EndedAt = &now

	if err != nil {
		job.Status = StatusError
		job.Error = err.Error()
		s.logger.Warn("clip generation failed", "job", job.ID, "err", err)
	} else {
		job.Status = StatusDone
		job.ClipURL = url
		s.logger.Info("clip generated",
			"job", job.ID,
			"board", job.BoardID,
			"duration", now.Sub(job.StartedAt).Round(time.Millisecond))
	}

	if err := s.store.Update(ctx, &job); err != nil {
		s.logger.Error("update job", "job", job.ID, "err", err)
	}
}

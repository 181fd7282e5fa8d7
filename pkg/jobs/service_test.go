package jobs

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
)

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

// fakeGenerator returns a fixed URL or error.
type fakeGenerator struct {
	url string
	err error
}

func (g fakeGenerator) GenerateClip(ctx context.Context, req Request) (string, error) {
	return g.url, g.err
}

func TestServiceSubmitStoresJobImmediately(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	svc := NewService(store, fakeGenerator{url: "https://clips/board-1/clip.mp4"}, testLogger())

	id, err := svc.Submit(ctx, Request{BoardID: "board-1"})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if id == "" {
		t.Fatal("Submit() returned empty job ID")
	}

	// The job must be visible to a status poll issued right after
	// submission, even if the background task has not started yet.
	job, err := svc.Status(ctx, id)
	if err != nil {
		t.Fatalf("Status() error = %v", err)
	}
	if job.BoardID != "board-1" {
		t.Errorf("BoardID = %q, want board-1", job.BoardID)
	}

	svc.Wait()
}

func TestServiceJobCompletes(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	svc := NewService(store, fakeGenerator{url: "https://clips/board-1/clip.mp4"}, testLogger())

	id, err := svc.Submit(ctx, Request{BoardID: "board-1", ShapeIDs: []string{"shape:a"}})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	svc.Wait()

	job, err := svc.Status(ctx, id)
	if err != nil {
		t.Fatalf("Status() error = %v", err)
	}
	if job.Status != StatusDone {
		t.Errorf("Status = %q, want %q", job.Status, StatusDone)
	}
	if job.ClipURL != "https://clips/board-1/clip.mp4" {
		t.Errorf("ClipURL = %q", job.ClipURL)
	}
	if job.EndedAt == nil {
		t.Error("EndedAt not set on finished job")
	}
	if !job.Finished() {
		t.Error("Finished() = false, want true")
	}
}

func TestServiceJobFails(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	svc := NewService(store, fakeGenerator{err: errors.New("model backend down")}, testLogger())

	id, err := svc.Submit(ctx, Request{BoardID: "board-1"})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	svc.Wait()

	job, err := svc.Status(ctx, id)
	if err != nil {
		t.Fatalf("Status() error = %v", err)
	}
	if job.Status != StatusError {
		t.Errorf("Status = %q, want %q", job.Status, StatusError)
	}
	if job.Error != "model backend down" {
		t.Errorf("Error = %q", job.Error)
	}
	if job.ClipURL != "" {
		t.Errorf("ClipURL = %q on failed job, want empty", job.ClipURL)
	}
}

func TestServiceStatusUnknownJob(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryStore(), nil, testLogger())

	_, err := svc.Status(ctx, "no-such-job")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Status() error = %v, want ErrNotFound", err)
	}
}

func TestServiceSurvivesCallerCancellation(t *testing.T) {
	// An aborted HTTP request must not kill the background job.
	ctx, cancel := context.WithCancel(context.Background())
	store := NewMemoryStore()
	svc := NewService(store, fakeGenerator{url: "https://clips/x/clip.mp4"}, testLogger())

	id, err := svc.Submit(ctx, Request{BoardID: "board-x"})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	cancel()
	svc.Wait()

	job, err := svc.Status(context.Background(), id)
	if err != nil {
		t.Fatalf("Status() error = %v", err)
	}
	if job.Status != StatusDone {
		t.Errorf("Status = %q after caller cancellation, want %q", job.Status, StatusDone)
	}
}

func TestStubGenerator(t *testing.T) {
	tests := []struct {
		name    string
		gen     StubGenerator
		boardID string
		want    string
	}{
		{
			name:    "default base URL",
			gen:     StubGenerator{},
			boardID: "board-1",
			want:    "https://storage.googleapis.com/flowboard-clips/board-1/clip.mp4",
		},
		{
			name:    "custom base URL",
			gen:     StubGenerator{BaseURL: "https://cdn.example.com"},
			boardID: "b",
			want:    "https://cdn.example.com/b/clip.mp4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.gen.GenerateClip(context.Background(), Request{BoardID: tt.boardID})
			if err != nil {
				t.Fatalf("GenerateClip() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("GenerateClip() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	job := &Job{ID: "job-1", BoardID: "board-1", Status: StatusPending}
	if err := store.Create(ctx, job); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := store.Get(ctx, "job-1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Status != StatusPending {
		t.Errorf("Status = %q, want %q", got.Status, StatusPending)
	}

	// Mutating the returned copy must not affect the store.
	got.Status = StatusDone
	again, err := store.Get(ctx, "job-1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if again.Status != StatusPending {
		t.Error("mutating a Get() result leaked into the store")
	}
}

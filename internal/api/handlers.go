package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	ferrors "github.com/flowboardhq/flowboard/pkg/errors"
	"github.com/flowboardhq/flowboard/pkg/jobs"
	"github.com/flowboardhq/flowboard/pkg/scene"
	"github.com/flowboardhq/flowboard/pkg/seed"
)

// seedRequest is the body of POST /api/boards/{boardID}/seed.
type seedRequest struct {
	FrameID string `json:"frame_id"`
}

// seedResponse reports what the seed operation did.
type seedResponse struct {
	Seeded  bool   `json:"seeded"`
	Skipped string `json:"skipped,omitempty"`
	Shapes  int    `json:"shapes"`
}

// shapesResponse lists a board's shapes.
type shapesResponse struct {
	BoardID string        `json:"board_id"`
	Shapes  []scene.Shape `json:"shapes"`
}

// clipSubmitResponse returns the ID of a freshly submitted clip job.
type clipSubmitResponse struct {
	JobID string `json:"job_id"`
}

// clipStatusResponse reports clip job progress. Status is "waiting" while
// the job runs, "done" with a clip URL on success, "error" on failure.
type clipStatusResponse struct {
	Status  string `json:"status"`
	ClipURL string `json:"clip_url,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleListBoards(w http.ResponseWriter, r *http.Request) {
	ids, err := s.boards.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"boards": ids})
}

func (s *Server) handleListShapes(w http.ResponseWriter, r *http.Request) {
	boardID := chi.URLParam(r, "boardID")
	if err := ferrors.ValidateBoardID(boardID); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	engine, err := s.boards.Board(r.Context(), boardID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	shapes, err := engine.Shapes(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if shapes == nil {
		shapes = []scene.Shape{}
	}
	writeJSON(w, http.StatusOK, shapesResponse{BoardID: boardID, Shapes: shapes})
}

func (s *Server) handleSeed(w http.ResponseWriter, r *http.Request) {
	boardID := chi.URLParam(r, "boardID")
	if err := ferrors.ValidateBoardID(boardID); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var req seedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest,
			ferrors.New(ferrors.ErrCodeInvalidInput, "invalid request body"))
		return
	}
	// An empty frame handle is a legitimate silent skip; only a malformed
	// one is a client error.
	if req.FrameID != "" {
		if err := ferrors.ValidateShapeID(req.FrameID); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}

	engine, err := s.boards.Board(r.Context(), boardID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	seeder := seed.NewSeeder(engine, s.logger)
	result, err := seeder.Run(r.Context(), req.FrameID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, seedResponse{
		Seeded:  result.Seeded,
		Skipped: string(result.Skipped),
		Shapes:  result.ShapeCount,
	})
}

func (s *Server) handleSubmitClip(w http.ResponseWriter, r *http.Request) {
	var req jobs.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest,
			ferrors.New(ferrors.ErrCodeInvalidInput, "invalid request body"))
		return
	}
	if err := ferrors.ValidateBoardID(req.BoardID); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	id, err := s.jobs.Submit(r.Context(), req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusAccepted, clipSubmitResponse{JobID: id})
}

func (s *Server) handleClipStatus(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")

	job, err := s.jobs.Status(r.Context(), jobID)
	if errors.Is(err, jobs.ErrNotFound) {
		writeError(w, http.StatusNotFound,
			ferrors.New(ferrors.ErrCodeJobNotFound, "job not found"))
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	switch job.Status {
	case jobs.StatusDone:
		writeJSON(w, http.StatusOK, clipStatusResponse{Status: "done", ClipURL: job.ClipURL})
	case jobs.StatusError:
		writeJSON(w, http.StatusInternalServerError, clipStatusResponse{Status: "error", Error: job.Error})
	default:
		writeJSON(w, http.StatusAccepted, clipStatusResponse{Status: "waiting"})
	}
}

// errorResponse is the uniform error body.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{
		Error: ferrors.UserMessage(err),
		Code:  string(ferrors.GetCode(err)),
	})
}

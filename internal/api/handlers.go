// Package api exposes the submission and polling surface over HTTP, plus an
// MCP server for agent clients. Input validation happens here, before any
// Job Record side effects.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"meetscribe/internal/linkparse"
	"meetscribe/internal/meeting"
	"meetscribe/internal/storage"
)

const maxBodySize = 64 << 10 // 64KB

// JobStarter schedules an automation run for a freshly created job.
type JobStarter interface {
	Start(jobID string)
}

// Deps holds handler dependencies.
type Deps struct {
	Store  storage.Store
	Runner JobStarter
}

// NewHandler builds the HTTP router.
func NewHandler(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Post("/api/meetings", handleCreateMeeting(deps))
	r.Get("/api/meetings/{id}", handleGetMeeting(deps))

	return r
}

// CreateMeetingRequest is the submission payload. All fields are required
// and non-empty after trimming.
type CreateMeetingRequest struct {
	MeetingLink string `json:"meetingLink"`
	Platform    string `json:"platform"`
	MeetingID   string `json:"meetingId"`
	DisplayName string `json:"displayName"`
}

func handleCreateMeeting(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
		defer r.Body.Close()

		var req CreateMeetingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "invalid request body: %v", err)
			return
		}

		req.MeetingLink = strings.TrimSpace(req.MeetingLink)
		req.Platform = strings.TrimSpace(req.Platform)
		req.MeetingID = strings.TrimSpace(req.MeetingID)
		req.DisplayName = strings.TrimSpace(req.DisplayName)

		if req.MeetingLink == "" || req.Platform == "" || req.MeetingID == "" || req.DisplayName == "" {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "meetingLink, platform, meetingId, and displayName are required")
			return
		}

		platform := meeting.Platform(req.Platform)
		if !platform.Valid() {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "unsupported platform %q", req.Platform)
			return
		}

		if parsed := linkparse.Classify(req.MeetingLink); parsed.Platform != platform {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "meeting link does not look like a %s link", platform)
			return
		}

		job := meeting.NewJob(req.MeetingLink, platform, req.MeetingID, req.DisplayName)
		if err := deps.Store.Set(r.Context(), job); err != nil {
			httpError(w, http.StatusInternalServerError, "api_error", "failed to save job: %v", err)
			return
		}

		deps.Runner.Start(job.ID)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"id": job.ID})
	}
}

func handleGetMeeting(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		job, err := deps.Store.Get(r.Context(), id)
		if errors.Is(err, storage.ErrNotFound) {
			httpError(w, http.StatusNotFound, "not_found_error", "meeting %s not found", id)
			return
		}
		if err != nil {
			httpError(w, http.StatusInternalServerError, "api_error", "failed to load job: %v", err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(job)
	}
}

func httpError(w http.ResponseWriter, code int, errType string, format string, args ...any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	msg := fmt.Sprintf(format, args...)
	json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{
			"message": msg,
			"type":    errType,
		},
	})
}

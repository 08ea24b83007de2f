package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"meetscribe/internal/meeting"
	"meetscribe/internal/storage"
)

type fakeRunner struct {
	started []string
}

func (r *fakeRunner) Start(jobID string) {
	r.started = append(r.started, jobID)
}

func newTestHandler(t *testing.T) (http.Handler, *storage.MemoryStore, *fakeRunner) {
	t.Helper()
	store := storage.NewMemoryStore(0)
	runner := &fakeRunner{}
	return NewHandler(Deps{Store: store, Runner: runner}), store, runner
}

func postJSON(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	h, _, _ := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestCreateMeeting(t *testing.T) {
	h, store, runner := newTestHandler(t)

	rec := postJSON(t, h, "/api/meetings", `{
		"meetingLink": "https://meet.google.com/abc-defg-hij",
		"platform": "google-meet",
		"meetingId": "abc-defg-hij",
		"displayName": "Notetaker"
	}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.ID == "" {
		t.Fatal("response missing id")
	}

	job, err := store.Get(context.Background(), resp.ID)
	if err != nil {
		t.Fatalf("job not persisted: %v", err)
	}
	if job.Status != meeting.StatusWaiting {
		t.Errorf("Status = %q, want waiting", job.Status)
	}
	if job.Recording.Status != meeting.RecordingIdle {
		t.Errorf("Recording.Status = %q, want idle", job.Recording.Status)
	}

	if len(runner.started) != 1 || runner.started[0] != resp.ID {
		t.Errorf("runner started %v, want [%s]", runner.started, resp.ID)
	}
}

func TestCreateMeetingValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"malformed json", `{`, "invalid request body"},
		{"missing fields", `{"meetingLink": "https://zoom.us/j/123"}`, "required"},
		{
			"whitespace only",
			`{"meetingLink": "https://zoom.us/j/123", "platform": "zoom", "meetingId": "123", "displayName": "   "}`,
			"required",
		},
		{
			"unknown platform",
			`{"meetingLink": "https://zoom.us/j/123", "platform": "teams", "meetingId": "123", "displayName": "Notetaker"}`,
			"unsupported platform",
		},
		{
			"link does not match platform",
			`{"meetingLink": "https://meet.google.com/abc-defg-hij", "platform": "zoom", "meetingId": "123", "displayName": "Notetaker"}`,
			"does not look like",
		},
		{
			"unparseable link",
			`{"meetingLink": "https://example.com/call", "platform": "zoom", "meetingId": "123", "displayName": "Notetaker"}`,
			"does not look like",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _, runner := newTestHandler(t)
			rec := postJSON(t, h, "/api/meetings", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400; body = %s", rec.Code, rec.Body.String())
			}

			var resp struct {
				Error struct {
					Message string `json:"message"`
					Type    string `json:"type"`
				} `json:"error"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decoding error envelope: %v", err)
			}
			if resp.Error.Type != "invalid_request_error" {
				t.Errorf("error type = %q", resp.Error.Type)
			}
			if !strings.Contains(resp.Error.Message, tt.want) {
				t.Errorf("error message = %q, want it to contain %q", resp.Error.Message, tt.want)
			}
			if len(runner.started) != 0 {
				t.Error("rejected request must not start a run")
			}
		})
	}
}

func TestGetMeeting(t *testing.T) {
	h, store, _ := newTestHandler(t)

	job := meeting.NewJob("https://zoom.us/j/123", meeting.PlatformZoom, "123", "Notetaker")
	job.Apply(meeting.Update{
		Status:          meeting.StatusPtr(meeting.StatusDone),
		RecordingStatus: meeting.RecordingPtr(meeting.RecordingAvailable),
		Notes:           meeting.StringPtr("# Meeting Notes"),
	})
	if err := store.Set(context.Background(), job); err != nil {
		t.Fatalf("Set: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/meetings/"+job.ID, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var got meeting.Job
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decoding job: %v", err)
	}
	if got.ID != job.ID || got.Status != meeting.StatusDone || got.Notes != "# Meeting Notes" {
		t.Errorf("got %+v", got)
	}
}

func TestGetMeetingNotFound(t *testing.T) {
	h, _, _ := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/api/meetings/no-such-id", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

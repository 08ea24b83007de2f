package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type recordedRequest struct {
	Method string
	Path   string
	Body   string
}

type testServer struct {
	server   *httptest.Server
	requests []recordedRequest
}

func newTestServer(t *testing.T, responses map[string]string) *testServer {
	t.Helper()
	ts := &testServer{}

	ts.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body bytes.Buffer
		body.ReadFrom(r.Body)

		ts.requests = append(ts.requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.RequestURI(),
			Body:   body.String(),
		})

		key := r.Method + " " + r.URL.Path
		if resp, ok := responses[key]; ok {
			w.Header().Set("Content-Type", "application/json")
			if r.Method == "POST" {
				w.WriteHeader(http.StatusCreated)
			}
			w.Write([]byte(resp))
			return
		}

		w.WriteHeader(404)
		w.Write([]byte(`{"error":{"message":"not found","type":"not_found_error"}}`))
	}))

	t.Cleanup(ts.server.Close)
	return ts
}

func (ts *testServer) client() *apiClient {
	return &apiClient{
		baseURL:    ts.server.URL,
		httpClient: ts.server.Client(),
	}
}

var ctx = context.Background()

func TestJoinRequest(t *testing.T) {
	ts := newTestServer(t, map[string]string{
		"POST /api/meetings": `{"id":"job-123"}`,
	})

	client := ts.client()
	resp, err := client.post(ctx, "/api/meetings", map[string]string{
		"meetingLink": "https://meet.google.com/abc-defg-hij",
		"platform":    "google-meet",
		"meetingId":   "abc-defg-hij",
		"displayName": "Meetscribe Notetaker",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Errorf("status code = %d, want 201", resp.StatusCode)
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if created.ID != "job-123" {
		t.Errorf("id = %q, want job-123", created.ID)
	}

	if len(ts.requests) != 1 {
		t.Fatalf("expected 1 request, got %d", len(ts.requests))
	}

	var body map[string]string
	if err := json.Unmarshal([]byte(ts.requests[0].Body), &body); err != nil {
		t.Fatalf("body parse error: %v", err)
	}
	if body["platform"] != "google-meet" {
		t.Errorf("body.platform = %q, want google-meet", body["platform"])
	}
	if body["meetingId"] != "abc-defg-hij" {
		t.Errorf("body.meetingId = %q", body["meetingId"])
	}
}

func TestJoinCommand_MissingArgs(t *testing.T) {
	defer rootCmd.SetArgs(nil)

	rootCmd.SetArgs([]string{"join"})
	err := rootCmd.Execute()
	if err == nil {
		t.Fatal("expected error for missing args")
	}
	if !strings.Contains(err.Error(), "arg") {
		t.Errorf("error = %q, want it to mention args", err.Error())
	}
}

func TestNotesRequest(t *testing.T) {
	ts := newTestServer(t, map[string]string{
		"GET /api/meetings/job-123": `{"id":"job-123","status":"done","recording":{"status":"available","durationMinutes":5},"notes":"# Meeting Notes"}`,
	})

	client := ts.client()
	resp, err := client.get(ctx, "/api/meetings/job-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	var job struct {
		ID        string `json:"id"`
		Status    string `json:"status"`
		Notes     string `json:"notes"`
		Recording struct {
			Status          string `json:"status"`
			DurationMinutes int    `json:"durationMinutes"`
		} `json:"recording"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&job); err != nil {
		t.Fatalf("decode error: %v", err)
	}

	if job.Status != "done" {
		t.Errorf("status = %q, want done", job.Status)
	}
	if job.Recording.DurationMinutes != 5 {
		t.Errorf("durationMinutes = %d, want 5", job.Recording.DurationMinutes)
	}
	if job.Notes != "# Meeting Notes" {
		t.Errorf("notes = %q", job.Notes)
	}
}

func TestStatusCommand_Stopped(t *testing.T) {
	ts := newTestServer(t, map[string]string{})
	ts.server.Close()

	client := ts.client()
	_, err := client.get(ctx, "/health")
	if err == nil {
		t.Fatal("expected error for stopped server")
	}
	if !strings.Contains(err.Error(), "not reachable") {
		t.Errorf("error = %q, want it to mention 'not reachable'", err.Error())
	}
}

func TestAPIError(t *testing.T) {
	ts := newTestServer(t, map[string]string{})

	client := ts.client()
	resp, err := client.get(ctx, "/api/meetings/missing")
	if err != nil {
		t.Fatalf("unexpected transport error: %v", err)
	}
	defer resp.Body.Close()

	parsed := apiError(resp)
	if parsed == nil {
		t.Fatal("expected error for 404 response")
	}
	if !strings.Contains(parsed.Error(), "404") || !strings.Contains(parsed.Error(), "not found") {
		t.Errorf("error = %q, want HTTP status and message", parsed.Error())
	}
}

func TestNoColorFlag(t *testing.T) {
	old := noColor
	defer func() { noColor = old }()

	noColor = true
	result := colorize(colorGreen, "test message")
	if strings.Contains(result, "\033[") {
		t.Errorf("colorize with noColor=true should not contain ANSI codes, got %q", result)
	}
	if result != "test message" {
		t.Errorf("result = %q, want %q", result, "test message")
	}

	noColor = false
	result = colorize(colorGreen, "test message")
	if !strings.Contains(result, "\033[") {
		t.Errorf("colorize with noColor=false should contain ANSI codes, got %q", result)
	}
}

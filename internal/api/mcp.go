package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"meetscribe/internal/linkparse"
	"meetscribe/internal/meeting"
	"meetscribe/internal/storage"
)

// MCPDeps holds dependencies for the MCP server.
type MCPDeps struct {
	Store  storage.Store
	Runner JobStarter
}

// NewMCPServer exposes meeting automation as MCP tools so agent clients can
// dispatch the bot and poll for notes.
func NewMCPServer(deps MCPDeps) *server.MCPServer {
	s := server.NewMCPServer(
		"meetscribe",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions("meetscribe — send an automated note-taker to a Zoom or Google Meet meeting and fetch the resulting notes."),
		server.WithRecovery(),
	)

	s.AddTool(
		mcp.NewTool("join_meeting",
			mcp.WithDescription("Send the note-taking bot to a meeting. Returns a job id to poll with meeting_status."),
			mcp.WithString("link", mcp.Description("Zoom or Google Meet meeting link"), mcp.Required()),
			mcp.WithString("display_name", mcp.Description("Name the bot joins under (default \"Meetscribe Notetaker\")")),
		),
		mcpJoinMeeting(deps),
	)

	s.AddTool(
		mcp.NewTool("meeting_status",
			mcp.WithDescription("Fetch the current Job Record for a meeting, including notes once status is done."),
			mcp.WithString("id", mcp.Description("Job id returned by join_meeting"), mcp.Required()),
		),
		mcpMeetingStatus(deps),
	)

	return s
}

func mcpJoinMeeting(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		link, err := req.RequireString("link")
		if err != nil {
			return mcpError("link is required"), nil
		}

		parsed := linkparse.Classify(link)
		if parsed.Platform == "" {
			return mcpError("link is not a recognized Zoom or Google Meet meeting link"), nil
		}

		displayName := req.GetString("display_name", "Meetscribe Notetaker")

		job := meeting.NewJob(link, parsed.Platform, parsed.MeetingID, displayName)
		if err := deps.Store.Set(ctx, job); err != nil {
			return mcpError(fmt.Sprintf("failed to save job: %v", err)), nil
		}

		deps.Runner.Start(job.ID)

		return mcpText(fmt.Sprintf("Started meeting job %s (%s)", job.ID, parsed.Platform)), nil
	}
}

func mcpMeetingStatus(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := req.RequireString("id")
		if err != nil {
			return mcpError("id is required"), nil
		}

		job, err := deps.Store.Get(ctx, id)
		if errors.Is(err, storage.ErrNotFound) {
			return mcpError(fmt.Sprintf("meeting %s not found", id)), nil
		}
		if err != nil {
			return mcpError(fmt.Sprintf("failed to load job: %v", err)), nil
		}

		b, err := json.Marshal(job)
		if err != nil {
			return mcpError(fmt.Sprintf("failed to marshal job: %v", err)), nil
		}
		return mcpText(string(b)), nil
	}
}

func mcpText(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: text},
		},
	}
}

func mcpError(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: msg},
		},
		IsError: true,
	}
}

package main

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"meetscribe/internal/linkparse"
	"meetscribe/internal/meeting"
)

// --- join ---

var joinDisplayName string

var joinCmd = &cobra.Command{
	Use:   "join <meeting-link>",
	Short: "Send the note-taking bot to a meeting",
	Long: `Send the note-taking bot to a meeting.

Examples:
  meetscribe join https://meet.google.com/abc-defg-hij
  meetscribe join https://zoom.us/j/1234567890 --name "Notetaker"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		link := args[0]

		parsed := linkparse.Classify(link)
		if parsed.Platform == "" {
			return fmt.Errorf("not a recognized Zoom or Google Meet link: %s", link)
		}

		client, err := newAPIClient()
		if err != nil {
			return err
		}

		resp, err := client.post(cmd.Context(), "/api/meetings", map[string]string{
			"meetingLink": link,
			"platform":    string(parsed.Platform),
			"meetingId":   parsed.MeetingID,
			"displayName": joinDisplayName,
		})
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusCreated {
			return apiError(resp)
		}

		var created struct {
			ID string `json:"id"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}

		printSuccess("Meeting job %s started (%s)", created.ID, parsed.Platform)
		fmt.Println(created.ID)
		return nil
	},
}

// --- notes ---

var notesCmd = &cobra.Command{
	Use:   "notes <job-id>",
	Short: "Show the status or notes for a meeting job",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}

		resp, err := client.get(cmd.Context(), "/api/meetings/"+args[0])
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return apiError(resp)
		}

		var job meeting.Job
		if err := json.NewDecoder(resp.Body).Decode(&job); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}

		printStatus("Status", "%s", job.Status)
		if job.StatusMessage != "" {
			printStatus("Progress", "%s", job.StatusMessage)
		}
		printStatus("Recording", "%s", job.Recording.Status)
		if job.Recording.DurationMinutes > 0 {
			printStatus("Duration", "%d min", job.Recording.DurationMinutes)
		}

		switch job.Status {
		case meeting.StatusDone:
			fmt.Println(job.Notes)
		case meeting.StatusError:
			printError("%s", job.Error)
		}
		return nil
	},
}

func init() {
	joinCmd.Flags().StringVar(&joinDisplayName, "name", "Meetscribe Notetaker", "display name the bot joins under")
}

func apiError(resp *http.Response) error {
	var parsed struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err == nil && parsed.Error.Message != "" {
		return fmt.Errorf("server error (HTTP %d): %s", resp.StatusCode, parsed.Error.Message)
	}
	return fmt.Errorf("server error (HTTP %d)", resp.StatusCode)
}

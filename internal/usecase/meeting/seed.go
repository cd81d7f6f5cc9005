package meeting

import (
	"context"
	"fmt"
	"time"

	"github.com/johnquangdev/meeting-sim/internal/domain/entities"
	"github.com/johnquangdev/meeting-sim/internal/domain/repositories"
)

// DemoMeetingID is the id of the meeting created by SeedDemo
const DemoMeetingID = "1"

// DemoMeeting returns the sample meeting shown on first launch
func DemoMeeting() *entities.Meeting {
	url := entities.RecordingLocator(DemoMeetingID)
	summary := "Discussed Q3 results and plans for Q4"
	return &entities.Meeting{
		ID:           DemoMeetingID,
		Title:        "Quarterly Planning",
		Date:         time.Date(2023, time.November, 15, 0, 0, 0, 0, time.Local),
		Participants: []string{"john@example.com", "jane@example.com"},
		RecordingURL: &url,
		Transcription: []entities.TranscriptionSegment{
			{ID: "t1", Speaker: "John", Text: "Let's review our Q3 results", Timestamp: 5},
		},
		Summary: &summary,
		ActionItems: []entities.ActionItem{
			// assignee must be a transcript speaker
			{ID: "a1", Text: "Prepare marketing plan", AssignedTo: "John"},
		},
	}
}

// SeedDemo stores the demo meeting in an empty repository
func SeedDemo(ctx context.Context, repo repositories.MeetingRepository) error {
	n, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count meetings: %w", err)
	}
	if n > 0 {
		return nil
	}
	return repo.Append(ctx, DemoMeeting())
}

package meeting

import (
	"context"

	"github.com/johnquangdev/meeting-sim/internal/domain/entities"
)

// Service defines the interface for the meeting store use case
type Service interface {
	// Create creates a new meeting
	Create(ctx context.Context, title string, participants []string) (*entities.Meeting, error)

	// List retrieves every meeting in insertion order
	List(ctx context.Context) ([]*entities.Meeting, error)

	// Get retrieves a meeting by ID
	Get(ctx context.Context, meetingID string) (*entities.Meeting, error)

	// Update shallow-merges patch into an existing meeting
	Update(ctx context.Context, meetingID string, patch entities.MeetingPatch) (*entities.Meeting, error)

	// SetRecordingLocator attaches the mock recording URL to a meeting
	SetRecordingLocator(ctx context.Context, meetingID string) error

	// ToggleActionItem flips the completed flag of one action item
	ToggleActionItem(ctx context.Context, meetingID, itemID string) (*entities.Meeting, error)
}

// Ensure MeetingService implements Service interface
var _ Service = (*MeetingService)(nil)

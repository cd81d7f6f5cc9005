package repositories

import (
	"context"

	"github.com/johnquangdev/meeting-sim/internal/domain/entities"
)

// MeetingRepository defines the interface for meeting data access.
// Implementations hand out copies; mutating a returned record never changes
// the stored one.
type MeetingRepository interface {
	// Append stores a new meeting at the end of the collection
	Append(ctx context.Context, meeting *entities.Meeting) error

	// FindByID retrieves a meeting by its ID
	FindByID(ctx context.Context, id string) (*entities.Meeting, error)

	// List retrieves all meetings in insertion order
	List(ctx context.Context) ([]*entities.Meeting, error)

	// Mutate applies fn to the stored meeting under the repository lock. The
	// change is kept only when fn returns nil.
	Mutate(ctx context.Context, id string, fn func(m *entities.Meeting) error) (*entities.Meeting, error)

	// Count returns the number of stored meetings
	Count(ctx context.Context) (int, error)
}

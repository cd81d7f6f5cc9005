package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/johnquangdev/meeting-sim/internal/domain/entities"
	"github.com/johnquangdev/meeting-sim/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/meeting-sim/internal/usecase/errors"
)

// meetingRepository keeps meetings in process memory in insertion order
type meetingRepository struct {
	mu       sync.RWMutex
	meetings []*entities.Meeting
	index    map[string]int
}

// NewMeetingRepository creates an empty in-memory meeting repository
func NewMeetingRepository() repositories.MeetingRepository {
	return &meetingRepository{
		index: make(map[string]int),
	}
}

// Append stores a new meeting
func (r *meetingRepository) Append(ctx context.Context, meeting *entities.Meeting) error {
	if meeting == nil {
		return errors.New("meeting cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[meeting.ID]; exists {
		return usecaseErrors.ErrAlreadyExists
	}
	r.index[meeting.ID] = len(r.meetings)
	r.meetings = append(r.meetings, meeting.Clone())
	return nil
}

// FindByID retrieves a meeting by its ID
func (r *meetingRepository) FindByID(ctx context.Context, id string) (*entities.Meeting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return nil, usecaseErrors.ErrMeetingNotFound
	}
	return r.meetings[i].Clone(), nil
}

// List retrieves a snapshot of all meetings
func (r *meetingRepository) List(ctx context.Context) ([]*entities.Meeting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entities.Meeting, len(r.meetings))
	for i, m := range r.meetings {
		out[i] = m.Clone()
	}
	return out, nil
}

// Mutate applies fn to a working copy and commits it when fn succeeds
func (r *meetingRepository) Mutate(ctx context.Context, id string, fn func(m *entities.Meeting) error) (*entities.Meeting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return nil, usecaseErrors.ErrMeetingNotFound
	}

	working := r.meetings[i].Clone()
	if err := fn(working); err != nil {
		return nil, err
	}
	// id is immutable
	working.ID = id
	r.meetings[i] = working
	return working.Clone(), nil
}

// Count returns the number of stored meetings
func (r *meetingRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.meetings), nil
}

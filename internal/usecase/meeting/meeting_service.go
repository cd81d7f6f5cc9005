package meeting

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-sim/internal/domain/entities"
	"github.com/johnquangdev/meeting-sim/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/meeting-sim/internal/usecase/errors"
)

// MeetingService handles meeting store business logic
type MeetingService struct {
	meetingRepo repositories.MeetingRepository
	logger      *zap.Logger
	now         func() time.Time
}

// Option customises a MeetingService
type Option func(*MeetingService)

// WithClock overrides the time source used for creation timestamps
func WithClock(now func() time.Time) Option {
	return func(s *MeetingService) { s.now = now }
}

// NewMeetingService creates a new meeting service
func NewMeetingService(meetingRepo repositories.MeetingRepository, logger *zap.Logger, opts ...Option) *MeetingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &MeetingService{
		meetingRepo: meetingRepo,
		logger:      logger,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create creates a new meeting
func (s *MeetingService) Create(ctx context.Context, title string, participants []string) (*entities.Meeting, error) {
	if strings.TrimSpace(title) == "" {
		return nil, usecaseErrors.ErrTitleRequired
	}
	if participants == nil {
		participants = []string{}
	}

	m := entities.NewMeeting(title, participants, s.now())
	if err := s.meetingRepo.Append(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to create meeting: %w", err)
	}

	s.logger.Info("meeting created",
		zap.String("meeting_id", m.ID),
		zap.String("title", m.Title),
		zap.Int("participants", len(m.Participants)),
	)
	return m.Clone(), nil
}

// List retrieves every meeting in insertion order
func (s *MeetingService) List(ctx context.Context) ([]*entities.Meeting, error) {
	meetings, err := s.meetingRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	return meetings, nil
}

// Get retrieves a meeting by ID
func (s *MeetingService) Get(ctx context.Context, meetingID string) (*entities.Meeting, error) {
	m, err := s.meetingRepo.FindByID(ctx, meetingID)
	if err != nil {
		if usecaseErrors.IsNotFound(err) {
			return nil, usecaseErrors.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}
	return m, nil
}

// Update shallow-merges patch into an existing meeting. The stored record is
// left untouched if the merged result is invalid.
func (s *MeetingService) Update(ctx context.Context, meetingID string, patch entities.MeetingPatch) (*entities.Meeting, error) {
	updated, err := s.meetingRepo.Mutate(ctx, meetingID, func(m *entities.Meeting) error {
		patch.Apply(m)
		return validate(m)
	})
	if err != nil {
		return nil, s.mapErr(err)
	}

	s.logger.Debug("meeting updated", zap.String("meeting_id", meetingID))
	return updated, nil
}

// SetRecordingLocator attaches the mock recording URL to a meeting
func (s *MeetingService) SetRecordingLocator(ctx context.Context, meetingID string) error {
	_, err := s.meetingRepo.Mutate(ctx, meetingID, func(m *entities.Meeting) error {
		url := entities.RecordingLocator(m.ID)
		m.RecordingURL = &url
		return nil
	})
	if err != nil {
		return s.mapErr(err)
	}

	s.logger.Info("recording started", zap.String("meeting_id", meetingID))
	return nil
}

// ToggleActionItem flips the completed flag of one action item
func (s *MeetingService) ToggleActionItem(ctx context.Context, meetingID, itemID string) (*entities.Meeting, error) {
	updated, err := s.meetingRepo.Mutate(ctx, meetingID, func(m *entities.Meeting) error {
		i := m.FindActionItem(itemID)
		if i < 0 {
			return usecaseErrors.ErrActionItemNotFound
		}
		m.ActionItems[i] = m.ActionItems[i].Toggled()
		return nil
	})
	if err != nil {
		return nil, s.mapErr(err)
	}
	return updated, nil
}

func (s *MeetingService) mapErr(err error) error {
	switch {
	case errors.Is(err, usecaseErrors.ErrActionItemNotFound):
		return usecaseErrors.ErrActionItemNotFound
	case usecaseErrors.IsNotFound(err):
		return usecaseErrors.ErrMeetingNotFound
	case usecaseErrors.IsValidation(err):
		return err
	default:
		return fmt.Errorf("failed to update meeting: %w", err)
	}
}

func validate(m *entities.Meeting) error {
	err := m.Validate()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, entities.ErrTitleRequired):
		return usecaseErrors.ErrTitleRequired
	default:
		return fmt.Errorf("%w: %w", usecaseErrors.ErrInvalidMeeting, err)
	}
}

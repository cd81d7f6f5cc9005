package ai

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-sim/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/meeting-sim/internal/usecase/errors"
	"github.com/johnquangdev/meeting-sim/internal/usecase/meeting"
	"github.com/johnquangdev/meeting-sim/pkg/callcontext"
)

// Service defines the mock meeting-intelligence pipeline
type Service interface {
	// Transcribe produces the canned transcript and stores it on the meeting
	Transcribe(ctx context.Context, meetingID string) ([]entities.TranscriptionSegment, error)

	// Summarize derives a summary and action items from the stored transcript
	Summarize(ctx context.Context, meetingID string) (*Summary, error)
}

type aiService struct {
	meetings meeting.Service
	parser   *Parser
	logger   *zap.Logger
}

// NewAIService constructs a new AI service
func NewAIService(meetings meeting.Service, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &aiService{
		meetings: meetings,
		parser:   NewParser(),
		logger:   logger,
	}
}

// Transcribe replaces the meeting's transcription with the canned transcript.
// A summary derived from an earlier transcript is dropped.
func (s *aiService) Transcribe(ctx context.Context, meetingID string) ([]entities.TranscriptionSegment, error) {
	segments := s.parser.Transcript()

	patch := entities.MeetingPatch{Transcription: &segments, ClearSummary: true}
	if _, err := s.meetings.Update(ctx, meetingID, patch); err != nil {
		if usecaseErrors.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to store transcription: %w", err)
	}

	s.logger.With(callcontext.Fields(ctx)...).Info("transcription generated",
		zap.String("meeting_id", meetingID),
		zap.Int("segments", len(segments)),
	)
	return segments, nil
}

// Summarize derives the summary from the stored transcript. Without a
// transcript the fallback summary is returned and nothing is written.
func (s *aiService) Summarize(ctx context.Context, meetingID string) (*Summary, error) {
	m, err := s.meetings.Get(ctx, meetingID)
	if err != nil {
		return nil, err
	}

	result := s.parser.Summarize(m.Transcription)
	if !m.HasTranscription() {
		s.logger.With(callcontext.Fields(ctx)...).Warn("summary requested without transcription",
			zap.String("meeting_id", meetingID),
		)
		return &result, nil
	}

	patch := entities.MeetingPatch{
		Summary:     &result.Summary,
		ActionItems: &result.ActionItems,
	}
	if _, err := s.meetings.Update(ctx, meetingID, patch); err != nil {
		if usecaseErrors.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to store summary: %w", err)
	}

	s.logger.With(callcontext.Fields(ctx)...).Info("summary generated",
		zap.String("meeting_id", meetingID),
		zap.Int("action_items", len(result.ActionItems)),
	)
	return &result, nil
}

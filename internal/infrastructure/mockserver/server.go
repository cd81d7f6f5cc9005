package mockserver

import (
	"context"
	stdErrors "errors"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-sim/errors"
	"github.com/johnquangdev/meeting-sim/internal/domain/entities"
	"github.com/johnquangdev/meeting-sim/internal/infrastructure/metrics"
	aiuse "github.com/johnquangdev/meeting-sim/internal/usecase/ai"
	usecaseErrors "github.com/johnquangdev/meeting-sim/internal/usecase/errors"
	"github.com/johnquangdev/meeting-sim/internal/usecase/meeting"
	"github.com/johnquangdev/meeting-sim/pkg/callcontext"
)

// Operation names, used for logs and metric labels
const (
	OpCreateMeeting         = "create_meeting"
	OpGetMeetings           = "get_meetings"
	OpGetMeeting            = "get_meeting"
	OpUpdateMeeting         = "update_meeting"
	OpToggleActionItem      = "toggle_action_item"
	OpStartRecording        = "start_recording"
	OpGenerateTranscription = "generate_transcription"
	OpGenerateSummary       = "generate_summary"
)

// Latency holds the simulated response delay per operation
type Latency struct {
	Default        time.Duration
	StartRecording time.Duration
	Transcription  time.Duration
	Summary        time.Duration
}

// DefaultLatency mirrors the delays of the hosted product demo
func DefaultLatency() Latency {
	return Latency{
		StartRecording: 500 * time.Millisecond,
		Transcription:  2000 * time.Millisecond,
		Summary:        1500 * time.Millisecond,
	}
}

// RecordingStarted is the payload of a successful StartRecording call
type RecordingStarted struct {
	Success bool `json:"success"`
}

// Server is the in-process stand-in for the meetings REST backend. Every call
// performs its work immediately and settles its Result after the configured
// latency. Failures reject right away. Nothing is retried or cancelled.
type Server struct {
	meetings meeting.Service
	ai       aiuse.Service
	latency  Latency
	metrics  *metrics.FacadeMetrics
	logger   *zap.Logger
	after    func(d time.Duration, f func())
}

// Option customises a Server
type Option func(*Server)

// WithLatency sets the simulated delays
func WithLatency(l Latency) Option {
	return func(s *Server) { s.latency = l }
}

// WithMetrics records call outcomes on m
func WithMetrics(m *metrics.FacadeMetrics) Option {
	return func(s *Server) { s.metrics = m }
}

// WithScheduler replaces time.AfterFunc, mainly for tests
func WithScheduler(after func(d time.Duration, f func())) Option {
	return func(s *Server) { s.after = after }
}

// NewServer creates a new mock server
func NewServer(meetings meeting.Service, ai aiuse.Service, logger *zap.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		meetings: meetings,
		ai:       ai,
		latency:  DefaultLatency(),
		logger:   logger,
		after: func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateMeeting creates a meeting; an empty title is rejected with 422
func (s *Server) CreateMeeting(ctx context.Context, title string, participants []string) *Result[*entities.Meeting] {
	return call(ctx, s, OpCreateMeeting, s.latency.Default, "", func(ctx context.Context) (*entities.Meeting, error) {
		m, err := s.meetings.Create(ctx, title, participants)
		if err == nil {
			s.metrics.RecordMeetingCreated()
		}
		return m, err
	})
}

// GetMeetings returns a snapshot of every meeting
func (s *Server) GetMeetings(ctx context.Context) *Result[[]*entities.Meeting] {
	return call(ctx, s, OpGetMeetings, s.latency.Default, "", s.meetings.List)
}

// GetMeeting returns one meeting or rejects with 404
func (s *Server) GetMeeting(ctx context.Context, meetingID string) *Result[*entities.Meeting] {
	return call(ctx, s, OpGetMeeting, s.latency.Default, meetingID, func(ctx context.Context) (*entities.Meeting, error) {
		return s.meetings.Get(ctx, meetingID)
	})
}

// UpdateMeeting merges patch into a meeting
func (s *Server) UpdateMeeting(ctx context.Context, meetingID string, patch entities.MeetingPatch) *Result[*entities.Meeting] {
	return call(ctx, s, OpUpdateMeeting, s.latency.Default, meetingID, func(ctx context.Context) (*entities.Meeting, error) {
		return s.meetings.Update(ctx, meetingID, patch)
	})
}

// ToggleActionItem flips one action item
func (s *Server) ToggleActionItem(ctx context.Context, meetingID, itemID string) *Result[*entities.Meeting] {
	return call(ctx, s, OpToggleActionItem, s.latency.Default, meetingID, func(ctx context.Context) (*entities.Meeting, error) {
		m, err := s.meetings.ToggleActionItem(ctx, meetingID, itemID)
		if stdErrors.Is(err, usecaseErrors.ErrActionItemNotFound) {
			return nil, errors.ErrActionItemNotFound(meetingID, itemID)
		}
		return m, err
	})
}

// StartRecording attaches the mock recording locator
func (s *Server) StartRecording(ctx context.Context, meetingID string) *Result[RecordingStarted] {
	return call(ctx, s, OpStartRecording, s.latency.StartRecording, meetingID, func(ctx context.Context) (RecordingStarted, error) {
		if err := s.meetings.SetRecordingLocator(ctx, meetingID); err != nil {
			return RecordingStarted{}, err
		}
		return RecordingStarted{Success: true}, nil
	})
}

// GenerateTranscription stores and returns the canned transcript
func (s *Server) GenerateTranscription(ctx context.Context, meetingID string) *Result[[]entities.TranscriptionSegment] {
	return call(ctx, s, OpGenerateTranscription, s.latency.Transcription, meetingID, func(ctx context.Context) ([]entities.TranscriptionSegment, error) {
		return s.ai.Transcribe(ctx, meetingID)
	})
}

// GenerateSummary stores and returns the summary with its action items
func (s *Server) GenerateSummary(ctx context.Context, meetingID string) *Result[*aiuse.Summary] {
	return call(ctx, s, OpGenerateSummary, s.latency.Summary, meetingID, func(ctx context.Context) (*aiuse.Summary, error) {
		return s.ai.Summarize(ctx, meetingID)
	})
}

func call[T any](ctx context.Context, s *Server, op string, delay time.Duration, meetingID string, fn func(context.Context) (T, error)) *Result[T] {
	// the operation is never aborted once issued
	ctx = callcontext.Begin(context.WithoutCancel(ctx), op)
	v, err := fn(ctx)
	if err != nil {
		appErr := toAppError(op, err, meetingID)
		s.logger.Warn("mock api call rejected", append(callcontext.Fields(ctx),
			zap.String("meeting_id", meetingID),
			zap.Int("status", appErr.HTTPCode),
			zap.Error(err),
		)...)
		s.metrics.RecordRejection(op, strconv.Itoa(appErr.HTTPCode))
		s.metrics.RecordCall(op, metrics.StatusRejected, callcontext.Elapsed(ctx).Seconds())
		return Rejected[T](appErr)
	}

	resolved := func() {
		s.metrics.RecordCall(op, metrics.StatusResolved, callcontext.Elapsed(ctx).Seconds())
		s.logger.Debug("mock api call resolved", append(callcontext.Fields(ctx),
			zap.String("meeting_id", meetingID),
			zap.Duration("latency", delay),
		)...)
	}
	if delay <= 0 {
		resolved()
		return Resolved(v)
	}

	r := newResult[T]()
	s.after(delay, func() {
		if r.settle(v, nil) {
			resolved()
		}
	})
	return r
}

// toAppError maps use case failures to status-coded rejections. Failures that
// are neither validation nor lookup errors reject with 400 and the code of
// the failing operation.
func toAppError(op string, err error, meetingID string) errors.AppError {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return appErr
	}
	switch {
	case stdErrors.Is(err, usecaseErrors.ErrTitleRequired):
		return errors.ErrTitleRequired()
	case usecaseErrors.IsNotFound(err):
		return errors.ErrMeetingNotFound(meetingID)
	case usecaseErrors.IsValidation(err):
		return errors.ErrValidation(err.Error(), err)
	}

	switch op {
	case OpStartRecording:
		return errors.ErrRecordingStartFailed(meetingID, err)
	case OpGenerateTranscription:
		return errors.ErrAITranscriptionFailed(err)
	case OpGenerateSummary:
		return errors.ErrAISummaryFailed(err)
	default:
		return errors.ErrBadRequest(err.Error(), err)
	}
}

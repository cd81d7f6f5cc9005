// Package view holds the presentation state of the meeting UI: the meeting
// list, the per-meeting detail view with its tabs, and text renderers for
// both. Views talk to the backend only through the asynchronous façade.
package view

import (
	"context"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-sim/internal/domain/entities"
	"github.com/johnquangdev/meeting-sim/internal/infrastructure/mockserver"
	aiuse "github.com/johnquangdev/meeting-sim/internal/usecase/ai"
)

// Backend is the façade surface the views depend on
type Backend interface {
	CreateMeeting(ctx context.Context, title string, participants []string) *mockserver.Result[*entities.Meeting]
	GetMeetings(ctx context.Context) *mockserver.Result[[]*entities.Meeting]
	GetMeeting(ctx context.Context, meetingID string) *mockserver.Result[*entities.Meeting]
	UpdateMeeting(ctx context.Context, meetingID string, patch entities.MeetingPatch) *mockserver.Result[*entities.Meeting]
	StartRecording(ctx context.Context, meetingID string) *mockserver.Result[mockserver.RecordingStarted]
	GenerateTranscription(ctx context.Context, meetingID string) *mockserver.Result[[]entities.TranscriptionSegment]
	GenerateSummary(ctx context.Context, meetingID string) *mockserver.Result[*aiuse.Summary]
}

var _ Backend = (*mockserver.Server)(nil)

// Alerter shows a user-visible notification
type Alerter interface {
	Alert(message string)
}

// AlertFunc adapts a function to Alerter
type AlertFunc func(message string)

// Alert calls f(message)
func (f AlertFunc) Alert(message string) { f(message) }

// LogAlerter sends alerts to the structured log only
type LogAlerter struct {
	Logger *zap.Logger
}

// Alert logs message at info level
func (a LogAlerter) Alert(message string) {
	if a.Logger != nil {
		a.Logger.Info("alert", zap.String("message", message))
	}
}

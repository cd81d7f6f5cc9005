package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-sim/internal/adapter/repository"
	usecaseErrors "github.com/johnquangdev/meeting-sim/internal/usecase/errors"
	"github.com/johnquangdev/meeting-sim/internal/usecase/meeting"
)

func newServices(t *testing.T) (meeting.Service, Service) {
	t.Helper()
	meetings := meeting.NewMeetingService(repository.NewMeetingRepository(), nil)
	return meetings, NewAIService(meetings, nil)
}

func TestAIService_SprintReviewScenario(t *testing.T) {
	ctx := context.Background()
	meetings, svc := newServices(t)

	m, err := meetings.Create(ctx, "Sprint Review", []string{"a@x.com", "b@x.com"})
	require.NoError(t, err)

	list, err := meetings.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Sprint Review", list[0].Title)
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, list[0].Participants)
	assert.False(t, list[0].HasTranscription())

	segs, err := svc.Transcribe(ctx, m.ID)
	require.NoError(t, err)
	require.Len(t, segs, 3)
	assert.Equal(t, []string{"John Doe", "Jane Smith"}, DistinctSpeakers(segs))

	summary, err := svc.Summarize(ctx, m.ID)
	require.NoError(t, err)
	assert.Contains(t, summary.Summary, "John Doe")
	assert.Contains(t, summary.Summary, "Jane Smith")
	assert.GreaterOrEqual(t, len(summary.ActionItems), 1)

	stored, err := meetings.Get(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, segs, stored.Transcription)
	require.True(t, stored.HasSummary())
	assert.Equal(t, summary.Summary, *stored.Summary)
	assert.Equal(t, summary.ActionItems, stored.ActionItems)
	assert.NoError(t, stored.Validate())
}

func TestAIService_SummarizeWithoutTranscription(t *testing.T) {
	ctx := context.Background()
	meetings, svc := newServices(t)
	m, err := meetings.Create(ctx, "Empty", nil)
	require.NoError(t, err)

	summary, err := svc.Summarize(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, FallbackSummary, summary.Summary)
	assert.Empty(t, summary.ActionItems)

	stored, err := meetings.Get(ctx, m.ID)
	require.NoError(t, err)
	assert.False(t, stored.HasSummary(), "the fallback is not persisted")
	assert.Nil(t, stored.ActionItems)
}

func TestAIService_RetranscribeDropsStaleSummary(t *testing.T) {
	ctx := context.Background()
	meetings, svc := newServices(t)
	m, err := meetings.Create(ctx, "Twice", nil)
	require.NoError(t, err)

	_, err = svc.Transcribe(ctx, m.ID)
	require.NoError(t, err)
	_, err = svc.Summarize(ctx, m.ID)
	require.NoError(t, err)

	second, err := svc.Transcribe(ctx, m.ID)
	require.NoError(t, err)

	stored, err := meetings.Get(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, second, stored.Transcription, "the whole list is replaced")
	assert.False(t, stored.HasSummary())
	assert.Nil(t, stored.ActionItems)
}

func TestAIService_TranscribeSeededDemo(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMeetingRepository()
	require.NoError(t, meeting.SeedDemo(ctx, repo))
	svc := NewAIService(meeting.NewMeetingService(repo, nil), nil)

	_, err := svc.Transcribe(ctx, meeting.DemoMeetingID)
	assert.NoError(t, err)
}

func TestAIService_MissingMeeting(t *testing.T) {
	ctx := context.Background()
	_, svc := newServices(t)

	_, err := svc.Transcribe(ctx, "missing")
	assert.ErrorIs(t, err, usecaseErrors.ErrMeetingNotFound)

	_, err = svc.Summarize(ctx, "missing")
	assert.ErrorIs(t, err, usecaseErrors.ErrMeetingNotFound)
}

package view

import (
	"context"
	stdErrors "errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-sim/errors"
	"github.com/johnquangdev/meeting-sim/internal/adapter/repository"
	"github.com/johnquangdev/meeting-sim/internal/domain/entities"
	"github.com/johnquangdev/meeting-sim/internal/infrastructure/mockserver"
	aiuse "github.com/johnquangdev/meeting-sim/internal/usecase/ai"
	"github.com/johnquangdev/meeting-sim/internal/usecase/meeting"
)

type alerts struct {
	mu   sync.Mutex
	msgs []string
}

func (a *alerts) Alert(msg string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.msgs = append(a.msgs, msg)
}

func (a *alerts) all() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.msgs...)
}

// failingBackend rejects updates and delegates everything else
type failingBackend struct {
	Backend
	updateErr error
}

func (f *failingBackend) UpdateMeeting(ctx context.Context, meetingID string, patch entities.MeetingPatch) *mockserver.Result[*entities.Meeting] {
	if f.updateErr != nil {
		return mockserver.Rejected[*entities.Meeting](f.updateErr)
	}
	return f.Backend.UpdateMeeting(ctx, meetingID, patch)
}

// newestFirstBackend lists meetings in reverse creation order
type newestFirstBackend struct {
	Backend
}

func (b newestFirstBackend) GetMeetings(ctx context.Context) *mockserver.Result[[]*entities.Meeting] {
	list, err := b.Backend.GetMeetings(ctx).Await(ctx)
	if err != nil {
		return mockserver.Rejected[[]*entities.Meeting](err)
	}
	for i, j := 0, len(list)-1; i < j; i, j = i+1, j-1 {
		list[i], list[j] = list[j], list[i]
	}
	return mockserver.Resolved(list)
}

func newBackend(t *testing.T) (*mockserver.Server, meeting.Service) {
	t.Helper()
	meetings := meeting.NewMeetingService(repository.NewMeetingRepository(), nil)
	ai := aiuse.NewAIService(meetings, nil)
	return mockserver.NewServer(meetings, ai, nil, mockserver.WithLatency(mockserver.Latency{})), meetings
}

func openNew(t *testing.T, backend Backend, a Alerter) (*ListView, *DetailView) {
	t.Helper()
	lv := NewListView(backend, a, nil)
	dv, err := lv.Create(context.Background(), "Sprint Review", " John Doe, , Jane Smith ")
	require.NoError(t, err)
	require.NotNil(t, dv)
	return lv, dv
}

func TestParseParticipants(t *testing.T) {
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, ParseParticipants(" a@x.com ,b@x.com,, "))
	assert.Equal(t, []string{}, ParseParticipants(""))
	assert.Equal(t, []string{}, ParseParticipants(" , "))
}

func TestListView_CreateOpensNewestMeeting(t *testing.T) {
	ctx := context.Background()
	backend, meetings := newBackend(t)
	_, err := meetings.Create(ctx, "Existing", nil)
	require.NoError(t, err)

	lv, dv := openNew(t, backend, &alerts{})

	assert.Len(t, lv.Meetings(), 2)
	assert.Same(t, dv, lv.Selected())
	st := dv.State()
	assert.Equal(t, "Sprint Review", st.Meeting.Title)
	assert.Equal(t, []string{"John Doe", "Jane Smith"}, st.Meeting.Participants)
	assert.Equal(t, TabDetails, st.ActiveTab)
	assert.False(t, lv.IsLoading())
}

func TestListView_CreateOpensCreatedMeetingWhateverTheOrder(t *testing.T) {
	ctx := context.Background()
	backend, meetings := newBackend(t)
	_, err := meetings.Create(ctx, "Existing", nil)
	require.NoError(t, err)

	lv := NewListView(newestFirstBackend{Backend: backend}, &alerts{}, nil)
	dv, err := lv.Create(ctx, "Retro", "Ann")
	require.NoError(t, err)
	require.NotNil(t, dv)

	list := lv.Meetings()
	require.Len(t, list, 2)
	assert.Equal(t, "Existing", list[1].Title)
	assert.Equal(t, "Retro", dv.State().Meeting.Title)
	assert.Same(t, dv, lv.Selected())
}

func TestListView_CreateBlankTitleAlerts(t *testing.T) {
	backend, _ := newBackend(t)
	a := &alerts{}
	lv := NewListView(backend, a, nil)

	dv, err := lv.Create(context.Background(), "  ", "a")
	assert.Error(t, err)
	assert.Nil(t, dv)
	assert.Nil(t, lv.Selected())
	assert.Equal(t, []string{"Create meeting failed: Title is required"}, a.all())
}

func TestListView_SelectAndBack(t *testing.T) {
	ctx := context.Background()
	backend, meetings := newBackend(t)
	m, err := meetings.Create(ctx, "Planning", nil)
	require.NoError(t, err)

	lv := NewListView(backend, nil, nil)
	require.NoError(t, lv.Load(ctx))

	dv, err := lv.Select(ctx, m.ID[:6])
	require.NoError(t, err)
	assert.Equal(t, m.ID, dv.MeetingID())

	_, err = lv.Select(ctx, "zzz")
	assert.Error(t, err)

	require.NoError(t, lv.Back(ctx))
	assert.Nil(t, lv.Selected())
}

func TestDetailView_TabGating(t *testing.T) {
	backend, _ := newBackend(t)
	_, dv := openNew(t, backend, &alerts{})

	assert.True(t, dv.TabEnabled(TabDetails))
	assert.False(t, dv.TabEnabled(TabTranscription))
	assert.False(t, dv.TabEnabled(TabSummary))

	assert.ErrorIs(t, dv.SelectTab(TabTranscription), ErrTabDisabled)
	assert.ErrorIs(t, dv.SelectTab(TabSummary), ErrTabDisabled)
	assert.Equal(t, TabDetails, dv.ActiveTab())

	_, err := ParseTab("bogus")
	assert.Error(t, err)
}

func TestDetailView_FullFlowAutoNavigates(t *testing.T) {
	ctx := context.Background()
	backend, meetings := newBackend(t)
	a := &alerts{}
	_, dv := openNew(t, backend, a)

	require.NoError(t, dv.StartRecording(ctx))
	st := dv.State()
	require.True(t, st.Meeting.HasRecording())
	assert.Equal(t, entities.RecordingLocator(st.Meeting.ID), *st.Meeting.RecordingURL)

	require.NoError(t, dv.GenerateTranscription(ctx))
	assert.Equal(t, TabTranscription, dv.ActiveTab())
	assert.Len(t, dv.State().Meeting.Transcription, 3)

	require.NoError(t, dv.GenerateSummary(ctx))
	assert.Equal(t, TabSummary, dv.ActiveTab())
	st = dv.State()
	require.True(t, st.Meeting.HasSummary())
	assert.NotEmpty(t, st.Meeting.ActionItems)
	assert.False(t, st.LoadingSummary)
	assert.False(t, st.LoadingTranscription)

	require.NoError(t, dv.SelectTab(TabDetails))
	dv.PlayRecording()
	assert.Contains(t, a.all(), MsgPlayRecording)

	stored, err := meetings.Get(ctx, st.Meeting.ID)
	require.NoError(t, err)
	assert.Equal(t, stored, st.Meeting, "working copy matches the store after each call")
}

func TestDetailView_SummaryWithoutTranscriptionAlertsFallback(t *testing.T) {
	backend, _ := newBackend(t)
	a := &alerts{}
	_, dv := openNew(t, backend, a)

	require.NoError(t, dv.GenerateSummary(context.Background()))
	assert.Equal(t, TabDetails, dv.ActiveTab())
	assert.Equal(t, []string{aiuse.FallbackSummary}, a.all())
	assert.False(t, dv.State().Meeting.HasSummary())
}

func TestDetailView_ToggleConfirmed(t *testing.T) {
	ctx := context.Background()
	backend, meetings := newBackend(t)
	a := &alerts{}
	_, dv := openNew(t, backend, a)
	require.NoError(t, dv.GenerateTranscription(ctx))
	require.NoError(t, dv.GenerateSummary(ctx))
	item := dv.State().Meeting.ActionItems[0]

	tx, err := dv.ToggleActionItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, TxConfirmed, tx.State)
	assert.False(t, tx.Previous)
	assert.True(t, dv.State().Meeting.ActionItems[0].Completed)

	stored, err := meetings.Get(ctx, dv.MeetingID())
	require.NoError(t, err)
	assert.True(t, stored.ActionItems[0].Completed)

	tx, err = dv.ToggleActionItem(ctx, item.ID)
	require.NoError(t, err)
	assert.True(t, tx.Previous)
	assert.False(t, dv.State().Meeting.ActionItems[0].Completed)

	msgs := a.all()
	assert.Equal(t, []string{MsgItemComplete, MsgItemIncomplete}, msgs[len(msgs)-2:])

	_, err = dv.ToggleActionItem(ctx, "missing")
	assert.ErrorIs(t, err, ErrUnknownActionItem)
}

func TestDetailView_ToggleRollsBackOnRejection(t *testing.T) {
	ctx := context.Background()
	server, meetings := newBackend(t)
	backend := &failingBackend{Backend: server}
	a := &alerts{}
	_, dv := openNew(t, backend, a)
	require.NoError(t, dv.GenerateTranscription(ctx))
	require.NoError(t, dv.GenerateSummary(ctx))
	item := dv.State().Meeting.ActionItems[0]

	backend.updateErr = errors.ErrBadRequest("write refused", nil)
	tx, err := dv.ToggleActionItem(ctx, item.ID)
	require.Error(t, err)
	require.NotNil(t, tx)
	assert.Equal(t, TxRolledBack, tx.State)
	assert.Equal(t, err, tx.Err)
	assert.False(t, dv.State().Meeting.ActionItems[0].Completed, "local change is reverted")

	msgs := a.all()
	assert.Equal(t, MsgSaveFailed, msgs[len(msgs)-1])

	stored, err := meetings.Get(ctx, dv.MeetingID())
	require.NoError(t, err)
	assert.False(t, stored.ActionItems[0].Completed)

	// the view stays usable once the backend recovers
	backend.updateErr = nil
	tx, err = dv.ToggleActionItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, TxConfirmed, tx.State)
}

func TestDetailView_FailureAlertsAndKeepsState(t *testing.T) {
	ctx := context.Background()
	backend, _ := newBackend(t)
	a := &alerts{}
	dv := NewDetailView(backend, &entities.Meeting{ID: "ghost", Title: "Ghost"}, a, nil)

	err := dv.StartRecording(ctx)
	var appErr errors.AppError
	require.True(t, stdErrors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPCode)
	assert.Equal(t, []string{"Start recording failed: Meeting not found"}, a.all())

	st := dv.State()
	assert.False(t, st.IsRecording)
	assert.False(t, st.Meeting.HasRecording())

	require.Error(t, dv.GenerateTranscription(ctx))
	assert.False(t, dv.State().LoadingTranscription)
	assert.Equal(t, TabDetails, dv.ActiveTab())
}

func TestDetailView_RefreshFallsBackToDetails(t *testing.T) {
	ctx := context.Background()
	backend, meetings := newBackend(t)
	_, dv := openNew(t, backend, &alerts{})
	require.NoError(t, dv.GenerateTranscription(ctx))
	require.NoError(t, dv.GenerateSummary(ctx))
	require.Equal(t, TabSummary, dv.ActiveTab())

	// transcribing again elsewhere drops the summary
	ai := aiuse.NewAIService(meetings, nil)
	_, err := ai.Transcribe(ctx, dv.MeetingID())
	require.NoError(t, err)

	require.NoError(t, dv.Refresh(ctx))
	assert.Equal(t, TabDetails, dv.ActiveTab())
	assert.False(t, dv.TabEnabled(TabSummary))
	assert.True(t, dv.TabEnabled(TabTranscription))
}

package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-sim/internal/app"
	"github.com/johnquangdev/meeting-sim/internal/infrastructure/mockserver"
	"github.com/johnquangdev/meeting-sim/internal/output"
	"github.com/johnquangdev/meeting-sim/internal/view"
	"github.com/johnquangdev/meeting-sim/pkg/config"
)

func testConfig(seed bool) *config.Config {
	return &config.Config{SeedDemo: seed, Log: config.LogConfig{Level: "info"}}
}

func newTestShell(t *testing.T, seed bool) (*Shell, *bytes.Buffer) {
	t.Helper()
	a, err := app.New(context.Background(), testConfig(seed), nil, mockserver.WithLatency(mockserver.Latency{}))
	require.NoError(t, err)

	var buf bytes.Buffer
	return NewShell(a.Server, output.NewFormatter(&buf), nil), &buf
}

func TestShell_ListsSeededMeeting(t *testing.T) {
	s, buf := newTestShell(t, true)
	require.NoError(t, s.Exec(context.Background(), "list"))

	out := buf.String()
	assert.Contains(t, out, "Your Meetings")
	assert.Contains(t, out, "Quarterly Planning  #1")
}

func TestShell_EmptyList(t *testing.T) {
	s, buf := newTestShell(t, false)
	require.NoError(t, s.Exec(context.Background(), "list"))
	assert.Contains(t, buf.String(), "No meetings yet. Create your first meeting!")
}

func TestShell_NeedsOpenMeeting(t *testing.T) {
	s, _ := newTestShell(t, false)
	err := s.Exec(context.Background(), "record")
	assert.ErrorContains(t, err, "needs an open meeting")
}

func TestShell_Walkthrough(t *testing.T) {
	ctx := context.Background()
	s, buf := newTestShell(t, false)

	require.NoError(t, s.Exec(ctx, "new Sprint Review | John Doe, Jane Smith"))
	dv := s.List().Selected()
	require.NotNil(t, dv)

	assert.ErrorIs(t, s.Exec(ctx, "tab summary"), view.ErrTabDisabled)

	require.NoError(t, s.Exec(ctx, "record"))
	require.NoError(t, s.Exec(ctx, "transcribe"))
	assert.Equal(t, view.TabTranscription, dv.ActiveTab())
	assert.Contains(t, buf.String(), "Meeting Transcription")

	require.NoError(t, s.Exec(ctx, "summarize"))
	assert.Equal(t, view.TabSummary, dv.ActiveTab())

	require.NoError(t, s.Exec(ctx, "toggle 1"))
	assert.True(t, dv.State().Meeting.ActionItems[0].Completed)
	assert.Contains(t, buf.String(), view.MsgItemComplete)

	assert.Error(t, s.Exec(ctx, "toggle 9"))
	assert.ErrorIs(t, s.Exec(ctx, "toggle nope"), view.ErrUnknownActionItem)

	require.NoError(t, s.Exec(ctx, "back"))
	assert.Nil(t, s.List().Selected())
}

func TestShell_CreateFailureIsAlerted(t *testing.T) {
	s, buf := newTestShell(t, false)
	require.NoError(t, s.Exec(context.Background(), "new  "))
	assert.Contains(t, buf.String(), "Create meeting failed: Title is required")
	assert.Nil(t, s.List().Selected())
}

func TestShell_RunStopsOnQuit(t *testing.T) {
	s, buf := newTestShell(t, true)
	in := strings.NewReader("help\nbogus\nopen 1\nquit\nlist\n")

	require.NoError(t, s.Run(context.Background(), in))

	out := buf.String()
	assert.Contains(t, out, "Commands:")
	assert.Contains(t, out, `"bogus" needs an open meeting`)
	assert.Contains(t, out, "meeting #1> ")
	assert.Equal(t, 1, strings.Count(out, "Your Meetings"), "nothing runs after quit")
}

func TestRunScript_Demo(t *testing.T) {
	s, buf := newTestShell(t, false)
	f := output.NewFormatter(buf)

	require.NoError(t, RunScript(context.Background(), s, f, DemoScript))

	out := buf.String()
	assert.Contains(t, out, "meetings> new Sprint Review | John Doe, Jane Smith")
	assert.Contains(t, out, view.MsgPlayRecording)
	assert.Contains(t, out, "The meeting between John Doe and Jane Smith covered")
	assert.Contains(t, out, view.MsgItemComplete)
	assert.Contains(t, out, view.MsgItemIncomplete)
	assert.NotContains(t, out, "❌")
}

func TestRootCmd_Demo(t *testing.T) {
	var out bytes.Buffer
	deps := &Dependencies{Config: testConfig(false), In: strings.NewReader(""), Out: &out}

	cmd := NewRootCmd(deps)
	cmd.SetArgs([]string{"demo", "--instant"})
	require.NoError(t, cmd.Execute())

	assert.NotNil(t, deps.App)
	assert.Contains(t, out.String(), "Demo complete")
}

func TestRootCmd_List(t *testing.T) {
	var out bytes.Buffer
	deps := &Dependencies{Config: testConfig(true), In: strings.NewReader(""), Out: &out}

	cmd := NewRootCmd(deps)
	cmd.SetArgs([]string{"list"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Quarterly Planning")
}

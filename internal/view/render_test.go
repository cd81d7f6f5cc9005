package view

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/johnquangdev/meeting-sim/internal/domain/entities"
)

func TestFormatTimestamp(t *testing.T) {
	tests := map[float64]string{
		0:     "00:00",
		5:     "00:05",
		59.9:  "00:59",
		60:    "01:00",
		125.4: "02:05",
		3600:  "60:00",
		-3:    "00:00",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatTimestamp(in), "FormatTimestamp(%v)", in)
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2023, time.November, 15, 14, 5, 0, 0, time.Local)
	assert.Equal(t, "Nov 15, 2023 - 2:05 PM", FormatDate(d))
}

func TestRenderList(t *testing.T) {
	assert.Contains(t, RenderList(nil, false), "No meetings yet. Create your first meeting!")
	assert.Contains(t, RenderList(nil, true), "Loading meetings...")

	m := &entities.Meeting{
		ID:           "abcdef123456",
		Title:        "Sprint Review",
		Date:         time.Date(2024, time.January, 2, 9, 0, 0, 0, time.Local),
		Participants: []string{"a@x.com", "b@x.com"},
	}
	out := RenderList([]*entities.Meeting{m}, false)
	assert.True(t, strings.HasPrefix(out, "Your Meetings\n"))
	assert.Contains(t, out, "Sprint Review  #abcdef")
	assert.Contains(t, out, "Jan 02, 2024 - 9:00 AM")
	assert.Contains(t, out, "Participants: a@x.com, b@x.com")
}

func TestRenderDetail_Tabs(t *testing.T) {
	m := &entities.Meeting{ID: "m1", Title: "Planning"}
	out := RenderDetail(DetailState{Meeting: m, ActiveTab: TabDetails})

	assert.Contains(t, out, "[Details] | (Transcription) | (Summary & Actions)")
	assert.Contains(t, out, "> Start Recording")

	out = RenderDetail(DetailState{Meeting: m, ActiveTab: TabDetails, IsRecording: true})
	assert.Contains(t, out, "> Recording...")
}

func TestRenderDetail_RecordingActions(t *testing.T) {
	url := entities.RecordingLocator("m1")
	m := &entities.Meeting{ID: "m1", Title: "Planning", RecordingURL: &url}

	out := RenderDetail(DetailState{Meeting: m, ActiveTab: TabDetails})
	assert.Contains(t, out, "Recording available")
	assert.Contains(t, out, "> Generate Transcription")

	m.Transcription = []entities.TranscriptionSegment{{ID: "s1", Speaker: "John Doe", Text: "hi", Timestamp: 5}}
	out = RenderDetail(DetailState{Meeting: m, ActiveTab: TabDetails, LoadingSummary: true})
	assert.Contains(t, out, "> Processing...")
	assert.NotContains(t, out, "Generate Transcription")

	summary := "done"
	m.Summary = &summary
	out = RenderDetail(DetailState{Meeting: m, ActiveTab: TabDetails})
	assert.NotContains(t, out, "> Generate")
	assert.Contains(t, out, "[Details] |  Transcription  |  Summary & Actions ")
}

func TestRenderTranscription(t *testing.T) {
	assert.Equal(t, "Generating transcription...\n", RenderTranscription(nil, true))
	assert.Equal(t, "No transcription available\n", RenderTranscription(nil, false))

	out := RenderTranscription([]entities.TranscriptionSegment{
		{ID: "s1", Speaker: "John Doe", Text: "Let's discuss the quarterly results.", Timestamp: 65},
	}, false)
	assert.Contains(t, out, "Meeting Transcription")
	assert.Contains(t, out, "John Doe  01:05")
	assert.Contains(t, out, "Let's discuss the quarterly results.")
}

func TestRenderSummary(t *testing.T) {
	assert.Empty(t, RenderSummary(&entities.Meeting{}))

	summary := "The meeting between John Doe and Jane Smith covered things."
	m := &entities.Meeting{
		Summary: &summary,
		ActionItems: []entities.ActionItem{
			{ID: "a1", Text: "Follow up on things", AssignedTo: "John Doe", Completed: true},
			{ID: "a2", Text: "Follow up on discussion points", AssignedTo: "Jane Smith"},
		},
	}
	out := RenderSummary(m)
	assert.Contains(t, out, "Meeting Summary\n"+summary)
	assert.Contains(t, out, "[x] Follow up on things  (Assigned to: John Doe)")
	assert.Contains(t, out, "[ ] Follow up on discussion points  (Assigned to: Jane Smith)")
}

package view

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/johnquangdev/meeting-sim/internal/domain/entities"
)

// DateLayout is the display format for meeting dates
const DateLayout = "Jan 02, 2006 - 3:04 PM"

// FormatDate formats t in local time for display
func FormatDate(t time.Time) string {
	return t.Local().Format(DateLayout)
}

// FormatTimestamp formats a transcript offset in seconds as MM:SS
func FormatTimestamp(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}
	total := int(math.Floor(seconds))
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// RenderList renders the meeting list screen
func RenderList(meetings []*entities.Meeting, loading bool) string {
	var b strings.Builder
	b.WriteString("Your Meetings\n")
	b.WriteString("=============\n")

	switch {
	case loading:
		b.WriteString("Loading meetings...\n")
	case len(meetings) == 0:
		b.WriteString("No meetings yet. Create your first meeting!\n")
	default:
		for _, m := range meetings {
			fmt.Fprintf(&b, "\n%s  #%s\n", m.Title, m.ShortID())
			fmt.Fprintf(&b, "  %s\n", FormatDate(m.Date))
			fmt.Fprintf(&b, "  Participants: %s\n", strings.Join(m.Participants, ", "))
		}
	}
	return b.String()
}

// RenderDetail renders the detail screen for the active tab
func RenderDetail(s DetailState) string {
	m := s.Meeting
	var b strings.Builder

	fmt.Fprintf(&b, "%s  #%s\n", m.Title, m.ShortID())
	fmt.Fprintf(&b, "%s\n", FormatDate(m.Date))
	fmt.Fprintf(&b, "Participants: %s\n\n", strings.Join(m.Participants, ", "))
	b.WriteString(renderTabs(s))
	b.WriteString("\n")

	switch s.ActiveTab {
	case TabTranscription:
		b.WriteString(RenderTranscription(m.Transcription, s.LoadingTranscription))
	case TabSummary:
		b.WriteString(RenderSummary(m))
	default:
		b.WriteString(renderRecording(s))
	}
	return b.String()
}

func renderTabs(s DetailState) string {
	tabs := []struct {
		tab     Tab
		label   string
		enabled bool
	}{
		{TabDetails, "Details", true},
		{TabTranscription, "Transcription", s.Meeting.HasTranscription()},
		{TabSummary, "Summary & Actions", s.Meeting.HasSummary()},
	}

	parts := make([]string, 0, len(tabs))
	for _, t := range tabs {
		switch {
		case t.tab == s.ActiveTab:
			parts = append(parts, "["+t.label+"]")
		case !t.enabled:
			parts = append(parts, "("+t.label+")")
		default:
			parts = append(parts, " "+t.label+" ")
		}
	}
	return strings.Join(parts, " | ") + "\n"
}

func renderRecording(s DetailState) string {
	m := s.Meeting
	if !m.HasRecording() {
		if s.IsRecording {
			return "> Recording...\n"
		}
		return "> Start Recording\n"
	}

	var b strings.Builder
	b.WriteString("Recording available (play to listen)\n")
	switch {
	case !m.HasTranscription():
		if s.LoadingTranscription {
			b.WriteString("> Processing...\n")
		} else {
			b.WriteString("> Generate Transcription\n")
		}
	case !m.HasSummary():
		if s.LoadingSummary {
			b.WriteString("> Processing...\n")
		} else {
			b.WriteString("> Generate Summary\n")
		}
	}
	return b.String()
}

// RenderTranscription renders transcript segments with MM:SS offsets
func RenderTranscription(segments []entities.TranscriptionSegment, loading bool) string {
	if loading {
		return "Generating transcription...\n"
	}
	if len(segments) == 0 {
		return "No transcription available\n"
	}

	var b strings.Builder
	b.WriteString("Meeting Transcription\n")
	for _, seg := range segments {
		fmt.Fprintf(&b, "\n%s  %s\n", seg.Speaker, FormatTimestamp(seg.Timestamp))
		fmt.Fprintf(&b, "  %s\n", seg.Text)
	}
	return b.String()
}

// RenderSummary renders the summary and action-item checklist
func RenderSummary(m *entities.Meeting) string {
	if !m.HasSummary() {
		return ""
	}

	var b strings.Builder
	b.WriteString("Meeting Summary\n")
	fmt.Fprintf(&b, "%s\n", *m.Summary)
	if len(m.ActionItems) == 0 {
		return b.String()
	}

	b.WriteString("\nAction Items\n")
	for _, item := range m.ActionItems {
		mark := " "
		if item.Completed {
			mark = "x"
		}
		fmt.Fprintf(&b, "[%s] %s  (Assigned to: %s)  id=%s\n", mark, item.Text, item.AssignedTo, item.ID)
	}
	return b.String()
}

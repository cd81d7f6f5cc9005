package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// RecordingServiceBaseURL is the prefix of every mock recording locator
const RecordingServiceBaseURL = "https://mock-recording-service.com/"

// Meeting represents a recorded session with its derived artifacts
type Meeting struct {
	ID            string                 `json:"id"`
	Title         string                 `json:"title"`
	Date          time.Time              `json:"date"`
	Participants  []string               `json:"participants"`
	RecordingURL  *string                `json:"recordingUrl,omitempty"`
	Transcription []TranscriptionSegment `json:"transcription,omitempty"`
	Summary       *string                `json:"summary,omitempty"`
	ActionItems   []ActionItem           `json:"actionItems,omitempty"`
}

// NewMeeting creates a meeting with a fresh id stamped at now
func NewMeeting(title string, participants []string, now time.Time) *Meeting {
	p := make([]string, len(participants))
	copy(p, participants)
	return &Meeting{
		ID:           uuid.NewString(),
		Title:        title,
		Date:         now,
		Participants: p,
	}
}

// RecordingLocator returns the deterministic recording URL for a meeting id
func RecordingLocator(meetingID string) string {
	return RecordingServiceBaseURL + meetingID
}

// ShortID returns the display id shown next to meeting titles
func (m *Meeting) ShortID() string {
	if len(m.ID) <= 6 {
		return m.ID
	}
	return m.ID[:6]
}

// HasRecording reports whether a recording locator is set
func (m *Meeting) HasRecording() bool {
	return m.RecordingURL != nil && *m.RecordingURL != ""
}

// HasTranscription reports whether a transcription exists. A non-nil empty
// list counts as present.
func (m *Meeting) HasTranscription() bool {
	return m.Transcription != nil
}

// HasSummary reports whether a summary exists
func (m *Meeting) HasSummary() bool {
	return m.Summary != nil
}

// FindActionItem returns the index of the action item with the given id, or -1
func (m *Meeting) FindActionItem(itemID string) int {
	for i := range m.ActionItems {
		if m.ActionItems[i].ID == itemID {
			return i
		}
	}
	return -1
}

// Speakers returns the distinct transcription speakers in first-occurrence order
func (m *Meeting) Speakers() []string {
	seen := make(map[string]struct{}, len(m.Transcription))
	speakers := make([]string, 0, len(m.Transcription))
	for _, seg := range m.Transcription {
		if _, ok := seen[seg.Speaker]; ok {
			continue
		}
		seen[seg.Speaker] = struct{}{}
		speakers = append(speakers, seg.Speaker)
	}
	return speakers
}

// Validate checks the record-level invariants
func (m *Meeting) Validate() error {
	if strings.TrimSpace(m.Title) == "" {
		return ErrTitleRequired
	}
	if !m.HasTranscription() && (m.Summary != nil || m.ActionItems != nil) {
		return ErrSummaryWithoutTranscript
	}
	for i := 1; i < len(m.Transcription); i++ {
		if m.Transcription[i].Timestamp < m.Transcription[i-1].Timestamp {
			return ErrTranscriptOutOfOrder
		}
	}
	for _, seg := range m.Transcription {
		if seg.Timestamp < 0 {
			return ErrTranscriptOutOfOrder
		}
	}
	if len(m.ActionItems) > 0 {
		allowed := map[string]struct{}{}
		speakers := m.Speakers()
		for _, s := range speakers {
			allowed[s] = struct{}{}
		}
		if len(speakers) == 0 {
			allowed[PlaceholderAssignee] = struct{}{}
		}
		for _, item := range m.ActionItems {
			if _, ok := allowed[item.AssignedTo]; !ok {
				return ErrUnknownAssignee
			}
		}
	}
	return nil
}

// Clone returns a deep copy so callers never share slices with the store
func (m *Meeting) Clone() *Meeting {
	if m == nil {
		return nil
	}
	out := *m
	if m.Participants != nil {
		out.Participants = make([]string, len(m.Participants))
		copy(out.Participants, m.Participants)
	}
	if m.RecordingURL != nil {
		url := *m.RecordingURL
		out.RecordingURL = &url
	}
	if m.Transcription != nil {
		out.Transcription = make([]TranscriptionSegment, len(m.Transcription))
		copy(out.Transcription, m.Transcription)
	}
	if m.Summary != nil {
		s := *m.Summary
		out.Summary = &s
	}
	if m.ActionItems != nil {
		out.ActionItems = make([]ActionItem, len(m.ActionItems))
		copy(out.ActionItems, m.ActionItems)
	}
	return &out
}

// MeetingPatch is a shallow partial update; nil fields are left unchanged
type MeetingPatch struct {
	Title         *string
	Participants  *[]string
	RecordingURL  *string
	Transcription *[]TranscriptionSegment
	Summary       *string
	ActionItems   *[]ActionItem
	// ClearSummary drops the summary and action items before the other
	// fields are applied
	ClearSummary bool
}

// Apply merges the patch into m. Slices are copied.
func (p MeetingPatch) Apply(m *Meeting) {
	if p.ClearSummary {
		m.Summary = nil
		m.ActionItems = nil
	}
	if p.Title != nil {
		m.Title = *p.Title
	}
	if p.Participants != nil {
		m.Participants = append([]string{}, (*p.Participants)...)
	}
	if p.RecordingURL != nil {
		url := *p.RecordingURL
		m.RecordingURL = &url
	}
	if p.Transcription != nil {
		m.Transcription = append([]TranscriptionSegment{}, (*p.Transcription)...)
	}
	if p.Summary != nil {
		s := *p.Summary
		m.Summary = &s
	}
	if p.ActionItems != nil {
		m.ActionItems = append([]ActionItem{}, (*p.ActionItems)...)
	}
}

// IsEmpty reports whether the patch changes nothing
func (p MeetingPatch) IsEmpty() bool {
	return p.Title == nil && p.Participants == nil && p.RecordingURL == nil &&
		p.Transcription == nil && p.Summary == nil && p.ActionItems == nil &&
		!p.ClearSummary
}

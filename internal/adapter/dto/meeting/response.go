package meeting

import "time"

// MeetingResponse represents a meeting in API responses. Absent optional
// fields are omitted; an empty transcription or action item list is kept as [].
type MeetingResponse struct {
	ID            string                  `json:"id"`
	ShortID       string                  `json:"shortId"`
	Title         string                  `json:"title"`
	Date          time.Time               `json:"date"`
	Participants  []string                `json:"participants"`
	RecordingURL  *string                 `json:"recordingUrl,omitempty"`
	Transcription *[]TranscriptionSegment `json:"transcription,omitempty"`
	Summary       *string                 `json:"summary,omitempty"`
	ActionItems   *[]ActionItemResponse   `json:"actionItems,omitempty"`
}

// ActionItemResponse represents an action item in API responses
type ActionItemResponse struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	AssignedTo string `json:"assignedTo"`
	Completed  bool   `json:"completed"`
}

// SummaryResponse is returned by the summary endpoint
type SummaryResponse struct {
	Summary     string               `json:"summary"`
	ActionItems []ActionItemResponse `json:"actionItems"`
}

// RecordingResponse is returned by the start recording endpoint
type RecordingResponse struct {
	Success bool `json:"success"`
}

// ListMeetingsResponse wraps the meeting list
type ListMeetingsResponse struct {
	Meetings []*MeetingResponse `json:"meetings"`
	Total    int                `json:"total"`
}

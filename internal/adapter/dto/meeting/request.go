package meeting

// CreateMeetingRequest represents the request to create a meeting
type CreateMeetingRequest struct {
	Title        string   `json:"title" validate:"notblank,max=255"`
	Participants []string `json:"participants" validate:"omitempty,dive,notblank"`
}

// UpdateMeetingRequest is a partial update; absent fields are left unchanged
type UpdateMeetingRequest struct {
	Title         *string                 `json:"title,omitempty" validate:"omitempty,notblank,max=255"`
	Participants  *[]string               `json:"participants,omitempty"`
	RecordingURL  *string                 `json:"recordingUrl,omitempty" validate:"omitempty,url"`
	Transcription *[]TranscriptionSegment `json:"transcription,omitempty" validate:"omitempty,dive"`
	Summary       *string                 `json:"summary,omitempty"`
	ActionItems   *[]ActionItemRequest    `json:"actionItems,omitempty" validate:"omitempty,dive"`
}

// TranscriptionSegment is one transcript line in an update request
type TranscriptionSegment struct {
	ID        string  `json:"id" validate:"required"`
	Speaker   string  `json:"speaker" validate:"notblank"`
	Text      string  `json:"text"`
	Timestamp float64 `json:"timestamp" validate:"gte=0"`
}

// ActionItemRequest is one action item in an update request
type ActionItemRequest struct {
	ID         string `json:"id" validate:"required"`
	Text       string `json:"text" validate:"notblank"`
	AssignedTo string `json:"assignedTo" validate:"notblank"`
	Completed  bool   `json:"completed"`
}

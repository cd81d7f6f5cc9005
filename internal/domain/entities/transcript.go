package entities

import "github.com/google/uuid"

// TranscriptionSegment is one attributed utterance. Timestamp is the offset in
// seconds from the start of the recording.
type TranscriptionSegment struct {
	ID        string  `json:"id"`
	Speaker   string  `json:"speaker"`
	Text      string  `json:"text"`
	Timestamp float64 `json:"timestamp"`
}

// NewTranscriptionSegment creates a segment with a fresh id
func NewTranscriptionSegment(speaker, text string, timestamp float64) TranscriptionSegment {
	return TranscriptionSegment{
		ID:        uuid.NewString(),
		Speaker:   speaker,
		Text:      text,
		Timestamp: timestamp,
	}
}

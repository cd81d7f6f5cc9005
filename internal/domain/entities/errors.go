package entities

import "errors"

// Domain errors
var (
	// Meeting errors
	ErrTitleRequired            = errors.New("title is required")
	ErrSummaryWithoutTranscript = errors.New("summary and action items require a transcription")
	ErrTranscriptOutOfOrder     = errors.New("transcription segments must be in chronological order")
	ErrUnknownAssignee          = errors.New("action item assignee is not a transcript speaker")
)

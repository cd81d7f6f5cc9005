package errors

import (
	"fmt"
	"net/http"
	"time"
)

// AppError là custom error type cho application
type AppError struct {
	Raw       error             `json:"-"`
	HTTPCode  int               `json:"status"`
	Code      ErrorCode         `json:"code"`
	Message   string            `json:"message"`
	Details   map[string]string `json:"details,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the underlying error to errors.Is / errors.As
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	details := make(map[string]string, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details[key] = value
	e.Details = details
	return e
}

func newAppError(raw error, status int, code ErrorCode, message string) AppError {
	return AppError{
		Raw:       raw,
		HTTPCode:  status,
		Code:      code,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
}

// General Errors
func ErrInternal(err error) AppError {
	return newAppError(err, http.StatusInternalServerError, ErrorCode_INTERNAL, "Internal server error")
}

// ErrBadRequest is the default rejection for failures that are neither
// validation nor lookup errors.
func ErrBadRequest(message string, err error) AppError {
	return newAppError(err, http.StatusBadRequest, ErrorCode_INVALID_ARGUMENT, message)
}

func ErrValidation(message string, err error) AppError {
	return newAppError(err, http.StatusUnprocessableEntity, ErrorCode_VALIDATION, message)
}

// Meeting Errors
func ErrMeetingNotFound(meetingID string) AppError {
	return newAppError(nil, http.StatusNotFound, ErrorCode_MEETING_NOT_FOUND, "Meeting not found").
		WithDetail("meeting_id", meetingID)
}

func ErrTitleRequired() AppError {
	return newAppError(nil, http.StatusUnprocessableEntity, ErrorCode_MEETING_TITLE_INVALID, "Title is required")
}

func ErrActionItemNotFound(meetingID, itemID string) AppError {
	return newAppError(nil, http.StatusNotFound, ErrorCode_ACTION_ITEM_NOT_FOUND, "Action item not found").
		WithDetail("meeting_id", meetingID).
		WithDetail("action_item_id", itemID)
}

// Mock intelligence Errors
func ErrRecordingStartFailed(meetingID string, err error) AppError {
	return newAppError(err, http.StatusBadRequest, ErrorCode_RECORDING_START_FAILED, "Failed to start recording").
		WithDetail("meeting_id", meetingID)
}

func ErrAITranscriptionFailed(err error) AppError {
	return newAppError(err, http.StatusBadRequest, ErrorCode_AI_TRANSCRIPTION_FAILED, "Audio transcription failed")
}

func ErrAISummaryFailed(err error) AppError {
	return newAppError(err, http.StatusBadRequest, ErrorCode_AI_SUMMARY_FAILED, "Failed to generate summary")
}

// Custom Errors
func ErrInvalidPayload() AppError {
	return newAppError(nil, http.StatusBadRequest, ErrorCode_INVALID_PAYLOAD, "Invalid payload")
}

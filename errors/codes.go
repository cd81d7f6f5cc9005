package errors

// ErrorCode identifies an application error independently of its HTTP status
type ErrorCode int32

const (
	ErrorCode_UNSPECIFIED ErrorCode = 0
	ErrorCode_HTTP_OK     ErrorCode = 200

	// General
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_VALIDATION       ErrorCode = 1003
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1004

	// Meetings
	ErrorCode_MEETING_NOT_FOUND     ErrorCode = 2000
	ErrorCode_MEETING_TITLE_INVALID ErrorCode = 2001
	ErrorCode_ACTION_ITEM_NOT_FOUND ErrorCode = 2002

	// Mock intelligence
	ErrorCode_AI_TRANSCRIPTION_FAILED ErrorCode = 3000
	ErrorCode_AI_SUMMARY_FAILED       ErrorCode = 3001
	ErrorCode_RECORDING_START_FAILED  ErrorCode = 3002
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_UNSPECIFIED:             "UNSPECIFIED",
	ErrorCode_HTTP_OK:                 "HTTP_OK",
	ErrorCode_INTERNAL:                "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:        "INVALID_ARGUMENT",
	ErrorCode_VALIDATION:              "VALIDATION",
	ErrorCode_INVALID_PAYLOAD:         "INVALID_PAYLOAD",
	ErrorCode_MEETING_NOT_FOUND:       "MEETING_NOT_FOUND",
	ErrorCode_MEETING_TITLE_INVALID:   "MEETING_TITLE_INVALID",
	ErrorCode_ACTION_ITEM_NOT_FOUND:   "ACTION_ITEM_NOT_FOUND",
	ErrorCode_AI_TRANSCRIPTION_FAILED: "AI_TRANSCRIPTION_FAILED",
	ErrorCode_AI_SUMMARY_FAILED:       "AI_SUMMARY_FAILED",
	ErrorCode_RECORDING_START_FAILED:  "RECORDING_START_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}

// MarshalText renders codes by name in JSON bodies
func (c ErrorCode) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

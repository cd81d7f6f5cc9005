package errors

import "errors"

// Common errors
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")
)

// Meeting errors
var (
	ErrMeetingNotFound    = wrap(ErrNotFound, "meeting not found")
	ErrActionItemNotFound = wrap(ErrNotFound, "action item not found")
	ErrTitleRequired      = wrap(ErrInvalidInput, "title is required")
	ErrInvalidMeeting     = wrap(ErrInvalidInput, "meeting violates invariants")
)

// IsNotFound reports whether any error in err's chain is ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation reports whether any error in err's chain is ErrInvalidInput.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

type sentinel struct {
	parent error
	msg    string
}

func (s *sentinel) Error() string { return s.msg }
func (s *sentinel) Unwrap() error { return s.parent }

func wrap(parent error, msg string) error {
	return &sentinel{parent: parent, msg: msg}
}

package practice

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyList is returned when a batch is requested from an empty list.
	ErrEmptyList = errors.New("practice: source list is empty")

	// ErrInvalidPreset is returned for a preset size below one.
	ErrInvalidPreset = errors.New("practice: preset size must be at least 1")

	// ErrInvalidRange is matched by every *InvalidRangeError.
	ErrInvalidRange = errors.New("practice: invalid range")

	// ErrEmptyAnswer is returned when a submission is blank after trimming.
	// Callers treat it as "nothing happened".
	ErrEmptyAnswer = errors.New("practice: empty answer")

	// ErrWrongMode is returned for a command the session's mode does not support.
	ErrWrongMode = errors.New("practice: command not valid in this mode")

	// ErrSessionComplete is returned for item commands on a finished session.
	ErrSessionComplete = errors.New("practice: session is complete")

	// ErrAlreadyGraded is returned when the current item already has a verdict.
	ErrAlreadyGraded = errors.New("practice: item already graded")

	// ErrNotOffered is returned for a chain action that is not available.
	ErrNotOffered = errors.New("practice: action not offered")

	// ErrNoSession is returned when a command needs a session and none exists.
	ErrNoSession = errors.New("practice: no session")
)

// InvalidRangeError reports an explicit range whose end lies before its
// start once both bounds are clamped to the list.
type InvalidRangeError struct {
	Start int
	End   int
	Len   int
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("practice: invalid range %d-%d for %d items", e.Start, e.End, e.Len)
}

func (e *InvalidRangeError) Unwrap() error {
	return ErrInvalidRange
}

package playback

import (
	"errors"
	"fmt"
)

var (
	// ErrLoad is returned when the course or the learner's progress could not be fetched.
	// The controller stays in StateLoading.
	ErrLoad = errors.New("course could not be loaded")

	ErrNotActive        = errors.New("no page is active")
	ErrNavigationLocked = errors.New("forward navigation is locked until the page is answered")
	ErrCheckDisabled    = errors.New("nothing to check")
	ErrReadOnly         = errors.New("page was already completed")
	ErrNoSuchComponent  = errors.New("no interactive component at that position")
	ErrStale            = errors.New("superseded by a newer navigation")

	ErrNotFound      = errors.New("not found")
	ErrSessionClosed = errors.New("session closed")
)

// SaveError reports a progress write that failed after the page was answered correctly.
// The write stays queued; the learner's answer is not affected.
type SaveError struct {
	CourseID  string
	PageIndex int
	Err       error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("save progress %s@%d: %v", e.CourseID, e.PageIndex, e.Err)
}

func (e *SaveError) Unwrap() error {
	return e.Err
}

// HTTPError is a non-2xx response from the course API.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
}

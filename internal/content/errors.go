package content

import (
	"errors"
	"fmt"
)

// Sentinel failures callers match with errors.Is.
var (
	// ErrInvalidInput reports bad caller input. Never retried.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound reports an unknown node id.
	ErrNotFound = errors.New("not found")

	// ErrPreconditionFailed reports a dependency-ordering violation, e.g.
	// a quiz requested before the lesson exists. The caller must fix
	// sequencing; retrying the same call cannot succeed.
	ErrPreconditionFailed = errors.New("precondition failed")

	// ErrNoVideoFound is the soft failure of video resolution: the search
	// ran, no candidate qualified, and the absence was persisted. The
	// subtopic remains fully usable for lessons and quizzes.
	ErrNoVideoFound = errors.New("no qualifying video found")
)

// GenerationFailedError reports that the generation adapter errored or
// returned degenerate output, after retries were exhausted. Nothing was
// persisted.
type GenerationFailedError struct {
	Stage string // "outline", "lesson", "keywords", "quiz"
	Err   error
}

func (e *GenerationFailedError) Error() string {
	return fmt.Sprintf("%s generation failed: %v", e.Stage, e.Err)
}

func (e *GenerationFailedError) Unwrap() error { return e.Err }

// GenerationMalformedError reports that the adapter responded but the
// response failed structural validation, on the final attempt. Nothing was
// persisted.
type GenerationMalformedError struct {
	Stage  string
	Reason string
	Err    error
}

func (e *GenerationMalformedError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s generation malformed: %s", e.Stage, e.Reason)
	}
	return fmt.Sprintf("%s generation malformed: %v", e.Stage, e.Err)
}

func (e *GenerationMalformedError) Unwrap() error { return e.Err }

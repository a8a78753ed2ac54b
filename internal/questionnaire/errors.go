package questionnaire

import (
	"fmt"
	"strings"
)

// MissingFieldError reports a store record without a usable required property.
// That means the graph schema drifted from what this service expects, so it is
// surfaced instead of defaulted.
type MissingFieldError struct {
	Entity string
	Field  string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s record has no usable %q property", e.Entity, e.Field)
}

// ApplicationNotFoundError is raised when both traversals return zero rows for
// the requested application uuid.
type ApplicationNotFoundError struct {
	UUID string
}

func (e *ApplicationNotFoundError) Error() string {
	return fmt.Sprintf("application %s not found", e.UUID)
}

// QuestionNotFoundError lists the save-batch question uuids that matched no
// Question node.
type QuestionNotFoundError struct {
	UUIDs []string
}

func (e *QuestionNotFoundError) Error() string {
	return fmt.Sprintf("questions not found: %s", strings.Join(e.UUIDs, ", "))
}

// StoreUnavailableError wraps a connectivity failure talking to the store.
// Fatal for the current operation; nothing is retried.
type StoreUnavailableError struct {
	Err error
}

func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("store unavailable: %v", e.Err)
}

func (e *StoreUnavailableError) Unwrap() error {
	return e.Err
}

// InconsistentResultError reports traversal output that violates an internal
// invariant, such as a question uuid present in both the answered and the
// unanswered result set.
type InconsistentResultError struct {
	Reason string
}

func (e *InconsistentResultError) Error() string {
	return "inconsistent store result: " + e.Reason
}

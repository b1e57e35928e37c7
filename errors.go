package glot

import (
	"errors"
	"fmt"
)

// UnavailableError indicates no translation backend exists for this process.
// It is terminal: no call will ever succeed until the process is restarted
// with a working backend.
type UnavailableError struct {
	Cause error
}

func (e *UnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("translation backend unavailable: %v", e.Cause)
	}
	return "translation backend unavailable"
}

func (e *UnavailableError) Unwrap() error {
	return e.Cause
}

// BackendError indicates a single backend call failed (network, timeout,
// protocol, rate limit).
type BackendError struct {
	Message   string
	Cause     error
	Retryable bool // Whether the operation can be retried
}

func (e *BackendError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("backend error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("backend error: %s", e.Message)
}

func (e *BackendError) Unwrap() error {
	return e.Cause
}

// NoOpError indicates the backend reported a source language different from
// the target yet returned the input text unchanged, which never happens for a
// genuine translation. It carries the detected source so the caller can still
// reflect what was detected.
type NoOpError struct {
	DetectedSource string
}

func (e *NoOpError) Error() string {
	return fmt.Sprintf("backend returned the input unchanged (detected source %q)", e.DetectedSource)
}

// UserMessage maps a translation error to its fixed user-facing message.
// Unknown errors get the generic backend message; nil gets "".
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var unavailable *UnavailableError
	if errors.As(err, &unavailable) {
		return MsgUnavailable
	}

	var noop *NoOpError
	if errors.As(err, &noop) {
		return MsgNoOp
	}

	return MsgBackendError
}

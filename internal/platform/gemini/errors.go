package gemini

import "fmt"

// FailureKind classifies why a generateContent call against a single model
// endpoint failed.
type FailureKind string

const (
	// FailureNetwork covers transport errors where no response was received,
	// including timeouts and connection failures.
	FailureNetwork FailureKind = "network"

	// FailureClientError covers responses with a 400-499 status.
	FailureClientError FailureKind = "client_error"

	// FailureServerError covers responses with a status of 500 or above.
	FailureServerError FailureKind = "server_error"

	// FailureMalformedResponse covers 2xx responses where the expected text
	// field is absent or empty.
	FailureMalformedResponse FailureKind = "malformed_response"
)

// CallError describes a failed generateContent exchange with one model
// endpoint. StatusCode is zero when no response was received. The wrapped
// cause and status code are for logs and classification only; they must
// never be echoed to end callers.
type CallError struct {
	Model      string
	Kind       FailureKind
	StatusCode int
	cause      error
}

func (e *CallError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("gemini call to %s failed: %s (status %d)", e.Model, e.Kind, e.StatusCode)
	case e.cause != nil:
		return fmt.Sprintf("gemini call to %s failed: %s: %v", e.Model, e.Kind, e.cause)
	default:
		return fmt.Sprintf("gemini call to %s failed: %s", e.Model, e.Kind)
	}
}

func (e *CallError) Unwrap() error {
	return e.cause
}

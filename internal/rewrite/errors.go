package rewrite

import (
	"errors"
	"net/http"

	"github.com/resumeforge/rewrite-api/internal/platform/gemini"
)

// Kind classifies a rewrite failure for the transport layer.
type Kind string

const (
	// KindValidation covers malformed or incomplete caller input.
	KindValidation Kind = "validation"

	// KindConfiguration covers a missing server-side credential.
	KindConfiguration Kind = "configuration"

	// KindProvider covers failures of the upstream generation service after
	// all endpoints were exhausted.
	KindProvider Kind = "provider"
)

// Fixed user-facing messages. These are the only strings a caller ever sees
// for a failed request; internal detail stays in the wrapped cause.
const (
	msgMissingFields    = "Missing required fields: inputType and text."
	msgInvalidBody      = "Invalid request body."
	msgMissingAPIKey    = "Server configuration error: Missing API key."
	msgNetworkFailure   = "Failed to connect to AI service. Please try again."
	msgBadRequest       = "Invalid request to AI service."
	msgAuthFailed       = "Authentication failed with AI service."
	msgAccessDenied     = "Access denied to AI service."
	msgEndpointNotFound = "AI service endpoint not found."
	msgServerError      = "AI service is temporarily unavailable."
	msgMalformed        = "Failed to extract text from AI response."
	msgInternal         = "An internal server error occurred. Please try again."
)

// Error is the classified failure half of the result envelope. Message is
// safe to show to end callers; the wrapped cause is not.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return string(e.Kind) + ": " + e.Message + ": " + e.cause.Error()
	}
	return string(e.Kind) + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// HTTPStatus maps the failure classification to the equivalent HTTP status.
func (e *Error) HTTPStatus() int {
	if e.Kind == KindValidation {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// ErrInvalidBody is returned by the transport layer when the request payload
// cannot be parsed as structured data. It lives here so the validation
// taxonomy stays in one place.
var ErrInvalidBody = &Error{Kind: KindValidation, Message: msgInvalidBody}

// classifyProviderError maps an exhausted-fallback error to the fixed
// user-facing message for the last attempted endpoint's failure kind.
// Anything uncharacterized maps to the generic internal message.
func classifyProviderError(err error) *Error {
	var callErr *gemini.CallError
	if !errors.As(err, &callErr) {
		return &Error{Kind: KindProvider, Message: msgInternal, cause: err}
	}

	switch callErr.Kind {
	case gemini.FailureNetwork:
		return &Error{Kind: KindProvider, Message: msgNetworkFailure, cause: err}
	case gemini.FailureClientError:
		switch callErr.StatusCode {
		case http.StatusBadRequest:
			return &Error{Kind: KindProvider, Message: msgBadRequest, cause: err}
		case http.StatusUnauthorized:
			return &Error{Kind: KindProvider, Message: msgAuthFailed, cause: err}
		case http.StatusForbidden:
			return &Error{Kind: KindProvider, Message: msgAccessDenied, cause: err}
		case http.StatusNotFound:
			return &Error{Kind: KindProvider, Message: msgEndpointNotFound, cause: err}
		default:
			// The original service folded other 4xx statuses into the
			// generic connect message.
			return &Error{Kind: KindProvider, Message: msgNetworkFailure, cause: err}
		}
	case gemini.FailureServerError:
		return &Error{Kind: KindProvider, Message: msgServerError, cause: err}
	case gemini.FailureMalformedResponse:
		return &Error{Kind: KindProvider, Message: msgMalformed, cause: err}
	default:
		return &Error{Kind: KindProvider, Message: msgInternal, cause: err}
	}
}

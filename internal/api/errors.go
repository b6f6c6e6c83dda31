package api

import (
	"errors"
	"net/http"

	"github.com/resumeforge/rewrite-api/internal/rewrite"
)

// MapErrorToStatusCode maps pipeline errors to appropriate HTTP status codes
// based on the error classification. This prevents leaking internal error
// types or messages to clients.
func MapErrorToStatusCode(err error) int {
	var rewriteErr *rewrite.Error
	if errors.As(err, &rewriteErr) {
		return rewriteErr.HTTPStatus()
	}
	return http.StatusInternalServerError
}

// GetSafeErrorMessage returns the sanitized, user-facing message for an
// error. Unclassified errors fall back to a generic message so internal
// detail never reaches the caller.
func GetSafeErrorMessage(err error) string {
	var rewriteErr *rewrite.Error
	if errors.As(err, &rewriteErr) {
		return rewriteErr.Message
	}
	return "An internal server error occurred. Please try again."
}

package mailapi

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes synthesized by the client. Any other code comes from the API.
const (
	CodeNetworkError      = "network_error"
	CodeInternalError     = "internal_error"
	CodeUnsupportedMethod = "unsupported_method"
)

const (
	networkErrorMessage  = "Network error, could not reach MailAPI."
	genericErrorMessage  = "An API error occurred"
	missingAPIKeyMessage = "MailAPI key is not configured. Please pass the API key to mailapi.New."
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned by [New] when no API key is provided.
	ErrMissingAPIKey = errors.New(missingAPIKeyMessage)

	// ErrUnauthorized matches API errors with HTTP status 401.
	ErrUnauthorized = errors.New("invalid or expired API key")

	// ErrRateLimited matches API errors with HTTP status 429.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrNetwork matches errors with code [CodeNetworkError].
	ErrNetwork = errors.New("could not reach MailAPI")

	// ErrUnsupportedMethod matches errors with code [CodeUnsupportedMethod].
	ErrUnsupportedMethod = errors.New("unsupported HTTP method")
)

// Error is the failure half of a [Result]. The client never returns it as a
// Go error itself, but it implements error so callers may.
type Error struct {
	Message string

	// Code is the "code" field of an API error response, or one of the
	// Code* constants for local failures. A non-string code in the response
	// is kept as its JSON text, e.g. "400". Empty when the API sent none.
	Code string

	// StatusCode is the HTTP status of an API error response, or 0 when no
	// response was received.
	StatusCode int
}

func (e *Error) Error() string {
	switch {
	case e.Code != "" && e.StatusCode != 0:
		return fmt.Sprintf("mailapi: %s (code: %s, status: %d)", e.Message, e.Code, e.StatusCode)
	case e.Code != "":
		return fmt.Sprintf("mailapi: %s (code: %s)", e.Message, e.Code)
	case e.StatusCode != 0:
		return fmt.Sprintf("mailapi: %s (status: %d)", e.Message, e.StatusCode)
	}
	return "mailapi: " + e.Message
}

// Is implements errors.Is for sentinel error matching.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrRateLimited:
		return e.StatusCode == http.StatusTooManyRequests
	case ErrNetwork:
		return e.Code == CodeNetworkError
	case ErrUnsupportedMethod:
		return e.Code == CodeUnsupportedMethod
	}
	return false
}

func newNetworkError() *Error {
	return &Error{Message: networkErrorMessage, Code: CodeNetworkError}
}

func newInternalError(err error) *Error {
	return &Error{Message: err.Error(), Code: CodeInternalError}
}

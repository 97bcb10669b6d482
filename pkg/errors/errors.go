package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Kind classifies an API failure
type Kind string

const (
	KindNetwork     Kind = "network"
	KindRateLimit   Kind = "rate_limit"
	KindAuth        Kind = "auth"
	KindParsing     Kind = "parsing"
	KindNotFound    Kind = "not_found"
	KindServerError Kind = "server_error"
	KindUnknown     Kind = "unknown"
)

// Twitter API error codes seen in {"errors":[{"code":...}]} bodies
const (
	CodeCouldNotAuthenticate = 32
	CodeNoSuchUser           = 50
	CodeUserSuspended        = 63
	CodeRateLimitExceeded    = 88
	CodeInvalidToken         = 89
	CodeInternalError        = 131
	CodeNotAuthorized        = 179
)

// Error represents a failed Twitter API call
type Error struct {
	Kind    Kind
	Code    int // HTTP status, 0 when no response was received
	APICode int // first Twitter error code from the body, if any
	Message string
}

func (e *Error) Error() string {
	if e.APICode != 0 {
		return fmt.Sprintf("twitter %s error (http %d, api code %d): %s", e.Kind, e.Code, e.APICode, e.Message)
	}
	return fmt.Sprintf("twitter %s error (http %d): %s", e.Kind, e.Code, e.Message)
}

// New builds an Error of the given kind
func New(kind Kind, code int, format string, args ...interface{}) *Error {
	return &Error{
		Kind:    kind,
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// KindFromStatus maps an HTTP status code to an error kind
func KindFromStatus(statusCode int) Kind {
	switch {
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return KindAuth
	case statusCode == http.StatusNotFound:
		return KindNotFound
	case statusCode == http.StatusTooManyRequests:
		return KindRateLimit
	case statusCode >= 500:
		return KindServerError
	default:
		return KindUnknown
	}
}

// APIError is a single entry of a Twitter error body
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ParseAPIErrors extracts the error list from a response body.
// It returns nil when the body is not a Twitter error document.
func ParseAPIErrors(body []byte) []APIError {
	var doc struct {
		Errors []APIError `json:"errors"`
	}
	if json.Unmarshal(body, &doc) != nil {
		return nil
	}
	return doc.Errors
}

// FromResponse builds an Error for a non-200 response
func FromResponse(statusCode int, body []byte) *Error {
	e := &Error{
		Kind:    KindFromStatus(statusCode),
		Code:    statusCode,
		Message: http.StatusText(statusCode),
	}
	if apiErrs := ParseAPIErrors(body); len(apiErrs) > 0 {
		e.APICode = apiErrs[0].Code
		e.Message = apiErrs[0].Message
		if apiErrs[0].Code == CodeRateLimitExceeded {
			e.Kind = KindRateLimit
		}
	}
	if e.Message == "" {
		e.Message = fmt.Sprintf("unexpected status code: %d", statusCode)
	}
	return e
}

// IsRetryable checks if an error kind should be retried
func IsRetryable(kind Kind) bool {
	switch kind {
	case KindNetwork, KindServerError:
		return true
	default:
		return false
	}
}

// IsRetryableStatusCode checks if an HTTP status code indicates a retryable error
func IsRetryableStatusCode(statusCode int) bool {
	switch statusCode {
	case 0: // Network error
		return true
	case 401, 403, 404, 429:
		return false
	default:
		return statusCode >= 500
	}
}

package dms

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/vektah/gqlparser/v2/gqlerror"
)

// APIError is an error response of the platform.
type APIError struct {
	StatusCode int
	Code       int
	Message    string
	Missing    []InstanceID
	Duplicated []InstanceID
	RequestID  string
}

// Error returns the error string.
func (e *APIError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "dms: HTTP %d: %s", e.StatusCode, e.Message)
	if len(e.Missing) > 0 {
		fmt.Fprintf(&sb, " (%d missing)", len(e.Missing))
	}
	if len(e.Duplicated) > 0 {
		fmt.Fprintf(&sb, " (%d duplicated)", len(e.Duplicated))
	}
	if e.RequestID != "" {
		fmt.Fprintf(&sb, " [request %s]", e.RequestID)
	}
	return sb.String()
}

// IsRateLimited returns true if this is a rate limit error.
func (e *APIError) IsRateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// IsServerError returns true if this is a server error.
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500
}

// IsConflict returns true if the request conflicted with the stored
// version of an instance.
func (e *APIError) IsConflict() bool {
	return e.StatusCode == http.StatusConflict
}

// IsUnauthorized returns true if the token was rejected.
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// errorEnvelope is the platform's error body.
type errorEnvelope struct {
	Error struct {
		Code       int          `json:"code"`
		Message    string       `json:"message"`
		Missing    []InstanceID `json:"missing"`
		Duplicated []InstanceID `json:"duplicated"`
	} `json:"error"`
}

// newAPIError builds an APIError from an error response. Bodies that are
// not the platform envelope are kept verbatim as the message.
func newAPIError(status int, header http.Header, body []byte) *APIError {
	e := &APIError{StatusCode: status, Code: status, RequestID: header.Get("X-Request-Id")}
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err == nil && env.Error.Message != "" {
		e.Message = env.Error.Message
		e.Missing = env.Error.Missing
		e.Duplicated = env.Error.Duplicated
		if env.Error.Code != 0 {
			e.Code = env.Error.Code
		}
		return e
	}
	e.Message = strings.TrimSpace(string(body))
	if e.Message == "" {
		e.Message = http.StatusText(status)
	}
	return e
}

// AsAPIError returns the APIError in err's chain, if any.
func AsAPIError(err error) (*APIError, bool) {
	var e *APIError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// isRetryable determines if an error should be retried.
func isRetryable(err error) bool {
	if e, ok := AsAPIError(err); ok {
		return e.IsRateLimited() || e.IsServerError()
	}
	return false
}

// GraphQLError holds the errors reported by a GraphQL request.
type GraphQLError struct {
	Errors gqlerror.List
}

// Error returns the error string.
func (e *GraphQLError) Error() string {
	return "dms: graphql: " + e.Errors.Error()
}

// Unwrap returns the individual errors.
func (e *GraphQLError) Unwrap() []error {
	errs := make([]error, len(e.Errors))
	for i, err := range e.Errors {
		errs[i] = err
	}
	return errs
}

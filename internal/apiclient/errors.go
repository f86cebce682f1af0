package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	jmespath "github.com/jmespath-community/go-jmespath"
)

// DefaultErrorMessagePath is the JMESPath expression used to locate the
// human-readable message inside backend error payloads. Different backend
// versions have shipped both {"error":{"message":...}} and {"message":...}.
const DefaultErrorMessagePath = "error.message || message || error"

// genericErrorMessage is shown when no message can be extracted.
const genericErrorMessage = "The request could not be completed. Please try again."

// APIError is a failed backend call with a best-effort human message
// extracted from the error payload.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
}

// UserMessage returns the extracted message for inline display near the
// triggering form.
func (e *APIError) UserMessage() string {
	if strings.TrimSpace(e.Message) == "" {
		return genericErrorMessage
	}
	return e.Message
}

// IsNotFound reports whether err is a backend 404, used to route unknown
// project IDs to the not-found page instead of an inline error.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// ErrorMessage converts any error into a message suitable for display,
// preferring the payload-extracted message when err is an APIError.
func ErrorMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.UserMessage()
	}
	return genericErrorMessage
}

// errorMessageExtractor pulls a message out of an arbitrary JSON error body
// using a compiled JMESPath expression.
type errorMessageExtractor struct {
	expr string
}

func newErrorMessageExtractor(expr string) (*errorMessageExtractor, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		expr = DefaultErrorMessagePath
	}
	// Compile once up front so a bad configured expression fails at startup,
	// not on the first backend error.
	if _, err := jmespath.Compile(expr); err != nil {
		return nil, err
	}
	return &errorMessageExtractor{expr: expr}, nil
}

// extract returns the located message, or empty when the body is not JSON,
// the path matches nothing, or the match is not a string.
func (x *errorMessageExtractor) extract(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}

	result, err := jmespath.Search(x.expr, payload)
	if err != nil {
		return ""
	}
	msg, ok := result.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(msg)
}

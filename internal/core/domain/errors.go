// internal/core/domain/errors.go
package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// GenericFailureMessage is shown when a failure carries no structured detail.
const GenericFailureMessage = "request failed, please try again later"

// APIError is the tagged result of a failed API call, parsed once at the
// REST boundary. A network or opaque failure has Status 0 and no fields; a
// structured validation failure carries per-field messages and/or a
// top-level detail string.
type APIError struct {
	Status int
	Detail string
	Fields map[string]string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api error (status %d): %s", e.Status, e.Detail)
	}
	if len(e.Fields) > 0 {
		return fmt.Sprintf("api error (status %d): validation failed", e.Status)
	}
	return fmt.Sprintf("api error (status %d)", e.Status)
}

// Message returns the user-facing form-level message: the payload detail
// when present, otherwise the generic fallback.
func (e *APIError) Message() string {
	if e != nil && e.Detail != "" {
		return e.Detail
	}
	return GenericFailureMessage
}

// FieldError returns the message attached to a single input, or "".
func (e *APIError) FieldError(name string) string {
	if e == nil {
		return ""
	}
	return e.Fields[name]
}

// AsAPIError unwraps an APIError from an error chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsNotFound reports whether the error is a 404 from the API.
func IsNotFound(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.Status == http.StatusNotFound
}

// ErrorMessage extracts the form-level message from any error, applying the
// generic fallback for opaque failures.
func ErrorMessage(err error) string {
	if apiErr, ok := AsAPIError(err); ok {
		return apiErr.Message()
	}
	return GenericFailureMessage
}

// DecodeErrorPayload parses a raw error body into an APIError. The API
// reports validation failures as an object whose values are strings or
// arrays of strings, with an optional top-level "detail"; anything else is
// treated as opaque. non_field_errors is promoted to the detail slot when
// no explicit detail is present, matching how the forms surface it.
func DecodeErrorPayload(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status}
	if len(body) == 0 {
		return apiErr
	}

	var asString string
	if err := json.Unmarshal(body, &asString); err == nil {
		apiErr.Detail = asString
		return apiErr
	}

	var asObject map[string]json.RawMessage
	if err := json.Unmarshal(body, &asObject); err != nil {
		return apiErr
	}

	fields := make(map[string]string, len(asObject))
	for key, raw := range asObject {
		msg := flattenMessage(raw)
		if msg == "" {
			continue
		}
		if key == "detail" {
			apiErr.Detail = msg
			continue
		}
		fields[key] = msg
	}
	if len(fields) > 0 {
		apiErr.Fields = fields
	}
	if apiErr.Detail == "" {
		apiErr.Detail = fields["non_field_errors"]
	}
	return apiErr
}

// flattenMessage renders a string or array-of-strings payload value as one
// message; other shapes are ignored.
func flattenMessage(raw json.RawMessage) string {
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return single
	}
	var many []string
	if err := json.Unmarshal(raw, &many); err == nil {
		return strings.Join(many, ", ")
	}
	return ""
}

package lakefs

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/treeverse/lakefs-go/model"
)

// ValidationError reports missing required properties, nulls in non-nullable
// properties and schema violations. See model.ValidationError.
type ValidationError = model.ValidationError

// DeserializationError reports a malformed or type-mismatched JSON payload.
type DeserializationError = model.DeserializationError

// FieldError is one entry of a ValidationError.
type FieldError = model.FieldError

// ConfigurationError indicates invalid or missing client configuration.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	if e == nil {
		return "lakefs: configuration error"
	}
	return fmt.Sprintf("lakefs: configuration error: %s", e.Message)
}

// APIStatusError is returned for non-2xx HTTP responses.
//
// When the server answers with a lakeFS error document, it is captured in Body.
type APIStatusError struct {
	StatusCode   int
	Method       string
	URL          string
	RequestID    string
	ResponseText string
	Body         *model.Error
}

func newAPIStatusError(resp *http.Response, raw []byte) *APIStatusError {
	e := &APIStatusError{
		StatusCode:   resp.StatusCode,
		ResponseText: strings.TrimSpace(string(raw)),
	}
	if req := resp.Request; req != nil {
		e.Method = req.Method
		e.URL = req.URL.String()
		e.RequestID = req.Header.Get(RequestIDHeader)
	}
	if len(raw) > 0 {
		var body model.Error
		if model.Unmarshal(raw, &body) == nil {
			e.Body = &body
		}
	}
	return e
}

func (e *APIStatusError) Error() string {
	if e == nil {
		return "lakefs: api status error"
	}
	msg := e.ResponseText
	if e.Body != nil && e.Body.Message != "" {
		msg = e.Body.Message
	}
	if msg != "" {
		return fmt.Sprintf("lakefs: api error (%d) %s %s: %s", e.StatusCode, e.Method, e.URL, msg)
	}
	return fmt.Sprintf("lakefs: api error (%d) %s %s", e.StatusCode, e.Method, e.URL)
}

// Message returns the server's error message, or the raw response text when
// the body was not a lakeFS error document.
func (e *APIStatusError) Message() string {
	if e == nil {
		return ""
	}
	if e.Body != nil {
		return e.Body.Message
	}
	return e.ResponseText
}

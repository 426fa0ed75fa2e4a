package model

import (
	"errors"
	"fmt"
	"strings"
)

const (
	ReasonMissing  = "missing required property"
	ReasonNull     = "must not be null"
	ReasonNegative = "must be greater than or equal to 0"
	ReasonEnum     = "unknown enum value"
)

// FieldError describes one violated constraint.
type FieldError struct {
	// Field is the JSON property path, dot separated for nested values.
	Field  string
	Reason string
}

func (f FieldError) String() string {
	return f.Field + ": " + f.Reason
}

// ValidationError indicates a value or payload that violates the schema's
// required/nullable/range constraints.
type ValidationError struct {
	Model    string
	Problems []FieldError
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "lakefs: validation error"
	}
	if len(e.Problems) == 0 {
		return fmt.Sprintf("lakefs: invalid %s", e.Model)
	}
	parts := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		parts = append(parts, p.String())
	}
	return fmt.Sprintf("lakefs: invalid %s: %s", e.Model, strings.Join(parts, "; "))
}

// Fields returns the offending property paths in report order.
func (e *ValidationError) Fields() []string {
	if e == nil {
		return nil
	}
	out := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		out = append(out, p.Field)
	}
	return out
}

// DeserializationError indicates a malformed or type-mismatched JSON payload.
type DeserializationError struct {
	Model string
	Err   error
}

func (e *DeserializationError) Error() string {
	if e == nil {
		return "lakefs: deserialization error"
	}
	if e.Err == nil {
		return fmt.Sprintf("lakefs: cannot decode %s", e.Model)
	}
	return fmt.Sprintf("lakefs: cannot decode %s: %v", e.Model, e.Err)
}

func (e *DeserializationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// validationProblems accumulates FieldErrors while checking a value.
type validationProblems struct {
	model    string
	problems []FieldError
}

func (v *validationProblems) add(field, reason string) {
	v.problems = append(v.problems, FieldError{Field: field, Reason: reason})
}

// nested merges the problems of a nested value under prefix.
func (v *validationProblems) nested(prefix string, err error) {
	if err == nil {
		return
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		v.add(prefix, err.Error())
		return
	}
	for _, p := range ve.Problems {
		v.add(prefix+"."+p.Field, p.Reason)
	}
}

// nestedDecode merges a nested *ValidationError under prefix. Any other
// error becomes a *DeserializationError of the enclosing model.
func (v *validationProblems) nestedDecode(prefix string, err error) error {
	if err == nil {
		return nil
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		return &DeserializationError{Model: v.model, Err: fmt.Errorf("%s: %w", prefix, err)}
	}
	for _, p := range ve.Problems {
		v.add(prefix+"."+p.Field, p.Reason)
	}
	return nil
}

func (v *validationProblems) err() error {
	if len(v.problems) == 0 {
		return nil
	}
	return &ValidationError{Model: v.model, Problems: v.problems}
}

package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/tidwall/gjson"
)

// property declares how a JSON property of a schema object is constrained.
type property struct {
	name     string
	required bool
	nullable bool

	// check validates a nested object; for lists it runs on every element.
	check func(data []byte) error
	list  bool
}

func required(name string) property { return property{name: name, required: true} }

func optional(name string) property { return property{name: name} }

func optionalNullable(name string) property { return property{name: name, nullable: true} }

// object checks the property's value with the nested model's properties.
func (p property) object(model string, props []property) property {
	p.check = objectCheck(model, props)
	return p
}

// listOf checks every element of the property's array. Elements are never
// nullable.
func (p property) listOf(model string, props []property) property {
	p.check = objectCheck(model, props)
	p.list = true
	return p
}

func objectCheck(model string, props []property) func([]byte) error {
	return func(data []byte) error {
		return checkProperties(model, data, props...)
	}
}

func isJSONNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

// checkProperties reports required properties that are missing and
// non-nullable properties carrying an explicit null, descending into nested
// objects and list elements. Nested problems are reported under model with
// their full path, e.g. "results.1.commit_id". The payload must be a JSON
// object.
func checkProperties(model string, data []byte, props ...property) error {
	if !gjson.ValidBytes(data) {
		return &DeserializationError{Model: model, Err: errors.New("invalid JSON")}
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return &DeserializationError{Model: model, Err: fmt.Errorf("expected JSON object, got %s", root.Type)}
	}
	problems := validationProblems{model: model}
	for _, p := range props {
		v := root.Get(gjson.Escape(p.name))
		switch {
		case !v.Exists():
			if p.required {
				problems.add(p.name, ReasonMissing)
			}
		case v.Type == gjson.Null:
			if !p.nullable {
				problems.add(p.name, ReasonNull)
			}
		case p.check == nil:
		case p.list:
			if !v.IsArray() {
				continue
			}
			for i, item := range v.Array() {
				path := p.name + "." + strconv.Itoa(i)
				if item.Type == gjson.Null {
					problems.add(path, ReasonNull)
					continue
				}
				if err := problems.nestedDecode(path, p.check([]byte(item.Raw))); err != nil {
					return err
				}
			}
		case v.IsObject():
			if err := problems.nestedDecode(p.name, p.check([]byte(v.Raw))); err != nil {
				return err
			}
		}
	}
	return problems.err()
}

// decodeError classifies an encoding/json failure. Errors raised by nested
// models are already typed and pass through unchanged.
func decodeError(model string, err error) error {
	if err == nil {
		return nil
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}
	var de *DeserializationError
	if errors.As(err, &de) {
		return de
	}
	return &DeserializationError{Model: model, Err: err}
}

// Unmarshal decodes data into v and classifies every failure as either a
// *ValidationError or a *DeserializationError, including syntax errors that
// encoding/json reports before any model decoder runs.
func Unmarshal(data []byte, v any) error {
	return decodeError(modelName(v), json.Unmarshal(data, v))
}

func modelName(v any) string {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return "value"
	}
	if t.Name() == "" {
		return t.String()
	}
	return t.Name()
}

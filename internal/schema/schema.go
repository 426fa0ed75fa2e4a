// Package schema validates JSON payloads against the component schemas of the
// embedded lakeFS OpenAPI document.
package schema

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/treeverse/lakefs-go/model"
	"github.com/treeverse/lakefs-go/openapi"
)

// Registry resolves component schemas by name. It is read-only after Load and
// safe for concurrent use.
type Registry struct {
	doc *openapi3.T
}

// Field describes one property of a component schema.
type Field struct {
	Name        string
	Type        string
	Required    bool
	Nullable    bool
	Description string
}

// Operation describes one API operation declared by the document.
type Operation struct {
	ID      string
	Method  string
	Path    string
	Summary string
}

// Load parses and validates the embedded document.
func Load(ctx context.Context) (*Registry, error) {
	return LoadFromData(ctx, openapi.Spec)
}

// LoadFromData parses and validates an OpenAPI 3.0 document in JSON or YAML.
func LoadFromData(ctx context.Context, data []byte) (*Registry, error) {
	if len(data) == 0 {
		return nil, errors.New("schema: document is empty")
	}
	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("schema: load document: %w", err)
	}
	if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return nil, fmt.Errorf("schema: validate document: %w", err)
	}
	return &Registry{doc: doc}, nil
}

// Names lists the component schemas in lexical order.
func (r *Registry) Names() []string {
	if r.doc.Components == nil {
		return nil
	}
	names := make([]string, 0, len(r.doc.Components.Schemas))
	for name := range r.doc.Components.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) lookup(name string) (*openapi3.Schema, error) {
	if r.doc.Components != nil {
		if ref, ok := r.doc.Components.Schemas[name]; ok && ref.Value != nil {
			return ref.Value, nil
		}
	}
	return nil, fmt.Errorf("schema: unknown schema %q", name)
}

// Validate checks payload against the named component schema. Payloads that
// are not JSON yield a *model.DeserializationError; schema violations yield a
// *model.ValidationError listing every offending property.
func (r *Registry) Validate(name string, payload []byte) error {
	s, err := r.lookup(name)
	if err != nil {
		return err
	}
	var value any
	if err := json.Unmarshal(payload, &value); err != nil {
		return &model.DeserializationError{Model: name, Err: err}
	}
	if err := s.VisitJSON(value, openapi3.MultiErrors()); err != nil {
		return toValidationError(name, err)
	}
	return nil
}

func toValidationError(name string, err error) error {
	ve := &model.ValidationError{Model: name}
	var collect func(error)
	collect = func(err error) {
		switch e := err.(type) {
		case openapi3.MultiError:
			for _, inner := range e {
				collect(inner)
			}
		case *openapi3.SchemaError:
			ve.Problems = append(ve.Problems, model.FieldError{
				Field:  strings.Join(e.JSONPointer(), "."),
				Reason: reason(e),
			})
		default:
			ve.Problems = append(ve.Problems, model.FieldError{Reason: err.Error()})
		}
	}
	collect(err)
	sort.SliceStable(ve.Problems, func(i, j int) bool {
		return ve.Problems[i].Field < ve.Problems[j].Field
	})
	return ve
}

func reason(se *openapi3.SchemaError) string {
	switch se.SchemaField {
	case "required":
		return model.ReasonMissing
	case "nullable":
		return model.ReasonNull
	case "enum":
		return model.ReasonEnum
	case "minimum":
		if se.Schema != nil && se.Schema.Min != nil && *se.Schema.Min == 0 {
			return model.ReasonNegative
		}
	}
	return se.Reason
}

// Fields lists the properties of the named schema in lexical order.
func (r *Registry) Fields(name string) ([]Field, error) {
	s, err := r.lookup(name)
	if err != nil {
		return nil, err
	}
	required := make(map[string]bool, len(s.Required))
	for _, p := range s.Required {
		required[p] = true
	}
	fields := make([]Field, 0, len(s.Properties))
	for prop, ref := range s.Properties {
		f := Field{Name: prop, Required: required[prop], Type: typeName(ref)}
		if ref.Value != nil {
			f.Nullable = ref.Value.Nullable
			f.Description = ref.Value.Description
		}
		fields = append(fields, f)
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i].Name < fields[j].Name })
	return fields, nil
}

// Operations lists the declared operations ordered by path then method.
func (r *Registry) Operations() []Operation {
	if r.doc.Paths == nil {
		return nil
	}
	var ops []Operation
	for path, item := range r.doc.Paths.Map() {
		if item == nil {
			continue
		}
		for method, op := range item.Operations() {
			ops = append(ops, Operation{ID: op.OperationID, Method: method, Path: path, Summary: op.Summary})
		}
	}
	sort.Slice(ops, func(i, j int) bool {
		if ops[i].Path != ops[j].Path {
			return ops[i].Path < ops[j].Path
		}
		return ops[i].Method < ops[j].Method
	})
	return ops
}

func typeName(ref *openapi3.SchemaRef) string {
	if ref == nil {
		return ""
	}
	if ref.Ref != "" {
		return ref.Ref[strings.LastIndex(ref.Ref, "/")+1:]
	}
	s := ref.Value
	if s == nil || s.Type == nil {
		return ""
	}
	switch {
	case s.Type.Is(openapi3.TypeArray):
		return "[]" + typeName(s.Items)
	case s.Format != "":
		return s.Type.Slice()[0] + "(" + s.Format + ")"
	case len(s.Enum) > 0:
		values := make([]string, 0, len(s.Enum))
		for _, v := range s.Enum {
			values = append(values, fmt.Sprint(v))
		}
		return s.Type.Slice()[0] + " enum(" + strings.Join(values, "|") + ")"
	}
	return strings.Join(s.Type.Slice(), ",")
}

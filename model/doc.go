// Package model contains the lakeFS API schema objects used by the SDK.
//
// Each type mirrors one schema in openapi/lakefs.openapi.yaml. Required
// properties are plain fields, optional properties are pointers, and
// properties that distinguish "absent" from "null" use nullable.Nullable.
//
// Values decode strictly: a payload missing a required property fails with
// a *ValidationError, a malformed payload fails with a *DeserializationError.
// Builders (NewRefListBuilder and friends) assemble request values and can
// enforce required properties at Build time with Strict.
package model

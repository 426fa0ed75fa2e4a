// Package openapi embeds the lakeFS OpenAPI document the SDK is generated from.
package openapi

import _ "embed"

// Spec is the OpenAPI 3.0 document, in YAML.
//
//go:embed lakefs.openapi.yaml
var Spec []byte

// Package lakefs is a Go SDK for the lakeFS HTTP API.
//
// The SDK authenticates with HTTP basic auth using a lakeFS access key pair.
//
// By default, the client reads configuration from environment variables:
//
//   - LAKEFS_ENDPOINT (optional; defaults to http://localhost:8000/api/v1)
//   - LAKEFS_ACCESS_KEY_ID and LAKEFS_SECRET_ACCESS_KEY (optional; both or neither)
//
// Response bodies decode into the value types of package model. Decoding
// rejects payloads that omit a required property or carry null where the API
// does not allow it. Options.StrictValidation additionally checks every body
// against the embedded OpenAPI document.
//
// For most operations, prefer the typed convenience methods on Client.
// Use Client.Do for low-level/escape-hatch requests.
package lakefs

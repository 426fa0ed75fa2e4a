package generated

// This package contains code generated from the OpenAPI spec.
//
// Regenerate with:
//
// 	go generate ./...
//
// The spec lives at openapi/lakefs.openapi.yaml. It is the subset of the upstream
// lakeFS api/swagger.yml this module implements, with every component schema
// mapped onto the hand-written types in package model through x-go-type.
// Place the upstream document at build/swagger.yml before regenerating.
//
//go:generate go run ../cmd/specfix -in ../build/swagger.yml -out ../openapi/lakefs.openapi.yaml
//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 -generate types,client -package generated -o lakefs.gen.go ../openapi/lakefs.openapi.yaml

// Package spec embeds the OpenAPI description of the trip quote API.
// The HTTP server serves it at /openapi.yaml, and internal/handler/gen is
// generated from it.
package spec

import _ "embed"

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.5.1 -config oapi-codegen.yaml openapi.yaml

// OpenAPI contains the raw bytes of openapi.yaml, embedded at compile time.
//
//go:embed openapi.yaml
var OpenAPI []byte

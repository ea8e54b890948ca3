// Package api holds the OpenAPI contract of the tracker host.
package api

import _ "embed"

// OpenAPIDocument is the OpenAPI 3 document the HTTP adapter validates requests against.
//
//go:embed openapi.yaml
var OpenAPIDocument []byte

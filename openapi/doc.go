// Package openapi models OpenAPI v3.0.3 documents and translates
// validation-schema trees (package vschema) into Schema Objects.
//
// The translator is total: every node yields a well-formed schema, and
// unsupported or malformed shapes degrade to a permissive object schema
// instead of failing. Degradations are reported through a DiagnosticSink so
// the package itself performs no I/O. A broken documentation layer must
// never prevent a route from serving traffic.
//
// See: https://spec.openapis.org/oas/v3.0.3
package openapi

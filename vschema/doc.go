// Package vschema defines a closed, tagged representation of validation-schema
// trees. A tree describes the shape and constraints of an expected value:
// primitives with ordered constraint checks, objects with ordered fields,
// arrays, unions, wrappers such as optional or default, and so on.
//
// The package is the single adapter boundary between concrete validation
// libraries and the OpenAPI translation layer. An adapter for a validator
// maps its internal definition objects into Nodes once; everything downstream
// consumes only this representation:
//
//	node := vschema.Object(
//	    vschema.F("title", vschema.String(vschema.Min(1), vschema.Max(200))),
//	    vschema.F("done", vschema.Optional(vschema.Boolean())),
//	)
//
// Nodes are read-only views. Consumers must never mutate a Node they did
// not construct.
package vschema

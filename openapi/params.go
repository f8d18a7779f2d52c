package openapi

import (
	"fmt"

	"github.com/vitalvas/aria/vschema"
)

// Parameter locations.
const (
	InQuery  = "query"
	InHeader = "header"
	InCookie = "cookie"
	InPath   = "path"
)

// Parameters expands an object-shaped validator into Parameter Objects, one
// per shape field in declaration order. A field is required unless its node
// is optional or carries a default; path parameters are always required.
//
// Non-object nodes cannot describe named parameters: they are reported to
// the sink and yield nil.
func (t *Translator) Parameters(in string, node *vschema.Node) []*Parameter {
	if node == nil || node.Kind != vschema.KindObject {
		t.sink.Degraded("parameters", fmt.Sprintf("%s validator is not an object node", in))
		return nil
	}
	params := make([]*Parameter, 0, len(node.Shape))
	for _, f := range node.Shape {
		required := fieldRequired(f.Node)
		if in == InPath {
			required = true
		}
		params = append(params, &Parameter{
			Name:     f.Name,
			In:       in,
			Required: required,
			Schema:   t.Translate(f.Node),
		})
	}
	return params
}

package aria

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/vitalvas/aria/openapi"
	"github.com/vitalvas/aria/vschema"
)

// Endpoint is the aggregated documentation metadata for one registered
// route. Endpoints are created once per registration and owned by the
// application that registered them; mounting copies them into the parent.
type Endpoint struct {
	Method      string
	Path        string // brace syntax, already normalized
	Summary     string
	Description string
	Tags        []string
	Parameters  []*openapi.Parameter
	RequestBody map[string]*openapi.Schema // media type -> schema
	Responses   map[string]*openapi.Response
}

// clone returns a copy whose slices and maps are independent of the
// original. Schema objects are shared: they are immutable after build.
func (e *Endpoint) clone() *Endpoint {
	c := *e
	if e.Tags != nil {
		c.Tags = append([]string(nil), e.Tags...)
	}
	if e.Parameters != nil {
		c.Parameters = append([]*openapi.Parameter(nil), e.Parameters...)
	}
	if e.RequestBody != nil {
		c.RequestBody = make(map[string]*openapi.Schema, len(e.RequestBody))
		for k, v := range e.RequestBody {
			c.RequestBody[k] = v
		}
	}
	if e.Responses != nil {
		c.Responses = make(map[string]*openapi.Response, len(e.Responses))
		for k, v := range e.Responses {
			c.Responses[k] = v
		}
	}
	return &c
}

// buildEndpoint folds a registration's entries into one endpoint
// descriptor. It returns nil when the route is hidden from documentation.
// Malformed entries are reported and skipped; they never abort the rest of
// the descriptor.
func (a *App) buildEndpoint(method, path string, entries []Entry) *Endpoint {
	sink := a.translator.Sink()

	var docs Docs
	var haveDocs bool
	var bodyNodes []*vschema.Node
	var params []*openapi.Parameter

	for _, entry := range entries {
		switch e := entry.(type) {
		case Docs:
			if haveDocs {
				sink.Degraded("endpoint", fmt.Sprintf("%s %s: duplicate docs descriptor ignored", method, path))
				continue
			}
			docs = e
			haveDocs = true
		case validatorEntry:
			if e.node == nil {
				sink.Degraded("endpoint", fmt.Sprintf("%s %s: validator without schema skipped", method, path))
				continue
			}
			switch e.location {
			case LocationJSON, LocationForm:
				bodyNodes = append(bodyNodes, e.node)
			case LocationQuery, LocationHeader, LocationCookie, LocationPath:
				params = append(params, a.translator.Parameters(string(e.location), e.node)...)
			default:
				sink.Degraded("endpoint", fmt.Sprintf("%s %s: validator with unknown location %q skipped", method, path, e.location))
			}
		}
	}

	if docs.Hide {
		return nil
	}

	if docs.Method != "" {
		method = docs.Method
	}
	method = strings.ToUpper(method)
	if docs.Path != "" {
		path = docs.Path
	}
	path = openapi.NormalizePath(path)

	summary := docs.Summary
	if summary == "" {
		summary = method + " " + path
	}

	endpoint := &Endpoint{
		Method:      method,
		Path:        path,
		Summary:     summary,
		Description: docs.Description,
		Parameters:  params,
	}
	if len(docs.Tags) > 0 {
		endpoint.Tags = append([]string(nil), docs.Tags...)
	}

	if body := a.mergeBodyNodes(method, path, bodyNodes); body != nil {
		endpoint.RequestBody = map[string]*openapi.Schema{
			"application/json": a.translator.Translate(body),
		}
	}

	endpoint.Responses = a.buildResponses(method, path, docs.Responses)
	return endpoint
}

// mergeBodyNodes combines json and form validators into one request-body
// node. Object nodes merge by shallow field union, later fields winning on
// name collision. A single non-object validator passes through as-is;
// non-object validators mixed with others are skipped.
func (a *App) mergeBodyNodes(method, path string, nodes []*vschema.Node) *vschema.Node {
	switch len(nodes) {
	case 0:
		return nil
	case 1:
		return nodes[0]
	}

	var fields []vschema.Field
	index := make(map[string]int)
	for _, n := range nodes {
		if n.Kind != vschema.KindObject {
			a.translator.Sink().Degraded("endpoint",
				fmt.Sprintf("%s %s: non-object body validator skipped in merge", method, path))
			continue
		}
		for _, f := range n.Shape {
			if at, ok := index[f.Name]; ok {
				fields[at] = f
				continue
			}
			index[f.Name] = len(fields)
			fields = append(fields, f)
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return &vschema.Node{Kind: vschema.KindObject, Shape: fields}
}

// buildResponses copies documented responses through, skipping entries
// whose status code is not a valid HTTP status. Empty descriptions default
// to the standard status text.
func (a *App) buildResponses(method, path string, docs map[int]ResponseDoc) map[string]*openapi.Response {
	if len(docs) == 0 {
		return nil
	}
	out := make(map[string]*openapi.Response, len(docs))
	for status, rd := range docs {
		if status < 100 || status > 599 {
			a.translator.Sink().Degraded("endpoint",
				fmt.Sprintf("%s %s: response with invalid status %d skipped", method, path, status))
			continue
		}
		resp := &openapi.Response{Description: rd.Description}
		if resp.Description == "" {
			resp.Description = http.StatusText(status)
		}
		if len(rd.Content) > 0 {
			resp.Content = make(map[string]*openapi.MediaType, len(rd.Content))
			for mediaType, schema := range rd.Content {
				resp.Content[mediaType] = &openapi.MediaType{Schema: schema}
			}
		}
		out[strconv.Itoa(status)] = resp
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

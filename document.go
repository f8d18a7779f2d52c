package aria

import (
	"net/http"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/vitalvas/aria/openapi"
)

// Document assembles an OpenAPI v3.0.3 document from the endpoints
// registered so far. Assembly is a pure fold over a snapshot of the
// endpoint collection: it has no side effects, mutates nothing, and is
// safe to call repeatedly and concurrently with dispatch. The document is
// recomputed on every call, never cached.
func (a *App) Document() *openapi.Document {
	a.mu.RLock()
	endpoints := make([]*Endpoint, len(a.endpoints))
	copy(endpoints, a.endpoints)
	a.mu.RUnlock()

	doc := &openapi.Document{
		OpenAPI: "3.0.3",
		Info: openapi.Info{
			Title:       a.cfg.Title,
			Description: a.cfg.Description,
			Version:     a.cfg.Version,
		},
		Paths: make(map[string]*openapi.PathItem),
	}

	for _, ep := range endpoints {
		op := &openapi.Operation{
			Summary:     ep.Summary,
			Description: ep.Description,
			OperationID: operationID(ep.Method, ep.Path),
			Tags:        ep.Tags,
			Parameters:  ep.Parameters,
			Responses:   ep.Responses,
		}
		if len(ep.RequestBody) > 0 {
			content := make(map[string]*openapi.MediaType, len(ep.RequestBody))
			for mediaType, schema := range ep.RequestBody {
				content[mediaType] = &openapi.MediaType{Schema: schema}
			}
			op.RequestBody = &openapi.RequestBody{Content: content}
		}
		if op.Responses == nil {
			// Every operation needs at least one response to be useful.
			op.Responses = map[string]*openapi.Response{
				"200": {Description: http.StatusText(http.StatusOK)},
			}
		}

		// The item is inserted only once the method lands on a field, so
		// an unknown method cannot leave an empty path entry behind.
		item := doc.Paths[ep.Path]
		if item == nil {
			item = &openapi.PathItem{}
		}
		if assignOperation(item, ep.Method, op) {
			doc.Paths[ep.Path] = item
		}
	}

	return doc
}

// assignOperation places an operation on the path item field matching the
// HTTP method. Unknown methods are dropped: the document has no field to
// carry them.
func assignOperation(item *openapi.PathItem, method string, op *openapi.Operation) bool {
	switch method {
	case http.MethodGet:
		item.Get = op
	case http.MethodPut:
		item.Put = op
	case http.MethodPost:
		item.Post = op
	case http.MethodDelete:
		item.Delete = op
	case http.MethodOptions:
		item.Options = op
	case http.MethodHead:
		item.Head = op
	case http.MethodPatch:
		item.Patch = op
	case http.MethodTrace:
		item.Trace = op
	default:
		return false
	}
	return true
}

// operationID derives a camelCase identifier from the method and the
// brace-syntax path: GET /items/{itemId} becomes "getItemsItemId". The
// caser is built per call: a cases.Caser carries transform state and is
// not safe for shared use.
func operationID(method, path string) string {
	caser := cases.Title(language.Und)
	var b strings.Builder
	b.WriteString(strings.ToLower(method))
	for _, segment := range strings.Split(path, "/") {
		segment = strings.Trim(segment, "{}")
		for _, word := range splitWords(segment) {
			b.WriteString(caser.String(strings.ToLower(word)))
		}
	}
	return b.String()
}

// splitWords breaks a path segment on separator characters and lower-to-
// upper case transitions, so both "item-group" and "itemGroup" yield the
// words "item", "group".
func splitWords(s string) []string {
	var words []string
	var current strings.Builder
	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}
	var prev rune
	for _, r := range s {
		switch {
		case r == '-' || r == '_' || r == '.':
			flush()
		case r >= 'A' && r <= 'Z' && prev >= 'a' && prev <= 'z':
			flush()
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
		prev = r
	}
	flush()
	return words
}

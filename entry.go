package aria

import (
	"net/http"

	"github.com/vitalvas/aria/openapi"
	"github.com/vitalvas/aria/vschema"
)

// Location tags where a validator reads its value from. Body locations
// (json, form) feed the request-body schema; the rest become parameters.
type Location string

const (
	LocationJSON   Location = "json"
	LocationForm   Location = "form"
	LocationQuery  Location = "query"
	LocationHeader Location = "header"
	LocationCookie Location = "cookie"
	LocationPath   Location = "path"
)

// Entry is one element of a route registration: a handler, a middleware,
// a documentation descriptor, or a validator descriptor. Entries are
// scanned in order; dispatch behavior never depends on documentation
// entries.
type Entry interface {
	isEntry()
}

// Docs is the documentation descriptor attached to a route registration.
// At most one Docs entry is honored per registration; extras are reported
// to the diagnostic sink and ignored.
type Docs struct {
	// Hide excludes the route from the assembled document. The route still
	// dispatches normally.
	Hide bool

	// Method and Path override the registration method and path in the
	// document only.
	Method string
	Path   string

	Summary     string
	Description string
	Tags        []string

	// Responses maps HTTP status codes to documented responses. Schemas
	// are passed through as supplied.
	Responses map[int]ResponseDoc
}

func (Docs) isEntry() {}

// ResponseDoc describes one documented response. An empty description
// defaults to the standard status text.
type ResponseDoc struct {
	Description string
	Content     map[string]*openapi.Schema
}

type validatorEntry struct {
	location Location
	node     *vschema.Node
}

func (validatorEntry) isEntry() {}

// Validate attaches a validation-schema node for the given location.
func Validate(location Location, node *vschema.Node) Entry {
	return validatorEntry{location: location, node: node}
}

type handlerEntry struct {
	handler http.Handler
}

func (handlerEntry) isEntry() {}

// Handler wraps an http.Handler as a route entry.
func Handler(h http.Handler) Entry { return handlerEntry{handler: h} }

// HandlerFunc wraps a handler function as a route entry.
func HandlerFunc(h func(http.ResponseWriter, *http.Request)) Entry {
	return handlerEntry{handler: http.HandlerFunc(h)}
}

type middlewareEntry struct {
	middleware Middleware
}

func (middlewareEntry) isEntry() {}

// With wraps a middleware as a route entry. Route middlewares apply in
// entry order around the route's handler.
func With(m Middleware) Entry { return middlewareEntry{middleware: m} }

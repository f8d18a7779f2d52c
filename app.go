package aria

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/vitalvas/aria/openapi"
)

// Config is the application surface consumed by the registry. Environment
// and Debug only gate instrumentation; they never influence the assembled
// document's paths or operations.
type Config struct {
	Title       string
	Description string
	Version     string

	// Environment is a deployment tag (e.g. "production", "staging").
	Environment string

	// Debug enables request instrumentation (request IDs, access logs).
	Debug bool
}

// App registers routes, aggregates their documentation metadata, and
// dispatches requests. Route registration is expected during a sequential
// build phase; the endpoint collection is still guarded so that Document
// may be called concurrently with dispatch.
type App struct {
	cfg        Config
	translator *openapi.Translator

	mu          sync.RWMutex
	endpoints   []*Endpoint
	routes      []*route
	middlewares []Middleware
}

// New creates an application registry. Degradation notices go to
// openapi.NopSink; use WithSink to change that.
func New(cfg Config) *App {
	app := &App{
		cfg:        cfg,
		translator: openapi.NewTranslator(nil),
	}
	if cfg.Debug {
		app.Use(RequestID())
		app.Use(AccessLog(nil))
	}
	return app
}

// WithSink routes all degradation notices to sink and returns the app.
func (a *App) WithSink(sink openapi.DiagnosticSink) *App {
	a.translator = openapi.NewTranslator(sink)
	return a
}

// Use appends an application-level middleware, applied to every dispatched
// request in registration order.
func (a *App) Use(m Middleware) *App {
	a.mu.Lock()
	a.middlewares = append(a.middlewares, m)
	a.mu.Unlock()
	return a
}

// Get registers a GET route.
func (a *App) Get(path string, entries ...Entry) *App {
	return a.Add(http.MethodGet, path, entries...)
}

// Post registers a POST route.
func (a *App) Post(path string, entries ...Entry) *App {
	return a.Add(http.MethodPost, path, entries...)
}

// Put registers a PUT route.
func (a *App) Put(path string, entries ...Entry) *App {
	return a.Add(http.MethodPut, path, entries...)
}

// Delete registers a DELETE route.
func (a *App) Delete(path string, entries ...Entry) *App {
	return a.Add(http.MethodDelete, path, entries...)
}

// Patch registers a PATCH route.
func (a *App) Patch(path string, entries ...Entry) *App {
	return a.Add(http.MethodPatch, path, entries...)
}

// Options registers an OPTIONS route.
func (a *App) Options(path string, entries ...Entry) *App {
	return a.Add(http.MethodOptions, path, entries...)
}

// Head registers a HEAD route.
func (a *App) Head(path string, entries ...Entry) *App {
	return a.Add(http.MethodHead, path, entries...)
}

// Add registers a route with the given method, ":name"-style path, and
// ordered entries. The endpoint descriptor is built immediately; a Docs
// entry with Hide set skips documentation without affecting dispatch.
func (a *App) Add(method, path string, entries ...Entry) *App {
	endpoint := a.buildEndpoint(method, path, entries)
	rt := buildRoute(method, path, entries)

	a.mu.Lock()
	if endpoint != nil {
		a.endpoints = append(a.endpoints, endpoint)
	}
	if rt != nil {
		a.routes = append(a.routes, rt)
	}
	a.mu.Unlock()
	return a
}

// Route mounts child under prefix. The child's endpoint descriptors are
// copied at mount time with their paths rewritten, and its routes are
// served through a under the prefix with the child's application
// middlewares folded into each copied route. The copy is a snapshot:
// routes registered on the child after mounting stay invisible to a, and
// the child keeps its own descriptors for its own document. Mounting an
// application into itself is reported and ignored.
func (a *App) Route(prefix string, child *App) *App {
	if child == a {
		a.translator.Sink().Degraded("mount",
			fmt.Sprintf("%s: application mounted into itself, ignored", prefix))
		return a
	}

	child.mu.RLock()
	endpoints := make([]*Endpoint, 0, len(child.endpoints))
	for _, ep := range child.endpoints {
		c := ep.clone()
		c.Path = openapi.NormalizePath(openapi.MergePaths(prefix, ep.Path))
		endpoints = append(endpoints, c)
	}
	routes := make([]*route, 0, len(child.routes))
	for _, rt := range child.routes {
		c := rt.withPrefix(prefix)
		for i := len(child.middlewares) - 1; i >= 0; i-- {
			c.handler = child.middlewares[i](c.handler)
		}
		routes = append(routes, c)
	}
	child.mu.RUnlock()

	a.mu.Lock()
	a.endpoints = append(a.endpoints, endpoints...)
	a.routes = append(a.routes, routes...)
	a.mu.Unlock()
	return a
}

// Endpoints returns a snapshot of the registered endpoint descriptors.
func (a *App) Endpoints() []*Endpoint {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]*Endpoint, len(a.endpoints))
	copy(out, a.endpoints)
	return out
}

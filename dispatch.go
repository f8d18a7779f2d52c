package aria

import (
	"context"
	"net/http"
	"path"
	"sort"
	"strings"
)

// route is one dispatchable registration. The pattern keeps the ":name"
// syntax it was registered with; documentation paths are normalized
// separately and never feed back into matching.
type route struct {
	method   string
	pattern  string
	segments []string
	handler  http.Handler
}

// buildRoute composes the registration's handler and middleware entries
// into a dispatchable route. Registrations without a handler entry are
// documentation-only and yield no route.
func buildRoute(method, pattern string, entries []Entry) *route {
	var handler http.Handler
	var middlewares []Middleware
	for _, entry := range entries {
		switch e := entry.(type) {
		case handlerEntry:
			if handler == nil {
				handler = e.handler
			}
		case middlewareEntry:
			middlewares = append(middlewares, e.middleware)
		}
	}
	if handler == nil {
		return nil
	}
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}
	return &route{
		method:   strings.ToUpper(method),
		pattern:  pattern,
		segments: splitPath(pattern),
		handler:  handler,
	}
}

// withPrefix returns a copy of the route re-rooted under a mount prefix.
func (r *route) withPrefix(prefix string) *route {
	merged := joinPatterns(prefix, r.pattern)
	return &route{
		method:   r.method,
		pattern:  merged,
		segments: splitPath(merged),
		handler:  r.handler,
	}
}

// joinPatterns merges two ":name"-syntax path fragments the same way
// openapi.MergePaths merges document paths.
func joinPatterns(prefix, child string) string {
	var segments []string
	for _, part := range [2]string{prefix, child} {
		for _, s := range strings.Split(part, "/") {
			if s != "" {
				segments = append(segments, s)
			}
		}
	}
	if len(segments) == 0 {
		return "/"
	}
	return "/" + strings.Join(segments, "/")
}

func splitPath(p string) []string {
	var segments []string
	for _, s := range strings.Split(p, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}

// match reports whether the route's pattern matches the path segments,
// capturing ":name" parameters.
func (r *route) match(segments []string) (map[string]string, bool) {
	if len(segments) != len(r.segments) {
		return nil, false
	}
	var params map[string]string
	for i, pat := range r.segments {
		if len(pat) > 1 && pat[0] == ':' {
			if params == nil {
				params = make(map[string]string)
			}
			params[pat[1:]] = segments[i]
			continue
		}
		if pat != segments[i] {
			return nil, false
		}
	}
	return params, true
}

type paramsKey struct{}

// Param returns the value of a path parameter captured during dispatch,
// or the empty string if the parameter is absent.
func Param(r *http.Request, name string) string {
	if params, ok := r.Context().Value(paramsKey{}).(map[string]string); ok {
		return params[name]
	}
	return ""
}

// ServeHTTP dispatches the request to the first matching route. Unmatched
// paths yield 404; matched paths without a matching method yield 405 with
// an Allow header listing the registered methods.
func (a *App) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	a.mu.RLock()
	routes := make([]*route, len(a.routes))
	copy(routes, a.routes)
	middlewares := make([]Middleware, len(a.middlewares))
	copy(middlewares, a.middlewares)
	a.mu.RUnlock()

	segments := splitPath(cleanPath(req.URL.Path))

	var allowed []string
	for _, rt := range routes {
		params, ok := rt.match(segments)
		if !ok {
			continue
		}
		if rt.method != req.Method {
			allowed = append(allowed, rt.method)
			continue
		}

		if params != nil {
			req = req.WithContext(context.WithValue(req.Context(), paramsKey{}, params))
		}
		handler := rt.handler
		for i := len(middlewares) - 1; i >= 0; i-- {
			handler = middlewares[i](handler)
		}
		handler.ServeHTTP(w, req)
		return
	}

	if len(allowed) > 0 {
		sort.Strings(allowed)
		w.Header().Set("Allow", strings.Join(allowed, ", "))
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	http.NotFound(w, req)
}

// cleanPath returns the canonical form of p, eliminating . and ..
// elements and duplicate slashes.
func cleanPath(p string) string {
	if p == "" {
		return "/"
	}
	if p[0] != '/' {
		p = "/" + p
	}
	return path.Clean(p)
}

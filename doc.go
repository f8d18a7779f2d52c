// Package aria is a documentation-first HTTP application registry. Routes
// are registered with ordered entries: a handler, optional middlewares, an
// optional documentation descriptor (Docs), and any number of validator
// descriptors carrying validation-schema trees (package vschema). The
// registry aggregates the metadata into endpoint descriptors and assembles
// an OpenAPI v3.0.3 document from them on demand.
//
//	app := aria.New(aria.Config{Title: "Tasks API", Version: "1.0.0"})
//
//	app.Get("/tasks/:taskId",
//	    aria.Docs{Summary: "Fetch one task", Tags: []string{"tasks"}},
//	    aria.Validate(aria.LocationPath, vschema.Object(
//	        vschema.F("taskId", vschema.String(vschema.Format(vschema.FormatUUID))),
//	    )),
//	    aria.HandlerFunc(getTask),
//	)
//
//	app.DocsRoutes("/docs", nil) // /docs, /docs/openapi.json, /docs/openapi.yaml
//
// Applications compose: Route mounts a child application under a prefix,
// copying its endpoint descriptors with rewritten paths and serving its
// routes through the parent.
//
// Documentation generation is strictly fail-soft: malformed metadata
// degrades the document but never affects dispatch. Degradations are
// reported through the openapi.DiagnosticSink configured on the App.
package aria

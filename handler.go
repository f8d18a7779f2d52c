package aria

import (
	"fmt"
	"html"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// DocsUI selects which interactive documentation UI to serve.
type DocsUI int

const (
	DocsSwaggerUI DocsUI = iota
	DocsRedoc
)

// DocsConfig configures the endpoints registered by DocsRoutes.
type DocsConfig struct {
	// UI selects the interactive docs UI (default: DocsSwaggerUI).
	UI DocsUI

	// Title overrides the HTML page title (default: the app title).
	Title string

	// JSONFile is the filename for the JSON document endpoint under the
	// base path (default: "openapi.json"). Set to "-" to disable.
	JSONFile string

	// YAMLFile is the filename for the YAML document endpoint under the
	// base path (default: "openapi.yaml"). Set to "-" to disable.
	YAMLFile string

	// DisableUI disables the interactive HTML docs endpoint.
	DisableUI bool
}

func (cfg DocsConfig) jsonFile() string {
	if cfg.JSONFile == "" {
		return "openapi.json"
	}
	return cfg.JSONFile
}

func (cfg DocsConfig) yamlFile() string {
	if cfg.YAMLFile == "" {
		return "openapi.yaml"
	}
	return cfg.YAMLFile
}

// DocsRoutes registers documentation endpoints under basePath:
//
//	<basePath>                serves the interactive docs UI
//	<basePath>/openapi.json   serves the document as JSON
//	<basePath>/openapi.yaml   serves the document as YAML
//
// The config parameter is optional; pass nil for defaults. The document is
// reassembled on every request, so routes registered after DocsRoutes still
// appear. The documentation endpoints hide themselves from the document.
func (a *App) DocsRoutes(basePath string, cfg *DocsConfig) *App {
	if cfg == nil {
		cfg = &DocsConfig{}
	}
	basePath = "/" + strings.Trim(basePath, "/")
	if basePath == "/" {
		basePath = ""
	}

	var specURL string
	if name := cfg.jsonFile(); name != "-" {
		specURL = basePath + "/" + name
		a.Get(specURL, Docs{Hide: true}, HandlerFunc(a.serveJSON))
	}
	if name := cfg.yamlFile(); name != "-" {
		yamlURL := basePath + "/" + name
		if specURL == "" {
			specURL = yamlURL
		}
		a.Get(yamlURL, Docs{Hide: true}, HandlerFunc(a.serveYAML))
	}

	// The UI page needs a document endpoint to point at.
	if !cfg.DisableUI && specURL != "" {
		title := cfg.Title
		if title == "" {
			title = a.cfg.Title
		}
		var page string
		switch cfg.UI {
		case DocsRedoc:
			page = redocPage(title, specURL)
		default:
			page = swaggerUIPage(title, specURL)
		}
		uiPath := basePath
		if uiPath == "" {
			uiPath = "/"
		}
		a.Get(uiPath, Docs{Hide: true}, HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte(page))
		}))
	}
	return a
}

func (a *App) serveJSON(w http.ResponseWriter, _ *http.Request) {
	data, err := json.MarshalIndent(a.Document(), "", "  ")
	if err != nil {
		http.Error(w, "failed to serialize OpenAPI document as JSON", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

// serveYAML serializes through JSON first so the YAML output carries the
// exact wire field names and null handling of the JSON document.
func (a *App) serveYAML(w http.ResponseWriter, _ *http.Request) {
	jsonData, err := json.Marshal(a.Document())
	if err != nil {
		http.Error(w, "failed to serialize OpenAPI document as YAML", http.StatusInternalServerError)
		return
	}
	var v any
	if err := json.Unmarshal(jsonData, &v); err != nil {
		http.Error(w, "failed to serialize OpenAPI document as YAML", http.StatusInternalServerError)
		return
	}
	data, err := yaml.Marshal(v)
	if err != nil {
		http.Error(w, "failed to serialize OpenAPI document as YAML", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/x-yaml")
	_, _ = w.Write(data)
}

func swaggerUIPage(title, specURL string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>%s</title>
<link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist/swagger-ui.css">
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist/swagger-ui-bundle.js"></script>
<script>
SwaggerUIBundle({url: %q, dom_id: "#swagger-ui"});
</script>
</body>
</html>`, html.EscapeString(title), specURL)
}

func redocPage(title, specURL string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>%s</title>
</head>
<body>
<redoc spec-url=%q></redoc>
<script src="https://cdn.redoc.ly/redoc/latest/bundles/redoc.standalone.js"></script>
</body>
</html>`, html.EscapeString(title), specURL)
}

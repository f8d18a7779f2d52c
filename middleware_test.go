package aria

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	t.Run("assigns a fresh uuid", func(t *testing.T) {
		var seen string
		app := testApp().
			Use(RequestID()).
			Get("/x", HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = RequestIDFromContext(r.Context())
			}))

		rec := httptest.NewRecorder()
		app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

		id := rec.Header().Get(RequestIDHeader)
		require.NotEmpty(t, id)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
		assert.Equal(t, id, seen)
	})

	t.Run("reuses an incoming id", func(t *testing.T) {
		app := testApp().Use(RequestID()).Get("/x", textHandler("ok"))

		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set(RequestIDHeader, "incoming-id")
		rec := httptest.NewRecorder()
		app.ServeHTTP(rec, req)

		assert.Equal(t, "incoming-id", rec.Header().Get(RequestIDHeader))
	})

	t.Run("empty without the middleware", func(t *testing.T) {
		var seen string
		app := testApp().Get("/x", HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = RequestIDFromContext(r.Context())
		}))

		app.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Empty(t, seen)
	})
}

func TestAccessLog(t *testing.T) {
	t.Run("logs method path and status", func(t *testing.T) {
		var buf bytes.Buffer
		logger := log.New(&buf, "", 0)

		app := testApp().
			Use(AccessLog(logger)).
			Get("/tasks", HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusCreated)
			}))

		app.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/tasks", nil))

		line := buf.String()
		assert.Contains(t, line, "GET /tasks 201")
	})

	t.Run("implicit status defaults to 200", func(t *testing.T) {
		var buf bytes.Buffer
		logger := log.New(&buf, "", 0)

		app := testApp().Use(AccessLog(logger)).Get("/ok", textHandler("ok"))
		app.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))

		assert.Contains(t, buf.String(), "GET /ok 200")
	})
}

func TestDebugConfig(t *testing.T) {
	app := New(Config{Title: "t", Debug: true}).Get("/x", textHandler("ok"))

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	id := rec.Header().Get(RequestIDHeader)
	require.NotEmpty(t, id)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}

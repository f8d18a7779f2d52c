package aria

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalvas/aria/vschema"
)

func TestDocument(t *testing.T) {
	t.Run("info from config", func(t *testing.T) {
		app := New(Config{Title: "Task API", Description: "task tracking", Version: "2.1.0"})
		doc := app.Document()
		assert.Equal(t, "3.0.3", doc.OpenAPI)
		assert.Equal(t, "Task API", doc.Info.Title)
		assert.Equal(t, "task tracking", doc.Info.Description)
		assert.Equal(t, "2.1.0", doc.Info.Version)
		assert.Empty(t, doc.Paths)
	})

	t.Run("methods on one path share a path item", func(t *testing.T) {
		app := testApp().
			Get("/tasks").
			Post("/tasks").
			Delete("/tasks/:taskId")

		doc := app.Document()
		require.Len(t, doc.Paths, 2)

		tasks := doc.Paths["/tasks"]
		require.NotNil(t, tasks)
		assert.NotNil(t, tasks.Get)
		assert.NotNil(t, tasks.Post)
		assert.Nil(t, tasks.Delete)

		item := doc.Paths["/tasks/{taskId}"]
		require.NotNil(t, item)
		assert.NotNil(t, item.Delete)
	})

	t.Run("operation carries descriptor fields", func(t *testing.T) {
		app := testApp().Post("/tasks",
			Docs{
				Summary:     "Create task",
				Description: "Creates a new task.",
				Tags:        []string{"tasks"},
				Responses: map[int]ResponseDoc{
					201: {Description: "created"},
				},
			},
			Validate(LocationJSON, vschema.Object(
				vschema.F("title", vschema.String()),
			)),
			Validate(LocationQuery, vschema.Object(
				vschema.F("dryRun", vschema.Optional(vschema.Boolean())),
			)),
		)

		doc := app.Document()
		op := doc.Paths["/tasks"].Post
		require.NotNil(t, op)
		assert.Equal(t, "Create task", op.Summary)
		assert.Equal(t, []string{"tasks"}, op.Tags)
		assert.Equal(t, "postTasks", op.OperationID)
		require.Len(t, op.Parameters, 1)
		assert.Equal(t, "dryRun", op.Parameters[0].Name)
		require.NotNil(t, op.RequestBody)
		assert.Contains(t, op.RequestBody.Content, "application/json")
		require.Contains(t, op.Responses, "201")
		assert.Equal(t, "created", op.Responses["201"].Description)
	})

	t.Run("default response when none documented", func(t *testing.T) {
		app := testApp().Get("/ping")
		op := app.Document().Paths["/ping"].Get
		require.NotNil(t, op)
		require.Contains(t, op.Responses, "200")
		assert.Equal(t, "OK", op.Responses["200"].Description)
	})

	t.Run("assembly is idempotent", func(t *testing.T) {
		app := testApp().
			Get("/items/:itemId", Validate(LocationPath, vschema.Object(
				vschema.F("itemId", vschema.String()),
			))).
			Post("/items")

		first := app.Document()
		second := app.Document()
		assert.Equal(t, first, second)
		assert.NotSame(t, first, second)
	})

	t.Run("concurrent assembly", func(t *testing.T) {
		app := testApp().
			Get("/items/:itemId").
			Post("/user-groups/:groupId")

		var wg sync.WaitGroup
		for g := 0; g < 8; g++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := 0; i < 200; i++ {
					doc := app.Document()
					assert.Equal(t, "getItemsItemId", doc.Paths["/items/{itemId}"].Get.OperationID)
					assert.Equal(t, "postUserGroupsGroupId", doc.Paths["/user-groups/{groupId}"].Post.OperationID)
				}
			}()
		}
		wg.Wait()
	})

	t.Run("unknown method override leaves no path entry", func(t *testing.T) {
		app := testApp().
			Get("/brew", Docs{Method: "BREW"}).
			Get("/tasks")

		paths := app.Document().Paths
		assert.NotContains(t, paths, "/brew")
		assert.Contains(t, paths, "/tasks")
	})

	t.Run("registration after assembly appears next time", func(t *testing.T) {
		app := testApp().Get("/a")
		assert.Len(t, app.Document().Paths, 1)

		app.Get("/b")
		assert.Len(t, app.Document().Paths, 2)
	})
}

func TestOperationID(t *testing.T) {
	cases := []struct {
		method, path, want string
	}{
		{http.MethodGet, "/items/{itemId}", "getItemsItemId"},
		{http.MethodPost, "/tasks", "postTasks"},
		{http.MethodGet, "/", "get"},
		{http.MethodDelete, "/user-groups/{group_id}", "deleteUserGroupsGroupId"},
		{http.MethodGet, "/api/v2/health.check", "getApiV2HealthCheck"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, operationID(tc.method, tc.path), "%s %s", tc.method, tc.path)
	}
}

func TestMount(t *testing.T) {
	t.Run("child endpoints appear under the prefix", func(t *testing.T) {
		child := New(Config{Title: "child"}).
			Get("/ping", Docs{Summary: "Ping"}).
			Get("/items/:itemId", Validate(LocationPath, vschema.Object(
				vschema.F("itemId", vschema.String()),
			)))

		parent := testApp().Route("/svc", child)
		doc := parent.Document()

		ping := doc.Paths["/svc/ping"]
		require.NotNil(t, ping)
		require.NotNil(t, ping.Get)
		assert.Equal(t, "Ping", ping.Get.Summary)

		item := doc.Paths["/svc/items/{itemId}"]
		require.NotNil(t, item)
		require.NotNil(t, item.Get)
		require.Len(t, item.Get.Parameters, 1)
		assert.Equal(t, "itemId", item.Get.Parameters[0].Name)
	})

	t.Run("slash variants mount identically", func(t *testing.T) {
		for _, prefix := range []string{"/svc", "svc", "/svc/", "svc/"} {
			child := New(Config{Title: "child"}).Get("/ping")
			parent := testApp().Route(prefix, child)
			assert.Contains(t, parent.Document().Paths, "/svc/ping", "prefix %q", prefix)
		}
	})

	t.Run("mount is a snapshot", func(t *testing.T) {
		child := New(Config{Title: "child"}).Get("/before")
		parent := testApp().Route("/svc", child)

		child.Get("/after")

		paths := parent.Document().Paths
		assert.Contains(t, paths, "/svc/before")
		assert.NotContains(t, paths, "/svc/after")
	})

	t.Run("child document keeps its own paths", func(t *testing.T) {
		child := New(Config{Title: "child"}).Get("/ping")
		testApp().Route("/svc", child)

		paths := child.Document().Paths
		assert.Contains(t, paths, "/ping")
		assert.NotContains(t, paths, "/svc/ping")
	})

	t.Run("mounted copies are independent", func(t *testing.T) {
		child := New(Config{Title: "child"}).Get("/ping", Docs{
			Tags: []string{"health"},
		})
		parent := testApp().Route("/svc", child)

		// Mutating the parent's copy leaves the child untouched.
		parent.Endpoints()[0].Tags[0] = "mutated"
		assert.Equal(t, []string{"health"}, child.Endpoints()[0].Tags)
	})

	t.Run("self-mount is ignored", func(t *testing.T) {
		sink := &recordingSink{}
		app := New(Config{Title: "t"}).WithSink(sink)
		app.Get("/ping", textHandler("pong"))

		app.Route("/loop", app)

		paths := app.Document().Paths
		assert.Len(t, paths, 1)
		assert.Contains(t, paths, "/ping")
		assert.Len(t, sink.notices, 1)

		rec := httptest.NewRecorder()
		app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, "pong", rec.Body.String())
	})

	t.Run("nested mounts compose", func(t *testing.T) {
		inner := New(Config{Title: "inner"}).Get("/leaf")
		mid := New(Config{Title: "mid"}).Route("/mid", inner)
		root := testApp().Route("/root", mid)

		assert.Contains(t, root.Document().Paths, "/root/mid/leaf")
	})
}

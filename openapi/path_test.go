package openapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePath(t *testing.T) {
	t.Run("rewrites colon segments", func(t *testing.T) {
		assert.Equal(t, "/items/{itemId}", NormalizePath("/items/:itemId"))
		assert.Equal(t, "/a/{b}/c/{d}", NormalizePath("/a/:b/c/:d"))
	})

	t.Run("idempotent", func(t *testing.T) {
		once := NormalizePath("/items/:itemId")
		assert.Equal(t, once, NormalizePath(once))
	})

	t.Run("literal braces untouched", func(t *testing.T) {
		assert.Equal(t, "/items/{itemId}", NormalizePath("/items/{itemId}"))
	})

	t.Run("plain paths untouched", func(t *testing.T) {
		assert.Equal(t, "/ping", NormalizePath("/ping"))
		assert.Equal(t, "/", NormalizePath("/"))
	})

	t.Run("bare colon segment untouched", func(t *testing.T) {
		assert.Equal(t, "/a/:/b", NormalizePath("/a/:/b"))
	})
}

func TestMergePaths(t *testing.T) {
	t.Run("slash variants merge identically", func(t *testing.T) {
		assert.Equal(t, "/api/tasks", MergePaths("/api/", "/tasks"))
		assert.Equal(t, "/api/tasks", MergePaths("api", "tasks"))
		assert.Equal(t, "/api/tasks", MergePaths("/api", "/tasks/"))
		assert.Equal(t, "/api/tasks", MergePaths("//api//", "///tasks"))
	})

	t.Run("associative", func(t *testing.T) {
		left := MergePaths(MergePaths("/a/", "b/"), "/c")
		right := MergePaths("/a/", MergePaths("b/", "/c"))
		assert.Equal(t, left, right)
		assert.Equal(t, "/a/b/c", left)
	})

	t.Run("no usable segments resolve to root", func(t *testing.T) {
		assert.Equal(t, "/", MergePaths("", ""))
		assert.Equal(t, "/", MergePaths("/", "//"))
	})

	t.Run("keeps parameter segments", func(t *testing.T) {
		assert.Equal(t, "/svc/items/{id}", MergePaths("/svc", "/items/{id}"))
		assert.Equal(t, "/svc/items/:id", MergePaths("/svc", "/items/:id"))
	})
}

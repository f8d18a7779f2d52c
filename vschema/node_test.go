package vschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilders(t *testing.T) {
	t.Run("object keeps field order", func(t *testing.T) {
		n := Object(
			F("first", String()),
			F("second", Number()),
			F("third", Boolean()),
		)
		require.Len(t, n.Shape, 3)
		assert.Equal(t, "first", n.Shape[0].Name)
		assert.Equal(t, "second", n.Shape[1].Name)
		assert.Equal(t, "third", n.Shape[2].Name)
	})

	t.Run("checks keep declaration order", func(t *testing.T) {
		n := String(Min(1), Max(5), Format(FormatEmail))
		require.Len(t, n.Checks, 3)
		assert.Equal(t, CheckMin, n.Checks[0].Kind)
		assert.Equal(t, CheckMax, n.Checks[1].Kind)
		assert.Equal(t, CheckFormat, n.Checks[2].Kind)
	})

	t.Run("wrappers reference the inner node", func(t *testing.T) {
		inner := String()
		assert.Same(t, inner, Optional(inner).Inner)
		assert.Same(t, inner, Nullable(inner).Inner)
		assert.Same(t, inner, Default(inner, "x").Inner)
	})

	t.Run("variadic tuple", func(t *testing.T) {
		n := VariadicTuple(Boolean(), String(), Number())
		assert.Len(t, n.Items, 2)
		require.NotNil(t, n.Rest)
		assert.Equal(t, KindBoolean, n.Rest.Kind)
	})

	t.Run("exclusive checks", func(t *testing.T) {
		assert.True(t, ExclusiveMin(1).Exclusive)
		assert.True(t, ExclusiveMax(1).Exclusive)
		assert.False(t, Min(1).Exclusive)
	})
}

func TestResolveDefault(t *testing.T) {
	t.Run("literal value", func(t *testing.T) {
		n := Default(String(), "fallback")
		assert.Equal(t, "fallback", n.ResolveDefault())
	})

	t.Run("producer invoked", func(t *testing.T) {
		calls := 0
		n := Default(Number(), func() any {
			calls++
			return 42
		})
		assert.Equal(t, 42, n.ResolveDefault())
		assert.Equal(t, 1, calls)
	})

	t.Run("nil default", func(t *testing.T) {
		n := Default(String(), nil)
		assert.Nil(t, n.ResolveDefault())
	})
}

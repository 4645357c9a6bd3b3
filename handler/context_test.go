package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/lruviz/handler"
)

func TestNewContext(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/path", nil)

	ctx := handler.NewContext(rec, req)

	assert.Same(t, req, ctx.Request())
	assert.Equal(t, rec, ctx.ResponseWriter())
}

func TestContext_DelegatesToRequestContext(t *testing.T) {
	t.Parallel()

	type key struct{}
	base, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	base = context.WithValue(base, key{}, "value")

	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(base)
	ctx := handler.NewContext(httptest.NewRecorder(), req)

	deadline, ok := ctx.Deadline()
	assert.True(t, ok)
	assert.False(t, deadline.IsZero())
	assert.NoError(t, ctx.Err())
	assert.Equal(t, "value", ctx.Value(key{}))

	cancel()
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}

func TestContextValue(t *testing.T) {
	t.Parallel()

	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, 42)

	assert.Equal(t, 42, handler.ContextValue[int](ctx, key{}))
	assert.Zero(t, handler.ContextValue[string](ctx, key{})) // wrong type

	val, ok := handler.ContextValueOK[int](ctx, key{})
	assert.True(t, ok)
	assert.Equal(t, 42, val)

	_, ok = handler.ContextValueOK[int](context.Background(), key{})
	assert.False(t, ok)
}

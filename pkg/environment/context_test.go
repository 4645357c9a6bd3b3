package environment_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/lruviz/pkg/environment"
)

func TestContext(t *testing.T) {
	t.Run("roundtrip", func(t *testing.T) {
		ctx := environment.WithContext(context.Background(), string(environment.Production))
		assert.Equal(t, "production", environment.FromContext(ctx))
		assert.True(t, environment.IsProduction(ctx))
		assert.False(t, environment.IsDevelopment(ctx))
	})

	t.Run("empty context", func(t *testing.T) {
		assert.Equal(t, "", environment.FromContext(context.Background()))
		assert.False(t, environment.IsProduction(context.Background()))
	})

	t.Run("short names", func(t *testing.T) {
		ctx := environment.WithContext(context.Background(), "dev")
		assert.True(t, environment.IsDevelopment(ctx))
	})
}

func TestMiddleware(t *testing.T) {
	var got string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = environment.FromContext(r.Context())
	})

	mw := environment.Middleware(environment.Development)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	mw(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "development", got)
}

func TestLoggerExtractor(t *testing.T) {
	ex := environment.LoggerExtractor()

	attr, ok := ex(environment.WithContext(context.Background(), "production"))
	assert.True(t, ok)
	assert.Equal(t, "env", attr.Key)
	assert.Equal(t, "production", attr.Value.String())

	_, ok = ex(context.Background())
	assert.False(t, ok)
}

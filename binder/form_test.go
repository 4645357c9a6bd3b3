package binder_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lruviz/binder"
)

type putForm struct {
	Key      int      `form:"key"`
	Value    int      `form:"value"`
	Note     string   `form:"note"`
	Tags     []string `form:"tags"`
	Optional *int     `form:"optional"`
	Ignored  string   `form:"-"`
}

func formRequest(t *testing.T, body string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/put", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestForm(t *testing.T) {
	t.Parallel()

	bind := binder.Form()

	t.Run("binds basic fields", func(t *testing.T) {
		t.Parallel()
		var v putForm
		err := bind(formRequest(t, "key=3&value=42&note=hello"), &v)
		require.NoError(t, err)
		assert.Equal(t, 3, v.Key)
		assert.Equal(t, 42, v.Value)
		assert.Equal(t, "hello", v.Note)
		assert.Nil(t, v.Optional)
	})

	t.Run("binds multi-value and pointer fields", func(t *testing.T) {
		t.Parallel()
		var v putForm
		err := bind(formRequest(t, "tags=a&tags=b&optional=7"), &v)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, v.Tags)
		require.NotNil(t, v.Optional)
		assert.Equal(t, 7, *v.Optional)
	})

	t.Run("skipped fields stay zero", func(t *testing.T) {
		t.Parallel()
		var v putForm
		err := bind(formRequest(t, "ignored=evil"), &v)
		require.NoError(t, err)
		assert.Empty(t, v.Ignored)
	})

	t.Run("invalid int value", func(t *testing.T) {
		t.Parallel()
		var v putForm
		err := bind(formRequest(t, "key=abc"), &v)
		assert.ErrorIs(t, err, binder.ErrInvalidForm)
	})

	t.Run("missing content type on POST", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/put", strings.NewReader("key=1"))
		var v putForm
		err := bind(req, &v)
		assert.ErrorIs(t, err, binder.ErrMissingContentType)
	})

	t.Run("not applicable on bodyless GET", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		var v putForm
		err := bind(req, &v)
		assert.ErrorIs(t, err, binder.ErrBinderNotApplicable)
	})

	t.Run("unsupported media type", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/put", strings.NewReader(`{"key":1}`))
		req.Header.Set("Content-Type", "application/json")
		var v putForm
		err := bind(req, &v)
		assert.ErrorIs(t, err, binder.ErrUnsupportedMediaType)
	})

	t.Run("non-pointer target", func(t *testing.T) {
		t.Parallel()
		var v putForm
		err := bind(formRequest(t, "key=1"), v)
		assert.ErrorIs(t, err, binder.ErrInvalidForm)
	})
}

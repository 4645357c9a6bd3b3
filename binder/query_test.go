package binder_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lruviz/binder"
)

type pageQuery struct {
	Flash  string  `query:"flash"`
	Hit    *int    `query:"hit"`
	Limit  int     `query:"limit"`
	Active bool    `query:"active"`
	Rate   float64 `query:"rate"`
	IDs    []int   `query:"ids"`
}

func TestQuery(t *testing.T) {
	t.Parallel()

	bind := binder.Query()

	t.Run("binds all supported types", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/?flash=hit&hit=42&limit=10&active=true&rate=0.5&ids=1,2,3", nil)
		var v pageQuery
		require.NoError(t, bind(req, &v))
		assert.Equal(t, "hit", v.Flash)
		require.NotNil(t, v.Hit)
		assert.Equal(t, 42, *v.Hit)
		assert.Equal(t, 10, v.Limit)
		assert.True(t, v.Active)
		assert.InDelta(t, 0.5, v.Rate, 1e-9)
		assert.Equal(t, []int{1, 2, 3}, v.IDs)
	})

	t.Run("missing params leave zero values", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		var v pageQuery
		require.NoError(t, bind(req, &v))
		assert.Empty(t, v.Flash)
		assert.Nil(t, v.Hit)
		assert.Zero(t, v.Limit)
	})

	t.Run("repeated params build a slice", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/?ids=1&ids=2", nil)
		var v pageQuery
		require.NoError(t, bind(req, &v))
		assert.Equal(t, []int{1, 2}, v.IDs)
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/?limit=ten", nil)
		var v pageQuery
		assert.ErrorIs(t, bind(req, &v), binder.ErrInvalidQuery)
	})
}

package binder

import (
	"fmt"
	"net/http"
	"strings"
)

// Form creates a binder for application/x-www-form-urlencoded content.
//
// It supports struct tags for custom field names:
//   - `form:"name"` - binds to form field "name"
//   - `form:"-"` - skips the field
//   - `form:"name,omitempty"` - same as form:"name" for parsing
//
// Supported types:
//   - Basic types: string, int, int64, uint, uint64, float32, float64, bool
//   - Slices of basic types for multi-value fields
//   - Pointers for optional fields
//
// Requests without a body (no Content-Type header) yield
// ErrBinderNotApplicable so the binder can be combined with Query on
// routes serving both GET and POST.
//
// Example:
//
//	type PutRequest struct {
//		Key   int `form:"key"`
//		Value int `form:"value"`
//	}
//
//	http.HandleFunc("/put", handler.Wrap(h,
//		handler.WithBinder(binder.Form()),
//	))
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			if r.Method == http.MethodGet || r.Method == http.MethodHead {
				return ErrBinderNotApplicable
			}
			return fmt.Errorf("%w: expected application/x-www-form-urlencoded", ErrMissingContentType)
		}

		// Extract media type without parameters
		mediaType := contentType
		if idx := strings.Index(contentType, ";"); idx != -1 {
			mediaType = strings.TrimSpace(contentType[:idx])
		}

		if mediaType != "application/x-www-form-urlencoded" {
			return fmt.Errorf("%w: got %s, expected application/x-www-form-urlencoded", ErrUnsupportedMediaType, mediaType)
		}

		if err := r.ParseForm(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}

		return bindToStruct(v, "form", r.PostForm, ErrInvalidForm)
	}
}

package handler

import (
	"bytes"
	"html/template"
	"net/http"
)

// htmlResponse renders a named html/template to the response.
type htmlResponse struct {
	tmpl   *template.Template
	name   string
	data   any
	status int
}

// Render executes the template into a buffer first so a template error
// never leaves a half-written body behind a 200 status.
func (h htmlResponse) Render(w http.ResponseWriter, r *http.Request) error {
	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, h.name, h.data); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(h.status)
	_, err := buf.WriteTo(w)
	return err
}

// HTMLOption configures an HTML response.
type HTMLOption func(*htmlResponse)

// WithHTMLStatus sets a custom HTTP status code.
func WithHTMLStatus(status int) HTMLOption {
	return func(r *htmlResponse) {
		r.status = status
	}
}

// HTML creates a response that renders the named template with data.
//
// Example:
//
//	return handler.HTML(views, "page", pageData)
func HTML(tmpl *template.Template, name string, data any, opts ...HTMLOption) Response {
	r := &htmlResponse{
		tmpl:   tmpl,
		name:   name,
		data:   data,
		status: http.StatusOK,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Package binder parses HTTP request data into typed structs via reflection.
//
// Binders are plain functions with the signature func(*http.Request, any)
// error, produced by constructors:
//
//	binder.Form()  // application/x-www-form-urlencoded bodies, form:"..." tags
//	binder.Query() // URL query parameters, query:"..." tags
//
// Multiple binders can be chained: a binder that does not apply to the
// request (e.g. Form on a bodyless GET) returns ErrBinderNotApplicable,
// which callers should skip rather than treat as a failure.
package binder

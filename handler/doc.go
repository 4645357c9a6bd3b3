// Package handler provides a typed HTTP handler abstraction.
//
// Handlers are functions from a typed request to a Response:
//
//	h := handler.HandlerFunc[handler.Context, PutRequest](
//		func(ctx handler.Context, req PutRequest) handler.Response {
//			if err := svc.Put(ctx, req.Key, req.Value); err != nil {
//				return handler.JSONError(err)
//			}
//			return handler.Redirect("/")
//		},
//	)
//
// Wrap converts a HandlerFunc into a standard http.HandlerFunc, binding the
// request via configurable binders, building the Context, and rendering the
// returned Response. Binding or rendering failures go through the error
// handler, which maps HTTPError values to their status codes.
//
// Response implementations cover JSON bodies, HTTP redirects (including
// POST-redirect-GET flows) and html/template pages.
package handler

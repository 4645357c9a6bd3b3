// Package logger provides a context-aware wrapper around Go's slog package
// adding functional options for configuration, helper attribute constructors,
// and transparent injection of values stored in context.Context.
//
// The single factory New creates a *slog.Logger configured by Option
// functions: output format (text or json), minimum level, static default
// attributes, and ContextExtractor callbacks that pull attributes out of the
// context (for example a request id) every time Handle is invoked.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithDevelopment("lruviz"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "cache initialized",
//	    logger.Component("visualizer"),
//	    logger.Capacity(4),
//	)
//
// Helper constructors such as Error, Component and SessionID live in attr.go
// and keep attribute naming consistent across the codebase. Error and Errors
// produce attributes only when the supplied error is non-nil.
package logger

// Package httpserver provides a lightweight wrapper around net/http that adds
// graceful shutdown, configurable server timeouts, health-check handlers, and
// structured logging via slog.
//
// The core type is Server:
//
//   - Graceful shutdown – Run blocks until the context is cancelled or an
//     interrupt/TERM signal is received, then shuts the server down using
//     http.Server.Shutdown with a configurable deadline.
//   - Functional options – construction goes through New or NewFromConfig
//     together with Option helpers such as WithAddr, WithReadTimeout and
//     WithLogger.
//   - Hooks – WithStartHook and WithStopHook run side effects around the
//     server life cycle.
//   - Health checks – HealthCheckHandler returns an http.HandlerFunc usable
//     as both liveness and readiness probe.
//
// All public errors are wrapped with the ErrStart and ErrShutdown sentinels
// so they can be inspected with errors.Is.
//
// # Usage
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
//	srv := httpserver.NewFromConfig(cfg,
//	    httpserver.WithLogger(log),
//	    httpserver.WithStartHook(func(l *slog.Logger) {
//	        l.Info("listening", slog.String("addr", cfg.Addr))
//	    }),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
package httpserver

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/lruviz/modules/visualizer"
	"github.com/dmitrymomot/lruviz/pkg/config"
	"github.com/dmitrymomot/lruviz/pkg/environment"
	"github.com/dmitrymomot/lruviz/pkg/httpserver"
	"github.com/dmitrymomot/lruviz/pkg/logger"
	"github.com/dmitrymomot/lruviz/pkg/requestid"
	"github.com/dmitrymomot/lruviz/pkg/session"
)

type appConfig struct {
	Environment string `env:"APP_ENV" envDefault:"development"`

	HTTP       httpserver.Config
	Session    session.Config
	Visualizer visualizer.Config
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithEnvironment(cfg.Environment, "lruviz"),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			environment.LoggerExtractor(),
		),
	)
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, err := visualizer.NewService(cfg.Visualizer, log)
	if err != nil {
		log.Error("failed to build visualizer service", logger.Error(err))
		os.Exit(1)
	}

	sessions := session.New(session.WithConfig(cfg.Session))

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(environment.Middleware(environment.Environment(cfg.Environment)))

	r.Get("/health", httpserver.HealthCheckHandler(ctx, log))

	r.Group(func(r chi.Router) {
		r.Use(session.Middleware(sessions))
		r.Mount("/", svc.Handle())
	})

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	if err := srv.Run(ctx, r); err != nil {
		log.Error("server stopped", logger.Error(err))
		os.Exit(1)
	}
}

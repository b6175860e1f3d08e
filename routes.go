package calendar

import (
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/xdoubleu/essentia/v2/pkg/middleware"
)

func (app *App) Routes() http.Handler {
	mux := http.NewServeMux()

	app.templateRoutes(mux)
	app.eventRoutes(mux)
	app.calendarRoutes(mux)

	mux.HandleFunc("GET /feed.ics", app.feedHandler)
	mux.HandleFunc("GET /ws", app.Services.Refresh.Handler())
	mux.Handle(
		"GET /metrics",
		promhttp.HandlerFor(app.registry, promhttp.HandlerOpts{}),
	)

	var sentryClientOptions sentry.ClientOptions
	if len(app.Config.SentryDsn) > 0 {
		//nolint:exhaustruct //other fields are optional
		sentryClientOptions = sentry.ClientOptions{
			Dsn:              app.Config.SentryDsn,
			Environment:      app.Config.Env,
			Release:          app.Config.Release,
			EnableTracing:    true,
			TracesSampleRate: app.Config.SampleRate,
			SampleRate:       app.Config.SampleRate,
		}
	}

	allowedOrigins := []string{app.Config.WebURL}
	handlers, err := middleware.DefaultWithSentry(
		app.logger,
		allowedOrigins,
		app.Config.Env,
		sentryClientOptions,
	)

	if err != nil {
		panic(err)
	}

	standard := alice.New(handlers...)
	return standard.Then(mux)
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/linnemanlabs/go-core/httpmw"
	"github.com/linnemanlabs/go-core/log"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/linnemanlabs/bfhl/internal/bfhlapi"
	vc "github.com/linnemanlabs/bfhl/internal/cfg"
	"github.com/linnemanlabs/bfhl/internal/classify"
)

// maxBodyBytes caps POST /bfhl bodies, 413 above this
const maxBodyBytes = 1 << 20

// newClassifyService builds the engine for the configured charset and the
// service around it, with metrics registered on reg.
func newClassifyService(L log.Logger, appCfg *vc.Config, reg prometheus.Registerer) (*classify.Service, error) {
	charset, err := classify.ParseCharset(appCfg.Charset)
	if err != nil {
		return nil, fmt.Errorf("charset: %w", err)
	}
	m := classify.NewMetrics(reg)
	return classify.NewService(classify.NewEngine(charset), L, m.Hooks()), nil
}

// newRouter returns the api chi router: per-route middleware, health endpoints and bfhl routes.
func newRouter(api *bfhlapi.API, healthz, readyz http.HandlerFunc) chi.Router {
	r := chi.NewRouter()

	// JSON only
	r.Use(middleware.Compress(5, "application/json"))

	// Annotate logger (and tracer if trace is recording) with http.route from chi route pattern
	r.Use(httpmw.AnnotateHTTPRoute)
	r.Use(httpmw.AccessLog())

	// wraps http.MaxBytesHandler, the handler maps the read error to 413
	r.Use(httpmw.MaxBody(maxBodyBytes))

	r.Get("/-/healthy", healthz)
	r.Get("/-/ready", readyz)

	api.RegisterRoutes(r)
	return r
}

// instrument wraps the router in the listener-wide middleware. Each wrapper is
// applied outside the previous one, so the last applied sees the raw request first.
func instrument(h http.Handler, L log.Logger, metricsMW, clientIP func(http.Handler) http.Handler) http.Handler {
	// inner so the request logger sees trace_id and the chi route
	h = httpmw.WithLogger(L)(h)
	h = httpmw.TraceResponseHeaders("X-Trace-Id", "X-Span-Id")(h)

	h = otelhttp.NewHandler(h, "http.server",
		otelhttp.WithFilter(func(r *http.Request) bool {
			return r.URL.Path != "/-/healthy" && r.URL.Path != "/-/ready"
		}),
		// AnnotateHTTPRoute renames the span to the route pattern later
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
		otelhttp.WithPublicEndpointFn(func(_ *http.Request) bool { return true }),
	)

	h = metricsMW(h)
	h = clientIP(h)
	h = httpmw.RequestID("X-Request-Id")(h)

	// outer to catch panics from any downstream middleware or handlers
	h = httpmw.Recover(L, nil)(h)

	// outermost so every response carries them
	return httpmw.SecurityHeaders(h)
}

type stopFn struct {
	name string
	fn   func(context.Context) error
}

// shutdownAll stops each component in order, giving each an equal slice of budget.
// Nil stop functions are skipped.
func shutdownAll(L log.Logger, budget time.Duration, stops []stopFn) {
	if len(stops) == 0 {
		return
	}
	perComponent := budget / time.Duration(len(stops))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), budget)
	defer cancel()

	for _, s := range stops {
		if s.fn == nil {
			continue
		}
		cctx, ccancel := context.WithTimeout(shutdownCtx, perComponent)
		if err := s.fn(cctx); err != nil {
			L.Error(context.Background(), err, s.name+" shutdown")
		}
		ccancel()
	}
}

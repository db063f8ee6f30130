package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"trackswift/internal/http/handlers"
	"trackswift/internal/http/middleware"
	"trackswift/internal/logx"
)

// New constructs a chi-based http.Handler with base middleware and routes.
func New(
	logger logx.Logger,
	base *handlers.Handlers,
	shp *handlers.ShipmentHandler,
	rep *handlers.ReportHandler,
	auth *handlers.AuthHandler,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(5 * time.Second))
	r.Use(middleware.Observability(logger))

	r.Post("/login", auth.Login)

	r.Route("/shipments", func(r chi.Router) {
		r.Post("/", shp.Create)
		r.Get("/", shp.List)
		r.Get("/{tracking_id}", shp.Track)
		r.Patch("/{tracking_id}/status", shp.UpdateStatus)
	})

	r.Get("/orders", shp.ListOrders)

	r.Route("/reports", func(r chi.Router) {
		r.Get("/summary", rep.Summary)
		r.Get("/status-distribution", rep.StatusDistribution)
		r.Get("/timeseries", rep.TimeSeries)
		r.Get("/recent", rep.Recent)
	})

	r.Get("/ping", base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(base.HealthcheckHead))
	r.Handle("/metrics", promhttp.Handler())
	r.NotFound(http.HandlerFunc(base.NotFound))

	return r
}

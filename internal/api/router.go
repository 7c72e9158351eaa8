package api

import (
	"net/http"
	"truck-loading-service/internal/api/handlers"
	"truck-loading-service/internal/platform/metrics"
	"truck-loading-service/internal/services"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

type RouterOptions struct {
	// RateLimit is requests per second per client IP; zero disables limiting.
	RateLimit float64
	RateBurst int
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(book *services.PackageBook, opts RouterOptions) http.Handler {
	metrics.Register()

	mux := http.NewServeMux()

	pkgHandler := &handlers.PackageHandler{Book: book}
	planHandler := &handlers.PlanHandler{Book: book}

	mux.HandleFunc("GET /health", handlers.Health)
	mux.Handle("GET /metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	mux.HandleFunc("GET /packages", pkgHandler.List)
	mux.HandleFunc("POST /packages", pkgHandler.Create)
	mux.HandleFunc("DELETE /packages/{code}", pkgHandler.Cancel)
	mux.HandleFunc("POST /packages/{code}/payment", pkgHandler.ConfirmPayment)

	mux.HandleFunc("GET /trucks", planHandler.Trucks)
	mux.HandleFunc("GET /trucks/{n}/route", planHandler.Route)
	mux.HandleFunc("GET /trucks/{n}/invoice", planHandler.Invoice)
	mux.HandleFunc("GET /routes", planHandler.Routes)
	mux.HandleFunc("POST /plans", planHandler.Plan)

	limit := rateLimitMiddleware(rate.Limit(opts.RateLimit), opts.RateBurst)
	return requestIDMiddleware(loggingMiddleware(limit(mux)))
}

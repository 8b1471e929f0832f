// Package metrics holds the Prometheus collectors for the planner.
package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder owns its own registry so tests can build as many as they like.
type Recorder struct {
	registry        *prometheus.Registry
	recommendations *prometheus.CounterVec
	results         prometheus.Histogram
	transitions     *prometheus.CounterVec
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		recommendations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pergola",
			Name:      "recommendations_total",
			Help:      "Recommendation runs, split by whether anything matched.",
		}, []string{"outcome"}),
		results: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "pergola",
			Name:      "recommendation_results",
			Help:      "Number of plans returned per recommendation run.",
			Buckets:   prometheus.LinearBuckets(0, 1, 10),
		}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pergola",
			Name:      "planner_transitions_total",
			Help:      "Planner session step transitions.",
		}, []string{"to"}),
	}
	r.registry.MustRegister(r.recommendations, r.results, r.transitions)
	return r
}

// ObserveRecommendations records one engine run that returned count plans.
func (r *Recorder) ObserveRecommendations(count int) {
	if r == nil {
		return
	}
	outcome := "match"
	if count == 0 {
		outcome = "empty"
	}
	r.recommendations.WithLabelValues(outcome).Inc()
	r.results.Observe(float64(count))
}

// ObserveTransition records a planner session moving to step.
func (r *Recorder) ObserveTransition(step string) {
	if r == nil {
		return
	}
	r.transitions.WithLabelValues(step).Inc()
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// RegisterRoutes exposes GET /metrics.
func (r *Recorder) RegisterRoutes(app *fiber.App) {
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})))
}
